package services

// Marketplace event names.
const (
	EventListingCreated     = "listing.created"
	EventListingDeleted     = "listing.deleted"
	EventMembershipUpgraded = "membership.upgraded"
)

// EventPublisher publishes marketplace domain events. *rabbitmq.Client
// satisfies this interface; services treat a nil publisher as "no broker
// configured" and skip publication.
type EventPublisher interface {
	PublishEvent(name string, payload interface{}) error
}
