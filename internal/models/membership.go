package models

// Membership tier names, ordered Basic < Pro < Premium. Upgrades only;
// there is no downgrade path.
const (
	TierBasic   = "Basic"
	TierPro     = "Pro"
	TierPremium = "Premium"
)

// MembershipTier describes a membership level. The catalog is static and
// read-only at runtime.
type MembershipTier struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Price     float64  `json:"price"`
	Period    string   `json:"period"`
	Features  []string `json:"features"`
	IsPopular bool     `json:"isPopular"`
}

var membershipTiers = []MembershipTier{
	{
		ID:     1,
		Name:   TierBasic,
		Price:  0,
		Period: "forever",
		Features: []string{
			"Browse all strain listings",
			"Save favorites",
			"Community access",
		},
	},
	{
		ID:        2,
		Name:      TierPro,
		Price:     29.99,
		Period:    "month",
		IsPopular: true,
		Features: []string{
			"Everything in Basic",
			"Seller dashboard",
			"Up to 25 active listings",
			"Sales analytics",
		},
	},
	{
		ID:     3,
		Name:   TierPremium,
		Price:  99.99,
		Period: "month",
		Features: []string{
			"Everything in Pro",
			"Unlimited listings",
			"Featured placement",
			"Priority support",
		},
	},
}

// MembershipTiers returns the static tier catalog.
func MembershipTiers() []MembershipTier {
	tiers := make([]MembershipTier, len(membershipTiers))
	copy(tiers, membershipTiers)
	return tiers
}

// TierByName looks up a tier in the catalog.
func TierByName(name string) (*MembershipTier, error) {
	for _, t := range membershipTiers {
		if t.Name == name {
			tier := t
			return &tier, nil
		}
	}
	return nil, ErrTierNotFound
}

// TierRank gives the position of a tier in the upgrade order. Unknown tiers
// rank below Basic.
func TierRank(name string) int {
	switch name {
	case TierBasic:
		return 1
	case TierPro:
		return 2
	case TierPremium:
		return 3
	default:
		return 0
	}
}
