package models

// User roles. Anything unrecognized is treated as RoleUser.
const (
	RoleUser   = "user"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

// NormalizeRole maps an arbitrary role string onto the closed role set,
// falling back to the least-privileged role.
func NormalizeRole(role string) string {
	switch role {
	case RoleSeller, RoleAdmin:
		return role
	default:
		return RoleUser
	}
}

// Preferences holds a user's notification settings.
type Preferences struct {
	Notifications   bool `json:"notifications"`
	Newsletter      bool `json:"newsletter"`
	MarketingEmails bool `json:"marketingEmails"`
}

// DefaultPreferences are applied to newly registered users.
func DefaultPreferences() Preferences {
	return Preferences{Notifications: true, Newsletter: true, MarketingEmails: false}
}

// User represents a marketplace account.
type User struct {
	ID             int         `json:"id" gorm:"primaryKey"`
	Email          string      `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password       string      `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
	FirstName      string      `json:"firstName" validate:"required,min=1,max=100"`
	LastName       string      `json:"lastName" validate:"required,min=1,max=100"`
	BirthDate      string      `json:"birthDate"`
	State          string      `json:"state"`
	Role           string      `json:"role" validate:"omitempty,oneof=user seller admin"`
	MembershipTier string      `json:"membershipTier" validate:"omitempty,oneof=Basic Pro Premium"`
	JoinDate       string      `json:"joinDate"`
	IsActive       bool        `json:"isActive"`
	Avatar         string      `json:"avatar"`
	Phone          string      `json:"phone"`
	Address        string      `json:"address"`
	Preferences    Preferences `json:"preferences" gorm:"embedded;embeddedPrefix:pref_"`
}

// Sanitized returns a copy of the user with the credential field stripped.
// Every record returned by a service must pass through this, including
// administrative list operations.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

// UserUpdate is a partial update payload. Nil fields are left untouched;
// the ID of the target record is never overwritten.
type UserUpdate struct {
	Email          *string      `json:"email,omitempty" validate:"omitempty,email"`
	FirstName      *string      `json:"firstName,omitempty"`
	LastName       *string      `json:"lastName,omitempty"`
	BirthDate      *string      `json:"birthDate,omitempty"`
	State          *string      `json:"state,omitempty"`
	Role           *string      `json:"role,omitempty" validate:"omitempty,oneof=user seller admin"`
	MembershipTier *string      `json:"membershipTier,omitempty" validate:"omitempty,oneof=Basic Pro Premium"`
	IsActive       *bool        `json:"isActive,omitempty"`
	Avatar         *string      `json:"avatar,omitempty"`
	Phone          *string      `json:"phone,omitempty"`
	Address        *string      `json:"address,omitempty"`
	Preferences    *Preferences `json:"preferences,omitempty"`
}

// ApplyTo merges the non-nil fields onto the given user.
func (p UserUpdate) ApplyTo(u *User) {
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.BirthDate != nil {
		u.BirthDate = *p.BirthDate
	}
	if p.State != nil {
		u.State = *p.State
	}
	if p.Role != nil {
		u.Role = NormalizeRole(*p.Role)
	}
	if p.MembershipTier != nil {
		u.MembershipTier = *p.MembershipTier
	}
	if p.IsActive != nil {
		u.IsActive = *p.IsActive
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Address != nil {
		u.Address = *p.Address
	}
	if p.Preferences != nil {
		u.Preferences = *p.Preferences
	}
}

// ProfileFields returns a copy restricted to the fields a user may edit on
// their own profile. Role, tier, email, and the active flag are dropped.
func (p UserUpdate) ProfileFields() UserUpdate {
	return UserUpdate{
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Avatar:      p.Avatar,
		Phone:       p.Phone,
		Address:     p.Address,
		Preferences: p.Preferences,
	}
}
