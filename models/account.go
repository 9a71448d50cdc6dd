package models

import "time"

// Account roles.
const (
	RoleAdmin        = "admin"
	RolePhotographer = "photographer"
)

// Account is a dashboard user: an admin or a photographer. Photographer
// fields are zero-valued for admins.
type Account struct {
	ID           string  `bson:"id" json:"id"`
	Name         string  `bson:"name" json:"name"`
	Email        string  `bson:"email" json:"email"`
	Phone        string  `bson:"phone,omitempty" json:"phone,omitempty"`
	Role         string  `bson:"role" json:"role"`
	PasswordHash string  `bson:"password_hash" json:"-"`
	TokenHash    string  `bson:"token_hash,omitempty" json:"-"`
	AvatarURL    string  `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	HomeAddress  Address `bson:"home_address,omitempty" json:"home_address,omitempty"`
	FCMToken     string  `bson:"fcm_token,omitempty" json:"-"`

	// Connected Stripe account receiving weekly invoice payouts.
	StripeAccountID string `bson:"stripe_account_id,omitempty" json:"stripe_account_id,omitempty"`

	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// AvailabilitySlot is a continuous window a photographer can take work in,
// expressed as minutes from midnight on a given date.
type AvailabilitySlot struct {
	Date  string `bson:"date" json:"date"` // "2006-01-02"
	Start int    `bson:"start" json:"start"`
	End   int    `bson:"end" json:"end"`
}

// Overlaps reports whether the slot overlaps the [start, end) window.
func (s AvailabilitySlot) Overlaps(start, end int) bool {
	return s.Start < end && s.End > start
}
