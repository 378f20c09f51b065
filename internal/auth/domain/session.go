package domain

import "time"

// Session is the login record kept in MongoDB. It is created on a successful
// first-factor login and mutated once more when the SMS challenge completes.
type Session struct {
	ID              string    `bson:"_id"`
	Username        string    `bson:"username"`
	UserAgent       string    `bson:"user_agent"`
	IPAddress       string    `bson:"ip_address"`
	MFAVerified     bool      `bson:"mfa_verified"`
	ProviderSession string    `bson:"provider_session,omitempty"`
	CreatedAt       time.Time `bson:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at"`
}
