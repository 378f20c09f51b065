package dto

// AuthResponse is the body returned by both /auth/login and /auth/mfa. A
// completed login carries the provider token; a pending SMS challenge carries
// the instructional message instead, never both.
type AuthResponse struct {
	Token       string `json:"token,omitempty"`
	ExpiresIn   int64  `json:"expires_in,omitempty"`
	MFARequired bool   `json:"mfa_required,omitempty"`
	Message     string `json:"message,omitempty"`
}
