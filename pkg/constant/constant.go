package constant

const (
	// SessionCollection is the MongoDB collection holding login session records.
	SessionCollection = "sessions"

	// SMSChallengeMessage is returned instead of a token whenever the identity
	// provider demands an SMS code before issuing credentials.
	SMSChallengeMessage = "An SMS code has been sent to your registered phone number. Submit it to /auth/mfa to finish signing in."

	DefaultLoginTimeoutSeconds = 10
)

// BrowserUserAgentMarkers are the substrings a User-Agent header must carry to
// pass the browser gate. Spoofable, so this is a convenience filter rather
// than a security control.
var BrowserUserAgentMarkers = []string{"Mozilla", "Chrome"}
