package dto

type VerifyMFAInput struct {
	Username string `json:"username" form:"username"`
	// Session is a legacy alias for Username kept for clients of the older
	// variant of this endpoint, which posted the field under that name.
	Session string `json:"session" form:"session"`
	Code    string `json:"code" form:"code"`
}
