package dto

type LoginInput struct {
	Username  string `json:"username" form:"username"`
	Password  string `json:"password" form:"password"`
	IPAddress string `json:"-" form:"-"`
	UserAgent string `json:"-" form:"-"`
}
