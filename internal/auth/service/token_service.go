package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService reads expiry metadata out of provider-issued access tokens.
// The token is decoded without signature verification: validating provider
// credentials is the provider's job, this only surfaces the exp claim for
// the response body.
type TokenService struct{}

func NewTokenService() *TokenService {
	return &TokenService{}
}

// ExpiresIn returns the seconds until the access token expires according to
// its exp claim, falling back to the provider-reported lifetime when the
// token does not parse as a JWT or carries no usable expiry.
func (ts *TokenService) ExpiresIn(accessToken string, providerExpiresIn int32) int64 {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		return int64(providerExpiresIn)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return int64(providerExpiresIn)
	}

	secs := int64(time.Until(exp.Time).Seconds())
	if secs <= 0 {
		return int64(providerExpiresIn)
	}

	return secs
}
