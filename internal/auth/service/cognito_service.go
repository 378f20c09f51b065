package service

//go:generate mockgen -destination=../../mocks/mock_cognito_api.go -package=mocks github.com/rahmam-mok/Development/internal/auth/service CognitoAPI

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"

	autherror "github.com/rahmam-mok/Development/internal/errors"
)

// CognitoAPI is the slice of the Cognito Identity Provider client this
// service calls. Declared locally so tests can mock the SDK.
type CognitoAPI interface {
	AdminInitiateAuth(ctx context.Context, params *cognitoidentityprovider.AdminInitiateAuthInput,
		optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminInitiateAuthOutput, error)
	AdminRespondToAuthChallenge(ctx context.Context, params *cognitoidentityprovider.AdminRespondToAuthChallengeInput,
		optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminRespondToAuthChallengeOutput, error)
}

// AuthOutcome is the provider's answer to an auth request: either issued
// tokens, or a pending challenge that must be answered before tokens exist.
type AuthOutcome struct {
	AccessToken  string
	IDToken      string
	RefreshToken string
	ExpiresIn    int32

	ChallengeName   string
	ProviderSession string
}

func (o *AuthOutcome) ChallengePending() bool {
	return o.ChallengeName != ""
}

func (o *AuthOutcome) SMSChallengePending() bool {
	return o.ChallengeName == string(types.ChallengeNameTypeSmsMfa)
}

type CognitoService struct {
	api          CognitoAPI
	userPoolID   string
	clientID     string
	clientSecret string
}

func NewCognitoService(api CognitoAPI, userPoolID, clientID, clientSecret string) *CognitoService {
	return &CognitoService{
		api:          api,
		userPoolID:   userPoolID,
		clientID:     clientID,
		clientSecret: clientSecret,
	}
}

// SecretHash computes the Cognito SECRET_HASH parameter for the username:
// base64(HMAC-SHA256(username + clientID, clientSecret)).
func (cs *CognitoService) SecretHash(username string) string {
	mac := hmac.New(sha256.New, []byte(cs.clientSecret))
	mac.Write([]byte(username + cs.clientID))

	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// PasswordAuth runs the first factor against the user pool. The outcome
// carries tokens when the pool issues them directly, or the SMS challenge
// state when a second factor is required.
func (cs *CognitoService) PasswordAuth(ctx context.Context, username, password string) (*AuthOutcome, error) {
	out, err := cs.api.AdminInitiateAuth(ctx, &cognitoidentityprovider.AdminInitiateAuthInput{
		UserPoolId: aws.String(cs.userPoolID),
		ClientId:   aws.String(cs.clientID),
		AuthFlow:   types.AuthFlowTypeAdminUserPasswordAuth,
		AuthParameters: map[string]string{
			"USERNAME":    username,
			"PASSWORD":    password,
			"SECRET_HASH": cs.SecretHash(username),
		},
	})
	if err != nil {
		return nil, translateProviderError(err)
	}

	outcome := &AuthOutcome{
		ChallengeName:   string(out.ChallengeName),
		ProviderSession: aws.ToString(out.Session),
	}
	fillTokens(outcome, out.AuthenticationResult)

	return outcome, nil
}

// CompleteSMSChallenge answers a pending SMS_MFA challenge. providerSession
// must be the opaque session string the provider returned when it raised the
// challenge.
func (cs *CognitoService) CompleteSMSChallenge(ctx context.Context, username, code, providerSession string) (*AuthOutcome, error) {
	out, err := cs.api.AdminRespondToAuthChallenge(ctx, &cognitoidentityprovider.AdminRespondToAuthChallengeInput{
		UserPoolId:    aws.String(cs.userPoolID),
		ClientId:      aws.String(cs.clientID),
		ChallengeName: types.ChallengeNameTypeSmsMfa,
		Session:       aws.String(providerSession),
		ChallengeResponses: map[string]string{
			"USERNAME":     username,
			"SMS_MFA_CODE": code,
			"SECRET_HASH":  cs.SecretHash(username),
		},
	})
	if err != nil {
		return nil, translateProviderError(err)
	}

	outcome := &AuthOutcome{
		ChallengeName:   string(out.ChallengeName),
		ProviderSession: aws.ToString(out.Session),
	}
	fillTokens(outcome, out.AuthenticationResult)

	return outcome, nil
}

func fillTokens(outcome *AuthOutcome, result *types.AuthenticationResultType) {
	if result == nil {
		return
	}
	outcome.AccessToken = aws.ToString(result.AccessToken)
	outcome.IDToken = aws.ToString(result.IdToken)
	outcome.RefreshToken = aws.ToString(result.RefreshToken)
	outcome.ExpiresIn = result.ExpiresIn
}

// translateProviderError maps the SDK's typed exceptions onto the service
// error taxonomy, keeping the provider's own message visible in the chain.
func translateProviderError(err error) error {
	var (
		notAuthorized    *types.NotAuthorizedException
		userNotFound     *types.UserNotFoundException
		userNotConfirmed *types.UserNotConfirmedException
		passwordReset    *types.PasswordResetRequiredException
		codeMismatch     *types.CodeMismatchException
		codeExpired      *types.ExpiredCodeException
		tooManyRequests  *types.TooManyRequestsException
	)

	switch {
	case errors.As(err, &notAuthorized):
		return fmt.Errorf("%w: %s", autherror.ErrInvalidCredentials, notAuthorized.ErrorMessage())
	case errors.As(err, &userNotFound):
		return fmt.Errorf("%w: %s", autherror.ErrUserNotFound, userNotFound.ErrorMessage())
	case errors.As(err, &userNotConfirmed):
		return fmt.Errorf("%w: %s", autherror.ErrInvalidCredentials, userNotConfirmed.ErrorMessage())
	case errors.As(err, &passwordReset):
		return fmt.Errorf("%w: %s", autherror.ErrInvalidCredentials, passwordReset.ErrorMessage())
	case errors.As(err, &codeMismatch):
		return fmt.Errorf("%w: %s", autherror.ErrCodeMismatch, codeMismatch.ErrorMessage())
	case errors.As(err, &codeExpired):
		return fmt.Errorf("%w: %s", autherror.ErrCodeExpired, codeExpired.ErrorMessage())
	case errors.As(err, &tooManyRequests):
		return fmt.Errorf("%w: %s", autherror.ErrTooManyRequests, tooManyRequests.ErrorMessage())
	default:
		return fmt.Errorf("%w: %v", autherror.ErrProviderUnavailable, err)
	}
}
