package handler

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/rahmam-mok/Development/config"
	"github.com/rahmam-mok/Development/internal/auth/dto"
	"github.com/rahmam-mok/Development/internal/auth/service"
	autherror "github.com/rahmam-mok/Development/internal/errors"
	"github.com/rahmam-mok/Development/pkg/constant"
)

type AuthHandler struct {
	authService *service.AuthService
	timeout     time.Duration
}

func NewAuthHandler(authService *service.AuthService, cfg *config.Config) *AuthHandler {
	timeout := time.Duration(cfg.LoginTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = constant.DefaultLoginTimeoutSeconds * time.Second
	}

	return &AuthHandler{authService: authService, timeout: timeout}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	// Capture metadata
	input.IPAddress = c.IP()
	input.UserAgent = string(c.Request().Header.UserAgent())

	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()

	result, err := h.authService.Login(ctx, input)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *AuthHandler) VerifyMFA(c *fiber.Ctx) error {
	var input dto.VerifyMFAInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	// The older variant of this endpoint posted the username under "session".
	if input.Username == "" {
		input.Username = input.Session
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()

	result, err := h.authService.VerifyMFA(ctx, input)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// statusForError maps the service error taxonomy onto HTTP statuses. The
// response body keeps the full message, provider text included.
func statusForError(err error) int {
	switch {
	case errors.Is(err, autherror.ErrUnsupportedClient):
		return fiber.StatusForbidden
	case errors.Is(err, autherror.ErrInvalidCredentials),
		errors.Is(err, autherror.ErrCodeMismatch),
		errors.Is(err, autherror.ErrCodeExpired):
		return fiber.StatusUnauthorized
	case errors.Is(err, autherror.ErrSessionNotFound),
		errors.Is(err, autherror.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, autherror.ErrTooManyRequests):
		return fiber.StatusTooManyRequests
	case errors.Is(err, autherror.ErrUnsupportedChallenge):
		return fiber.StatusNotImplemented
	case errors.Is(err, autherror.ErrProviderUnavailable):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
