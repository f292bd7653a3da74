package api

import (
	"context"
	"net/http"

	"github.com/mertsakar/wantmart/internal/client/models"
)

// RegisterRequest carries the registration form fields.
type RegisterRequest struct {
	Email     string         `json:"email"`
	Password  string         `json:"password"`
	FirstName string         `json:"firstName"`
	LastName  string         `json:"lastName"`
	Address   models.Address `json:"address"`
}

type userResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    *models.User `json:"data"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// AuthClient talks to the authentication backend. None of its operations
// attach a bearer credential.
type AuthClient struct {
	base *baseClient
}

func NewAuthClient(baseURL string) *AuthClient {
	return &AuthClient{base: newBaseClient(baseURL, nil)}
}

// Register creates a new account. The returned user is unverified; the
// caller should proceed to the email verification flow.
func (c *AuthClient) Register(ctx context.Context, req RegisterRequest) (*models.User, string, error) {
	var resp userResponse
	if err := c.base.doJSON(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return nil, "", err
	}
	return resp.Data, resp.Message, nil
}

// Login authenticates with email and password and returns the user,
// including the issued bearer credential.
func (c *AuthClient) Login(ctx context.Context, email, password string) (*models.User, error) {
	body := map[string]string{"email": email, "password": password}
	var resp userResponse
	if err := c.base.doJSON(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// VerifyEmail confirms the account with the emailed 6-digit code and
// returns the now-verified user.
func (c *AuthClient) VerifyEmail(ctx context.Context, userID, code string) (*models.User, string, error) {
	body := map[string]string{"userId": userID, "verificationCode": code}
	var resp userResponse
	if err := c.base.doJSON(ctx, http.MethodPost, "/auth/verify-email", body, &resp); err != nil {
		return nil, "", err
	}
	return resp.Data, resp.Message, nil
}

// ResendVerification asks the backend to email a fresh verification code.
func (c *AuthClient) ResendVerification(ctx context.Context, userID string) (string, error) {
	body := map[string]string{"userId": userID}
	var resp messageResponse
	if err := c.base.doJSON(ctx, http.MethodPost, "/auth/resend-verification", body, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
