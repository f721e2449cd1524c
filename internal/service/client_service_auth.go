package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-qr-notes/internal/adapter"
	"github.com/MKhiriev/go-qr-notes/internal/logger"
	"github.com/MKhiriev/go-qr-notes/models"
)

type clientAuthService struct {
	identity adapter.Identity
	users    adapter.UserRepository
	logger   *logger.Logger
}

func NewClientAuthService(identity adapter.Identity, users adapter.UserRepository, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{identity: identity, users: users, logger: logger}
}

// Register creates the account. The profile record keeps the password copy
// the backend data model expects; the identity side stores the credential
// from the same request. No session results from registration.
func (a *clientAuthService) Register(ctx context.Context, user models.User) error {
	if _, err := a.identity.SignUp(ctx, user); err != nil {
		a.logger.Err(err).Str("email", user.Email).Msg("registration on server failed")
		return fmt.Errorf("%w: %v", ErrRegisterOnServer, err)
	}

	return nil
}

func (a *clientAuthService) Login(ctx context.Context, email, password string) error {
	if err := a.identity.SignIn(ctx, email, password); err != nil {
		a.logger.Err(err).Str("email", email).Msg("login on server failed")
		return fmt.Errorf("%w: %v", ErrLoginOnServer, err)
	}

	return nil
}

func (a *clientAuthService) Logout() {
	a.identity.SignOut()
}

func (a *clientAuthService) CurrentUserID() string {
	return a.identity.CurrentUserID()
}

func (a *clientAuthService) Profile(ctx context.Context) (models.User, error) {
	user, err := a.users.Me(ctx)
	if err != nil {
		a.logger.Err(err).Msg("profile fetch failed")
		return models.User{}, fmt.Errorf("profile fetch failed: %w", err)
	}

	return user, nil
}

// CheckSecurityPassword applies the shared gate rule. A blank entry never
// reaches the comparison; it is rejected outright so the gate cannot be
// probed with empty submissions.
func (a *clientAuthService) CheckSecurityPassword(stored, entered string) error {
	if entered == "" {
		return ErrEmptySecurityPassword
	}
	if entered != stored {
		return ErrSecurityPasswordMismatch
	}

	return nil
}
