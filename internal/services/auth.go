package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/memorybook/internal/common"
	"github.com/dmitrijs2005/memorybook/internal/cryptox"
	"github.com/dmitrijs2005/memorybook/internal/logging"
	"github.com/dmitrijs2005/memorybook/internal/repositories/accounts"
	"github.com/dmitrijs2005/memorybook/internal/session"
)

// AuthService defines account operations for the CLI.
//
// Contract:
//   - Signup: create an account; empty fields and taken names are rejected.
//   - Authenticate: check credentials and open a fresh session.
type AuthService interface {
	Signup(ctx context.Context, username, password string) error
	Authenticate(ctx context.Context, username, password string) (*session.Session, error)
}

type authService struct {
	repo   accounts.Repository
	scheme cryptox.PasswordScheme
	log    logging.Logger
}

// NewAuthService constructs an AuthService over the account store. Passwords
// of new accounts are stored through scheme.
func NewAuthService(repo accounts.Repository, scheme cryptox.PasswordScheme, log logging.Logger) AuthService {
	return &authService{repo: repo, scheme: scheme, log: log.With("component", "auth")}
}

// Signup trims both fields and stores the new account.
func (a *authService) Signup(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	if username == "" || password == "" {
		return fmt.Errorf("username and password cannot be empty: %w", common.ErrInvalidInput)
	}
	// The username prefixes the user's entry document name.
	if username == "." || username == ".." || strings.ContainsAny(username, "/\\\x00") {
		return fmt.Errorf("username %q is not allowed: %w", username, common.ErrInvalidInput)
	}

	users, err := a.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load accounts: %w", err)
	}

	if _, ok := users[username]; ok {
		return fmt.Errorf("user %q: %w", username, common.ErrAlreadyExists)
	}

	stored, err := a.scheme.Encode(password)
	if err != nil {
		return fmt.Errorf("encode password: %w", err)
	}
	users[username] = stored

	if err := a.repo.Save(ctx, users); err != nil {
		return fmt.Errorf("save accounts: %w", err)
	}

	a.log.Info(ctx, "account created", "user", username, "scheme", a.scheme.Name())
	return nil
}

// Authenticate returns a new session when the password matches the stored
// value. Unknown users and wrong passwords are indistinguishable.
func (a *authService) Authenticate(ctx context.Context, username, password string) (*session.Session, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	users, err := a.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}

	stored, ok := users[username]
	if !ok || !a.scheme.Verify(stored, password) {
		a.log.Warn(ctx, "login rejected", "user", username)
		return nil, common.ErrInvalidCredentials
	}

	a.log.Debug(ctx, "login accepted", "user", username)
	return session.New(username), nil
}
