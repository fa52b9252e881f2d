package cli

import (
	"context"

	"github.com/dmitrijs2005/memorybook/internal/common"
)

// getSimpleText and getPassword point to the interactive input helpers and
// can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

func (a *App) credentials() (string, []byte, error) {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return "", nil, err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return "", nil, err
	}
	return username, password, nil
}

// Signup prompts for a username and password and creates the account.
func (a *App) Signup(ctx context.Context) error {
	username, password, err := a.credentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Signup(ctx, username, string(password)); err != nil {
		return err
	}

	a.success("Account created. You can now log in.")
	return nil
}

// Login authenticates and opens a session with the user's entries loaded.
// A previous session is replaced.
func (a *App) Login(ctx context.Context) error {
	username, password, err := a.credentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	sess, err := a.authService.Authenticate(ctx, username, string(password))
	if err != nil {
		return err
	}

	list, err := a.entryService.List(ctx, sess.Username)
	if err != nil {
		return err
	}
	sess.Reload(list)
	a.session = sess

	a.success("Welcome, %s", sess.Username)
	a.info("%d memories", len(sess.Entries))
	return nil
}

// Logout drops the session, including its background choice.
func (a *App) Logout(ctx context.Context) error {
	if a.session != nil {
		a.log.Debug(ctx, "logout", "user", a.session.Username)
	}
	a.session = nil
	a.info("Logged out")
	return nil
}
