package console

import (
	"context"

	"github.com/dmperov/shopadmin/internal/api"
	"github.com/dmperov/shopadmin/internal/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates against the API. Matching
// the web form, nothing is sent until both email and password are non-empty.
// A successful admin login is persisted to the session store; a non-admin
// account is rejected and nothing is saved.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	if email == "" {
		printlnFn("Email is required.")
		return nil
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	if password == "" {
		printlnFn("Password is required.")
		return nil
	}

	creds, err := a.auth.Login(ctx, email, password)
	if err != nil {
		printlnFn("Login failed:", api.UserMessage(err))
		return nil
	}

	if !creds.User.IsAdmin() {
		printlnFn("This console is for store administrators only.")
		return nil
	}

	sess := &session.Session{Token: creds.Token, User: creds.User}
	if err := a.store.Save(sess); err != nil {
		a.log.Warn(ctx, "could not persist session", "error", err)
	}
	printlnFn("Logged in as", creds.User.Email)
	return nil
}

// Logout clears the persisted session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.store.Clear(); err != nil {
		return err
	}
	printlnFn("Logged out.")
	return nil
}
