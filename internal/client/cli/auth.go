package cli

import (
	"context"
	"io"

	"github.com/dmitrijs2005/gophchat/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// readPasswordString reads a password and wipes the terminal buffer.
func readPasswordString(w io.Writer) (string, error) {
	pw, err := getPassword(w)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(pw)
	return string(pw), nil
}

// CreateAccount prompts for a username, password and display name, creates
// the account and starts receiving messages for it.
func (a *App) CreateAccount(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := readPasswordString(a.out)
	if err != nil {
		return err
	}
	fullName, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}

	a.stopListening()
	name, err := a.client.CreateAccount(ctx, userName, password, fullName)
	if err != nil {
		return err
	}

	a.loggedIn(ctx, name)
	a.printf("Welcome, %s!\n", name)
	return nil
}

// Login prompts for credentials, authenticates and starts receiving
// messages.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := readPasswordString(a.out)
	if err != nil {
		return err
	}

	a.stopListening()
	name, err := a.client.Login(ctx, userName, password)
	if err != nil {
		return err
	}

	a.loggedIn(ctx, name)
	a.printf("Welcome back, %s!\n", name)
	return nil
}

// Delete removes the logged-in account after a confirmation prompt.
func (a *App) Delete(ctx context.Context) error {
	answer, err := getSimpleText(a.reader, "Delete account "+a.client.Username()+"? Type yes to confirm", a.out)
	if err != nil {
		return err
	}
	if answer != "yes" {
		a.printf("Cancelled\n")
		return nil
	}

	a.stopListening()
	if err := a.client.DeleteAccount(ctx); err != nil {
		return err
	}

	a.mu.Lock()
	a.fullName = ""
	a.mu.Unlock()
	a.printf("Account deleted\n")
	return nil
}

func (a *App) loggedIn(ctx context.Context, fullName string) {
	a.mu.Lock()
	a.fullName = fullName
	a.mu.Unlock()
	a.startListening(ctx)
}
