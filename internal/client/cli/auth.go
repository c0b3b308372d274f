package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/challengehub/internal/client/models"
	"github.com/dmitrijs2005/challengehub/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// readSecret prints label and reads a password; the caller wipes the result.
func (a *App) readSecret(label string) ([]byte, error) {
	fmt.Fprintln(a.out, label)
	return getPassword(a.out)
}

// Register prompts for username, email and password (twice) and signs the
// new account in.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := a.readSecret("Choose a password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := a.readSecret("Repeat the password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	u, err := a.session.Register(ctx, models.Registration{
		Username:        username,
		Email:           email,
		Password:        string(password),
		ConfirmPassword: string(confirm),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", u.Username)
	return nil
}

// Login prompts for an email or username and a password.
func (a *App) Login(ctx context.Context) error {
	identity, err := getSimpleText(a.reader, "Enter email or username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.session.Login(ctx, identity, string(password))
	if err != nil {
		a.log.Debug(ctx, "login unsuccessful", "error", err)
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s\n", u.Username)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	a.session.ClearError()
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// WhoAmI refreshes the current user from the server and prints it.
func (a *App) WhoAmI(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	u, err := a.session.FetchCurrentSession(ctx)
	if err != nil {
		return err
	}
	printUser(a.out, u)
	return nil
}

// Profile updates first/last name and optionally the profile image. Empty
// answers leave a field unchanged.
func (a *App) Profile(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	first, err := getSimpleText(a.reader, "First name (empty to keep)", a.out)
	if err != nil {
		return err
	}
	last, err := getSimpleText(a.reader, "Last name (empty to keep)", a.out)
	if err != nil {
		return err
	}
	imagePath, err := getSimpleText(a.reader, "Profile image path (empty to keep)", a.out)
	if err != nil {
		return err
	}

	var image *models.Upload
	if imagePath != "" {
		f, err := os.Open(imagePath)
		if err != nil {
			return fmt.Errorf("open image: %w", err)
		}
		defer f.Close()
		image = &models.Upload{FileName: filepath.Base(imagePath), Content: f}
	}

	u, err := a.session.UpdateProfile(ctx, models.ProfileUpdate{Firstname: first, Lastname: last}, image)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Profile updated")
	printUser(a.out, u)
	return nil
}

func (a *App) Password(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	old, err := a.readSecret("Current password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(old)

	next, err := a.readSecret("New password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(next)

	confirm, err := a.readSecret("Repeat the new password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if err := a.session.UpdatePassword(ctx, string(old), string(next), string(confirm)); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Password changed")
	return nil
}

// DeleteAccount asks for the username as confirmation before deleting.
func (a *App) DeleteAccount(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	name := ""
	if u := a.session.State().User; u != nil {
		name = u.Username
	}
	answer, err := getSimpleText(a.reader, fmt.Sprintf("Type your username (%s) to delete the account", name), a.out)
	if err != nil {
		return err
	}
	if strings.TrimSpace(answer) != name {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	if err := a.session.DeleteAccount(ctx); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Account deleted")
	return nil
}
