package cli

import (
	"context"
	"fmt"
)

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		printlnFn("Error reading email:", err)
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		printlnFn("Error reading password:", err)
		return err
	}

	session, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		printlnFn("Login failed:", err)
		return err
	}

	printlnFn(fmt.Sprintf("Logged in as %s (%s)", session.Email, session.Role))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Teardown(ctx); err != nil {
		printlnFn("Logout failed:", err)
		return err
	}
	printlnFn("Logged out.")
	return nil
}
