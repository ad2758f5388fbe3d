package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/geofield/borelog/internal/client/models"
)

// Users manages accounts: list, add and delete. Only admins get in; the
// server enforces the same rule on every call.
func (a *App) Users(ctx context.Context) error {
	session, err := a.auth.RequireSession()
	if err != nil {
		printlnFn("Please log in first.")
		return err
	}
	if !session.IsAdmin() {
		printlnFn("User management requires the admin role.")
		return nil
	}

	for {
		action, err := GetSimpleText(a.reader, "users: list, add, del <email>, back", a.out)
		if err != nil {
			return nil
		}
		parts := strings.Fields(action)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "list":
			users, err := a.users.List(ctx)
			if err != nil {
				printlnFn("Error:", err)
				continue
			}
			for _, u := range users {
				printlnFn(fmt.Sprintf("%s\t%s", u.Email, u.Role))
			}

		case "add":
			a.addUser(ctx)

		case "del":
			if len(parts) < 2 {
				printlnFn("Usage: del <email>")
				continue
			}
			if err := a.users.Delete(ctx, session.Email, parts[1]); err != nil {
				printlnFn("Delete failed:", err)
				continue
			}
			printlnFn("User", parts[1], "deleted.")

		case "back", "exit", "quit":
			return nil

		default:
			printlnFn("Unknown command:", parts[0])
		}
	}
}

func (a *App) addUser(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "New user email", a.out)
	if err != nil {
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		printlnFn("Error reading password:", err)
		return
	}
	role, err := GetChoice(a.reader, "Role",
		[]string{string(models.RoleGeneral), string(models.RoleAdmin)}, string(models.RoleGeneral), a.out)
	if err != nil {
		return
	}

	user, err := a.users.Create(ctx, email, string(password), models.NormalizeRole(role))
	if err != nil {
		printlnFn("Create failed:", err)
		return
	}
	printlnFn(fmt.Sprintf("User %s (%s) created.", user.Email, user.Role))
}
