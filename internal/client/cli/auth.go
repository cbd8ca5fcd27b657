package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/smartuniversity/campusctl/internal/client/api"
	"github.com/smartuniversity/campusctl/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for credentials, a tenant and a role, creates the account
// and immediately establishes a session from the issued token.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	tenant, err := getSimpleText(a.reader, "Enter tenant id", a.out)
	if err != nil {
		return err
	}

	roleInput, err := getSimpleText(a.reader, "Enter role (STUDENT, TEACHER or ADMIN; empty for STUDENT)", a.out)
	if err != nil {
		return err
	}
	role := models.ParseRole(strings.ToUpper(roleInput))
	if role == models.RoleUnknown {
		role = models.RoleStudent
	}

	bearer, err := a.auth.Register(ctx, username, string(password), tenant, role)
	if err != nil {
		a.reportAuthError("Registration", err)
		return err
	}

	if err := a.session.Login(ctx, bearer, tenant); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Registered as %s\n", username)
	return nil
}

// Login prompts for credentials and an optional tenant and replaces the
// current session wholesale with the issued token. The typed tenant wins over
// the token's own tenant claim.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	tenant, err := getSimpleText(a.reader, "Enter tenant id (empty to use the token's tenant)", a.out)
	if err != nil {
		return err
	}

	bearer, err := a.auth.Login(ctx, username, string(password), tenant)
	if err != nil {
		a.reportAuthError("Login", err)
		return err
	}

	if err := a.session.Login(ctx, bearer, tenant); err != nil {
		return err
	}

	cur := a.session.Current()
	fmt.Fprintf(a.out, "Logged in as %s (%s)\n", cur.UserID, cur.Role)
	return nil
}

// Logout clears the persisted session. Safe to run when already logged out.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func (a *App) reportAuthError(action string, err error) {
	switch {
	case errors.Is(err, api.ErrUnavailable):
		fmt.Fprintf(a.out, "%s failed: server unavailable\n", action)
	case api.MessageOf(err) != "":
		fmt.Fprintf(a.out, "%s failed: %s\n", action, api.MessageOf(err))
	default:
		fmt.Fprintf(a.out, "%s failed\n", action)
	}
}
