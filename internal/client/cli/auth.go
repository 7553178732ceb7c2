package cli

import (
	"context"
	"errors"
	"log"

	"github.com/dmitrijs2005/cofund/internal/client/client"
	"github.com/dmitrijs2005/cofund/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for an email and password and creates the account.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Register(ctx, userName, password); err != nil {
		return err
	}

	a.ok("Registered %s, you can login now", userName)
	return nil
}

// Login prompts for credentials and tries the server first. When the server
// is unreachable it falls back to the verifier cached by the last online
// login, and the session is read-only until connectivity returns.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	err = a.authService.OnlineLogin(ctx, userName, password)
	switch {
	case err == nil:
		log.Printf("Login successful")
		a.userName = userName
		a.setMode(ModeOnline)
		return nil

	case errors.Is(err, client.ErrUnavailable):
		log.Printf("Server unavailable, trying offline login...")
		if err := a.authService.OfflineLogin(ctx, userName, password); err != nil {
			a.setMode(ModeDisabled)
			return err
		}
		log.Printf("Offline login successful")
		a.userName = userName
		a.setMode(ModeOffline)
		return nil

	default:
		return err
	}
}

// Logout revokes the session and wipes local auth data. Being offline only
// skips the server side.
func (a *App) Logout(ctx context.Context) error {
	err := a.authService.Logout(ctx)
	a.userName = ""
	if errors.Is(err, client.ErrUnavailable) {
		a.warn("Server unavailable, local session cleared only")
		err = nil
	}
	if err != nil {
		return err
	}
	a.ok("Logged out")
	return nil
}
