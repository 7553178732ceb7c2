// Package services contains application services for the cofund client.
// This file defines the authentication service: online/offline login,
// register, liveness check and housekeeping of local auth metadata.
package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/cofund/internal/client/client"
	"github.com/dmitrijs2005/cofund/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/cofund/internal/common"
	"github.com/dmitrijs2005/cofund/internal/cryptox"
	"github.com/dmitrijs2005/cofund/internal/dbx"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - OnlineLogin: authenticate against the server and persist offline auth data.
//   - OfflineLogin: verify credentials against locally cached data.
//   - Register: create a new identity on the server.
//   - Logout: revoke server-side tokens and wipe local auth data.
//   - Ping: check server liveness.
//   - Close: release underlying client resources.
type AuthService interface {
	OfflineLogin(ctx context.Context, username string, password []byte) error
	OnlineLogin(ctx context.Context, username string, password []byte) error
	Register(ctx context.Context, username string, password []byte) error
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client client.Client
	db     *sql.DB
}

func NewAuthService(client client.Client, db *sql.DB) AuthService {
	return &authService{client: client, db: db}
}

func (a *authService) getMetadataRepo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

// OfflineLogin checks password against the verifier cached by the last
// online login. Missing local data yields client.ErrLocalDataNotAvailable.
func (a *authService) OfflineLogin(ctx context.Context, username string, password []byte) error {
	repo := a.getMetadataRepo(a.db)

	values := make(map[string][]byte, 3)
	for _, k := range []string{metadata.KeyUsername, metadata.KeySalt, metadata.KeyVerifier} {
		v, err := repo.Get(ctx, k)
		if err != nil {
			return err
		}
		if v == nil {
			return client.ErrLocalDataNotAvailable
		}
		values[k] = v
	}

	if string(values[metadata.KeyUsername]) != username {
		return client.ErrUnauthorized
	}

	key := cryptox.DeriveMasterKey(password, values[metadata.KeySalt])
	defer common.WipeByteArray(key)

	if subtle.ConstantTimeCompare(values[metadata.KeyVerifier], cryptox.MakeVerifier(key)) == 0 {
		return client.ErrUnauthorized
	}
	return nil
}

// OnlineLogin authenticates against the server and saves the offline
// login data (username, salt, verifier).
func (a *authService) OnlineLogin(ctx context.Context, userName string, password []byte) error {
	salt, err := a.client.GetSalt(ctx, userName)
	if err != nil {
		return fmt.Errorf("get salt error: %w", err)
	}

	key := cryptox.DeriveMasterKey(password, salt)
	defer common.WipeByteArray(key)
	verifier := cryptox.MakeVerifier(key)

	if err := a.client.Login(ctx, userName, verifier); err != nil {
		return fmt.Errorf("login error: %w", err)
	}

	if err := a.saveOfflineData(ctx, userName, salt, verifier); err != nil {
		return fmt.Errorf("offline data saving error: %w", err)
	}
	return nil
}

func (a *authService) saveOfflineData(ctx context.Context, userName string, salt []byte, verifier []byte) error {
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := a.getMetadataRepo(tx)
		if err := repo.Set(ctx, metadata.KeyUsername, []byte(userName)); err != nil {
			return err
		}
		if err := repo.Set(ctx, metadata.KeySalt, salt); err != nil {
			return err
		}
		return repo.Set(ctx, metadata.KeyVerifier, verifier)
	})
}

// Register generates a salt, derives the verifier from password and sends
// salt and verifier to the server.
func (a *authService) Register(ctx context.Context, username string, password []byte) error {
	salt := common.GenerateRandByteArray(32)
	key := cryptox.DeriveMasterKey(password, salt)
	defer common.WipeByteArray(key)

	return a.client.Register(ctx, username, salt, cryptox.MakeVerifier(key))
}

// Logout revokes the session server-side when reachable and always wipes
// the local auth data.
func (a *authService) Logout(ctx context.Context) error {
	remoteErr := a.client.Logout(ctx)
	if err := a.getMetadataRepo(a.db).Clear(ctx); err != nil {
		return err
	}
	return remoteErr
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
