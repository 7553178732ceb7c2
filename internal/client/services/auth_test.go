package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/cofund/internal/client/client"
	"github.com/dmitrijs2005/cofund/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/cofund/internal/cryptox"
	"github.com/stretchr/testify/require"
)

func seedOffline(t *testing.T, svc AuthService, user string, salt, verifier []byte) {
	t.Helper()
	require.NoError(t, svc.(*authService).saveOfflineData(context.Background(), user, salt, verifier))
}

func getMeta(t *testing.T, svc AuthService, k string) []byte {
	t.Helper()
	a := svc.(*authService)
	v, err := a.getMetadataRepo(a.db).Get(context.Background(), k)
	require.NoError(t, err)
	return v
}

func TestOfflineLogin_NoLocalData(t *testing.T) {
	svc := NewAuthService(&fakeClient{}, setupDB(t))

	err := svc.OfflineLogin(context.Background(), "user@example.com", []byte("pass"))
	require.ErrorIs(t, err, client.ErrLocalDataNotAvailable)
}

func TestOfflineLogin_UsernameMismatch(t *testing.T) {
	svc := NewAuthService(&fakeClient{}, setupDB(t))
	seedOffline(t, svc, "other", []byte("salt"), []byte{1, 2, 3})

	err := svc.OfflineLogin(context.Background(), "user", []byte("p"))
	require.ErrorIs(t, err, client.ErrUnauthorized)
}

func TestOfflineLogin_WrongPassword(t *testing.T) {
	salt := []byte("salty")
	ver := cryptox.MakeVerifier(cryptox.DeriveMasterKey([]byte("correct"), salt))

	svc := NewAuthService(&fakeClient{}, setupDB(t))
	seedOffline(t, svc, "user", salt, ver)

	err := svc.OfflineLogin(context.Background(), "user", []byte("wrong"))
	require.ErrorIs(t, err, client.ErrUnauthorized)
}

func TestOfflineLogin_Success(t *testing.T) {
	salt := []byte("salty")
	ver := cryptox.MakeVerifier(cryptox.DeriveMasterKey([]byte("pass"), salt))

	svc := NewAuthService(&fakeClient{}, setupDB(t))
	seedOffline(t, svc, "user", salt, ver)

	require.NoError(t, svc.OfflineLogin(context.Background(), "user", []byte("pass")))
}

func TestOnlineLogin_ErrorsWrapped(t *testing.T) {
	svc := NewAuthService(&fakeClient{GetSaltErr: errors.New("network down")}, setupDB(t))
	err := svc.OnlineLogin(context.Background(), "u", []byte("p"))
	require.Error(t, err)
	require.True(t, strings.HasPrefix(err.Error(), "get salt error:"))

	svc = NewAuthService(&fakeClient{GetSaltRet: []byte("s"), LoginErr: client.ErrUnauthorized}, setupDB(t))
	err = svc.OnlineLogin(context.Background(), "u", []byte("p"))
	require.ErrorIs(t, err, client.ErrUnauthorized)
	require.True(t, strings.HasPrefix(err.Error(), "login error:"))
}

func TestOnlineLogin_SavesOfflineData(t *testing.T) {
	fc := &fakeClient{GetSaltRet: []byte("salt")}
	svc := NewAuthService(fc, setupDB(t))

	require.NoError(t, svc.OnlineLogin(context.Background(), "user", []byte("pass")))

	require.Equal(t, []byte("user"), getMeta(t, svc, metadata.KeyUsername))
	require.Equal(t, []byte("salt"), getMeta(t, svc, metadata.KeySalt))

	want := cryptox.MakeVerifier(cryptox.DeriveMasterKey([]byte("pass"), []byte("salt")))
	require.Equal(t, want, getMeta(t, svc, metadata.KeyVerifier))
	require.Equal(t, "user", fc.LastLoginUser)
	require.Equal(t, want, fc.LastLoginKey)

	require.NoError(t, svc.OfflineLogin(context.Background(), "user", []byte("pass")))
}

func TestRegister_DelegatesToClient(t *testing.T) {
	fc := &fakeClient{}
	svc := NewAuthService(fc, setupDB(t))

	require.NoError(t, svc.Register(context.Background(), "u", []byte("p")))
	require.Equal(t, "u", fc.LastRegisterUser)
	require.Len(t, fc.LastRegisterSalt, 32)
	require.Equal(t, cryptox.MakeVerifier(cryptox.DeriveMasterKey([]byte("p"), fc.LastRegisterSalt)), fc.LastRegisterKey)

	fc.RegisterErr = errors.New("dup")
	require.Error(t, svc.Register(context.Background(), "u", []byte("p")))
}

func TestLogout_WipesLocalDataEvenWhenOffline(t *testing.T) {
	fc := &fakeClient{LogoutErr: client.ErrUnavailable}
	svc := NewAuthService(fc, setupDB(t))
	seedOffline(t, svc, "user", []byte("s"), []byte("v"))

	err := svc.Logout(context.Background())
	require.ErrorIs(t, err, client.ErrUnavailable)
	require.Equal(t, 1, fc.LogoutCalls)
	require.Nil(t, getMeta(t, svc, metadata.KeyUsername))
}

func TestPingAndClose_Propagate(t *testing.T) {
	fc := &fakeClient{PingErr: errors.New("down"), CloseErr: errors.New("io")}
	svc := NewAuthService(fc, setupDB(t))

	require.Error(t, svc.Ping(context.Background()))
	require.Error(t, svc.Close(context.Background()))
}
