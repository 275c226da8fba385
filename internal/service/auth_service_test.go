package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/damda-market/storefront/internal/repository"
)

func newAuthService(t *testing.T, storedPassword string) (*AuthService, *fakeSheet) {
	t.Helper()
	sheet := newFakeSheet()
	if storedPassword != "" {
		sheet.data["password!A2"] = [][]interface{}{{storedPassword}}
	}
	return NewAuthService(repository.NewSheetBackup(sheet), "test-secret"), sheet
}

func TestLoginPlainPassword(t *testing.T) {
	auth, _ := newAuthService(t, "admin1234")

	token, err := auth.Login(context.Background(), "admin1234")
	require.NoError(t, err)
	assert.NoError(t, auth.VerifyToken(token))

	_, err = auth.Login(context.Background(), "wrong")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestLoginBcryptPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin1234"), bcrypt.MinCost)
	require.NoError(t, err)
	auth, _ := newAuthService(t, string(hash))

	_, err = auth.Login(context.Background(), "admin1234")
	assert.NoError(t, err)

	_, err = auth.Login(context.Background(), "wrong")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestLoginTrimsAndRequiresPassword(t *testing.T) {
	auth, _ := newAuthService(t, "admin1234")

	_, err := auth.Login(context.Background(), "  admin1234  ")
	assert.NoError(t, err)

	_, err = auth.Login(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrPasswordRequired)
}

func TestLoginPasswordMissing(t *testing.T) {
	auth, _ := newAuthService(t, "")
	_, err := auth.Login(context.Background(), "anything")
	assert.ErrorIs(t, err, repository.ErrPasswordMissing)
}

func TestVerifyTokenRejectsGarbageAndExpired(t *testing.T) {
	auth, _ := newAuthService(t, "admin1234")
	assert.ErrorIs(t, auth.VerifyToken("not-a-token"), ErrInvalidToken)

	// 과거 시각으로 발급하면 만료 검증에 걸린다
	auth.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
	expired, err := auth.GenerateToken()
	require.NoError(t, err)
	assert.ErrorIs(t, auth.VerifyToken(expired), ErrInvalidToken)
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	auth, _ := newAuthService(t, "admin1234")
	other := NewAuthService(nil, "other-secret")
	token, err := other.GenerateToken()
	require.NoError(t, err)
	assert.ErrorIs(t, auth.VerifyToken(token), ErrInvalidToken)
}

func TestChangePassword(t *testing.T) {
	auth, sheet := newAuthService(t, "admin1234")
	ctx := context.Background()

	require.NoError(t, auth.ChangePassword(ctx, "admin1234", "newpass99"))
	assert.Equal(t, "newpass99", sheet.data["password!A2"][0][0])

	assert.ErrorIs(t, auth.ChangePassword(ctx, "badcurrent", "x"), ErrWrongPassword)
	assert.ErrorIs(t, auth.ChangePassword(ctx, "", "x"), ErrPasswordRequired)
}
