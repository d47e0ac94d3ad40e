package user

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Nathan-Chantiny/Fridge-Inventory/domain"
	"github.com/Nathan-Chantiny/Fridge-Inventory/entities"
	"github.com/Nathan-Chantiny/Fridge-Inventory/pkg/jwt"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserService(t *testing.T) (UserService, UserRepository) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.User{}))

	repo := NewUserRepository(db)
	return NewUserService(repo, jwt.NewJWTService()), repo
}

func registerRequest() domain.RegisterRequest {
	return domain.RegisterRequest{
		Email:           "nathan@example.com",
		Username:        "nathan",
		Password:        "hunter22",
		ConfirmPassword: "hunter22",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newUserService(t)

	res, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "nathan", res.Username)

	login, err := svc.Login(context.Background(), domain.LoginRequest{
		Username: "nathan",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, res.ID, login.UserID)

	me, err := svc.Me(context.Background(), login.UserID)
	require.NoError(t, err)
	assert.Equal(t, "nathan@example.com", me.Email)
}

func TestRegisterRejectsInvalidEmail(t *testing.T) {
	svc, repo := newUserService(t)

	req := registerRequest()
	req.Email = "Nathan@Example.com"
	_, err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrEmailInvalid)

	exists, err := repo.UsernameExists(context.Background(), "nathan")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRegisterRejectsPasswordMismatch(t *testing.T) {
	svc, repo := newUserService(t)

	req := registerRequest()
	req.ConfirmPassword = "different"
	_, err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrPasswordMismatch)

	// nothing was written
	exists, err := repo.UsernameExists(context.Background(), "nathan")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	req := registerRequest()
	req.Email = "other@example.com"
	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	req = registerRequest()
	req.Username = "other"
	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), domain.LoginRequest{
		Username: "nathan",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)

	_, err = svc.Login(context.Background(), domain.LoginRequest{
		Username: "nobody",
		Password: "hunter22",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestMeUnknownUser(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.Me(context.Background(), "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
