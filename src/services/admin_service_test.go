package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wse-am/realty-server/src/models"
	"github.com/wse-am/realty-server/src/repositories/mock"
	"golang.org/x/crypto/bcrypt"
)

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func activeUser(t *testing.T, password string) *models.AdminUser {
	return &models.AdminUser{
		ID:           1,
		Username:     "admin",
		PasswordHash: hashPassword(t, password),
		Role:         models.RoleAdmin,
		IsActive:     true,
	}
}

func TestAuthenticate_UserNotFound(t *testing.T) {
	repo := mock.NewAdminRepository()
	svc := NewAdminServiceWithRepo(repo)

	_, err := svc.Authenticate(context.Background(), "ghost", "password")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthenticate_InactiveUser(t *testing.T) {
	repo := mock.NewAdminRepository()
	repo.GetByUsernameFunc = func(ctx context.Context, username string) (*models.AdminUser, error) {
		user := activeUser(t, "password123")
		user.IsActive = false
		return user, nil
	}
	svc := NewAdminServiceWithRepo(repo)

	_, err := svc.Authenticate(context.Background(), "admin", "password123")
	assert.ErrorIs(t, err, ErrUserInactive)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	repo := mock.NewAdminRepository()
	repo.GetByUsernameFunc = func(ctx context.Context, username string) (*models.AdminUser, error) {
		return activeUser(t, "correct-password"), nil
	}
	svc := NewAdminServiceWithRepo(repo)

	_, err := svc.Authenticate(context.Background(), "admin", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_MalformedStoredHash(t *testing.T) {
	repo := mock.NewAdminRepository()
	repo.GetByUsernameFunc = func(ctx context.Context, username string) (*models.AdminUser, error) {
		user := activeUser(t, "password123")
		user.PasswordHash = "not-a-bcrypt-hash"
		return user, nil
	}
	svc := NewAdminServiceWithRepo(repo)

	_, err := svc.Authenticate(context.Background(), "admin", "password123")
	assert.ErrorIs(t, err, ErrPasswordCheck)
}

func TestAuthenticate_Success(t *testing.T) {
	repo := mock.NewAdminRepository()
	repo.GetByUsernameFunc = func(ctx context.Context, username string) (*models.AdminUser, error) {
		return activeUser(t, "password123"), nil
	}
	svc := NewAdminServiceWithRepo(repo)

	user, err := svc.Authenticate(context.Background(), "admin", "password123")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	assert.NotNil(t, user.LastLogin, "last login should be stamped")
	assert.Len(t, repo.Calls["UpdateLastLogin"], 1)
}

func TestCreateAdminUser_ShortPasswordAccepted(t *testing.T) {
	repo := mock.NewAdminRepository()
	svc := NewAdminServiceWithRepo(repo)

	// Any non-empty password is accepted; there is no length policy
	user, err := svc.CreateAdminUser(context.Background(), "bob", "secret1", "b@x.am", "", "")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")))
	assert.Len(t, repo.Calls["Create"], 1)
}

func TestCreateAdminUser_DuplicateUsername(t *testing.T) {
	repo := mock.NewAdminRepository()
	repo.GetByUsernameFunc = func(ctx context.Context, username string) (*models.AdminUser, error) {
		return activeUser(t, "whatever1"), nil
	}
	svc := NewAdminServiceWithRepo(repo)

	_, err := svc.CreateAdminUser(context.Background(), "admin", "password123", "", "", "")
	assert.ErrorIs(t, err, ErrUsernameTaken)
	assert.Empty(t, repo.Calls["Create"], "insert must not run for a duplicate")
}

func TestCreateAdminUser_DefaultsRole(t *testing.T) {
	repo := mock.NewAdminRepository()
	svc := NewAdminServiceWithRepo(repo)

	user, err := svc.CreateAdminUser(context.Background(), "newuser", "password123", "new@wse.am", "New User", "")
	require.NoError(t, err)

	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "password123", user.PasswordHash, "password must be hashed")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
}

func TestResetPassword_UnknownUser(t *testing.T) {
	repo := mock.NewAdminRepository()
	repo.UpdatePasswordFunc = func(ctx context.Context, username, passwordHash string) (bool, error) {
		return false, nil
	}
	svc := NewAdminServiceWithRepo(repo)

	err := svc.ResetPassword(context.Background(), "ghost", "newpassword1")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestResetPassword_Success(t *testing.T) {
	repo := mock.NewAdminRepository()
	var storedHash string
	repo.UpdatePasswordFunc = func(ctx context.Context, username, passwordHash string) (bool, error) {
		storedHash = passwordHash
		return true, nil
	}
	svc := NewAdminServiceWithRepo(repo)

	err := svc.ResetPassword(context.Background(), "admin", "newpassword1")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("newpassword1")))
}

func TestResetPassword_ShortPasswordAccepted(t *testing.T) {
	repo := mock.NewAdminRepository()
	var storedHash string
	repo.UpdatePasswordFunc = func(ctx context.Context, username, passwordHash string) (bool, error) {
		storedHash = passwordHash
		return true, nil
	}
	svc := NewAdminServiceWithRepo(repo)

	err := svc.ResetPassword(context.Background(), "admin", "secret1")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("secret1")))
}

func TestGetActiveByID_InactiveUser(t *testing.T) {
	repo := mock.NewAdminRepository()
	repo.GetByIDFunc = func(ctx context.Context, id int64) (*models.AdminUser, error) {
		user := activeUser(t, "password123")
		user.IsActive = false
		return user, nil
	}
	svc := NewAdminServiceWithRepo(repo)

	_, err := svc.GetActiveByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
