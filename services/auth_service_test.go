package services

import (
	"errors"
	"testing"
	"time"

	"article-hub/models"
	"article-hub/session"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	users     map[string]*models.User
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (f *fakeUserRepo) Create(user *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, exists := f.users[user.Email]; exists {
		// what the unique index reports through TranslateError
		return gorm.ErrDuplicatedKey
	}
	user.ID = uuid.New()
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	if user, ok := f.users[email]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByID(id uuid.UUID) (*models.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func registerReq() models.RegisterRequest {
	return models.RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "a@x.com",
		Password:  "password123",
	}
}

func TestRegisterHashesAndDefaultsRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, session.NewRevocationList())

	user, err := svc.Register(registerReq())
	require.NoError(t, err)

	assert.Equal(t, "USER", user.Role)
	assert.NotEqual(t, "password123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, session.NewRevocationList())

	first, err := svc.Register(registerReq())
	require.NoError(t, err)

	_, err = svc.Register(registerReq())
	assert.True(t, errors.Is(err, models.ErrDuplicateEmail))

	// the first registration survives the conflict
	kept, err := repo.GetByEmail("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, kept.ID)
}

func TestLoginRoundTrip(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, session.NewRevocationList())

	_, err := svc.Register(registerReq())
	require.NoError(t, err)

	res, err := svc.Login(models.LoginRequest{Email: "a@x.com", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "a@x.com", res.User.Email)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, session.NewRevocationList())

	_, err := svc.Register(registerReq())
	require.NoError(t, err)

	_, err = svc.Login(models.LoginRequest{Email: "a@x.com", Password: "wrong"})
	assert.True(t, errors.Is(err, models.ErrInvalidCreds))

	_, err = svc.Login(models.LoginRequest{Email: "nobody@x.com", Password: "password123"})
	assert.True(t, errors.Is(err, models.ErrInvalidCreds))
}

func TestLogoutRevokesToken(t *testing.T) {
	revocations := session.NewRevocationList()
	svc := NewAuthService(newFakeUserRepo(), revocations)

	svc.Logout("some-jti", time.Now().Add(time.Hour))
	assert.True(t, revocations.IsRevoked("some-jti"))
}
