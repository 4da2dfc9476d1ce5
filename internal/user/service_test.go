package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memUserRepo struct {
	byEmail map[string]*User
	nextID  int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: make(map[string]*User)}
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memUserRepo) Create(_ context.Context, u *User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return ErrEmailAlreadyUsed
	}
	r.nextID++
	u.ID = string(rune('a' + r.nextID))
	cp := *u
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *memUserRepo) UpdateLastLogin(_ context.Context, id string, t time.Time) error {
	for _, u := range r.byEmail {
		if u.ID == id {
			u.LastLoginAt = &t
			return nil
		}
	}
	return ErrNotFound
}

type plainHasher struct{}

func (plainHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }

func (plainHasher) Compare(hash, plain string) error {
	if hash != "hashed:"+plain {
		return errors.New("mismatch")
	}
	return nil
}

func TestRegister(t *testing.T) {
	svc := NewService(newMemUserRepo(), plainHasher{})

	u, err := svc.Register(context.Background(), RegisterRequest{
		Email:       "  Alice@Example.COM ",
		Password:    "supersecret",
		DisplayName: "Alice",
	})
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, "hashed:supersecret", u.PasswordHash)
	require.NotNil(t, u.DisplayName)
	assert.Equal(t, "Alice", *u.DisplayName)
	assert.True(t, u.IsActive)
	assert.False(t, u.IsAdmin)
}

func TestRegisterValidation(t *testing.T) {
	svc := NewService(newMemUserRepo(), plainHasher{})
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Email: "   ", Password: "supersecret"})
	assert.ErrorIs(t, err, ErrEmailRequired)

	_, err = svc.Register(ctx, RegisterRequest{Email: "a@b.com", Password: "short"})
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewService(newMemUserRepo(), plainHasher{})
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Email: "a@b.com", Password: "supersecret"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterRequest{Email: "A@B.com", Password: "supersecret"})
	assert.ErrorIs(t, err, ErrEmailAlreadyUsed)
}

func TestLogin(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewService(repo, plainHasher{})
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Email: "a@b.com", Password: "supersecret"})
	require.NoError(t, err)

	u, err := svc.Login(ctx, "a@b.com", "supersecret")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", u.Email)

	// Last login is recorded best-effort.
	stored, err := repo.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.NotNil(t, stored.LastLoginAt)
}

func TestLoginFailures(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewService(repo, plainHasher{})
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Email: "a@b.com", Password: "supersecret"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, "a@b.com", "wrongpassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@b.com", "supersecret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	repo.byEmail["a@b.com"].IsActive = false
	_, err = svc.Login(ctx, "a@b.com", "supersecret")
	assert.ErrorIs(t, err, ErrInactiveUser)
}
