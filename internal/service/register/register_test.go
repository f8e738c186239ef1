package register

import (
	"context"
	"errors"
	"testing"
	"time"

	"sellerhub-service/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserStore struct {
	existing *user.User
	findErr  error

	created   *user.NewUser
	createErr error
}

func (f *fakeUserStore) FindByUsernameOrEmail(_ context.Context, username, email string) (*user.User, error) {
	return f.existing, f.findErr
}

func (f *fakeUserStore) Create(_ context.Context, u *user.NewUser) (*user.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = u
	return &user.User{
		UserID:    1,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
		CreatedAt: time.Now(),
	}, nil
}

func validRequest() *user.RegisterRequest {
	return &user.RegisterRequest{
		Username:  "jdoe",
		FirstName: "John",
		LastName:  "Doe",
		Email:     "jdoe@example.com",
		Phone:     "0700000001",
		Password:  "hunter22",
		Terms:     true,
	}
}

func TestService_Register_Success(t *testing.T) {
	t.Parallel()

	store := &fakeUserStore{}
	svc := New(store, zap.NewNop())

	created, err := svc.Register(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "jdoe", created.Username)
	require.NotNil(t, created.Phone)
	assert.Equal(t, "0700000001", *created.Phone)

	// The stored credential must be a bcrypt hash of the password, never the
	// password itself.
	require.NotNil(t, store.created)
	assert.NotEqual(t, "hunter22", store.created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(store.created.PasswordHash), []byte("hunter22")))
}

func TestService_Register_MissingFields(t *testing.T) {
	t.Parallel()

	svc := New(&fakeUserStore{}, zap.NewNop())

	_, err := svc.Register(context.Background(), &user.RegisterRequest{
		Username: "jdoe",
		Email:    "jdoe@example.com",
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "All fields are required", verr.Message)
	assert.Contains(t, verr.Fields, "first_name")
	assert.Contains(t, verr.Fields, "last_name")
	assert.Contains(t, verr.Fields, "password")
	assert.Contains(t, verr.Fields, "terms")
	assert.NotContains(t, verr.Fields, "username")
	assert.NotContains(t, verr.Fields, "email")
}

func TestService_Register_DuplicateUsername(t *testing.T) {
	t.Parallel()

	store := &fakeUserStore{
		existing: &user.User{Username: "jdoe", Email: "other@example.com"},
	}
	svc := New(store, zap.NewNop())

	_, err := svc.Register(context.Background(), validRequest())

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, map[string]string{"username": "Username already taken"}, verr.Fields)
	assert.Nil(t, store.created, "no row may be inserted on conflict")
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	t.Parallel()

	store := &fakeUserStore{
		existing: &user.User{Username: "someone-else", Email: "jdoe@example.com"},
	}
	svc := New(store, zap.NewNop())

	_, err := svc.Register(context.Background(), validRequest())

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, map[string]string{"email": "Email already registered"}, verr.Fields)
}

func TestService_Register_StoreFailureIsNotValidation(t *testing.T) {
	t.Parallel()

	dbErr := errors.New("connection reset")
	svc := New(&fakeUserStore{createErr: dbErr}, zap.NewNop())

	_, err := svc.Register(context.Background(), validRequest())
	require.Error(t, err)

	var verr *ValidationError
	assert.False(t, errors.As(err, &verr))
	assert.ErrorIs(t, err, dbErr)
}
