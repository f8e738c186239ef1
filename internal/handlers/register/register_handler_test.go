package register

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sellerhub-service/internal/domain/user"
	registersvc "sellerhub-service/internal/service/register"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUserStore struct {
	existing  *user.User
	createErr error
}

func (f *fakeUserStore) FindByUsernameOrEmail(_ context.Context, username, email string) (*user.User, error) {
	return f.existing, nil
}

func (f *fakeUserStore) Create(_ context.Context, u *user.NewUser) (*user.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &user.User{
		UserID:    7,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		CreatedAt: time.Now(),
	}, nil
}

func newTestRouter(store *fakeUserStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewRegisterHandler(registersvc.New(store, zap.NewNop()), zap.NewNop())

	r := gin.New()
	r.POST("/api/register", h.Register)
	r.GET("/api/health", h.Health)
	return r
}

func postRegister(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

const validBody = `{
	"username": "jdoe",
	"first_name": "John",
	"last_name": "Doe",
	"email": "jdoe@example.com",
	"phone": "0700000001",
	"password": "hunter22",
	"terms": true
}`

func TestRegisterHandler_Created(t *testing.T) {
	t.Parallel()

	r := newTestRouter(&fakeUserStore{})
	rec := postRegister(t, r, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool      `json:"success"`
		Data    user.User `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(7), resp.Data.UserID)
	assert.Equal(t, "jdoe", resp.Data.Username)
	assert.Equal(t, "John", resp.Data.FirstName)
	assert.Equal(t, "Doe", resp.Data.LastName)
	assert.Equal(t, "jdoe@example.com", resp.Data.Email)
	assert.False(t, resp.Data.CreatedAt.IsZero())
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestRegisterHandler_MissingFields(t *testing.T) {
	t.Parallel()

	r := newTestRouter(&fakeUserStore{})
	rec := postRegister(t, r, `{"username": "jdoe"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Success     bool                `json:"success"`
		FieldErrors map[string][]string `json:"field_errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.FieldErrors, "email")
	assert.Contains(t, resp.FieldErrors, "password")
	assert.Contains(t, resp.FieldErrors, "terms")
}

func TestRegisterHandler_DuplicateUsername(t *testing.T) {
	t.Parallel()

	r := newTestRouter(&fakeUserStore{
		existing: &user.User{Username: "jdoe", Email: "other@example.com"},
	})
	rec := postRegister(t, r, validBody)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		FieldErrors map[string][]string `json:"field_errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Username already taken"}, resp.FieldErrors["username"])
}

func TestRegisterHandler_StoreFailureIsInternal(t *testing.T) {
	t.Parallel()

	r := newTestRouter(&fakeUserStore{createErr: errors.New("connection reset")})
	rec := postRegister(t, r, validBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestRegisterHandler_Health(t *testing.T) {
	t.Parallel()

	r := newTestRouter(&fakeUserStore{})
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
