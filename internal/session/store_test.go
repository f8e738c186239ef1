package session

import (
	"context"
	"testing"
	"time"

	"sellerhub-service/internal/domain/principal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPrincipal() *principal.Principal {
	return &principal.Principal{
		UserID:    42,
		Email:     "admin@example.com",
		Role:      principal.RoleAdmin,
		Token:     "opaque-bearer",
		ExpiresAt: time.Now().Add(time.Hour).UnixMilli(),
	}
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	want := validPrincipal()
	want.Seller = &principal.SellerProfile{
		ID:             7,
		FirstName:      "Jane",
		LastName:       "Doe",
		Email:          "jane@example.com",
		CommissionRate: 12.5,
	}
	require.NoError(t, store.Set(ctx, "sid-1", want))

	got, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMemoryStore_GetAbsent(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()

	got, err := store.Get(context.Background(), "never-set")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStore_MalformedStateReadsAsAbsent(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	store.SetRaw("sid-1", []byte("{not json"))

	got, err := store.Get(context.Background(), "sid-1")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.False(t, store.IsAuthenticated(context.Background(), "sid-1"))
}

func TestMemoryStore_ClearRemovesPrincipal(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "sid-1", validPrincipal()))
	require.NoError(t, store.Clear(ctx, "sid-1"))

	got, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStore_IsAuthenticated(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		principal *principal.Principal
		want      bool
	}{
		{
			name:      "valid principal",
			principal: validPrincipal(),
			want:      true,
		},
		{
			name: "expired principal",
			principal: &principal.Principal{
				UserID:    1,
				Role:      principal.RoleSeller,
				Token:     "still-present",
				ExpiresAt: time.Now().Add(-time.Minute).UnixMilli(),
			},
			want: false,
		},
		{
			name: "empty token",
			principal: &principal.Principal{
				UserID:    1,
				Role:      principal.RoleSeller,
				ExpiresAt: time.Now().Add(time.Hour).UnixMilli(),
			},
			want: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := NewMemoryStore()
			ctx := context.Background()
			require.NoError(t, store.Set(ctx, "sid", tt.principal))

			assert.Equal(t, tt.want, store.IsAuthenticated(ctx, "sid"))
		})
	}
}

func TestMemoryStore_HasRole(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "sid", validPrincipal()))

	assert.True(t, store.HasRole(ctx, "sid", principal.RoleAdmin))
	assert.False(t, store.HasRole(ctx, "sid", principal.RoleSeller))
	assert.False(t, store.HasRole(ctx, "other-sid", principal.RoleAdmin))
}

func TestMemoryStore_Subscribers(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	sub := store.Subscribe(4)
	defer store.Unsubscribe(sub)

	p := validPrincipal()
	require.NoError(t, store.Set(ctx, "sid-1", p))
	require.NoError(t, store.Clear(ctx, "sid-1"))

	set := <-sub.C
	assert.Equal(t, "sid-1", set.SID)
	assert.Equal(t, p, set.Principal)

	cleared := <-sub.C
	assert.Equal(t, "sid-1", cleared.SID)
	assert.Nil(t, cleared.Principal)
}

func TestNotifier_SlowSubscriberDoesNotBlock(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	sub := store.Subscribe(1)
	defer store.Unsubscribe(sub)

	// Second write must not block even though the buffer is full.
	done := make(chan struct{})
	go func() {
		_ = store.Set(ctx, "a", validPrincipal())
		_ = store.Set(ctx, "b", validPrincipal())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a full subscriber channel")
	}
}
