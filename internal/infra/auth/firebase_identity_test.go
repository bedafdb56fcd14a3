package auth

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"kitchen/internal/domain/service"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	token *firebaseauth.Token
	err   error
}

func (s *stubVerifier) VerifyIDToken(_ context.Context, _ string) (*firebaseauth.Token, error) {
	return s.token, s.err
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFirebaseIdentity_SignInWithPassword(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/accounts:signInWithPassword", r.URL.Path)
		assert.Equal(t, "web-key", r.URL.Query().Get("key"))

		var req signInWithPasswordRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, req.ReturnSecureToken)

		if req.Password != "secret" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"code":400,"message":"INVALID_PASSWORD"}}`))

			return
		}

		_, _ = w.Write([]byte(`{"localId":"uid-1","email":"admin@shamshiri.com","displayName":"Admin"}`))
	}))
	defer server.Close()

	provider := NewFirebaseIdentityProvider("web-key", server.URL, nil, newDiscardLogger())

	identity, err := provider.SignInWithPassword(context.Background(), "admin@shamshiri.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", identity.UID)
	assert.Equal(t, "admin@shamshiri.com", identity.Email)

	_, err = provider.SignInWithPassword(context.Background(), "admin@shamshiri.com", "nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrIdentityRejected))
}

func TestFirebaseIdentity_ServerErrorIsNotRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	provider := NewFirebaseIdentityProvider("web-key", server.URL, nil, newDiscardLogger())

	_, err := provider.SignInWithPassword(context.Background(), "a@b.c", "x")
	require.Error(t, err)
	assert.False(t, errors.Is(err, service.ErrIdentityRejected))
}

func TestFirebaseIdentity_MissingAPIKey(t *testing.T) {
	provider := NewFirebaseIdentityProvider("", "", nil, newDiscardLogger())

	_, err := provider.SignInWithPassword(context.Background(), "a@b.c", "x")
	assert.Error(t, err)
}

func TestFirebaseIdentity_VerifyIDToken(t *testing.T) {
	verifier := &stubVerifier{token: &firebaseauth.Token{
		UID:    "uid-2",
		Claims: map[string]any{"email": "staff@shamshiri.com", "name": "Staff"},
	}}
	provider := NewFirebaseIdentityProvider("", "", verifier, newDiscardLogger())

	identity, err := provider.VerifyIDToken(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, "staff@shamshiri.com", identity.Email)
	assert.Equal(t, "Staff", identity.DisplayName)

	verifier.token = &firebaseauth.Token{UID: "uid-3", Claims: map[string]any{}}
	_, err = provider.VerifyIDToken(context.Background(), "token")
	assert.True(t, errors.Is(err, service.ErrIdentityRejected))

	verifier.err = errors.New("expired")
	_, err = provider.VerifyIDToken(context.Background(), "token")
	assert.True(t, errors.Is(err, service.ErrIdentityRejected))
}

func TestFirebaseIdentity_VerifyIDTokenWithoutAdminCredentials(t *testing.T) {
	provider := NewFirebaseIdentityProvider("", "", nil, newDiscardLogger())

	_, err := provider.VerifyIDToken(context.Background(), "token")
	assert.True(t, errors.Is(err, service.ErrIdentityRejected))
}
