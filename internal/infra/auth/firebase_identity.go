package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"kitchen/internal/domain/service"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
)

const (
	defaultIdentityToolkitURL = "https://identitytoolkit.googleapis.com"
	identityRequestTimeout    = 15 * time.Second
)

// IDTokenVerifier is the subset of the Firebase Admin auth client used here.
type IDTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error)
}

// firebaseIdentityProvider verifies passwords through the Identity Toolkit REST API
// and client ID tokens through the Firebase Admin SDK.
type firebaseIdentityProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	verifier   IDTokenVerifier
	logger     *slog.Logger
}

type signInWithPasswordRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInWithPasswordResponse struct {
	LocalID     string `json:"localId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	IDToken     string `json:"idToken"`
}

type identityToolkitError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// NewFirebaseIdentityProvider creates a provider. verifier may be nil when no service account is configured,
// in which case ID token login is rejected.
func NewFirebaseIdentityProvider(apiKey, baseURL string, verifier IDTokenVerifier, logger *slog.Logger) service.IdentityProvider {
	if baseURL == "" {
		baseURL = defaultIdentityToolkitURL
	}

	return &firebaseIdentityProvider{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: identityRequestTimeout},
		verifier:   verifier,
		logger:     logger,
	}
}

func (p *firebaseIdentityProvider) SignInWithPassword(ctx context.Context, email, password string) (*service.Identity, error) {
	if p.apiKey == "" {
		return nil, errors.New("firebase web API key is not configured")
	}

	body, err := json.Marshal(signInWithPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	endpoint := p.baseURL + "/v1/accounts:signInWithPassword?key=" + url.QueryEscape(p.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "identity toolkit request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr identityToolkitError
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)

		// EMAIL_NOT_FOUND, INVALID_PASSWORD and friends all mean the same thing to the caller.
		if resp.StatusCode == http.StatusBadRequest {
			return nil, errors.Wrap(service.ErrIdentityRejected, apiErr.Error.Message)
		}

		return nil, errors.Errorf("identity toolkit returned %d: %s", resp.StatusCode, apiErr.Error.Message)
	}

	var result signInWithPasswordResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.Wrap(err, "failed to decode identity toolkit response")
	}

	return &service.Identity{
		UID:         result.LocalID,
		Email:       result.Email,
		DisplayName: result.DisplayName,
	}, nil
}

func (p *firebaseIdentityProvider) VerifyIDToken(ctx context.Context, idToken string) (*service.Identity, error) {
	if p.verifier == nil {
		return nil, errors.Wrap(service.ErrIdentityRejected, "firebase admin credentials are not configured")
	}

	token, err := p.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(service.ErrIdentityRejected, err.Error())
	}

	identity := &service.Identity{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		identity.DisplayName = name
	}

	if identity.Email == "" {
		return nil, errors.Wrap(service.ErrIdentityRejected, "token has no email claim")
	}

	return identity, nil
}
