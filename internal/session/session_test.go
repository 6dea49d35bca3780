package session

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type whoAmIOutput struct {
	Body struct {
		UserID string `json:"userID"`
	}
}

func newSessionTestAPI(t *testing.T, verifier *Verifier) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(Middleware(api, verifier))

	handler := func(ctx context.Context, _ *struct{}) (*whoAmIOutput, error) {
		out := &whoAmIOutput{}
		if userID, ok := UserIDFromContext(ctx); ok {
			out.Body.UserID = userID.String()
		}
		return out, nil
	}

	huma.Register(api, huma.Operation{
		OperationID: "who-am-i",
		Method:      http.MethodGet,
		Path:        "/v1/whoami",
		Security:    Required(),
	}, handler)
	huma.Register(api, huma.Operation{
		OperationID: "public",
		Method:      http.MethodGet,
		Path:        "/public",
	}, handler)

	return api
}

func TestVerifier_RoundTrip(t *testing.T) {
	verifier := NewVerifier("secret")
	userID := uuid.Must(uuid.NewV4())

	token, err := verifier.Sign(userID, time.Hour)
	require.NoError(t, err)

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestVerifier_Rejects(t *testing.T) {
	verifier := NewVerifier("secret")
	userID := uuid.Must(uuid.NewV4())

	expired, err := verifier.Sign(userID, -time.Minute)
	require.NoError(t, err)
	otherSecret, err := NewVerifier("other").Sign(userID, time.Hour)
	require.NoError(t, err)
	badClaim, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": "42"}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"missing", "", ErrMissingToken},
		{"garbage", "not.a.token", ErrInvalidToken},
		{"expired", expired, ErrInvalidToken},
		{"wrong secret", otherSecret, ErrInvalidToken},
		{"non uuid user", badClaim, ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := verifier.Verify(tt.token)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMiddleware_AcceptsBearerToken(t *testing.T) {
	verifier := NewVerifier("secret")
	userID := uuid.Must(uuid.NewV4())
	token, err := verifier.Sign(userID, time.Hour)
	require.NoError(t, err)

	resp := newSessionTestAPI(t, verifier).Get("/v1/whoami", "Authorization: Bearer "+token)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), userID.String())
}

func TestMiddleware_RejectsMissingToken(t *testing.T) {
	resp := newSessionTestAPI(t, NewVerifier("secret")).Get("/v1/whoami")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestMiddleware_SkipsPublicOperations(t *testing.T) {
	resp := newSessionTestAPI(t, NewVerifier("secret")).Get("/public")

	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestUserIDFromContext(t *testing.T) {
	_, ok := UserIDFromContext(context.Background())
	assert.False(t, ok)

	_, ok = UserIDFromContext(WithUserID(context.Background(), uuid.Nil))
	assert.False(t, ok)

	userID := uuid.Must(uuid.NewV4())
	got, ok := UserIDFromContext(WithUserID(context.Background(), userID))
	assert.True(t, ok)
	assert.Equal(t, userID, got)
}
