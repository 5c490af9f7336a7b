package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/questx-lab/scratchcard/internal/model"
	"github.com/questx-lab/scratchcard/internal/repository"
	"github.com/questx-lab/scratchcard/pkg/authenticator"
	"github.com/questx-lab/scratchcard/pkg/errorx"
	"github.com/questx-lab/scratchcard/pkg/testutil"
	"github.com/questx-lab/scratchcard/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func requireCode(t *testing.T, err error, code errorx.Code) {
	var errx errorx.Error
	require.True(t, errors.As(err, &errx))
	require.Equal(t, code, errx.Code)
}

func TestAuthVerifier(t *testing.T) {
	ctx := testutil.NewMockContext()
	cfg := xcontext.Configs(ctx).Auth
	tokenEngine := authenticator.NewTokenEngine[model.AccessToken](cfg.TokenSecret, cfg.AccessToken)
	verifier := NewAuthVerifier(tokenEngine).Middleware()

	token, err := tokenEngine.Generate(testutil.User1.ID, model.AccessToken{ID: testutil.User1.ID})
	require.NoError(t, err)

	t.Run("header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/getMe", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		newCtx, err := verifier(xcontext.WithHTTPRequest(ctx, req))
		require.NoError(t, err)
		require.Equal(t, testutil.User1.ID, xcontext.RequestUserID(newCtx))
	})

	t.Run("cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/getMe", nil)
		req.AddCookie(&http.Cookie{Name: cfg.AccessToken.Name, Value: token})

		newCtx, err := verifier(xcontext.WithHTTPRequest(ctx, req))
		require.NoError(t, err)
		require.Equal(t, testutil.User1.ID, xcontext.RequestUserID(newCtx))
	})

	t.Run("missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/getMe", nil)
		_, err := verifier(xcontext.WithHTTPRequest(ctx, req))
		requireCode(t, err, errorx.Unauthenticated)
	})

	t.Run("invalid", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/getMe", nil)
		req.Header.Set("Authorization", "Bearer "+token+"x")
		_, err := verifier(xcontext.WithHTTPRequest(ctx, req))
		requireCode(t, err, errorx.Unauthenticated)
	})
}

func TestOnlyAdmin(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	onlyAdmin := NewOnlyAdmin(repository.NewUserRepository()).Middleware()

	_, err := onlyAdmin(testutil.NewMockContextWithUserID(ctx, testutil.Admin.ID))
	require.NoError(t, err)

	_, err = onlyAdmin(testutil.NewMockContextWithUserID(ctx, testutil.User1.ID))
	requireCode(t, err, errorx.PermissionDenied)
}

func TestRateLimiter(t *testing.T) {
	ctx := testutil.NewMockContext()
	limiter := NewRateLimiter(0.001, 2)
	m := limiter.Middleware()

	user1Ctx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	for i := 0; i < 2; i++ {
		_, err := m(user1Ctx)
		require.NoError(t, err)
	}

	_, err := m(user1Ctx)
	requireCode(t, err, errorx.TooManyRequests)

	// Other users have their own budget.
	_, err = m(testutil.NewMockContextWithUserID(ctx, testutil.User2.ID))
	require.NoError(t, err)

	limiter.Reset()
	_, err = m(user1Ctx)
	require.NoError(t, err)
}
