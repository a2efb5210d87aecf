package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/drezzup/catalog-service/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

const testSecret = "access-secret"

func runAuth(t *testing.T, authHeader string, handler echo.HandlerFunc, mw ...echo.MiddlewareFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := handler
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}

	assert.NoError(t, h(c))

	return rec
}

func TestAuthenticateMissingToken(t *testing.T) {
	rec := runAuth(t, "", func(c echo.Context) error {
		t.Fatal("handler should not run")
		return nil
	}, Authenticate(testSecret))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateInvalidToken(t *testing.T) {
	rec := runAuth(t, "Bearer not-a-token", func(c echo.Context) error {
		t.Fatal("handler should not run")
		return nil
	}, Authenticate(testSecret))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthenticateWrongSecret(t *testing.T) {
	token, err := utils.CreateJWTToken(7, "jane@example.com", "user", "other-secret", time.Minute)
	assert.NoError(t, err)

	rec := runAuth(t, "Bearer "+token, func(c echo.Context) error {
		t.Fatal("handler should not run")
		return nil
	}, Authenticate(testSecret))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthenticateSetsIdentity(t *testing.T) {
	token, err := utils.CreateJWTToken(7, "jane@example.com", "admin", testSecret, time.Minute)
	assert.NoError(t, err)

	rec := runAuth(t, "Bearer "+token, func(c echo.Context) error {
		assert.Equal(t, int64(7), c.Get("user_id"))
		assert.Equal(t, "jane@example.com", c.Get("email"))
		assert.Equal(t, "admin", c.Get("role"))
		return c.NoContent(http.StatusOK)
	}, Authenticate(testSecret))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthorizeRoles(t *testing.T) {
	token, err := utils.CreateJWTToken(7, "jane@example.com", "user", testSecret, time.Minute)
	assert.NoError(t, err)

	rec := runAuth(t, "Bearer "+token, func(c echo.Context) error {
		t.Fatal("handler should not run")
		return nil
	}, Authenticate(testSecret), AuthorizeRoles("admin"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthorizeRolesAllowed(t *testing.T) {
	token, err := utils.CreateJWTToken(7, "jane@example.com", "admin", testSecret, time.Minute)
	assert.NoError(t, err)

	rec := runAuth(t, "Bearer "+token, func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, Authenticate(testSecret), AuthorizeRoles("admin"))

	assert.Equal(t, http.StatusOK, rec.Code)
}
