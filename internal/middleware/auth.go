package middleware

import (
	"strings"

	"github.com/drezzup/catalog-service/pkg/errs"
	"github.com/drezzup/catalog-service/pkg/response"
	"github.com/drezzup/catalog-service/pkg/utils"
	"github.com/labstack/echo/v4"
)

// Authenticate verifies the bearer access token. A missing token is rejected
// with 401, a token that fails verification with 403; on success the decoded
// identity is attached to the echo context.
func Authenticate(accessTokenSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)

			var token string
			if strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimPrefix(authHeader, "Bearer ")
			}
			if token == "" {
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}

			claims, err := utils.VerifyJWTToken(token, accessTokenSecret)
			if err != nil {
				return response.WriteErrorResponse(c, errs.ErrInvalidToken, nil)
			}

			c.Set("user_id", claims.UserID)
			c.Set("email", claims.Email)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}

// AuthorizeRoles rejects authenticated requests whose role is not listed.
func AuthorizeRoles(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			for _, allowed := range roles {
				if role == allowed {
					return next(c)
				}
			}

			return response.WriteErrorResponse(c, errs.ErrForbidden, nil)
		}
	}
}
