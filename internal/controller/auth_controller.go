package controller

import (
	"github.com/drezzup/catalog-service/internal/dto"
	"github.com/drezzup/catalog-service/internal/service"
	"github.com/drezzup/catalog-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	service service.AuthService
}

func CreateAuthController(e *echo.Group, service service.AuthService, admin ...echo.MiddlewareFunc) {
	ac := AuthController{
		service: service,
	}
	e.POST("/auth/register", ac.Register)
	e.POST("/auth/login", ac.Login)
	e.POST("/auth/refresh", ac.Refresh)
	e.POST("/auth/logout", ac.Logout)
	e.GET("/auth/user/:email", ac.GetUserByEmail, admin...)
}

func (c *AuthController) Register(e echo.Context) error {
	payload := dto.RegisterRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Register").Msg("")
	}

	respPayload, err := c.service.Register(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "user registered", respPayload)
}

func (c *AuthController) Login(e echo.Context) error {
	payload := dto.LoginRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
	}

	respPayload, err := c.service.Login(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", respPayload)
}

func (c *AuthController) Refresh(e echo.Context) error {
	payload := dto.RefreshRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Refresh").Msg("")
	}

	respPayload, err := c.service.Refresh(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", respPayload)
}

func (c *AuthController) Logout(e echo.Context) error {
	payload := dto.RefreshRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Logout").Msg("")
	}

	err = c.service.Logout(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "logged out", nil)
}

func (c *AuthController) GetUserByEmail(e echo.Context) error {
	respPayload, err := c.service.GetUserByEmail(e.Request().Context(), e.Param("email"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", respPayload)
}
