package service

import (
	"context"
	"time"

	"github.com/drezzup/catalog-service/config"
	"github.com/drezzup/catalog-service/internal/domain"
	"github.com/drezzup/catalog-service/internal/dto"
	"github.com/drezzup/catalog-service/internal/repository"
	"github.com/drezzup/catalog-service/pkg/errs"
	"github.com/drezzup/catalog-service/pkg/utils"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/gomail.v2"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour

	defaultRole = "user"
)

type AuthService interface {
	Register(ctx context.Context, payload dto.RegisterRequest) (res dto.UserResponse, err error)
	Login(ctx context.Context, payload dto.LoginRequest) (res dto.LoginResponse, err error)
	Refresh(ctx context.Context, payload dto.RefreshRequest) (res dto.RefreshResponse, err error)
	Logout(ctx context.Context, payload dto.RefreshRequest) (err error)
	GetUserByEmail(ctx context.Context, email string) (res dto.UserResponse, err error)
}

type AuthServiceImpl struct {
	repo   repository.UserRepository
	config config.Config
}

func CreateAuthService(repo repository.UserRepository, config config.Config) AuthService {
	return &AuthServiceImpl{repo: repo, config: config}
}

func (s *AuthServiceImpl) Register(ctx context.Context, payload dto.RegisterRequest) (res dto.UserResponse, err error) {
	if payload.Email == "" || payload.Password == "" {
		return res, errs.ErrClient
	}

	existing, err := s.repo.GetUserByEmail(ctx, payload.Email)
	if err != nil {
		return res, err
	}
	if existing.ID != 0 {
		return res, errs.ErrEmailAlreadyUsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Str("component", "Register").Msg("")
		return res, errs.ErrInternalServer
	}

	user := domain.User{
		Name:       payload.Name,
		Email:      payload.Email,
		Password:   string(hash),
		Role:       defaultRole,
		ExternalID: ulid.Make().String(),
	}

	id, err := s.repo.AddUser(ctx, user)
	if err != nil {
		return res, err
	}

	s.sendWelcomeEmail(user)

	return dto.UserResponse{
		ID:         id,
		Name:       user.Name,
		Email:      user.Email,
		Role:       user.Role,
		ExternalID: user.ExternalID,
	}, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, payload dto.LoginRequest) (res dto.LoginResponse, err error) {
	if payload.Email == "" || payload.Password == "" {
		return res, errs.ErrClient
	}

	user, err := s.repo.GetUserByEmail(ctx, payload.Email)
	if err != nil {
		return res, err
	}
	if user.ID == 0 {
		return res, errs.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password)); err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
		return res, errs.ErrInvalidCredentials
	}

	accessToken, err := utils.CreateJWTToken(user.ID, user.Email, user.Role, s.config.JWTConfig.AccessTokenSecret, accessTokenTTL)
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
		return res, errs.ErrInternalServer
	}

	refreshToken, err := utils.CreateJWTToken(user.ID, user.Email, user.Role, s.config.JWTConfig.RefreshTokenSecret, refreshTokenTTL)
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
		return res, errs.ErrInternalServer
	}

	if err := s.repo.UpdateRefreshToken(ctx, user.ID, &refreshToken); err != nil {
		return res, err
	}

	res.AccessToken = accessToken
	res.RefreshToken = refreshToken

	return
}

func (s *AuthServiceImpl) Refresh(ctx context.Context, payload dto.RefreshRequest) (res dto.RefreshResponse, err error) {
	if payload.RefreshToken == "" {
		return res, errs.ErrClient
	}

	claims, err := utils.VerifyJWTToken(payload.RefreshToken, s.config.JWTConfig.RefreshTokenSecret)
	if err != nil {
		return res, errs.ErrInvalidRefreshToken
	}

	user, err := s.repo.GetUserByEmail(ctx, claims.Email)
	if err != nil {
		return res, err
	}
	if user.ID == 0 || user.RefreshToken == nil || *user.RefreshToken != payload.RefreshToken {
		return res, errs.ErrInvalidRefreshToken
	}

	accessToken, err := utils.CreateJWTToken(user.ID, user.Email, user.Role, s.config.JWTConfig.AccessTokenSecret, accessTokenTTL)
	if err != nil {
		log.Error().Err(err).Str("component", "Refresh").Msg("")
		return res, errs.ErrInternalServer
	}

	res.AccessToken = accessToken

	return
}

func (s *AuthServiceImpl) Logout(ctx context.Context, payload dto.RefreshRequest) (err error) {
	if payload.RefreshToken == "" {
		return errs.ErrClient
	}

	claims, err := utils.VerifyJWTToken(payload.RefreshToken, s.config.JWTConfig.RefreshTokenSecret)
	if err != nil {
		return errs.ErrInvalidRefreshToken
	}

	user, err := s.repo.GetUserByEmail(ctx, claims.Email)
	if err != nil {
		return err
	}
	if user.ID == 0 {
		return errs.ErrAccountNotFound
	}

	return s.repo.UpdateRefreshToken(ctx, user.ID, nil)
}

func (s *AuthServiceImpl) GetUserByEmail(ctx context.Context, email string) (res dto.UserResponse, err error) {
	if email == "" {
		return res, errs.ErrClient
	}

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return res, err
	}
	if user.ID == 0 {
		return res, errs.ErrAccountNotFound
	}

	return dto.UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       user.Role,
		ExternalID: user.ExternalID,
	}, nil
}

// sendWelcomeEmail is best effort: registration never fails on SMTP trouble.
func (s *AuthServiceImpl) sendWelcomeEmail(user domain.User) {
	if s.config.SMTPConfig.Host == "" {
		return
	}

	message := gomail.NewMessage()
	message.SetHeader("From", s.config.SMTPConfig.Sender)
	message.SetHeader("To", user.Email)
	message.SetHeader("Subject", "Welcome to Drezzup")
	message.SetBody("text/plain", "Hi "+user.Name+", your Drezzup account is ready.")

	if err := utils.SendEmail(message, s.config.SMTPConfig.Sender, s.config.SMTPConfig.Password, s.config.SMTPConfig.Host, s.config.SMTPConfig.Port); err != nil {
		log.Warn().Err(err).Str("component", "sendWelcomeEmail").Msg("")
	}
}
