package service

import (
	"context"
	"testing"
	"time"

	"github.com/drezzup/catalog-service/config"
	"github.com/drezzup/catalog-service/internal/domain"
	"github.com/drezzup/catalog-service/internal/dto"
	"github.com/drezzup/catalog-service/pkg/errs"
	"github.com/drezzup/catalog-service/pkg/utils"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

type mockUserRepository struct {
	getUserByEmailFn     func(ctx context.Context, email string) (domain.User, error)
	addUserFn            func(ctx context.Context, data domain.User) (int64, error)
	updateRefreshTokenFn func(ctx context.Context, userID int64, token *string) error
}

func (m *mockUserRepository) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return m.getUserByEmailFn(ctx, email)
}

func (m *mockUserRepository) AddUser(ctx context.Context, data domain.User) (int64, error) {
	return m.addUserFn(ctx, data)
}

func (m *mockUserRepository) UpdateRefreshToken(ctx context.Context, userID int64, token *string) error {
	return m.updateRefreshTokenFn(ctx, userID, token)
}

func authTestConfig() config.Config {
	return config.Config{
		JWTConfig: config.JWTConfig{
			AccessTokenSecret:  "access-secret",
			RefreshTokenSecret: "refresh-secret",
		},
	}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestRegister(t *testing.T) {
	var added domain.User
	repo := &mockUserRepository{
		getUserByEmailFn: func(ctx context.Context, email string) (domain.User, error) {
			return domain.User{}, nil
		},
		addUserFn: func(ctx context.Context, data domain.User) (int64, error) {
			added = data
			return 7, nil
		},
	}
	svc := CreateAuthService(repo, authTestConfig())

	res, err := svc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "hunter2",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), res.ID)
	assert.Equal(t, "user", res.Role)
	assert.NotEmpty(t, res.ExternalID)
	assert.NotEqual(t, "hunter2", added.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(added.Password), []byte("hunter2")))
}

func TestRegisterEmailAlreadyUsed(t *testing.T) {
	repo := &mockUserRepository{
		getUserByEmailFn: func(ctx context.Context, email string) (domain.User, error) {
			return domain.User{ID: 3, Email: email}, nil
		},
	}
	svc := CreateAuthService(repo, authTestConfig())

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email:    "jane@example.com",
		Password: "hunter2",
	})

	assert.Equal(t, errs.ErrEmailAlreadyUsed, err)
}

func TestRegisterMissingFields(t *testing.T) {
	svc := CreateAuthService(&mockUserRepository{}, authTestConfig())

	_, err := svc.Register(context.Background(), dto.RegisterRequest{Email: "jane@example.com"})
	assert.Equal(t, errs.ErrClient, err)

	_, err = svc.Register(context.Background(), dto.RegisterRequest{Password: "hunter2"})
	assert.Equal(t, errs.ErrClient, err)
}

func TestLogin(t *testing.T) {
	hash := hashPassword(t, "hunter2")
	var stored *string
	repo := &mockUserRepository{
		getUserByEmailFn: func(ctx context.Context, email string) (domain.User, error) {
			return domain.User{ID: 7, Email: email, Password: hash, Role: "admin"}, nil
		},
		updateRefreshTokenFn: func(ctx context.Context, userID int64, token *string) error {
			stored = token
			return nil
		},
	}
	svc := CreateAuthService(repo, authTestConfig())

	res, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "jane@example.com",
		Password: "hunter2",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, res.RefreshToken)
	assert.NotNil(t, stored)
	assert.Equal(t, res.RefreshToken, *stored)

	claims, err := utils.VerifyJWTToken(res.AccessToken, "access-secret")
	assert.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "admin", claims.Role)

	_, err = utils.VerifyJWTToken(res.AccessToken, "refresh-secret")
	assert.Error(t, err)
}

func TestLoginWrongPassword(t *testing.T) {
	hash := hashPassword(t, "hunter2")
	persisted := false
	repo := &mockUserRepository{
		getUserByEmailFn: func(ctx context.Context, email string) (domain.User, error) {
			return domain.User{ID: 7, Email: email, Password: hash}, nil
		},
		updateRefreshTokenFn: func(ctx context.Context, userID int64, token *string) error {
			persisted = true
			return nil
		},
	}
	svc := CreateAuthService(repo, authTestConfig())

	res, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "jane@example.com",
		Password: "wrong",
	})

	assert.Equal(t, errs.ErrInvalidCredentials, err)
	assert.Empty(t, res.AccessToken)
	assert.Empty(t, res.RefreshToken)
	assert.False(t, persisted)
}

func TestLoginUnknownEmail(t *testing.T) {
	repo := &mockUserRepository{
		getUserByEmailFn: func(ctx context.Context, email string) (domain.User, error) {
			return domain.User{}, nil
		},
	}
	svc := CreateAuthService(repo, authTestConfig())

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "hunter2",
	})

	assert.Equal(t, errs.ErrInvalidCredentials, err)
}

func TestRefresh(t *testing.T) {
	conf := authTestConfig()
	refreshToken, err := utils.CreateJWTToken(7, "jane@example.com", "user", conf.JWTConfig.RefreshTokenSecret, time.Hour)
	assert.NoError(t, err)

	repo := &mockUserRepository{
		getUserByEmailFn: func(ctx context.Context, email string) (domain.User, error) {
			return domain.User{ID: 7, Email: email, Role: "user", RefreshToken: &refreshToken}, nil
		},
	}
	svc := CreateAuthService(repo, conf)

	res, err := svc.Refresh(context.Background(), dto.RefreshRequest{RefreshToken: refreshToken})
	assert.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)

	claims, err := utils.VerifyJWTToken(res.AccessToken, conf.JWTConfig.AccessTokenSecret)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
}

func TestRefreshRejectsRotatedToken(t *testing.T) {
	conf := authTestConfig()
	oldToken, err := utils.CreateJWTToken(7, "jane@example.com", "user", conf.JWTConfig.RefreshTokenSecret, time.Hour)
	assert.NoError(t, err)

	// a later login replaced the stored token
	current := "different-stored-token"
	repo := &mockUserRepository{
		getUserByEmailFn: func(ctx context.Context, email string) (domain.User, error) {
			return domain.User{ID: 7, Email: email, RefreshToken: &current}, nil
		},
	}
	svc := CreateAuthService(repo, conf)

	_, err = svc.Refresh(context.Background(), dto.RefreshRequest{RefreshToken: oldToken})
	assert.Equal(t, errs.ErrInvalidRefreshToken, err)
}

func TestRefreshRejectsAfterLogout(t *testing.T) {
	conf := authTestConfig()
	token, err := utils.CreateJWTToken(7, "jane@example.com", "user", conf.JWTConfig.RefreshTokenSecret, time.Hour)
	assert.NoError(t, err)

	repo := &mockUserRepository{
		getUserByEmailFn: func(ctx context.Context, email string) (domain.User, error) {
			return domain.User{ID: 7, Email: email, RefreshToken: nil}, nil
		},
	}
	svc := CreateAuthService(repo, conf)

	_, err = svc.Refresh(context.Background(), dto.RefreshRequest{RefreshToken: token})
	assert.Equal(t, errs.ErrInvalidRefreshToken, err)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	conf := authTestConfig()
	accessToken, err := utils.CreateJWTToken(7, "jane@example.com", "user", conf.JWTConfig.AccessTokenSecret, time.Hour)
	assert.NoError(t, err)

	svc := CreateAuthService(&mockUserRepository{}, conf)

	_, err = svc.Refresh(context.Background(), dto.RefreshRequest{RefreshToken: accessToken})
	assert.Equal(t, errs.ErrInvalidRefreshToken, err)
}

func TestLogout(t *testing.T) {
	conf := authTestConfig()
	token, err := utils.CreateJWTToken(7, "jane@example.com", "user", conf.JWTConfig.RefreshTokenSecret, time.Hour)
	assert.NoError(t, err)

	var clearedID int64
	var clearedToken *string = &token
	repo := &mockUserRepository{
		getUserByEmailFn: func(ctx context.Context, email string) (domain.User, error) {
			return domain.User{ID: 7, Email: email, RefreshToken: &token}, nil
		},
		updateRefreshTokenFn: func(ctx context.Context, userID int64, tok *string) error {
			clearedID = userID
			clearedToken = tok
			return nil
		},
	}
	svc := CreateAuthService(repo, conf)

	err = svc.Logout(context.Background(), dto.RefreshRequest{RefreshToken: token})
	assert.NoError(t, err)
	assert.Equal(t, int64(7), clearedID)
	assert.Nil(t, clearedToken)
}

func TestLogoutIdempotent(t *testing.T) {
	conf := authTestConfig()
	token, err := utils.CreateJWTToken(7, "jane@example.com", "user", conf.JWTConfig.RefreshTokenSecret, time.Hour)
	assert.NoError(t, err)

	// stored token already cleared by an earlier logout
	repo := &mockUserRepository{
		getUserByEmailFn: func(ctx context.Context, email string) (domain.User, error) {
			return domain.User{ID: 7, Email: email, RefreshToken: nil}, nil
		},
		updateRefreshTokenFn: func(ctx context.Context, userID int64, tok *string) error {
			return nil
		},
	}
	svc := CreateAuthService(repo, conf)

	err = svc.Logout(context.Background(), dto.RefreshRequest{RefreshToken: token})
	assert.NoError(t, err)
}

func TestLogoutUnknownUser(t *testing.T) {
	conf := authTestConfig()
	token, err := utils.CreateJWTToken(7, "ghost@example.com", "user", conf.JWTConfig.RefreshTokenSecret, time.Hour)
	assert.NoError(t, err)

	repo := &mockUserRepository{
		getUserByEmailFn: func(ctx context.Context, email string) (domain.User, error) {
			return domain.User{}, nil
		},
	}
	svc := CreateAuthService(repo, conf)

	err = svc.Logout(context.Background(), dto.RefreshRequest{RefreshToken: token})
	assert.Equal(t, errs.ErrAccountNotFound, err)
}

func TestGetUserByEmail(t *testing.T) {
	repo := &mockUserRepository{
		getUserByEmailFn: func(ctx context.Context, email string) (domain.User, error) {
			return domain.User{ID: 7, Name: "Jane", Email: email, Role: "user", ExternalID: "01ARZ"}, nil
		},
	}
	svc := CreateAuthService(repo, authTestConfig())

	res, err := svc.GetUserByEmail(context.Background(), "jane@example.com")
	assert.NoError(t, err)
	assert.Equal(t, int64(7), res.ID)
	assert.Equal(t, "Jane", res.Name)

	repo.getUserByEmailFn = func(ctx context.Context, email string) (domain.User, error) {
		return domain.User{}, nil
	}
	_, err = svc.GetUserByEmail(context.Background(), "ghost@example.com")
	assert.Equal(t, errs.ErrAccountNotFound, err)
}
