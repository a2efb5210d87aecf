package repository

import (
	"context"
	"database/sql"

	"github.com/drezzup/catalog-service/internal/domain"
	"github.com/drezzup/catalog-service/pkg/errs"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (res domain.User, err error)
	AddUser(ctx context.Context, data domain.User) (id int64, err error)
	UpdateRefreshToken(ctx context.Context, userID int64, token *string) (err error)
}

type UserRepositoryImpl struct {
	db *sqlx.DB
}

func CreateUserRepository(db *sqlx.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) GetUserByEmail(ctx context.Context, email string) (res domain.User, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT id, name, email, password, role, external_id, refresh_token FROM users WHERE email = $1", email)
	err = row.StructScan(&res)
	if err != nil {
		if err == sql.ErrNoRows {
			return res, nil
		}
		log.Error().Err(err).Str("component", "GetUserByEmail").Msg("")
		return res, errs.ErrInternalServer
	}

	return
}

func (r *UserRepositoryImpl) AddUser(ctx context.Context, data domain.User) (id int64, err error) {
	nstmt, err := r.db.PrepareNamedContext(ctx, "INSERT INTO users(name, email, password, role, external_id) VALUES (:name, :email, :password, :role, :external_id) RETURNING id")
	if err != nil {
		log.Error().Err(err).Str("component", "AddUser").Msg("")
		return 0, errs.ErrInternalServer
	}

	err = nstmt.GetContext(ctx, &id, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddUser").Msg("")
		return 0, errs.ErrInternalServer
	}

	return
}

func (r *UserRepositoryImpl) UpdateRefreshToken(ctx context.Context, userID int64, token *string) (err error) {
	_, err = r.db.ExecContext(ctx, "UPDATE users SET refresh_token = $1 WHERE id = $2", token, userID)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateRefreshToken").Msg("")
		return errs.ErrInternalServer
	}

	return nil
}
