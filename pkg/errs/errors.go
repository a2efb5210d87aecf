package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotLoggedIn    = http.StatusUnauthorized
	ErrStatusNoPermission   = http.StatusForbidden
	ErrStatusNotFound       = http.StatusNotFound
)

var (
	ErrInternalServer      = errors.New("Internal server error")
	ErrClient              = errors.New("Bad request")
	ErrNotLoggedIn         = errors.New("Access token is required")
	ErrInvalidToken        = errors.New("Invalid or expired token")
	ErrForbidden           = errors.New("Access denied")
	ErrNotFound            = errors.New("Resource not found")
	ErrInvalidCredentials  = errors.New("Invalid credentials")
	ErrEmailAlreadyUsed    = errors.New("Email already exists")
	ErrDuplicateName       = errors.New("Name is already in use")
	ErrAccountNotFound     = errors.New("Account not found")
	ErrInvalidRefreshToken = errors.New("Invalid or expired refresh token")
)

var errorMap = map[error]int{
	ErrInternalServer:      ErrStatusInternalServer,
	ErrClient:              ErrStatusClient,
	ErrNotLoggedIn:         ErrStatusNotLoggedIn,
	ErrInvalidToken:        ErrStatusNoPermission,
	ErrForbidden:           ErrStatusNoPermission,
	ErrNotFound:            ErrStatusNotFound,
	ErrInvalidCredentials:  ErrStatusClient,
	ErrEmailAlreadyUsed:    ErrStatusClient,
	ErrDuplicateName:       ErrStatusClient,
	ErrAccountNotFound:     ErrStatusNotFound,
	ErrInvalidRefreshToken: ErrStatusNoPermission,
}

func GetErrorStatusCode(err error) int {
	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = errorMap[ErrInternalServer]
	}
	return errStatusCode
}
