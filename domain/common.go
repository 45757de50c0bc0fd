package domain

import (
	"errors"
	"os"

	"github.com/google/uuid"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var (
	MessageUserNotAllowed       = "user not allowed"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"
	MessageFailedBodyRequest    = "failed to parse body request"

	JwtSecret = os.Getenv("JWT_SECRET")

	ErrParseUUID        = errors.New("failed to parse UUID")
	ErrUserNotAllowed   = errors.New("user not allowed")
	ErrTokenNotFound    = errors.New("failed to token not found")
	ErrTokenExpired     = errors.New("token expired")
	ErrTokenInvalid     = errors.New("token invalid")
	ErrPermissionDenied = errors.New("permission denied")
)

// Identity describes the requesting user as resolved by the auth middleware.
// The zero value is an anonymous visitor.
type Identity struct {
	IsAuthenticated bool
	IsAdmin         bool
	UserID          uuid.UUID
}

func NewIdentity(userID string, role string) Identity {
	id, err := uuid.Parse(userID)
	if err != nil {
		return Identity{}
	}
	return Identity{
		IsAuthenticated: true,
		IsAdmin:         role == RoleAdmin,
		UserID:          id,
	}
}
