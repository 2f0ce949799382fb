package usecase

import (
	"grocery-admin/internal/domain/user"
	"grocery-admin/internal/pkg/errs"
	"grocery-admin/internal/pkg/jwt"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=../../tests/mock/usecase/token_validator.go -package=usecasemock grocery-admin/internal/usecase TokenValidator

// TokenValidator turns an access token into the caller's identity. Role checks
// beyond "is a known role" belong to the middleware.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type jwtTokenValidator struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &jwtTokenValidator{jwtService: jwtService}
}

func (v *jwtTokenValidator) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := v.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", errs.Mark(errs.Wrap(err, "token carries unknown role"), jwt.ErrInvalidToken)
	}

	return claims.UserID, role, nil
}
