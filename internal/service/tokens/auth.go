package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/cash-review/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenExpired  = errors.New("token expired")
	ErrInvalidClaims = errors.New("invalid claims")
)

// UserClaims несет id пользователя и его роль. Роль используется только для маршрутизации
// (админский раздел), права на изменение данных перепроверяются в сервисном слое.
type UserClaims struct {
	jwt.RegisteredClaims
	ID   uuid.UUID       `json:"uid"`
	Role domain.RoleType `json:"role"`
}

func GenerateUserJWT(id uuid.UUID, role domain.RoleType, expire time.Duration, key []byte) (string, error) {
	userClaims := UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		ID:   id,
		Role: role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, userClaims)
	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("generating user jwt token: %s", err.Error())
	}
	return tokenString, nil
}

// ValidateUserJWT разбирает и проверяет токен. Истекший токен - ErrTokenExpired.
func ValidateUserJWT(tokenString string, key []byte) (*UserClaims, error) {
	claims := new(UserClaims)
	_, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("validating user jwt token: %w", err)
	}
	if claims.ID == uuid.Nil {
		return nil, ErrInvalidClaims
	}
	return claims, nil
}
