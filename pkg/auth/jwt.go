package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/saccodev/sacco-api/internal/domain"
)

type JWTServiceInterface interface {
	GenerateJWT(memberID domain.ID, role domain.Role, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type Claims struct {
	MemberID domain.ID `json:"member_id"`
	Role     string    `json:"role"`
	jwt.StandardClaims
}

// JWTService signs and validates member tokens. The secret comes from
// configuration, never from package state.
type JWTService struct {
	secret []byte
}

func NewJWTService(secret string) *JWTService {
	return &JWTService{secret: []byte(secret)}
}

func (s *JWTService) GenerateJWT(memberID domain.ID, role domain.Role, expirationTime time.Time) (string, error) {
	claims := Claims{
		MemberID: memberID,
		Role:     string(role),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			Issuer:    "sacco-api",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.MemberID == 0 || claims.Issuer != "sacco-api" {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
