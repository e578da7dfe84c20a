package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tanziljws/tanipintar-website/internal/models"
)

const tokenIssuer = "tanipintar-api"

type JWTService struct {
	JWTSecret string
	TokenTTL  time.Duration
}

func NewJWTService(jwtSecret string, tokenTTL time.Duration) *JWTService {
	return &JWTService{
		JWTSecret: jwtSecret,
		TokenTTL:  tokenTTL,
	}
}

// GenerateNewToken signs an HS256 token bound to session. It expires with the
// session.
func (s *JWTService) GenerateNewToken(session *models.AdminSession) (string, error) {
	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(session.AdminID, 10),
			IssuedAt:  jwt.NewNumericDate(session.CreatedAt),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
			Issuer:    tokenIssuer,
		},
		SessionID: session.ID,
		AdminID:   session.AdminID,
		Username:  session.Username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("error generate token string: %w", err)
	}
	return tokenString, nil
}

func (s *JWTService) VerifyToken(tokenString string) (*models.Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&models.Claims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(s.JWTSecret), nil
		},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*models.Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
