package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/adminportal/fichas-backend/internal/platform/ctxutil"
	"github.com/adminportal/fichas-backend/internal/platform/logger"
)

// AuthService resolves an opaque bearer token into a caller identity.
// Authentication itself lives in the external identity service; this side
// only verifies the tokens it signs.
type AuthService interface {
	Identify(ctx context.Context, tokenString string) (*ctxutil.RequestData, error)
}

type authService struct {
	log       *logger.Logger
	secretKey []byte
}

func NewAuthService(baseLog *logger.Logger, secretKey string) AuthService {
	return &authService{
		log:       baseLog.With("service", "AuthService"),
		secretKey: []byte(secretKey),
	}
}

type sessionClaims struct {
	Rol string `json:"rol"`
	jwt.RegisteredClaims
}

func (as *authService) Identify(ctx context.Context, tokenString string) (*ctxutil.RequestData, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, fmt.Errorf("empty token")
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return as.secretKey, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithLeeway(30*time.Second))
	if err != nil {
		return nil, fmt.Errorf("parse session token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("session token subject is not a uuid: %w", err)
	}
	if claims.Rol == "" {
		return nil, fmt.Errorf("session token carries no rol")
	}

	return &ctxutil.RequestData{UserID: userID, Rol: claims.Rol}, nil
}
