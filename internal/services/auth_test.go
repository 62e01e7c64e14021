package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/adminportal/fichas-backend/internal/platform/logger"
)

const testSecret = "test-secret"

func testAuthService(t *testing.T) AuthService {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return NewAuthService(log, testSecret)
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims, method jwt.SigningMethod) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestIdentifyValidToken(t *testing.T) {
	svc := testAuthService(t)
	userID := uuid.New()
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": userID.String(),
		"rol": "gestor",
		"exp": time.Now().Add(time.Hour).Unix(),
	}, jwt.SigningMethodHS256)

	rd, err := svc.Identify(context.Background(), token)
	if err != nil {
		t.Fatalf("Identify: %v", err)
	}
	if rd.UserID != userID {
		t.Fatalf("user id: want=%s got=%s", userID, rd.UserID)
	}
	if rd.Rol != "gestor" {
		t.Fatalf("rol: want=%q got=%q", "gestor", rd.Rol)
	}
}

func TestIdentifyRejectsEmptyToken(t *testing.T) {
	svc := testAuthService(t)
	if _, err := svc.Identify(context.Background(), "   "); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestIdentifyRejectsWrongSecret(t *testing.T) {
	svc := testAuthService(t)
	token := signToken(t, "other-secret", jwt.MapClaims{
		"sub": uuid.New().String(),
		"rol": "admin",
		"exp": time.Now().Add(time.Hour).Unix(),
	}, jwt.SigningMethodHS256)

	if _, err := svc.Identify(context.Background(), token); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestIdentifyRejectsUnexpectedAlgorithm(t *testing.T) {
	svc := testAuthService(t)
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": uuid.New().String(),
		"rol": "admin",
		"exp": time.Now().Add(time.Hour).Unix(),
	}, jwt.SigningMethodHS512)

	if _, err := svc.Identify(context.Background(), token); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestIdentifyRejectsExpiredToken(t *testing.T) {
	svc := testAuthService(t)
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": uuid.New().String(),
		"rol": "admin",
		"exp": time.Now().Add(-time.Hour).Unix(),
	}, jwt.SigningMethodHS256)

	if _, err := svc.Identify(context.Background(), token); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestIdentifyRejectsNonUUIDSubject(t *testing.T) {
	svc := testAuthService(t)
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "user-42",
		"rol": "admin",
		"exp": time.Now().Add(time.Hour).Unix(),
	}, jwt.SigningMethodHS256)

	if _, err := svc.Identify(context.Background(), token); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestIdentifyRejectsMissingRol(t *testing.T) {
	svc := testAuthService(t)
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}, jwt.SigningMethodHS256)

	if _, err := svc.Identify(context.Background(), token); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestPermitidoMatrix(t *testing.T) {
	cases := []struct {
		rol     string
		recurso string
		want    bool
	}{
		{"admin", RecursoEstadisticas, true},
		{"gestor", RecursoEstadisticas, true},
		{"consulta", RecursoEstadisticas, true},
		{"redactor", RecursoEstadisticas, false},
		{"redactor", RecursoCatalogo, true},
		{"desconocido", RecursoEstadisticas, false},
		{"", RecursoCatalogo, false},
	}
	for _, tc := range cases {
		if got := Permitido(tc.rol, tc.recurso, AccionRead); got != tc.want {
			t.Fatalf("Permitido(%q, %q): want=%v got=%v", tc.rol, tc.recurso, tc.want, got)
		}
	}
}

func TestPermitidoUnknownAccion(t *testing.T) {
	if Permitido("admin", RecursoEstadisticas, "write") {
		t.Fatalf("write must not be granted")
	}
}
