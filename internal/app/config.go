package app

import (
	"github.com/adminportal/fichas-backend/internal/platform/envutil"
	"github.com/adminportal/fichas-backend/internal/platform/logger"
)

type Config struct {
	JWTSecretKey       string
	Port               string
	PortalPriorityPath string
	Environment        string
	Version            string
}

func LoadConfig(log *logger.Logger) Config {
	cfg := Config{
		JWTSecretKey:       envutil.Str("JWT_SECRET_KEY", "defaultsecret"),
		Port:               envutil.Str("PORT", "8080"),
		PortalPriorityPath: envutil.Str("PORTAL_PRIORITY_PATH", "configs/portales.yaml"),
		Environment:        envutil.Str("APP_ENV", "development"),
		Version:            envutil.Str("APP_VERSION", "dev"),
	}
	if cfg.JWTSecretKey == "defaultsecret" {
		log.Warn("JWT_SECRET_KEY not set, using insecure default")
	}
	return cfg
}
