package app

import (
	redisc "github.com/adminportal/fichas-backend/internal/clients/redis"
	"github.com/adminportal/fichas-backend/internal/platform/logger"
)

type Clients struct {
	Cache redisc.Cache
}

func wireClients(log *logger.Logger) Clients {
	log.Info("Wiring clients...")
	cache, err := redisc.NewCache(log)
	if err != nil {
		log.Warn("redis unavailable, catalog caching disabled", "error", err)
		cache = nil
	}
	return Clients{Cache: cache}
}
