package handler

import (
	"github.com/bilhold/bilhold/internal/config"
	"github.com/bilhold/bilhold/internal/handler/http"
	"github.com/bilhold/bilhold/internal/logger"
	"github.com/bilhold/bilhold/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}
