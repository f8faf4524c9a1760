package http

import (
	"github.com/MKhiriev/aion/internal/logger"
	"github.com/MKhiriev/aion/internal/service"
	"github.com/MKhiriev/aion/internal/utils"
)

type Handler struct {
	services *service.Services
	version  string
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		version:  version,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
