package http

import (
	"github.com/MKhiriev/expense-tracker/internal/logger"
	"github.com/MKhiriev/expense-tracker/internal/service"
	"github.com/MKhiriev/expense-tracker/internal/utils"
)

type Handler struct {
	services *service.Services

	traceIDGenerator *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:         services,
		traceIDGenerator: utils.NewUUIDGenerator(),
		logger:           logger,
	}
}
