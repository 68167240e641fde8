package service

import (
	"github.com/refitlab/refitmarket/internal/core/port"
	"go.uber.org/zap"
)

// Service is the order transaction coordinator plus the credit, donation
// and review use cases built around it. All rollback and compensation
// happens here before returning to the caller; nothing is left to a
// background cleanup job.
type Service struct {
	repo    port.Repository
	gateway port.PaymentGateway
	metrics port.Metrics
	logger  *zap.Logger

	// Historical behavior keeps the donation receive counter across
	// level-ups. The flag makes the choice explicit.
	resetQuotaOnLevelUp bool
}

func NewService(repo port.Repository, gateway port.PaymentGateway,
	metrics port.Metrics, logger *zap.Logger, resetQuotaOnLevelUp bool) (*Service, error) {
	return &Service{
		repo:                repo,
		gateway:             gateway,
		metrics:             metrics,
		logger:              logger,
		resetQuotaOnLevelUp: resetQuotaOnLevelUp,
	}, nil
}
