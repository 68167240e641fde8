package http

import (
	"github.com/gin-gonic/gin"
	"github.com/refitlab/refitmarket/internal/core/port"
	"go.uber.org/zap"
)

type BalanceHandler struct {
	Handler
	service port.Service
}

func NewBalanceHandler(service port.Service, logger *zap.Logger) (*BalanceHandler, error) {
	return &BalanceHandler{
		Handler: Handler{logger: logger},
		service: service,
	}, nil
}

type balanceResponse struct {
	Balance int64 `json:"balance"`
}

func (bh *BalanceHandler) Balance(ctx *gin.Context) {
	memberID := getAuthPayload(ctx).MemberID

	account, err := bh.service.GetBalance(ctx, memberID)
	if err != nil {
		bh.handleError(ctx, err)
		return
	}

	bh.handleSuccess(ctx, balanceResponse{Balance: account.Balance})
}

type progressionResponse struct {
	Level             int64 `json:"level"`
	Experience        int64 `json:"experience"`
	UsedDonationCount int64 `json:"used_donation_count"`
}

func (bh *BalanceHandler) RewardProgression(ctx *gin.Context) {
	memberID := getAuthPayload(ctx).MemberID

	progression, err := bh.service.GetRewardProgression(ctx, memberID)
	if err != nil {
		bh.handleError(ctx, err)
		return
	}

	bh.handleSuccess(ctx, progressionResponse{
		Level:             progression.Level,
		Experience:        progression.Experience,
		UsedDonationCount: progression.UsedDonationCount,
	})
}
