package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/refitlab/refitmarket/internal/core/port"
	"go.uber.org/zap"
)

type DonationHandler struct {
	Handler
	service port.Service
}

func NewDonationHandler(service port.Service, logger *zap.Logger) (*DonationHandler, error) {
	return &DonationHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type donationRequest struct {
	ProductID     uint64 `json:"product_id" binding:"required"`
	Size          string `json:"size"`
	ConditionNote string `json:"condition"`
	RewardMethod  string `json:"reward_method"`
}

type donationResponse struct {
	ID        uint64    `json:"id"`
	ProductID uint64    `json:"product_id"`
	Status    string    `json:"status"`
	DonatedAt time.Time `json:"donated_at"`
}

func (dh *DonationHandler) SubmitDonation(ctx *gin.Context) {
	donorID := getAuthPayload(ctx).MemberID

	req := donationRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		dh.handleValidationError(ctx, err)
		return
	}

	dp, err := dh.service.SubmitDonation(ctx, &port.DonationRequest{
		DonorID:       donorID,
		ProductID:     req.ProductID,
		Size:          req.Size,
		ConditionNote: req.ConditionNote,
		RewardMethod:  req.RewardMethod,
	})
	if err != nil {
		dh.handleError(ctx, err)
		return
	}

	dh.handleSuccessWithStatus(ctx, donationResponse{
		ID:        dp.ID,
		ProductID: dp.ProductID,
		Status:    string(dp.Status),
		DonatedAt: dp.DonatedAt,
	}, http.StatusCreated)
}

func (dh *DonationHandler) ReceiveDonation(ctx *gin.Context) {
	memberID := getAuthPayload(ctx).MemberID

	donationID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		dh.handleValidationError(ctx, err)
		return
	}

	if err := dh.service.ReceiveDonation(ctx, memberID, donationID); err != nil {
		dh.handleError(ctx, err)
		return
	}

	dh.handleSuccess(ctx, gin.H{"received": true})
}
