package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/refitlab/refitmarket/internal/core/port"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	Handler
	service port.Service
}

func NewReviewHandler(service port.Service, logger *zap.Logger) (*ReviewHandler, error) {
	return &ReviewHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type reviewRequest struct {
	OrderID   uint64 `json:"order_id" binding:"required"`
	ProductID uint64 `json:"product_id" binding:"required"`
	Content   string `json:"content" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Height    int    `json:"height"`
	Weight    int    `json:"weight"`
	ImageURL  string `json:"image_url"`
}

func (rh *ReviewHandler) CreateReview(ctx *gin.Context) {
	memberID := getAuthPayload(ctx).MemberID

	req := reviewRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		rh.handleValidationError(ctx, err)
		return
	}

	review, err := rh.service.CreateReview(ctx, &port.ReviewRequest{
		MemberID:  memberID,
		OrderID:   req.OrderID,
		ProductID: req.ProductID,
		Content:   req.Content,
		Rating:    req.Rating,
		Height:    req.Height,
		Weight:    req.Weight,
		ImageURL:  req.ImageURL,
	})
	if err != nil {
		rh.handleError(ctx, err)
		return
	}

	rh.handleSuccessWithStatus(ctx, gin.H{"id": review.ID}, http.StatusCreated)
}
