package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/refitlab/refitmarket/internal/core/domain"
	"github.com/refitlab/refitmarket/internal/core/port"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.Service
}

func NewOrderHandler(service port.Service, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type checkoutLineRequest struct {
	ProductID uint64 `json:"product_id" binding:"required"`
	OptionID  uint64 `json:"option_id" binding:"required"`
	Quantity  int64  `json:"quantity" binding:"required"`
}

type checkoutRequest struct {
	Lines         []checkoutLineRequest `json:"items" binding:"required"`
	PaymentMethod string                `json:"payment_method"`
	UsedCredit    int64                 `json:"used_credit"`
	ExternalRef   string                `json:"imp_uid"`
	MerchantRef   string                `json:"merchant_uid"`
}

type orderLineResponse struct {
	ProductID uint64 `json:"product_id"`
	OptionID  uint64 `json:"option_id"`
	Quantity  int64  `json:"quantity"`
	Price     int64  `json:"price"`
}

type orderResponse struct {
	ID           uint64              `json:"id"`
	Status       string              `json:"status"`
	TotalAmount  int64               `json:"total_amount"`
	UsedCredit   int64               `json:"used_credit"`
	FinalAmount  int64               `json:"final_amount"`
	EarnedCredit int64               `json:"earned_credit"`
	CreatedAt    time.Time           `json:"created_at"`
	Lines        []orderLineResponse `json:"items,omitempty"`
}

func newOrderResponse(order *domain.Order) orderResponse {
	resp := orderResponse{
		ID:           order.ID,
		Status:       string(order.Status),
		TotalAmount:  order.TotalAmount,
		UsedCredit:   order.UsedCredit,
		FinalAmount:  order.FinalAmount,
		EarnedCredit: order.EarnedCredit,
		CreatedAt:    order.CreatedAt,
	}
	for _, line := range order.Lines {
		resp.Lines = append(resp.Lines, orderLineResponse{
			ProductID: line.ProductID,
			OptionID:  line.OptionID,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
	}
	return resp
}

func (oh *OrderHandler) Checkout(ctx *gin.Context) {
	memberID := getAuthPayload(ctx).MemberID

	req := checkoutRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	lines := make([]port.CheckoutLine, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, port.CheckoutLine{
			ProductID: l.ProductID,
			OptionID:  l.OptionID,
			Quantity:  l.Quantity,
		})
	}

	order, err := oh.service.Checkout(ctx, &port.CheckoutRequest{
		MemberID:      memberID,
		Lines:         lines,
		PaymentMethod: req.PaymentMethod,
		UsedCredit:    req.UsedCredit,
		ExternalRef:   req.ExternalRef,
		MerchantRef:   req.MerchantRef,
	})
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, newOrderResponse(order), http.StatusCreated)
}

type cancelRequest struct {
	Reason string `json:"reason"`
}

func (oh *OrderHandler) CancelOrder(ctx *gin.Context) {
	memberID := getAuthPayload(ctx).MemberID

	orderID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	req := cancelRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	if err := oh.service.CancelOrder(ctx, memberID, orderID, req.Reason); err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, gin.H{"canceled": true})
}

func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	memberID := getAuthPayload(ctx).MemberID

	orderID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.GetOrder(ctx, memberID, orderID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}

func (oh *OrderHandler) ListOrders(ctx *gin.Context) {
	memberID := getAuthPayload(ctx).MemberID

	list, err := oh.service.ListOrders(ctx, memberID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	result := make([]orderResponse, 0, len(list))
	for _, order := range list {
		result = append(result, newOrderResponse(order))
	}

	oh.handleSuccess(ctx, result)
}
