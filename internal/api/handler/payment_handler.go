package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/damda-market/storefront/internal/repository"
	"github.com/damda-market/storefront/internal/service"
	"github.com/damda-market/storefront/pkg/response"
)

type confirmPaymentRequest struct {
	PaymentKey string `json:"paymentKey" binding:"required"`
	OrderID    string `json:"orderId" binding:"required"`
	Amount     int    `json:"amount" binding:"required,gt=0"`
}

// ConfirmPayment 결제 승인. 위젯이 넘긴 {paymentKey, orderId, amount}를
// 결제사에 그대로 전달한다. 금액 검증은 결제사가 승인 시점 기록과 대조한다.
// @Summary 결제 승인
// @Tags 결제
// @Accept json
// @Produce json
// @Param request body confirmPaymentRequest true "승인 요청"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/confirm-payment [post]
func (h *Handler) ConfirmPayment(c *gin.Context) {
	var req confirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "paymentKey, orderId, amount는 필수입니다.")
		return
	}
	result, err := h.payment.Confirm(c.Request.Context(), req.PaymentKey, req.OrderID, req.Amount)
	if err != nil {
		var provider *service.ProviderError
		if errors.As(err, &provider) {
			// 결제사 오류 메시지를 가공 없이 전달
			response.Error(c, provider.Status, provider.Message, gin.H{"code": provider.Code})
			return
		}
		response.InternalError(c, errors.New("결제 승인 중 오류가 발생했습니다."))
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", result)
}

type cancelPaymentRequest struct {
	OrderID      string `json:"orderId" binding:"required"`
	CancelReason string `json:"cancelReason" binding:"required"`
}

// CancelPayment 고객 셀프 취소 (공개, 주문번호를 아는 고객 범위).
// pending + 결제키 보유 주문만 허용되며 그 외에는 결제사 호출 없이 거절한다.
// @Summary 주문 취소
// @Tags 결제
// @Accept json
// @Produce json
// @Param request body cancelPaymentRequest true "취소 요청"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/cancel-payment [post]
func (h *Handler) CancelPayment(c *gin.Context) {
	var req cancelPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "orderId와 cancelReason은 필수입니다.")
		return
	}
	err := h.orders.CustomerCancel(c.Request.Context(), req.OrderID, req.CancelReason)
	if err != nil {
		var provider *service.ProviderError
		switch {
		case errors.Is(err, repository.ErrOrderNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, service.ErrAlreadyCancelled),
			errors.Is(err, service.ErrNotPending),
			errors.Is(err, service.ErrNoPaymentKey):
			response.BadRequest(c, err.Error())
		case errors.As(err, &provider):
			response.Error(c, provider.Status, provider.Message, gin.H{"code": provider.Code})
		case errors.Is(err, service.ErrLedgerNotUpdated):
			// 결제 취소는 성공, 원장 갱신 실패 — 구분된 메시지로 알린다
			response.Error(c, http.StatusOK, err.Error(), gin.H{"paymentCancelled": true})
		default:
			response.InternalError(c, errors.New("결제 취소 중 오류가 발생했습니다."))
		}
		return
	}
	response.Success(c, gin.H{"message": "주문이 취소되었습니다.", "orderId": req.OrderID})
}
