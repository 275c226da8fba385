package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/damda-market/storefront/internal/model"
	"github.com/damda-market/storefront/internal/repository"
	"github.com/damda-market/storefront/internal/service"
	"github.com/damda-market/storefront/pkg/response"
)

// ListOrders 전체 주문 조회 (관리자 전용, 최신순)
// @Summary 주문 목록
// @Tags 주문
// @Produce json
// @Success 200 {object} response.Response{data=[]model.Order}
// @Failure 500 {object} response.Response
// @Router /api/orders [get]
func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.orders.GetAll(c.Request.Context())
	if err != nil {
		response.InternalError(c, errors.New("주문 조회에 실패했습니다."))
		return
	}
	response.Success(c, orders)
}

type createOrderRequest struct {
	CustomerName  string                     `json:"customerName" binding:"required"`
	CustomerPhone string                     `json:"customerPhone" binding:"required"`
	CustomerEmail string                     `json:"customerEmail"`
	Address       string                     `json:"address"`
	Request       string                     `json:"request"`
	Products      []service.CreateOrderItem  `json:"products" binding:"required,min=1"`
	OrderID       string                     `json:"orderId"`
	PaymentKey    string                     `json:"paymentKey"`
}

// CreateOrder 주문 생성 (공개). 금액은 서버가 카탈로그에서 재산정한다.
// @Summary 주문 생성
// @Tags 주문
// @Accept json
// @Produce json
// @Param request body createOrderRequest true "주문 정보"
// @Success 201 {object} response.Response{data=model.Order}
// @Failure 400 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /api/orders [post]
func (h *Handler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "필수 정보를 입력해주세요.")
		return
	}
	order, err := h.orders.Create(c.Request.Context(), service.CreateOrderInput{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		Address:       req.Address,
		Request:       req.Request,
		OrderID:       req.OrderID,
		PaymentKey:    req.PaymentKey,
		Items:         req.Products,
	})
	if err != nil {
		var notSaved *service.OrderNotSavedError
		switch {
		case errors.Is(err, service.ErrMissingFields):
			response.BadRequest(c, err.Error())
		case errors.As(err, &notSaved):
			// 결제 승인 후 원장 기록 실패 — 일반 실패와 구분해 알린다
			response.Error(c, http.StatusInternalServerError, notSaved.Error(), gin.H{
				"paymentConfirmed": true,
				"paymentCancelled": notSaved.PaymentCancelled,
			})
		default:
			response.InternalError(c, errors.New("주문 저장에 실패했습니다."))
		}
		return
	}
	response.Created(c, order)
}

// GetOrder 주문 단건 조회 (관리자 전용)
// @Summary 주문 조회
// @Tags 주문
// @Param id path string true "주문 ID"
// @Produce json
// @Success 200 {object} response.Response{data=model.Order}
// @Failure 404 {object} response.Response
// @Router /api/orders/{id} [get]
func (h *Handler) GetOrder(c *gin.Context) {
	order, err := h.orders.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, errors.New("주문 조회에 실패했습니다."))
		return
	}
	response.Success(c, order)
}

type updateOrderStatusRequest struct {
	Status       string `json:"status" binding:"required"`
	CancelReason string `json:"cancelReason"`
}

// UpdateOrderStatus 관리자 상태 변경. 전이 테이블로 검증되며
// 취소 시 결제키가 있으면 결제부터 취소한다.
// @Summary 주문 상태 변경
// @Tags 주문
// @Param id path string true "주문 ID"
// @Accept json
// @Produce json
// @Param request body updateOrderStatusRequest true "대상 상태"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/orders/{id} [put]
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "상태를 입력해주세요.")
		return
	}
	err := h.orders.AdminUpdateStatus(c.Request.Context(), c.Param("id"),
		model.OrderStatus(req.Status), req.CancelReason)
	if err != nil {
		var provider *service.ProviderError
		switch {
		case errors.Is(err, repository.ErrOrderNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, service.ErrInvalidStatus), errors.Is(err, service.ErrIllegalTransition):
			response.BadRequest(c, err.Error())
		case errors.As(err, &provider):
			response.Error(c, provider.Status, provider.Message, gin.H{"code": provider.Code})
		case errors.Is(err, service.ErrLedgerNotUpdated):
			// 결제는 취소됐으나 원장 갱신 실패 — 수동 대사가 필요한 상태
			response.Error(c, http.StatusOK, err.Error(), gin.H{"paymentCancelled": true})
		default:
			response.InternalError(c, errors.New("주문 상태 변경에 실패했습니다."))
		}
		return
	}
	response.SuccessMessage(c, "주문 상태가 변경되었습니다.")
}

// SearchOrders 전화번호로 본인 주문 조회 (공개, 결제키는 노출하지 않음)
// @Summary 주문 검색
// @Tags 주문
// @Param phone query string true "전화번호"
// @Produce json
// @Success 200 {object} response.Response{data=[]model.OrderSummary}
// @Failure 400 {object} response.Response
// @Router /api/orders/search [get]
func (h *Handler) SearchOrders(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		response.BadRequest(c, "전화번호를 입력해주세요.")
		return
	}
	if len(repository.NormalizePhone(phone)) < 10 {
		response.BadRequest(c, "올바른 전화번호를 입력해주세요.")
		return
	}
	summaries, err := h.orders.SearchByPhone(c.Request.Context(), phone)
	if err != nil {
		response.InternalError(c, errors.New("주문 조회에 실패했습니다."))
		return
	}
	response.Success(c, summaries)
}
