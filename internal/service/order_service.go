package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/damda-market/storefront/internal/model"
	"github.com/damda-market/storefront/internal/repository"
	"github.com/damda-market/storefront/pkg/logger"
)

var (
	ErrMissingFields     = errors.New("필수 정보를 입력해주세요.")
	ErrAlreadyCancelled  = errors.New("이미 취소된 주문입니다.")
	ErrNotPending        = errors.New("대기 중인 주문만 취소할 수 있습니다.")
	ErrNoPaymentKey      = errors.New("결제 정보가 없어 취소할 수 없습니다. 고객센터에 문의해주세요.")
	ErrInvalidStatus     = errors.New("알 수 없는 주문 상태입니다.")
	ErrIllegalTransition = errors.New("허용되지 않는 상태 변경입니다.")

	// ErrLedgerNotUpdated 결제는 취소됐지만 원장 갱신에 실패한 정합성 공백.
	// 일반 실패와 구분해 수동 대사가 가능하도록 한다.
	ErrLedgerNotUpdated = errors.New("결제는 취소되었으나 주문 상태 업데이트에 실패했습니다. 관리자에게 문의해주세요.")
)

// OrderNotSavedError 결제 승인 후 원장 기록이 실패한 경우.
// PaymentCancelled는 보상 취소가 성공했는지를 담는다.
type OrderNotSavedError struct {
	PaymentCancelled bool
	Err              error
}

func (e *OrderNotSavedError) Error() string {
	if e.PaymentCancelled {
		return "주문 저장에 실패하여 결제를 취소했습니다. 다시 시도해주세요."
	}
	return "결제는 완료되었으나 주문 저장에 실패했습니다. 관리자에게 문의해주세요."
}

func (e *OrderNotSavedError) Unwrap() error { return e.Err }

// Catalog 주문 생성 시 단가 재조회에 쓰는 현재 카탈로그
type Catalog interface {
	Products() []model.Product
}

// CreateOrderInput 주문 생성 요청. 클라이언트가 보낸 가격은 무시한다.
type CreateOrderInput struct {
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Address       string
	Request       string
	OrderID       string // 결제 위젯이 발급한 주문번호 (없으면 생성)
	PaymentKey    string
	Items         []CreateOrderItem
}

// CreateOrderItem 상품 참조와 수량만 신뢰한다
type CreateOrderItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// OrderService 주문 수명주기 서비스
type OrderService struct {
	repo    repository.OrderRepository
	catalog Catalog
	payment PaymentClient
	now     func() time.Time
}

func NewOrderService(repo repository.OrderRepository, catalog Catalog, payment PaymentClient) *OrderService {
	return &OrderService{repo: repo, catalog: catalog, payment: payment, now: time.Now}
}

// kst 원장 표기는 한국 표준시 고정
var kst = time.FixedZone("KST", 9*60*60)

func formatKST(t time.Time) string {
	t = t.In(kst)
	ampm := "오전"
	hour := t.Hour()
	if hour >= 12 {
		ampm = "오후"
	}
	h12 := hour % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d. %d. %d. %s %d:%02d:%02d",
		t.Year(), int(t.Month()), t.Day(), ampm, h12, t.Minute(), t.Second())
}

// Create 카탈로그 기준으로 재산정한 금액으로 주문을 만들어 원장에 추가한다.
// 카탈로그에 없는 상품은 조용히 제외된다. 결제 승인 이후 원장 기록이
// 실패하면 보상 취소를 시도하고 OrderNotSavedError로 구분해 알린다.
func (s *OrderService) Create(ctx context.Context, in CreateOrderInput) (*model.Order, error) {
	if in.CustomerName == "" || in.CustomerPhone == "" || len(in.Items) == 0 {
		return nil, ErrMissingFields
	}

	catalog := s.catalog.Products()
	byID := make(map[string]*model.Product, len(catalog))
	for i := range catalog {
		byID[catalog[i].ID] = &catalog[i]
	}

	items := make([]model.OrderItem, 0, len(in.Items))
	total := 0
	for _, it := range in.Items {
		p, ok := byID[it.ProductID]
		if !ok {
			// 삭제된 상품 참조는 가격 산정에서 제외
			logger.Warn("order references unknown product, dropped",
				zap.String("product_id", it.ProductID))
			continue
		}
		items = append(items, model.OrderItem{
			ProductID: it.ProductID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  it.Quantity,
		})
		total += p.Price * it.Quantity
	}

	id := in.OrderID
	if id == "" {
		id = fmt.Sprintf("order-%d", s.now().UnixMilli())
	}
	order := &model.Order{
		ID:            id,
		CreatedAt:     formatKST(s.now()),
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		CustomerEmail: in.CustomerEmail,
		Address:       in.Address,
		Request:       in.Request,
		Items:         items,
		TotalAmount:   total,
		Status:        model.OrderStatusPending,
		PaymentKey:    in.PaymentKey,
	}

	if err := s.repo.Append(ctx, order); err != nil {
		if order.PaymentKey == "" {
			return nil, err
		}
		// 결제는 이미 승인된 상태. 보상 취소를 시도하고 결과를 구분해 알린다.
		cancelErr := s.payment.Cancel(ctx, order.PaymentKey, "주문 저장 실패")
		if cancelErr != nil {
			logger.Error("compensating cancel failed",
				zap.String("order_id", order.ID), zap.Error(cancelErr))
		}
		return nil, &OrderNotSavedError{PaymentCancelled: cancelErr == nil, Err: err}
	}
	return order, nil
}

// GetAll 관리자용 전체 조회 (최신순)
func (s *OrderService) GetAll(ctx context.Context) ([]*model.Order, error) {
	return s.repo.GetAll(ctx)
}

// GetByID 관리자용 단건 조회
func (s *OrderService) GetByID(ctx context.Context, id string) (*model.Order, error) {
	return s.repo.GetByID(ctx, id)
}

// SearchByPhone 비인증 고객 조회. 결제키는 존재 여부로만 노출한다.
func (s *OrderService) SearchByPhone(ctx context.Context, phone string) ([]model.OrderSummary, error) {
	orders, err := s.repo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	summaries := make([]model.OrderSummary, 0, len(orders))
	for _, o := range orders {
		summaries = append(summaries, o.Summary())
	}
	return summaries, nil
}

// AdminUpdateStatus 전이 테이블로 검증되는 관리자 상태 변경.
// cancelled로 바꿀 때 결제키가 있으면 원장 갱신 전에 결제부터 취소한다.
func (s *OrderService) AdminUpdateStatus(ctx context.Context, id string, to model.OrderStatus, reason string) error {
	if !model.ValidStatus(to) {
		return ErrInvalidStatus
	}
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !model.CanTransition(order.Status, to) {
		return fmt.Errorf("%w: %s → %s", ErrIllegalTransition, order.Status, to)
	}

	cancelledAt := ""
	if to == model.OrderStatusCancelled {
		cancelledAt = formatKST(s.now())
		if order.PaymentKey != "" {
			if err := s.payment.Cancel(ctx, order.PaymentKey, reason); err != nil {
				return err
			}
			if err := s.repo.UpdateStatus(ctx, id, to, reason, cancelledAt); err != nil {
				return ErrLedgerNotUpdated
			}
			return nil
		}
	}
	return s.repo.UpdateStatus(ctx, id, to, reason, cancelledAt)
}

// CustomerCancel 고객 셀프 취소. pending이면서 결제키가 있을 때만 허용되고,
// 그 외에는 결제사 호출 없이 거절한다. 결제 취소 성공 후 원장 갱신이
// 실패하면 ErrLedgerNotUpdated로 구분해 알린다.
func (s *OrderService) CustomerCancel(ctx context.Context, id, reason string) error {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order.Status == model.OrderStatusCancelled {
		return ErrAlreadyCancelled
	}
	if order.Status != model.OrderStatusPending {
		return ErrNotPending
	}
	if order.PaymentKey == "" {
		return ErrNoPaymentKey
	}

	if err := s.payment.Cancel(ctx, order.PaymentKey, reason); err != nil {
		return err
	}
	cancelledAt := formatKST(s.now())
	if err := s.repo.UpdateStatus(ctx, id, model.OrderStatusCancelled, reason, cancelledAt); err != nil {
		logger.Error("ledger update failed after payment cancel",
			zap.String("order_id", id), zap.Error(err))
		return ErrLedgerNotUpdated
	}
	return nil
}
