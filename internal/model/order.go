package model

import "fmt"

// OrderStatus 주문 상태
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// ValidStatus 알려진 상태값인지 확인
func ValidStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// statusTransitions 허용되는 상태 전이 테이블.
// 종료 상태(completed/cancelled)에서는 어떤 전이도 허용하지 않는다.
var statusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusCompleted, OrderStatusCancelled},
}

// CanTransition from → to 전이 허용 여부
func CanTransition(from, to OrderStatus) bool {
	for _, t := range statusTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// IsTerminal 종료 상태 여부
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// OrderItem 주문 시점의 상품 스냅샷 (이름/단가는 카탈로그에서 재조회한 값)
type OrderItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Quantity  int    `json:"quantity"`
}

// Order 주문 원장 레코드
type Order struct {
	ID            string      `json:"id"`
	CreatedAt     string      `json:"createdAt"` // Asia/Seoul 표기
	CustomerName  string      `json:"customerName"`
	CustomerPhone string      `json:"customerPhone"`
	CustomerEmail string      `json:"customerEmail,omitempty"`
	Address       string      `json:"address"`
	Request       string      `json:"request,omitempty"`
	Items         []OrderItem `json:"products,omitempty"`
	// ItemsLabel 원장에서 읽어온 품목 문자열. 구조화된 Items는 생성 경로에만
	// 존재하며 원장 문자열에서 복원하지 않는다.
	ItemsLabel    string      `json:"items,omitempty"`
	TotalAmount   int         `json:"totalAmount"`
	Status        OrderStatus `json:"status"`
	PaymentKey    string      `json:"paymentKey,omitempty"`
	CancelReason  string      `json:"cancelReason,omitempty"`
	CancelledAt   string      `json:"cancelledAt,omitempty"`
}

// OrderSummary 비인증 조회용 주문 뷰. paymentKey 원본 대신 존재 여부만 노출한다.
type OrderSummary struct {
	ID            string      `json:"id"`
	CreatedAt     string      `json:"createdAt"`
	CustomerName  string      `json:"customerName"`
	CustomerPhone string      `json:"customerPhone"`
	Address       string      `json:"address"`
	ItemsLabel    string      `json:"items"`
	TotalAmount   int         `json:"totalAmount"`
	Status        OrderStatus `json:"status"`
	HasPayment    bool        `json:"hasPayment"`
	CancelReason  string      `json:"cancelReason,omitempty"`
}

// ItemsLabel 원장 시트 한 칸에 들어가는 사람이 읽는 품목 문자열.
// 구조를 잃는 단방향 변환이며 다시 파싱하지 않는다.
func ItemsLabel(items []OrderItem) string {
	label := ""
	for i, it := range items {
		if i > 0 {
			label += ", "
		}
		label += fmt.Sprintf("%s x %d", it.Name, it.Quantity)
	}
	return label
}

// Label 품목 문자열. 생성 경로에서는 스냅샷으로 만들고
// 원장에서 읽은 주문은 저장된 문자열을 그대로 쓴다.
func (o *Order) Label() string {
	if len(o.Items) > 0 {
		return ItemsLabel(o.Items)
	}
	return o.ItemsLabel
}

// Summary 결제키를 제거한 요약 뷰 반환
func (o *Order) Summary() OrderSummary {
	return OrderSummary{
		ID:            o.ID,
		CreatedAt:     o.CreatedAt,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		Address:       o.Address,
		ItemsLabel:    o.Label(),
		TotalAmount:   o.TotalAmount,
		Status:        o.Status,
		HasPayment:    o.PaymentKey != "",
		CancelReason:  o.CancelReason,
	}
}
