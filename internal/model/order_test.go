package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		want     bool
	}{
		{OrderStatusPending, OrderStatusConfirmed, true},
		{OrderStatusPending, OrderStatusCompleted, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusConfirmed, OrderStatusCompleted, true},
		{OrderStatusConfirmed, OrderStatusCancelled, true},
		{OrderStatusConfirmed, OrderStatusPending, false},
		{OrderStatusCompleted, OrderStatusCancelled, false},
		{OrderStatusCompleted, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusConfirmed, false},
		{OrderStatusPending, OrderStatusPending, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, CanTransition(c.from, c.to), "%s → %s", c.from, c.to)
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, OrderStatusPending.IsTerminal())
	assert.False(t, OrderStatusConfirmed.IsTerminal())
	assert.True(t, OrderStatusCompleted.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(OrderStatusPending))
	assert.True(t, ValidStatus(OrderStatusCancelled))
	assert.False(t, ValidStatus("shipped"))
	assert.False(t, ValidStatus(""))
}

func TestItemsLabel(t *testing.T) {
	items := []OrderItem{
		{ProductID: "p1", Name: "유기농 딸기", Price: 10000, Quantity: 2},
		{ProductID: "p2", Name: "생강청", Price: 8000, Quantity: 1},
	}
	assert.Equal(t, "유기농 딸기 x 2, 생강청 x 1", ItemsLabel(items))
	assert.Equal(t, "", ItemsLabel(nil))
}

func TestOrderLabel(t *testing.T) {
	o := &Order{Items: []OrderItem{{Name: "사과", Quantity: 3}}}
	assert.Equal(t, "사과 x 3", o.Label())

	// 원장에서 읽어온 주문은 저장된 문자열을 그대로 쓴다
	ledger := &Order{ItemsLabel: "사과 x 3, 배 x 1"}
	assert.Equal(t, "사과 x 3, 배 x 1", ledger.Label())
}

func TestOrderSummaryRedactsPaymentKey(t *testing.T) {
	o := &Order{
		ID:         "order-1",
		PaymentKey: "tosskey-secret",
		Status:     OrderStatusPending,
		Items:      []OrderItem{{Name: "사과", Quantity: 1}},
	}
	s := o.Summary()
	assert.True(t, s.HasPayment)
	assert.Equal(t, "사과 x 1", s.ItemsLabel)

	noPay := &Order{ID: "order-2"}
	assert.False(t, noPay.Summary().HasPayment)
}
