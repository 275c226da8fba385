package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/damda-market/storefront/internal/model"
	"github.com/damda-market/storefront/pkg/logger"
)

// 주문 시트 열 배치 (A..M):
// timestamp, orderId, name, phone, email, items, address, request,
// totalAmount, status, paymentKey, cancelReason, cancelledAt
const (
	orderSheetRange   = "order!A2:M"
	orderIDColRange   = "order!B2:B"
	orderFirstDataRow = 2
)

// SheetsOrderRepository 구글 시트를 주문 원장으로 쓰는 구현.
// 전 구간 풀 스캔이라 원장이 커지면 선형으로 느려진다.
type SheetsOrderRepository struct {
	api ValuesAPI
}

func NewSheetsOrderRepository(api ValuesAPI) OrderRepository {
	return &SheetsOrderRepository{api: api}
}

func (r *SheetsOrderRepository) Append(ctx context.Context, order *model.Order) error {
	row := []interface{}{
		order.CreatedAt,
		order.ID,
		order.CustomerName,
		order.CustomerPhone,
		order.CustomerEmail,
		order.Label(),
		order.Address,
		order.Request,
		order.TotalAmount,
		string(order.Status),
		order.PaymentKey,
		order.CancelReason,
		order.CancelledAt,
	}
	if err := r.api.Append(ctx, orderSheetRange, [][]interface{}{row}); err != nil {
		logger.Error("ledger append failed", zap.String("order_id", order.ID), zap.Error(err))
		return err
	}
	return nil
}

func (r *SheetsOrderRepository) GetAll(ctx context.Context) ([]*model.Order, error) {
	rows, err := r.api.Get(ctx, orderSheetRange)
	if err != nil {
		logger.Error("ledger scan failed", zap.Error(err))
		return nil, err
	}
	orders := make([]*model.Order, 0, len(rows))
	// 최근 주문이 먼저 오도록 역행 순서로 변환
	for i := len(rows) - 1; i >= 0; i-- {
		orders = append(orders, orderFromRow(rows[i]))
	}
	return orders, nil
}

func (r *SheetsOrderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	orders, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, ErrOrderNotFound
}

func (r *SheetsOrderRepository) GetByPhone(ctx context.Context, phone string) ([]*model.Order, error) {
	orders, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	want := NormalizePhone(phone)
	matched := make([]*model.Order, 0)
	for _, o := range orders {
		if NormalizePhone(o.CustomerPhone) == want {
			matched = append(matched, o)
		}
	}
	return matched, nil
}

func (r *SheetsOrderRepository) UpdateStatus(ctx context.Context, id string, status model.OrderStatus, reason, cancelledAt string) error {
	// id 열만 따로 스캔해 행 번호를 찾는다
	rows, err := r.api.Get(ctx, orderIDColRange)
	if err != nil {
		logger.Error("ledger id scan failed", zap.Error(err))
		return err
	}
	rowNum := -1
	for i, row := range rows {
		if len(row) > 0 && cellString(row[0]) == id {
			rowNum = orderFirstDataRow + i
			break
		}
	}
	if rowNum < 0 {
		return ErrOrderNotFound
	}

	// 상태 칸과 취소 사유 칸은 개별 갱신이라 부분 실패가 가능하다
	if err := r.api.Update(ctx, fmt.Sprintf("order!J%d", rowNum), [][]interface{}{{string(status)}}); err != nil {
		logger.Error("ledger status update failed", zap.String("order_id", id), zap.Error(err))
		return err
	}
	if reason != "" {
		rng := fmt.Sprintf("order!L%d:M%d", rowNum, rowNum)
		if err := r.api.Update(ctx, rng, [][]interface{}{{reason, cancelledAt}}); err != nil {
			logger.Error("ledger cancel reason update failed", zap.String("order_id", id), zap.Error(err))
			return err
		}
	}
	return nil
}

// NormalizePhone 숫자 이외의 문자를 제거
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func orderFromRow(row []interface{}) *model.Order {
	o := &model.Order{
		CreatedAt:     cellString(at(row, 0)),
		ID:            cellString(at(row, 1)),
		CustomerName:  cellString(at(row, 2)),
		CustomerPhone: cellString(at(row, 3)),
		CustomerEmail: cellString(at(row, 4)),
		Address:       cellString(at(row, 6)),
		Request:       cellString(at(row, 7)),
		TotalAmount:   cellInt(at(row, 8)),
		Status:        model.OrderStatus(cellString(at(row, 9))),
		PaymentKey:    cellString(at(row, 10)),
		CancelReason:  cellString(at(row, 11)),
		CancelledAt:   cellString(at(row, 12)),
	}
	// 품목 열은 사람이 읽는 문자열이라 구조로 복원하지 않는다
	o.ItemsLabel = cellString(at(row, 5))
	return o
}

func at(row []interface{}, i int) interface{} {
	if i < len(row) {
		return row[i]
	}
	return nil
}

func cellString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

func cellInt(v interface{}) int {
	switch t := v.(type) {
	case nil:
		return 0
	case float64:
		return int(t)
	case int:
		return t
	case string:
		n, _ := strconv.Atoi(strings.TrimSpace(t))
		return n
	default:
		return 0
	}
}
