package repository

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/damda-market/storefront/internal/model"
)

// ledgerRow 관계형 원장 행. 품목 스냅샷은 JSON 문자열 열에 담는다.
type ledgerRow struct {
	Seq           uint   `gorm:"primaryKey"`
	OrderID       string `gorm:"uniqueIndex;not null"`
	CreatedAt     string `gorm:"not null"`
	CustomerName  string `gorm:"not null"`
	CustomerPhone string `gorm:"index;not null"`
	CustomerEmail string
	ItemsJSON     string
	ItemsLabel    string
	Address       string
	Request       string
	TotalAmount   int    `gorm:"not null"`
	Status        string `gorm:"index;not null;default:pending"`
	PaymentKey    string
	CancelReason  string
	CancelledAt   string
}

func (ledgerRow) TableName() string {
	return "orders"
}

// GormOrderRepository 시트 원장과 같은 계약을 지키는 관계형 구현
type GormOrderRepository struct {
	db *gorm.DB
}

// OpenLedgerDB driver(sqlite|postgres)와 DSN으로 원장 DB 연결
func OpenLedgerDB(driver, dsn string) (*gorm.DB, error) {
	switch driver {
	case "sqlite":
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	case "postgres":
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	default:
		return nil, errors.New("지원하지 않는 원장 드라이버: " + driver)
	}
}

func NewGormOrderRepository(db *gorm.DB) (OrderRepository, error) {
	if err := db.AutoMigrate(&ledgerRow{}); err != nil {
		return nil, err
	}
	return &GormOrderRepository{db: db}, nil
}

func (r *GormOrderRepository) Append(ctx context.Context, order *model.Order) error {
	row, err := rowFromOrder(order)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*model.Order, error) {
	var rows []ledgerRow
	if err := r.db.WithContext(ctx).Order("seq DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	orders := make([]*model.Order, 0, len(rows))
	for i := range rows {
		orders = append(orders, orderFromLedgerRow(&rows[i]))
	}
	return orders, nil
}

func (r *GormOrderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	var row ledgerRow
	err := r.db.WithContext(ctx).Where("order_id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return orderFromLedgerRow(&row), nil
}

func (r *GormOrderRepository) GetByPhone(ctx context.Context, phone string) ([]*model.Order, error) {
	// 저장 시 정규화하지 않으므로 시트 구현과 동일하게 전량 스캔 후 비교한다
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

func (r *GormOrderRepository) UpdateStatus(ctx context.Context, id string, status model.OrderStatus, reason, cancelledAt string) error {
	updates := map[string]interface{}{"status": string(status)}
	if reason != "" {
		updates["cancel_reason"] = reason
		updates["cancelled_at"] = cancelledAt
	}
	res := r.db.WithContext(ctx).Model(&ledgerRow{}).Where("order_id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func rowFromOrder(o *model.Order) (*ledgerRow, error) {
	itemsJSON := ""
	if len(o.Items) > 0 {
		b, err := json.Marshal(o.Items)
		if err != nil {
			return nil, err
		}
		itemsJSON = string(b)
	}
	return &ledgerRow{
		OrderID:       o.ID,
		CreatedAt:     o.CreatedAt,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		CustomerEmail: o.CustomerEmail,
		ItemsJSON:     itemsJSON,
		ItemsLabel:    o.Label(),
		Address:       o.Address,
		Request:       o.Request,
		TotalAmount:   o.TotalAmount,
		Status:        string(o.Status),
		PaymentKey:    o.PaymentKey,
		CancelReason:  o.CancelReason,
		CancelledAt:   o.CancelledAt,
	}, nil
}

func orderFromLedgerRow(row *ledgerRow) *model.Order {
	o := &model.Order{
		ID:            row.OrderID,
		CreatedAt:     row.CreatedAt,
		CustomerName:  row.CustomerName,
		CustomerPhone: row.CustomerPhone,
		CustomerEmail: row.CustomerEmail,
		ItemsLabel:    row.ItemsLabel,
		Address:       row.Address,
		Request:       row.Request,
		TotalAmount:   row.TotalAmount,
		Status:        model.OrderStatus(row.Status),
		PaymentKey:    row.PaymentKey,
		CancelReason:  row.CancelReason,
		CancelledAt:   row.CancelledAt,
	}
	if row.ItemsJSON != "" {
		_ = json.Unmarshal([]byte(row.ItemsJSON), &o.Items)
	}
	return o
}
