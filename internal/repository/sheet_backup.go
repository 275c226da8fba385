package repository

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"

	"github.com/damda-market/storefront/internal/model"
	"github.com/damda-market/storefront/pkg/logger"
)

const (
	passwordCellRange  = "password!A2"
	businessInfoRange  = "business_info!A2:H2"
	productSheetRange  = "products!A2:J"
)

// ErrPasswordMissing 시트에 저장된 비밀번호가 없음
var ErrPasswordMissing = errors.New("저장된 비밀번호가 없습니다")

// SheetBackup 상품/사업자 정보/관리자 비밀번호의 시트 백업 어댑터.
// 동기화는 관리자가 수동으로 트리거하는 단방향 덮어쓰기다.
type SheetBackup struct {
	api ValuesAPI
}

func NewSheetBackup(api ValuesAPI) *SheetBackup {
	return &SheetBackup{api: api}
}

// GetPassword 관리자 비밀번호 단일 셀 조회 (공백 제거)
func (b *SheetBackup) GetPassword(ctx context.Context) (string, error) {
	rows, err := b.api.Get(ctx, passwordCellRange)
	if err != nil {
		logger.Error("password read failed", zap.Error(err))
		return "", err
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return "", ErrPasswordMissing
	}
	pw := cellString(rows[0][0])
	if pw == "" {
		return "", ErrPasswordMissing
	}
	return pw, nil
}

// UpdatePassword 관리자 비밀번호 단일 셀 갱신
func (b *SheetBackup) UpdatePassword(ctx context.Context, newPassword string) error {
	pw := cellString(newPassword)
	if err := b.api.Update(ctx, passwordCellRange, [][]interface{}{{pw}}); err != nil {
		logger.Error("password update failed", zap.Error(err))
		return err
	}
	return nil
}

// GetBusinessInfo 고정폭 한 행 조회. 행이 없으면 nil 반환.
func (b *SheetBackup) GetBusinessInfo(ctx context.Context) (*model.BusinessInfo, error) {
	rows, err := b.api.Get(ctx, businessInfoRange)
	if err != nil {
		logger.Error("business info read failed", zap.Error(err))
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	row := rows[0]
	return &model.BusinessInfo{
		BusinessName:     cellString(at(row, 0)),
		Representative:   cellString(at(row, 1)),
		BusinessLicense:  cellString(at(row, 2)),
		Address:          cellString(at(row, 3)),
		Phone:            cellString(at(row, 4)),
		Email:            cellString(at(row, 5)),
		EcommerceLicense: cellString(at(row, 6)),
		KakaoURL:         cellString(at(row, 7)),
	}, nil
}

// UpdateBusinessInfo 고정폭 한 행 덮어쓰기
func (b *SheetBackup) UpdateBusinessInfo(ctx context.Context, info *model.BusinessInfo) error {
	row := []interface{}{
		info.BusinessName, info.Representative, info.BusinessLicense, info.Address,
		info.Phone, info.Email, info.EcommerceLicense, info.KakaoURL,
	}
	if err := b.api.Update(ctx, businessInfoRange, [][]interface{}{row}); err != nil {
		logger.Error("business info update failed", zap.Error(err))
		return err
	}
	return nil
}

// GetAllProducts 상품 테이블 전체를 행 순서대로 읽는다
func (b *SheetBackup) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	rows, err := b.api.Get(ctx, productSheetRange)
	if err != nil {
		logger.Error("product sheet read failed", zap.Error(err))
		return nil, err
	}
	products := make([]model.Product, 0, len(rows))
	for i, row := range rows {
		p := model.Product{
			ID:            cellString(at(row, 0)),
			Name:          cellString(at(row, 1)),
			Description:   cellString(at(row, 2)),
			Price:         cellInt(at(row, 3)),
			ImageURL:      cellString(at(row, 4)),
			Category:      cellString(at(row, 5)),
			Weight:        cellInt(at(row, 6)),
			Available:     cellString(at(row, 7)) == "true",
			DisplayOrder:  cellInt(at(row, 8)),
			DetailPageURL: cellString(at(row, 9)),
		}
		if p.Category == "" {
			p.Category = model.DefaultCategory
		}
		if p.DisplayOrder == 0 {
			p.DisplayOrder = i + 1
		}
		products = append(products, p)
	}
	return products, nil
}

// UpdateAllProducts 범위를 비운 뒤 전체를 다시 쓴다.
// diff/병합이 아닌 파괴적 덮어쓰기이며 동시 수정은 마지막 쓰기가 이긴다.
func (b *SheetBackup) UpdateAllProducts(ctx context.Context, products []model.Product) error {
	sorted := make([]model.Product, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DisplayOrder < sorted[j].DisplayOrder
	})

	if err := b.api.Clear(ctx, productSheetRange); err != nil {
		logger.Error("product sheet clear failed", zap.Error(err))
		return err
	}
	rows := make([][]interface{}, 0, len(sorted))
	for _, p := range sorted {
		available := "false"
		if p.Available {
			available = "true"
		}
		rows = append(rows, []interface{}{
			p.ID, p.Name, p.Description, p.Price, p.ImageURL,
			p.Category, p.Weight, available, p.DisplayOrder, p.DetailPageURL,
		})
	}
	if len(rows) == 0 {
		return nil
	}
	if err := b.api.Update(ctx, productSheetRange, rows); err != nil {
		logger.Error("product sheet write failed", zap.Error(err))
		return err
	}
	return nil
}
