package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/damda-market/storefront/internal/model"
	"github.com/damda-market/storefront/internal/repository"
)

// ErrProductNotFound 카탈로그에 해당 상품이 없음
var ErrProductNotFound = errors.New("상품을 찾을 수 없습니다.")

// ProductUpdate 부분 수정 입력. nil 필드는 건드리지 않는다.
type ProductUpdate struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	Price         *int    `json:"price"`
	ImageURL      *string `json:"imageUrl"`
	Available     *bool   `json:"available"`
	Category      *string `json:"category"`
	Weight        *int    `json:"weight"`
	DetailPageURL *string `json:"detailPageUrl"`
}

// ReorderEntry 표시 순서 변경 항목
type ReorderEntry struct {
	ID           string `json:"id"`
	DisplayOrder int    `json:"displayOrder"`
}

// ProductService 플랫 레코드 카탈로그와 시트 백업 사이의 상품 서비스
type ProductService struct {
	store  *repository.FileStore
	backup *repository.SheetBackup
	now    func() time.Time
}

func NewProductService(store *repository.FileStore, backup *repository.SheetBackup) *ProductService {
	return &ProductService{store: store, backup: backup, now: time.Now}
}

// Products 현재 카탈로그. 파일이 없으면 빈 목록.
func (s *ProductService) Products() []model.Product {
	products := []model.Product{}
	s.store.Read(repository.DocProducts, &products)
	return products
}

// Get 단건 조회
func (s *ProductService) Get(id string) (*model.Product, error) {
	for _, p := range s.Products() {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, ErrProductNotFound
}

// Add 새 상품. id는 시각 기반으로 만들고 표시 순서는 맨 뒤에 붙인다.
func (s *ProductService) Add(p model.Product) (*model.Product, error) {
	products := s.Products()
	p.ID = fmt.Sprintf("product_%d", s.now().UnixMilli())
	p.DisplayOrder = len(products) + 1
	if strings.TrimSpace(p.Category) == "" {
		p.Category = model.DefaultCategory
	}
	p.CreatedAt = s.now().Format(time.RFC3339)
	products = append(products, p)
	if err := s.store.Write(repository.DocProducts, products); err != nil {
		return nil, err
	}
	return &p, nil
}

// Update 부분 수정
func (s *ProductService) Update(id string, u ProductUpdate) (*model.Product, error) {
	products := s.Products()
	for i := range products {
		if products[i].ID != id {
			continue
		}
		p := &products[i]
		if u.Name != nil && *u.Name != "" {
			p.Name = *u.Name
		}
		if u.Description != nil {
			p.Description = *u.Description
		}
		if u.Price != nil && *u.Price > 0 {
			p.Price = *u.Price
		}
		if u.ImageURL != nil {
			p.ImageURL = *u.ImageURL
		}
		if u.Available != nil {
			p.Available = *u.Available
		}
		if u.Weight != nil {
			p.Weight = *u.Weight
		}
		if u.DetailPageURL != nil {
			p.DetailPageURL = *u.DetailPageURL
		}
		if u.Category != nil {
			c := strings.TrimSpace(*u.Category)
			if c == "" {
				c = model.DefaultCategory
			}
			p.Category = c
		}
		p.UpdatedAt = s.now().Format(time.RFC3339)
		if err := s.store.Write(repository.DocProducts, products); err != nil {
			return nil, err
		}
		return p, nil
	}
	return nil, ErrProductNotFound
}

// Delete 하드 삭제 (툼스톤 없음)
func (s *ProductService) Delete(id string) error {
	products := s.Products()
	for i := range products {
		if products[i].ID == id {
			products = append(products[:i], products[i+1:]...)
			return s.store.Write(repository.DocProducts, products)
		}
	}
	return ErrProductNotFound
}

// Reorder 표시 순서 일괄 갱신 후 정렬 상태로 저장
func (s *ProductService) Reorder(entries []ReorderEntry) ([]model.Product, error) {
	products := s.Products()
	byID := make(map[string]int, len(entries))
	for _, e := range entries {
		byID[e.ID] = e.DisplayOrder
	}
	for i := range products {
		if ord, ok := byID[products[i].ID]; ok {
			products[i].DisplayOrder = ord
		}
	}
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].DisplayOrder < products[j].DisplayOrder
	})
	if err := s.store.Write(repository.DocProducts, products); err != nil {
		return nil, err
	}
	return products, nil
}

// BackupToSheet 로컬 카탈로그를 시트에 덮어쓴다 (관리자 수동 트리거)
func (s *ProductService) BackupToSheet(ctx context.Context) error {
	return s.backup.UpdateAllProducts(ctx, s.Products())
}

// SyncFromSheet 시트 내용으로 로컬 카탈로그를 교체한다
func (s *ProductService) SyncFromSheet(ctx context.Context) ([]model.Product, error) {
	products, err := s.backup.GetAllProducts(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.store.Write(repository.DocProducts, products); err != nil {
		return nil, err
	}
	return products, nil
}
