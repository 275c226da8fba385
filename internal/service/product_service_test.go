package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damda-market/storefront/internal/model"
	"github.com/damda-market/storefront/internal/repository"
)

func newProductService(t *testing.T) (*ProductService, *fakeSheet) {
	t.Helper()
	sheet := newFakeSheet()
	s := NewProductService(repository.NewFileStore(t.TempDir()), repository.NewSheetBackup(sheet))
	base := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		base = base.Add(time.Millisecond)
		return base
	}
	return s, sheet
}

func TestProductAdd(t *testing.T) {
	s, _ := newProductService(t)

	p, err := s.Add(model.Product{Name: "사과", Price: 10000, Available: true})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, 1, p.DisplayOrder)
	assert.Equal(t, model.DefaultCategory, p.Category)

	second, err := s.Add(model.Product{Name: "배", Price: 8000, Category: "과일"})
	require.NoError(t, err)
	assert.Equal(t, 2, second.DisplayOrder)
	assert.Equal(t, "과일", second.Category)
	assert.NotEqual(t, p.ID, second.ID)

	require.Len(t, s.Products(), 2)
}

func TestProductGet(t *testing.T) {
	s, _ := newProductService(t)
	p, err := s.Add(model.Product{Name: "사과", Price: 10000})
	require.NoError(t, err)

	got, err := s.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "사과", got.Name)

	_, err = s.Get("ghost")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductUpdatePartial(t *testing.T) {
	s, _ := newProductService(t)
	p, err := s.Add(model.Product{Name: "사과", Price: 10000})
	require.NoError(t, err)

	price := 12000
	available := true
	updated, err := s.Update(p.ID, ProductUpdate{Price: &price, Available: &available})
	require.NoError(t, err)
	assert.Equal(t, 12000, updated.Price)
	assert.True(t, updated.Available)
	// nil 필드는 건드리지 않는다
	assert.Equal(t, "사과", updated.Name)
	assert.NotEmpty(t, updated.UpdatedAt)

	// 빈 문자열/0원은 무시
	empty := ""
	zero := 0
	updated, err = s.Update(p.ID, ProductUpdate{Name: &empty, Price: &zero})
	require.NoError(t, err)
	assert.Equal(t, "사과", updated.Name)
	assert.Equal(t, 12000, updated.Price)

	_, err = s.Update("ghost", ProductUpdate{})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductDelete(t *testing.T) {
	s, _ := newProductService(t)
	p, err := s.Add(model.Product{Name: "사과"})
	require.NoError(t, err)

	require.NoError(t, s.Delete(p.ID))
	assert.Empty(t, s.Products())
	assert.ErrorIs(t, s.Delete(p.ID), ErrProductNotFound)
}

func TestProductReorder(t *testing.T) {
	s, _ := newProductService(t)
	a, _ := s.Add(model.Product{Name: "사과"})
	b, _ := s.Add(model.Product{Name: "배"})

	products, err := s.Reorder([]ReorderEntry{
		{ID: a.ID, DisplayOrder: 2},
		{ID: b.ID, DisplayOrder: 1},
	})
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "배", products[0].Name)
	assert.Equal(t, "사과", products[1].Name)
}

func TestProductBackupAndSync(t *testing.T) {
	s, sheet := newProductService(t)
	_, err := s.Add(model.Product{Name: "사과", Price: 10000, Available: true})
	require.NoError(t, err)

	require.NoError(t, s.BackupToSheet(context.Background()))
	rows := sheet.data["products!A2:J"]
	require.Len(t, rows, 1)
	assert.Equal(t, "사과", rows[0][1])

	// 시트 쪽 내용을 바꾼 뒤 동기화하면 로컬이 교체된다
	sheet.data["products!A2:J"] = [][]interface{}{
		{"p9", "복숭아", "", "9000", "", "과일", "0", "true", "1", ""},
	}
	synced, err := s.SyncFromSheet(context.Background())
	require.NoError(t, err)
	require.Len(t, synced, 1)
	assert.Equal(t, "복숭아", synced[0].Name)
	require.Len(t, s.Products(), 1)
	assert.Equal(t, "p9", s.Products()[0].ID)
}
