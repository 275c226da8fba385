package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damda-market/storefront/internal/model"
)

func TestGetPassword(t *testing.T) {
	api := newFakeValuesAPI()
	api.data[passwordCellRange] = [][]interface{}{{"  secret1234  "}}
	backup := NewSheetBackup(api)

	pw, err := backup.GetPassword(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "secret1234", pw)
}

func TestGetPasswordMissing(t *testing.T) {
	backup := NewSheetBackup(newFakeValuesAPI())
	_, err := backup.GetPassword(context.Background())
	assert.ErrorIs(t, err, ErrPasswordMissing)
}

func TestUpdatePassword(t *testing.T) {
	api := newFakeValuesAPI()
	backup := NewSheetBackup(api)
	require.NoError(t, backup.UpdatePassword(context.Background(), " newpass "))
	require.Len(t, api.updates, 1)
	assert.Equal(t, passwordCellRange, api.updates[0].rng)
	assert.Equal(t, "newpass", api.updates[0].values[0][0])
}

func TestGetBusinessInfo(t *testing.T) {
	api := newFakeValuesAPI()
	api.data[businessInfoRange] = [][]interface{}{{
		"담다마켓", "김담다", "123-45-67890", "전북 전주시", "063-123-4567",
		"damda@example.com", "2026-전주-0001", "https://pf.kakao.com/damda",
	}}
	backup := NewSheetBackup(api)

	info, err := backup.GetBusinessInfo(context.Background())
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "담다마켓", info.BusinessName)
	assert.Equal(t, "2026-전주-0001", info.EcommerceLicense)
}

func TestGetBusinessInfoEmpty(t *testing.T) {
	backup := NewSheetBackup(newFakeValuesAPI())
	info, err := backup.GetBusinessInfo(context.Background())
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestGetAllProductsDefaults(t *testing.T) {
	api := newFakeValuesAPI()
	api.data[productSheetRange] = [][]interface{}{
		{"p1", "사과", "맛있는 사과", "10000", "https://img/1", "", "500", "true", "", "https://notion/1"},
		{"p2", "배", "", "8000", "", "과일", "0", "false", "2", ""},
	}
	backup := NewSheetBackup(api)

	products, err := backup.GetAllProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, model.DefaultCategory, products[0].Category)
	assert.Equal(t, 1, products[0].DisplayOrder)
	assert.True(t, products[0].Available)
	assert.Equal(t, 10000, products[0].Price)

	assert.Equal(t, "과일", products[1].Category)
	assert.False(t, products[1].Available)
}

func TestUpdateAllProductsClearsThenWritesSorted(t *testing.T) {
	api := newFakeValuesAPI()
	backup := NewSheetBackup(api)

	products := []model.Product{
		{ID: "p2", Name: "배", DisplayOrder: 2, Available: false},
		{ID: "p1", Name: "사과", DisplayOrder: 1, Available: true},
	}
	require.NoError(t, backup.UpdateAllProducts(context.Background(), products))

	require.Equal(t, []string{productSheetRange}, api.cleared)
	require.Len(t, api.updates, 1)
	rows := api.updates[0].values
	require.Len(t, rows, 2)
	assert.Equal(t, "p1", rows[0][0])
	assert.Equal(t, "true", rows[0][7])
	assert.Equal(t, "p2", rows[1][0])
}

func TestUpdateAllProductsEmptyOnlyClears(t *testing.T) {
	api := newFakeValuesAPI()
	backup := NewSheetBackup(api)
	require.NoError(t, backup.UpdateAllProducts(context.Background(), nil))
	assert.Len(t, api.cleared, 1)
	assert.Empty(t, api.updates)
}
