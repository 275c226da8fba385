package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damda-market/storefront/internal/model"
)

const testPageID = "0123456789abcdef0123456789abcdef"

type fakeNotionFetcher struct {
	page  *model.NotionPage
	err   error
	calls int
}

func (f *fakeNotionFetcher) Page(_ context.Context, pageID string) (*model.NotionPage, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.page, nil
}

func newNotionService(t *testing.T, fetcher NotionFetcher) (*NotionService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewNotionService(fetcher, cache, 10*time.Minute), mr
}

func TestExtractNotionPageID(t *testing.T) {
	assert.Equal(t, testPageID, ExtractNotionPageID(testPageID))
	assert.Equal(t, testPageID, ExtractNotionPageID("https://notion.so/damda/page-"+testPageID))
	assert.Equal(t, testPageID,
		ExtractNotionPageID("01234567-89ab-cdef-0123-456789abcdef"))
	assert.Equal(t, "", ExtractNotionPageID(""))
}

func TestGetPageCachesResult(t *testing.T) {
	fetcher := &fakeNotionFetcher{page: &model.NotionPage{
		PageID: testPageID,
		Title:  "상품 상세",
		Blocks: []model.NotionBlock{{ID: "b1", Type: model.NotionBlockParagraph, Text: "본문"}},
	}}
	s, mr := newNotionService(t, fetcher)
	ctx := context.Background()

	page, err := s.GetPage(ctx, testPageID)
	require.NoError(t, err)
	assert.Equal(t, "상품 상세", page.Title)
	assert.Equal(t, 1, fetcher.calls)

	// 두 번째 호출은 캐시에서 온다
	page, err = s.GetPage(ctx, testPageID)
	require.NoError(t, err)
	assert.Equal(t, "상품 상세", page.Title)
	assert.Equal(t, 1, fetcher.calls)

	// TTL이 지나면 다시 조회한다
	mr.FastForward(11 * time.Minute)
	_, err = s.GetPage(ctx, testPageID)
	require.NoError(t, err)
	assert.Equal(t, 2, fetcher.calls)
}

func TestGetPageInvalidID(t *testing.T) {
	s, _ := newNotionService(t, &fakeNotionFetcher{})
	_, err := s.GetPage(context.Background(), "short")
	assert.ErrorIs(t, err, ErrInvalidNotionPageID)
}

func TestGetPageFetcherError(t *testing.T) {
	s, _ := newNotionService(t, &fakeNotionFetcher{err: errors.New("notion down")})
	_, err := s.GetPage(context.Background(), testPageID)
	assert.Error(t, err)
}

func TestGetPageNilCacheStillWorks(t *testing.T) {
	fetcher := &fakeNotionFetcher{page: &model.NotionPage{PageID: testPageID}}
	s := NewNotionService(fetcher, nil, time.Minute)

	_, err := s.GetPage(context.Background(), testPageID)
	require.NoError(t, err)
	_, err = s.GetPage(context.Background(), testPageID)
	require.NoError(t, err)
	assert.Equal(t, 2, fetcher.calls)
}

func TestFirstImage(t *testing.T) {
	fetcher := &fakeNotionFetcher{page: &model.NotionPage{
		PageID: testPageID,
		Blocks: []model.NotionBlock{
			{ID: "b1", Type: model.NotionBlockParagraph, Text: "본문"},
			{ID: "b2", Type: model.NotionBlockImage, ImageURL: "https://img.example/1.png"},
			{ID: "b3", Type: model.NotionBlockImage, ImageURL: "https://img.example/2.png"},
		},
	}}
	s, _ := newNotionService(t, fetcher)

	url, err := s.FirstImage(context.Background(), testPageID)
	require.NoError(t, err)
	assert.Equal(t, "https://img.example/1.png", url)

	// 이미지 URL은 따로 캐시되어 페이지 재조회 없이 응답한다
	url, err = s.FirstImage(context.Background(), testPageID)
	require.NoError(t, err)
	assert.Equal(t, "https://img.example/1.png", url)
	assert.Equal(t, 1, fetcher.calls)
}

func TestFirstImageNoImage(t *testing.T) {
	fetcher := &fakeNotionFetcher{page: &model.NotionPage{
		PageID: testPageID,
		Blocks: []model.NotionBlock{{ID: "b1", Type: model.NotionBlockParagraph}},
	}}
	s, _ := newNotionService(t, fetcher)

	_, err := s.FirstImage(context.Background(), testPageID)
	assert.ErrorIs(t, err, ErrNoImageInPage)
}

func TestNotionIDCaseInsensitive(t *testing.T) {
	upper := strings.ToUpper(testPageID)
	got := ExtractNotionPageID(upper)
	assert.Len(t, got, 32)
}
