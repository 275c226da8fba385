package service

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/jomei/notionapi"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/damda-market/storefront/internal/model"
	"github.com/damda-market/storefront/pkg/logger"
)

var (
	ErrInvalidNotionPageID = errors.New("유효하지 않은 노션 페이지 ID입니다.")
	ErrNoImageInPage       = errors.New("페이지에 이미지가 없습니다.")
)

var notionIDPattern = regexp.MustCompile(`(?i)([a-f0-9]{32}|[a-f0-9]{8}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{12})`)

// ExtractNotionPageID URL 또는 ID에서 하이픈 없는 32자 페이지 ID 추출
func ExtractNotionPageID(urlOrID string) string {
	if urlOrID == "" {
		return ""
	}
	if m := notionIDPattern.FindString(urlOrID); m != "" {
		return strings.ReplaceAll(m, "-", "")
	}
	return strings.ReplaceAll(urlOrID, "-", "")
}

// NotionFetcher 외부 콘텐츠 페이지 조회 계약 (테스트에서 교체)
type NotionFetcher interface {
	Page(ctx context.Context, pageID string) (*model.NotionPage, error)
}

// NotionService 상세 페이지 콘텐츠를 TTL 캐시 뒤에서 제공한다.
// 캐시는 페이지 ID 키의 레디스 항목으로, 프로세스 수명 동안
// 무한히 자라던 기존 인메모리 맵을 대체한다.
type NotionService struct {
	fetcher NotionFetcher
	cache   *redis.Client
	ttl     time.Duration
}

func NewNotionService(fetcher NotionFetcher, cache *redis.Client, ttl time.Duration) *NotionService {
	return &NotionService{fetcher: fetcher, cache: cache, ttl: ttl}
}

const (
	notionPageKeyPrefix  = "notion:page:"
	notionImageKeyPrefix = "notion:image:"
)

// GetPage 페이지 메타와 블록 목록. 캐시 우선, 미스 시 조회 후 적재.
func (s *NotionService) GetPage(ctx context.Context, urlOrID string) (*model.NotionPage, error) {
	pageID := ExtractNotionPageID(urlOrID)
	if len(pageID) != 32 {
		return nil, ErrInvalidNotionPageID
	}

	key := notionPageKeyPrefix + pageID
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key).Result(); err == nil {
			var page model.NotionPage
			if err := json.Unmarshal([]byte(cached), &page); err == nil {
				return &page, nil
			}
		}
	}

	page, err := s.fetcher.Page(ctx, pageID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(page); err == nil {
			if err := s.cache.Set(ctx, key, data, s.ttl).Err(); err != nil {
				logger.Warn("notion cache set failed", zap.String("page_id", pageID), zap.Error(err))
			}
		}
	}
	return page, nil
}

// FirstImage 페이지의 첫 이미지 URL. 없으면 ErrNoImageInPage.
func (s *NotionService) FirstImage(ctx context.Context, urlOrID string) (string, error) {
	pageID := ExtractNotionPageID(urlOrID)
	if len(pageID) != 32 {
		return "", ErrInvalidNotionPageID
	}

	key := notionImageKeyPrefix + pageID
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key).Result(); err == nil && cached != "" {
			return cached, nil
		}
	}

	page, err := s.GetPage(ctx, pageID)
	if err != nil {
		return "", err
	}
	for _, b := range page.Blocks {
		if b.Type == model.NotionBlockImage && b.ImageURL != "" {
			if s.cache != nil {
				if err := s.cache.Set(ctx, key, b.ImageURL, s.ttl).Err(); err != nil {
					logger.Warn("notion image cache set failed", zap.String("page_id", pageID), zap.Error(err))
				}
			}
			return b.ImageURL, nil
		}
	}
	return "", ErrNoImageInPage
}

// notionFetcher 노션 공식 API 클라이언트 구현
type notionFetcher struct {
	client *notionapi.Client
}

func NewNotionFetcher(apiKey string) NotionFetcher {
	return &notionFetcher{client: notionapi.NewClient(notionapi.Token(apiKey))}
}

func (f *notionFetcher) Page(ctx context.Context, pageID string) (*model.NotionPage, error) {
	page, err := f.client.Page.Get(ctx, notionapi.PageID(pageID))
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Block.GetChildren(ctx, notionapi.BlockID(pageID), &notionapi.Pagination{PageSize: 100})
	if err != nil {
		return nil, err
	}

	out := &model.NotionPage{PageID: pageID, Title: pageTitle(page)}
	for _, blk := range resp.Results {
		mapped, ok := mapNotionBlock(blk)
		if !ok {
			// 렌더러가 모르는 블록 타입은 건너뛴다
			continue
		}
		out.Blocks = append(out.Blocks, mapped)
	}
	return out, nil
}

func pageTitle(page *notionapi.Page) string {
	for _, prop := range page.Properties {
		if tp, ok := prop.(*notionapi.TitleProperty); ok {
			return plainText(tp.Title)
		}
	}
	return ""
}

func plainText(rich []notionapi.RichText) string {
	var b strings.Builder
	for _, rt := range rich {
		b.WriteString(rt.PlainText)
	}
	return b.String()
}

func imageURL(img notionapi.Image) string {
	if img.File != nil {
		return img.File.URL
	}
	if img.External != nil {
		return img.External.URL
	}
	return ""
}

func mapNotionBlock(blk notionapi.Block) (model.NotionBlock, bool) {
	out := model.NotionBlock{ID: string(blk.GetID())}
	switch b := blk.(type) {
	case *notionapi.ParagraphBlock:
		out.Type = model.NotionBlockParagraph
		out.Text = plainText(b.Paragraph.RichText)
	case *notionapi.Heading1Block:
		out.Type = model.NotionBlockHeading1
		out.Text = plainText(b.Heading1.RichText)
	case *notionapi.Heading2Block:
		out.Type = model.NotionBlockHeading2
		out.Text = plainText(b.Heading2.RichText)
	case *notionapi.Heading3Block:
		out.Type = model.NotionBlockHeading3
		out.Text = plainText(b.Heading3.RichText)
	case *notionapi.BulletedListItemBlock:
		out.Type = model.NotionBlockBulletedListItem
		out.Text = plainText(b.BulletedListItem.RichText)
	case *notionapi.NumberedListItemBlock:
		out.Type = model.NotionBlockNumberedListItem
		out.Text = plainText(b.NumberedListItem.RichText)
	case *notionapi.ImageBlock:
		out.Type = model.NotionBlockImage
		out.ImageURL = imageURL(b.Image)
	case *notionapi.CodeBlock:
		out.Type = model.NotionBlockCode
		out.Text = plainText(b.Code.RichText)
		out.Language = b.Code.Language
	case *notionapi.QuoteBlock:
		out.Type = model.NotionBlockQuote
		out.Text = plainText(b.Quote.RichText)
	case *notionapi.DividerBlock:
		out.Type = model.NotionBlockDivider
	default:
		return model.NotionBlock{}, false
	}
	return out, true
}
