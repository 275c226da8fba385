package service

import (
	"errors"
	"sort"
	"time"

	"github.com/damda-market/storefront/internal/model"
	"github.com/damda-market/storefront/internal/repository"
)

var (
	ErrPageNotFound  = errors.New("페이지를 찾을 수 없습니다.")
	ErrPageExists    = errors.New("이미 존재하는 페이지 경로입니다.")
	ErrPagePathTitle = errors.New("페이지 경로와 제목은 필수입니다.")
)

// ContentService 인트로 문서와 동적 하위 페이지의 CRUD.
// 저장은 부분 갱신 없는 통째 교체이며 마지막 쓰기가 이긴다.
type ContentService struct {
	store *repository.FileStore
	now   func() time.Time
}

func NewContentService(store *repository.FileStore) *ContentService {
	return &ContentService{store: store, now: time.Now}
}

// Intro 인트로 문서 조회. 없거나 손상됐으면 기본 문서.
func (s *ContentService) Intro() model.IntroContent {
	var ic model.IntroContent
	s.store.Read(repository.DocIntroContent, &ic)
	if ic.Contents == nil || ic.PageSettings == (model.PageSettings{}) {
		return model.DefaultIntroContent()
	}
	return ic
}

// SaveIntro 검증 후 문서 전체 교체
func (s *ContentService) SaveIntro(ic model.IntroContent) error {
	if err := ic.Validate(); err != nil {
		return err
	}
	return s.store.Write(repository.DocIntroContent, ic)
}

func (s *ContentService) pages() map[string]model.Page {
	pages := map[string]model.Page{}
	s.store.Read(repository.DocPages, &pages)
	return pages
}

// GetPage 경로로 하위 페이지 조회
func (s *ContentService) GetPage(path string) (*model.Page, error) {
	pages := s.pages()
	page, ok := pages[path]
	if !ok {
		return nil, ErrPageNotFound
	}
	return &page, nil
}

// CreatePage 경로 중복이면 ErrPageExists
func (s *ContentService) CreatePage(path, title string, sections []model.ContentBlock) (*model.Page, error) {
	if path == "" || title == "" {
		return nil, ErrPagePathTitle
	}
	pages := s.pages()
	if _, ok := pages[path]; ok {
		return nil, ErrPageExists
	}
	if sections == nil {
		sections = []model.ContentBlock{}
	}
	page := model.Page{Title: title, Sections: sections, CreatedAt: s.now().Format(time.RFC3339)}
	pages[path] = page
	if err := s.store.Write(repository.DocPages, pages); err != nil {
		return nil, err
	}
	return &page, nil
}

// UpdatePage 제목/섹션 부분 갱신
func (s *ContentService) UpdatePage(path string, title *string, sections []model.ContentBlock) (*model.Page, error) {
	pages := s.pages()
	page, ok := pages[path]
	if !ok {
		return nil, ErrPageNotFound
	}
	if title != nil && *title != "" {
		page.Title = *title
	}
	if sections != nil {
		page.Sections = sections
	}
	page.UpdatedAt = s.now().Format(time.RFC3339)
	pages[path] = page
	if err := s.store.Write(repository.DocPages, pages); err != nil {
		return nil, err
	}
	return &page, nil
}

// DeletePage 존재 여부와 무관하게 제거
func (s *ContentService) DeletePage(path string) error {
	pages := s.pages()
	if _, ok := pages[path]; !ok {
		return ErrPageNotFound
	}
	delete(pages, path)
	return s.store.Write(repository.DocPages, pages)
}

// ListPages 경로/제목 목록
func (s *ContentService) ListPages() []model.PageListItem {
	pages := s.pages()
	list := make([]model.PageListItem, 0, len(pages))
	for path, page := range pages {
		title := page.Title
		if title == "" {
			title = path
		}
		list = append(list, model.PageListItem{Path: path, Title: title})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Path < list[j].Path })
	return list
}

// HomepageSettings 메인 페이지 설정 조회
func (s *ContentService) HomepageSettings() model.HomepageSettings {
	settings := model.HomepageSettings{DisplayProducts: true, SelectedProducts: []string{}}
	s.store.Read(repository.DocHomepageSettings, &settings)
	if settings.SelectedProducts == nil {
		settings.SelectedProducts = []string{}
	}
	return settings
}

// SaveHomepageSettings 메인 페이지 설정 교체
func (s *ContentService) SaveHomepageSettings(settings model.HomepageSettings) error {
	if settings.SelectedProducts == nil {
		settings.SelectedProducts = []string{}
	}
	return s.store.Write(repository.DocHomepageSettings, settings)
}
