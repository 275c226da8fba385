package model

import (
	"encoding/json"
	"fmt"
)

// 콘텐츠 블록 판별자
const (
	BlockTypeButton  = "button"
	BlockTypeSection = "section"
)

// 섹션 하위 종류
const (
	SectionKindText  = "text"
	SectionKindImage = "image"
	SectionKindVideo = "video"
)

// ContentBlock 페이지 빌더의 블록 하나. contentType으로 판별되는
// button | section 합 타입이며, 역직렬화 경계에서 알 수 없는 판별자를 거부한다.
type ContentBlock struct {
	ID          int    `json:"id"`
	ContentType string `json:"contentType"`

	// button 전용
	Text string `json:"text,omitempty"`

	// section 전용
	Kind    string `json:"type,omitempty"`
	Content string `json:"content,omitempty"`

	// 공통 스타일
	URL             string `json:"url,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	TextColor       string `json:"textColor,omitempty"`
	BorderColor     string `json:"borderColor,omitempty"`
	FontSize        string `json:"fontSize,omitempty"`
	FontWeight      string `json:"fontWeight,omitempty"`

	// image/video 섹션의 캡션
	Caption                string `json:"caption,omitempty"`
	CaptionBackgroundColor string `json:"captionBackgroundColor,omitempty"`
	CaptionTextColor       string `json:"captionTextColor,omitempty"`
	CaptionBorderColor     string `json:"captionBorderColor,omitempty"`
}

// UnmarshalJSON 판별자 검증을 포함한 역직렬화
func (b *ContentBlock) UnmarshalJSON(data []byte) error {
	type alias ContentBlock
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	switch a.ContentType {
	case BlockTypeButton:
	case BlockTypeSection:
		switch a.Kind {
		case SectionKindText, SectionKindImage, SectionKindVideo:
		default:
			return fmt.Errorf("알 수 없는 섹션 종류: %q", a.Kind)
		}
	default:
		return fmt.Errorf("알 수 없는 컨텐츠 타입: %q", a.ContentType)
	}
	if a.ID == 0 {
		return fmt.Errorf("컨텐츠 블록에 id가 없습니다")
	}
	*b = ContentBlock(a)
	return nil
}

// PageSettings 인트로 페이지 전역 스타일
type PageSettings struct {
	BackgroundColor       string `json:"backgroundColor"`
	HeaderBackgroundColor string `json:"headerBackgroundColor"`
	HeaderTextColor       string `json:"headerTextColor"`
	HeaderFontSize        string `json:"headerFontSize"`
	HeaderFontWeight      string `json:"headerFontWeight"`
	HeaderText            string `json:"headerText"`
}

// IntroContent 인트로 페이지 문서 (설정 + 순서 있는 블록 목록)
type IntroContent struct {
	PageSettings PageSettings   `json:"pageSettings"`
	Contents     []ContentBlock `json:"contents"`
}

// Validate 블록 판별자와 id 유일성 검사
func (ic *IntroContent) Validate() error {
	if ic.Contents == nil {
		return fmt.Errorf("잘못된 데이터 형식입니다")
	}
	seen := make(map[int]bool, len(ic.Contents))
	for _, b := range ic.Contents {
		if b.ID == 0 || b.ContentType == "" {
			return fmt.Errorf("잘못된 컨텐츠 형식입니다")
		}
		if seen[b.ID] {
			return fmt.Errorf("중복된 블록 id: %d", b.ID)
		}
		seen[b.ID] = true
	}
	return nil
}

// DefaultIntroContent 파일이 없거나 손상된 경우 돌려주는 기본 문서
func DefaultIntroContent() IntroContent {
	return IntroContent{
		PageSettings: PageSettings{
			BackgroundColor:       "#ffffff",
			HeaderBackgroundColor: "#ffffff",
			HeaderTextColor:       "#000000",
			HeaderFontSize:        "1.2rem",
			HeaderFontWeight:      "normal",
			HeaderText:            "제목없음",
		},
		Contents: []ContentBlock{
			{ID: 1, ContentType: BlockTypeSection, Kind: SectionKindImage, BackgroundColor: "#ffffff", BorderColor: "#ffffff", CaptionBackgroundColor: "#000000", CaptionTextColor: "#ffffff", CaptionBorderColor: "#000000"},
			{ID: 2, ContentType: BlockTypeSection, Kind: SectionKindVideo, BackgroundColor: "#ffffff", BorderColor: "#ffffff", CaptionBackgroundColor: "#000000", CaptionTextColor: "#ffffff", CaptionBorderColor: "#000000"},
			{ID: 3, ContentType: BlockTypeSection, Kind: SectionKindText, BackgroundColor: "#ffffff", BorderColor: "#ffffff", TextColor: "#000000", FontSize: "1rem", FontWeight: "normal"},
			{ID: 4, ContentType: BlockTypeButton, Text: "새 버튼", URL: "/", BackgroundColor: "#ffffff", TextColor: "#000000", BorderColor: "#e0e0e0"},
		},
	}
}

// Page 동적 하위 페이지 (제목 + 순서 있는 섹션)
type Page struct {
	Title     string         `json:"title"`
	Sections  []ContentBlock `json:"sections"`
	CreatedAt string         `json:"createdAt,omitempty"`
	UpdatedAt string         `json:"updatedAt,omitempty"`
}

// PageListItem 관리자 페이지 목록 항목
type PageListItem struct {
	Path  string `json:"path"`
	Title string `json:"title"`
}
