package model

// 노션 블록 판별자 (렌더러가 소비하는 부분집합)
const (
	NotionBlockParagraph        = "paragraph"
	NotionBlockHeading1         = "heading_1"
	NotionBlockHeading2         = "heading_2"
	NotionBlockHeading3         = "heading_3"
	NotionBlockBulletedListItem = "bulleted_list_item"
	NotionBlockNumberedListItem = "numbered_list_item"
	NotionBlockImage            = "image"
	NotionBlockCode             = "code"
	NotionBlockQuote            = "quote"
	NotionBlockDivider          = "divider"
)

// NotionBlock 상세 페이지 렌더링에 필요한 최소 블록 표현
type NotionBlock struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
	Language string `json:"language,omitempty"` // code 블록 전용
}

// NotionPage 페이지 메타 + 순서 있는 블록 목록
type NotionPage struct {
	PageID string        `json:"pageId"`
	Title  string        `json:"title"`
	Blocks []NotionBlock `json:"blocks"`
}
