package model

// DefaultCategory 카테고리 미지정 시 기본값
const DefaultCategory = "기타"

// Product 상품. detailPageUrl은 이미지 URL 목록(콤마 구분) 또는
// 노션 페이지 주소 중 하나를 담는다.
type Product struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Price         int    `json:"price"`
	ImageURL      string `json:"imageUrl"`
	Category      string `json:"category"`
	Weight        int    `json:"weight,omitempty"` // 그램 단위
	Available     bool   `json:"available"`
	DisplayOrder  int    `json:"displayOrder"`
	DetailPageURL string `json:"detailPageUrl,omitempty"`
	CreatedAt     string `json:"createdAt,omitempty"`
	UpdatedAt     string `json:"updatedAt,omitempty"`
}

// HomepageSettings 메인 페이지 노출 설정
type HomepageSettings struct {
	DisplayProducts  bool     `json:"displayProducts"`
	SelectedProducts []string `json:"selectedProducts"`
}

// BusinessInfo 사업자 정보. 시트의 business_info 행과 1:1 대응.
type BusinessInfo struct {
	BusinessName     string `json:"businessName"`
	Representative   string `json:"representative"`
	BusinessLicense  string `json:"businessLicense"`
	Address          string `json:"address"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	EcommerceLicense string `json:"ecommerceLicense"`
	KakaoURL         string `json:"kakaoUrl"`
}

// Member 회원 (이름 + 4자리 회원번호)
type Member struct {
	Name     string `json:"name"`
	MemberID string `json:"memberId"`
}
