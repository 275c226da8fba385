package repository

import (
	"context"
	"errors"

	"github.com/damda-market/storefront/internal/model"
)

// ErrOrderNotFound 원장에 해당 주문이 없음
var ErrOrderNotFound = errors.New("주문을 찾을 수 없습니다")

// OrderRepository 주문 원장 인터페이스.
// 기본 구현은 구글 시트이며, 관계형 저장소로 교체할 수 있도록
// 호출부는 이 계약만 본다. 모든 연산은 재시도 없는 단발 호출이다.
type OrderRepository interface {
	// Append 원장 끝에 새 주문 행 추가
	Append(ctx context.Context, order *model.Order) error
	// GetAll 전체 주문을 최신순(역행 순서)으로 반환
	GetAll(ctx context.Context) ([]*model.Order, error)
	// GetByID id로 단건 조회. 없으면 ErrOrderNotFound.
	GetByID(ctx context.Context, id string) (*model.Order, error)
	// GetByPhone 숫자만 남긴 전화번호 비교로 필터링
	GetByPhone(ctx context.Context, phone string) ([]*model.Order, error)
	// UpdateStatus 상태 칸 갱신. reason이 있으면 취소 사유/시각 칸도 갱신한다.
	// 두 갱신은 트랜잭션이 아니며 부분 실패가 가능하다.
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus, reason, cancelledAt string) error
}
