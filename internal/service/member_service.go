package service

import (
	"context"
	"errors"
	"regexp"

	"github.com/damda-market/storefront/internal/model"
	"github.com/damda-market/storefront/internal/repository"
)

var (
	ErrMemberFields    = errors.New("이름과 회원번호를 모두 입력해주세요.")
	ErrMemberIDFormat  = errors.New("회원번호는 4자리 숫자여야 합니다.")
	ErrDuplicateMember = errors.New("이미 존재하는 회원번호입니다.")
)

var memberIDPattern = regexp.MustCompile(`^\d{4}$`)

// MemberService 시트 회원 명단 관리와 주문 전 회원 검증
type MemberService struct {
	repo *repository.MemberRepository
}

func NewMemberService(repo *repository.MemberRepository) *MemberService {
	return &MemberService{repo: repo}
}

// Add 회원 추가. 회원번호는 4자리 숫자, 중복 거부.
func (s *MemberService) Add(ctx context.Context, name, memberID string) error {
	if name == "" || memberID == "" {
		return ErrMemberFields
	}
	if !memberIDPattern.MatchString(memberID) {
		return ErrMemberIDFormat
	}
	members, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	for _, m := range members {
		if m.MemberID == memberID {
			return ErrDuplicateMember
		}
	}
	return s.repo.Append(ctx, model.Member{Name: name, MemberID: memberID})
}

// Validate 이름+회원번호 쌍 검증. 검증 플래그가 꺼져 있으면 항상 통과.
func (s *MemberService) Validate(ctx context.Context, name, memberID string) (bool, error) {
	enabled, err := s.repo.ValidationEnabled(ctx)
	if err != nil {
		return false, err
	}
	if !enabled {
		return true, nil
	}
	if name == "" || memberID == "" {
		return false, ErrMemberFields
	}
	members, err := s.repo.List(ctx)
	if err != nil {
		return false, err
	}
	for _, m := range members {
		if m.Name == name && m.MemberID == memberID {
			return true, nil
		}
	}
	return false, nil
}

// ValidationEnabled 검증 플래그 조회
func (s *MemberService) ValidationEnabled(ctx context.Context) (bool, error) {
	return s.repo.ValidationEnabled(ctx)
}

// SetValidationEnabled 검증 플래그 변경
func (s *MemberService) SetValidationEnabled(ctx context.Context, enabled bool) error {
	return s.repo.SetValidationEnabled(ctx, enabled)
}
