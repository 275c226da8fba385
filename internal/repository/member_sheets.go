package repository

import (
	"context"

	"go.uber.org/zap"

	"github.com/damda-market/storefront/internal/model"
	"github.com/damda-market/storefront/pkg/logger"
)

const (
	memberListRange       = "member_list!A:B"
	memberValidationRange = "member_list!D1:E1"
)

// MemberRepository 시트의 회원 명단 어댑터
type MemberRepository struct {
	api ValuesAPI
}

func NewMemberRepository(api ValuesAPI) *MemberRepository {
	return &MemberRepository{api: api}
}

// List 전체 회원 (이름, 회원번호)
func (r *MemberRepository) List(ctx context.Context) ([]model.Member, error) {
	rows, err := r.api.Get(ctx, memberListRange)
	if err != nil {
		logger.Error("member list read failed", zap.Error(err))
		return nil, err
	}
	members := make([]model.Member, 0, len(rows))
	for _, row := range rows {
		m := model.Member{Name: cellString(at(row, 0)), MemberID: cellString(at(row, 1))}
		if m.Name == "" && m.MemberID == "" {
			continue
		}
		members = append(members, m)
	}
	return members, nil
}

// Append 회원 한 명 추가
func (r *MemberRepository) Append(ctx context.Context, m model.Member) error {
	if err := r.api.Append(ctx, memberListRange, [][]interface{}{{m.Name, m.MemberID}}); err != nil {
		logger.Error("member append failed", zap.Error(err))
		return err
	}
	return nil
}

// ValidationEnabled 회원 검증 플래그 조회. 셀이 없으면 켜진 것으로 본다.
func (r *MemberRepository) ValidationEnabled(ctx context.Context) (bool, error) {
	rows, err := r.api.Get(ctx, memberValidationRange)
	if err != nil {
		logger.Error("member validation flag read failed", zap.Error(err))
		return false, err
	}
	if len(rows) == 0 || len(rows[0]) < 2 {
		return true, nil
	}
	return cellString(rows[0][1]) == "true", nil
}

// SetValidationEnabled 회원 검증 플래그 갱신
func (r *MemberRepository) SetValidationEnabled(ctx context.Context, enabled bool) error {
	v := "false"
	if enabled {
		v = "true"
	}
	if err := r.api.Update(ctx, memberValidationRange, [][]interface{}{{"memberValidation", v}}); err != nil {
		logger.Error("member validation flag update failed", zap.Error(err))
		return err
	}
	return nil
}
