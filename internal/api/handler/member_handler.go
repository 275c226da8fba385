package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/damda-market/storefront/internal/service"
	"github.com/damda-market/storefront/pkg/response"
)

type memberRequest struct {
	Name     string `json:"name" binding:"required"`
	MemberID string `json:"memberId" binding:"required"`
}

// AddMember 회원 추가 (관리자 전용)
// @Summary 회원 추가
// @Tags 회원
// @Accept json
// @Produce json
// @Param request body memberRequest true "회원 정보"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/members [post]
func (h *Handler) AddMember(c *gin.Context) {
	var req memberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "이름과 회원번호를 모두 입력해주세요.")
		return
	}
	if err := h.members.Add(c.Request.Context(), req.Name, req.MemberID); err != nil {
		switch {
		case errors.Is(err, service.ErrMemberFields),
			errors.Is(err, service.ErrMemberIDFormat),
			errors.Is(err, service.ErrDuplicateMember):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, errors.New("회원 추가 중 오류가 발생했습니다."))
		}
		return
	}
	response.SuccessMessage(c, "회원이 성공적으로 추가되었습니다.")
}

// ValidateMember 주문 전 회원 검증 (공개)
// @Summary 회원 검증
// @Tags 회원
// @Accept json
// @Produce json
// @Param request body memberRequest true "회원 정보"
// @Success 200 {object} response.Response
// @Router /api/members/validate [post]
func (h *Handler) ValidateMember(c *gin.Context) {
	var req memberRequest
	// 검증이 꺼져 있으면 빈 본문도 통과해야 하므로 바인딩 실패를 바로 거절하지 않는다
	_ = c.ShouldBindJSON(&req)

	valid, err := h.members.Validate(c.Request.Context(), req.Name, req.MemberID)
	if err != nil {
		if errors.Is(err, service.ErrMemberFields) {
			response.Success(c, gin.H{"isValid": false, "message": err.Error()})
			return
		}
		response.InternalError(c, errors.New("회원 검증 중 오류가 발생했습니다."))
		return
	}
	if !valid {
		response.Success(c, gin.H{"isValid": false, "message": "유효하지 않은 회원정보입니다."})
		return
	}
	response.Success(c, gin.H{"isValid": true})
}

// GetMemberValidation 회원 검증 플래그 조회 (관리자 전용)
// @Summary 회원 검증 설정 조회
// @Tags 회원
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/settings/member-validation [get]
func (h *Handler) GetMemberValidation(c *gin.Context) {
	enabled, err := h.members.ValidationEnabled(c.Request.Context())
	if err != nil {
		response.InternalError(c, errors.New("설정 처리 중 오류가 발생했습니다."))
		return
	}
	response.Success(c, gin.H{"enabled": enabled})
}

type memberValidationRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// SetMemberValidation 회원 검증 플래그 변경 (관리자 전용)
// @Summary 회원 검증 설정 변경
// @Tags 회원
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/settings/member-validation [put]
func (h *Handler) SetMemberValidation(c *gin.Context) {
	var req memberValidationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "enabled 값이 필요합니다.")
		return
	}
	if err := h.members.SetValidationEnabled(c.Request.Context(), *req.Enabled); err != nil {
		response.InternalError(c, errors.New("설정 처리 중 오류가 발생했습니다."))
		return
	}
	response.Success(c, gin.H{"success": true, "enabled": *req.Enabled})
}
