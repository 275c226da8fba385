package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/damda-market/storefront/internal/model"
	"github.com/damda-market/storefront/pkg/response"
)

// GetIntroContent 인트로 문서 조회 (공개). 없거나 손상됐으면 기본 문서.
// @Summary 인트로 콘텐츠 조회
// @Tags 콘텐츠
// @Produce json
// @Success 200 {object} response.Response{data=model.IntroContent}
// @Router /api/intro-content [get]
func (h *Handler) GetIntroContent(c *gin.Context) {
	response.Success(c, h.content.Intro())
}

// SaveIntroContent 인트로 문서 통째 교체 (관리자 전용).
// 블록 판별자와 id 유일성을 검증하고 알 수 없는 타입은 거부한다.
// @Summary 인트로 콘텐츠 저장
// @Tags 콘텐츠
// @Accept json
// @Produce json
// @Param request body model.IntroContent true "인트로 문서"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/intro-content [post]
func (h *Handler) SaveIntroContent(c *gin.Context) {
	var ic model.IntroContent
	if err := c.ShouldBindJSON(&ic); err != nil {
		response.BadRequest(c, "잘못된 데이터 형식입니다.")
		return
	}
	if err := h.content.SaveIntro(ic); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.SuccessMessage(c, "성공적으로 저장되었습니다.")
}

// GetHomepageSettings 메인 페이지 설정 조회 (공개)
// @Summary 메인 페이지 설정 조회
// @Tags 콘텐츠
// @Produce json
// @Success 200 {object} response.Response{data=model.HomepageSettings}
// @Router /api/homepage-settings [get]
func (h *Handler) GetHomepageSettings(c *gin.Context) {
	response.Success(c, h.content.HomepageSettings())
}

// SaveHomepageSettings 메인 페이지 설정 교체 (관리자 전용)
// @Summary 메인 페이지 설정 저장
// @Tags 콘텐츠
// @Accept json
// @Produce json
// @Param request body model.HomepageSettings true "설정"
// @Success 200 {object} response.Response{data=model.HomepageSettings}
// @Router /api/homepage-settings [put]
func (h *Handler) SaveHomepageSettings(c *gin.Context) {
	var settings model.HomepageSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		response.BadRequest(c, "잘못된 데이터 형식입니다.")
		return
	}
	if err := h.content.SaveHomepageSettings(settings); err != nil {
		response.InternalError(c, errors.New("설정 저장에 실패했습니다."))
		return
	}
	response.Success(c, h.content.HomepageSettings())
}
