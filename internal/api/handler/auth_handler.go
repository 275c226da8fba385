package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/damda-market/storefront/internal/api/middleware"
	"github.com/damda-market/storefront/internal/service"
	"github.com/damda-market/storefront/pkg/response"
)

type verifyAdminRequest struct {
	Password string `json:"password" binding:"required"`
}

// VerifyAdmin 관리자 로그인 (비밀번호 → 세션 쿠키)
// @Summary 관리자 인증
// @Tags 인증
// @Accept json
// @Produce json
// @Param request body verifyAdminRequest true "비밀번호"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/auth/verify-admin [post]
func (h *Handler) VerifyAdmin(c *gin.Context) {
	var req verifyAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "비밀번호를 입력해주세요.")
		return
	}
	token, err := h.auth.Login(c.Request.Context(), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordRequired):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrWrongPassword):
			response.Unauthorized(c, err.Error())
		default:
			response.InternalError(c, errors.New("인증 중 오류가 발생했습니다."))
		}
		return
	}
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.AuthCookieName, token, int(service.TokenTTL.Seconds()), "/", "", false, true)
	response.Success(c, gin.H{"isValid": true})
}

// CheckAuth 세션 쿠키 유효성 확인
// @Summary 인증 상태 확인
// @Tags 인증
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/auth/check-auth [get]
func (h *Handler) CheckAuth(c *gin.Context) {
	token, err := c.Cookie(middleware.AuthCookieName)
	if err != nil || h.auth.VerifyToken(token) != nil {
		response.Unauthorized(c, "인증이 필요합니다.")
		return
	}
	response.Success(c, gin.H{"isAuthenticated": true})
}

// Logout 세션 쿠키 제거
// @Summary 로그아웃
// @Tags 인증
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.AuthCookieName, "", -1, "/", "", false, true)
	response.SuccessMessage(c, "로그아웃되었습니다.")
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// ChangePassword 시트에 저장된 관리자 비밀번호 변경
// @Summary 비밀번호 변경
// @Tags 인증
// @Accept json
// @Produce json
// @Param request body changePasswordRequest true "현재/새 비밀번호"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/auth/change-password [post]
func (h *Handler) ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "모든 필드를 입력해주세요.")
		return
	}
	if err := h.auth.ChangePassword(c.Request.Context(), req.CurrentPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrWrongPassword):
			response.Unauthorized(c, "현재 비밀번호가 일치하지 않습니다.")
		default:
			response.InternalError(c, errors.New("비밀번호 변경 중 오류가 발생했습니다."))
		}
		return
	}
	response.SuccessMessage(c, "비밀번호가 변경되었습니다.")
}
