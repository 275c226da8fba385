package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/damda-market/storefront/internal/model"
	"github.com/damda-market/storefront/internal/repository"
	"github.com/damda-market/storefront/pkg/response"
)

// GetBusinessInfo 사업자 정보 조회 (공개, 로컬 파일)
// @Summary 사업자 정보 조회
// @Tags 사업자정보
// @Produce json
// @Success 200 {object} response.Response{data=model.BusinessInfo}
// @Router /api/business-info [get]
func (h *Handler) GetBusinessInfo(c *gin.Context) {
	info := model.BusinessInfo{}
	h.store.Read(repository.DocBusinessInfo, &info)
	response.Success(c, info)
}

// SaveBusinessInfo 사업자 정보 저장 (관리자 전용).
// 로컬 저장 후 시트에도 백업한다. ?action=sync-from-sheet 는
// 시트 내용으로 로컬 파일을 교체한다.
// @Summary 사업자 정보 저장 / 시트 동기화
// @Tags 사업자정보
// @Accept json
// @Produce json
// @Param action query string false "sync-from-sheet"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/business-info [post]
func (h *Handler) SaveBusinessInfo(c *gin.Context) {
	if c.Query("action") == "sync-from-sheet" {
		info, err := h.backup.GetBusinessInfo(c.Request.Context())
		if err != nil {
			response.InternalError(c, errors.New("구글 시트에서 불러오기 실패"))
			return
		}
		if info == nil {
			response.NotFound(c, "구글 시트에 데이터가 없습니다")
			return
		}
		if err := h.store.Write(repository.DocBusinessInfo, info); err != nil {
			response.InternalError(c, errors.New("사업자 정보 저장에 실패했습니다."))
			return
		}
		response.Success(c, info)
		return
	}

	var info model.BusinessInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		response.BadRequest(c, "잘못된 데이터 형식입니다.")
		return
	}
	if err := h.store.Write(repository.DocBusinessInfo, info); err != nil {
		response.InternalError(c, errors.New("사업자 정보 저장에 실패했습니다."))
		return
	}
	// 시트 백업 실패는 로컬 저장을 되돌리지 않는다
	if err := h.backup.UpdateBusinessInfo(c.Request.Context(), &info); err != nil {
		response.Error(c, 200, "저장되었으나 구글 시트 백업에 실패했습니다.", info)
		return
	}
	response.Success(c, info)
}
