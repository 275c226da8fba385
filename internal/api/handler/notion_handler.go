package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/damda-market/storefront/internal/service"
	"github.com/damda-market/storefront/pkg/response"
)

// GetNotionPage 상세 페이지 콘텐츠 조회 (공개, 캐시 적용)
// @Summary 노션 페이지 조회
// @Tags 노션
// @Param pageId path string true "페이지 URL 또는 ID"
// @Produce json
// @Success 200 {object} response.Response{data=model.NotionPage}
// @Failure 400 {object} response.Response
// @Router /api/notion/{pageId} [get]
func (h *Handler) GetNotionPage(c *gin.Context) {
	page, err := h.notion.GetPage(c.Request.Context(), c.Param("pageId"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidNotionPageID) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, errors.New("노션 페이지를 불러오지 못했습니다."))
		return
	}
	response.Success(c, page)
}

// GetNotionFirstImage 페이지의 첫 이미지 URL 조회 (공개, 캐시 적용)
// @Summary 노션 대표 이미지 조회
// @Tags 노션
// @Param pageId path string true "페이지 URL 또는 ID"
// @Produce json
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/notion/image/{pageId} [get]
func (h *Handler) GetNotionFirstImage(c *gin.Context) {
	url, err := h.notion.FirstImage(c.Request.Context(), c.Param("pageId"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidNotionPageID):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrNoImageInPage):
			response.NotFound(c, err.Error())
		default:
			response.InternalError(c, errors.New("노션 이미지를 불러오지 못했습니다."))
		}
		return
	}
	response.Success(c, gin.H{"imageUrl": url})
}
