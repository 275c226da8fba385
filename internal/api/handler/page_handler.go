package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/damda-market/storefront/internal/model"
	"github.com/damda-market/storefront/internal/service"
	"github.com/damda-market/storefront/pkg/response"
)

// GetPage 하위 페이지 조회 (공개)
// @Summary 페이지 조회
// @Tags 페이지
// @Param path path string true "페이지 경로"
// @Produce json
// @Success 200 {object} response.Response{data=model.Page}
// @Failure 404 {object} response.Response
// @Router /api/pages/{path} [get]
func (h *Handler) GetPage(c *gin.Context) {
	page, err := h.content.GetPage(c.Param("path"))
	if err != nil {
		response.NotFound(c, "페이지를 찾을 수 없습니다.")
		return
	}
	response.Success(c, page)
}

type createPageRequest struct {
	Path     string               `json:"path" binding:"required"`
	Title    string               `json:"title" binding:"required"`
	Sections []model.ContentBlock `json:"sections"`
}

// CreatePage 하위 페이지 생성 (관리자 전용)
// @Summary 페이지 생성
// @Tags 페이지
// @Accept json
// @Produce json
// @Param request body createPageRequest true "페이지 정보"
// @Success 201 {object} response.Response{data=model.Page}
// @Failure 409 {object} response.Response
// @Router /api/pages/create [post]
func (h *Handler) CreatePage(c *gin.Context) {
	var req createPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "페이지 경로와 제목은 필수입니다.")
		return
	}
	page, err := h.content.CreatePage(req.Path, req.Title, req.Sections)
	if err != nil {
		if errors.Is(err, service.ErrPageExists) {
			response.Conflict(c, err.Error())
			return
		}
		response.BadRequest(c, err.Error())
		return
	}
	response.Created(c, page)
}

type updatePageRequest struct {
	Title    *string              `json:"title"`
	Sections []model.ContentBlock `json:"sections"`
}

// UpdatePage 하위 페이지 수정 (관리자 전용)
// @Summary 페이지 수정
// @Tags 페이지
// @Param path path string true "페이지 경로"
// @Accept json
// @Produce json
// @Success 200 {object} response.Response{data=model.Page}
// @Failure 404 {object} response.Response
// @Router /api/pages/{path} [put]
func (h *Handler) UpdatePage(c *gin.Context) {
	var req updatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	page, err := h.content.UpdatePage(c.Param("path"), req.Title, req.Sections)
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Success(c, page)
}

// DeletePage 하위 페이지 삭제 (관리자 전용)
// @Summary 페이지 삭제
// @Tags 페이지
// @Param path path string true "페이지 경로"
// @Produce json
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/pages/{path} [delete]
func (h *Handler) DeletePage(c *gin.Context) {
	if err := h.content.DeletePage(c.Param("path")); err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.SuccessMessage(c, "페이지가 삭제되었습니다.")
}

// ListPages 페이지 목록 (관리자 전용)
// @Summary 페이지 목록
// @Tags 페이지
// @Produce json
// @Success 200 {object} response.Response{data=[]model.PageListItem}
// @Router /api/pages/list [get]
func (h *Handler) ListPages(c *gin.Context) {
	response.Success(c, h.content.ListPages())
}
