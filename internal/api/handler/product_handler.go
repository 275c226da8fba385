package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/damda-market/storefront/internal/model"
	"github.com/damda-market/storefront/internal/service"
	"github.com/damda-market/storefront/pkg/response"
)

// ListProducts 전체 상품 목록 (공개)
// @Summary 상품 목록
// @Tags 상품
// @Produce json
// @Success 200 {object} response.Response{data=[]model.Product}
// @Router /api/products [get]
func (h *Handler) ListProducts(c *gin.Context) {
	response.Success(c, h.products.Products())
}

// GetProduct 상품 단건 조회 (공개)
// @Summary 상품 조회
// @Tags 상품
// @Param id path string true "상품 ID"
// @Produce json
// @Success 200 {object} response.Response{data=model.Product}
// @Failure 404 {object} response.Response
// @Router /api/products/{id} [get]
func (h *Handler) GetProduct(c *gin.Context) {
	p, err := h.products.Get(c.Param("id"))
	if err != nil {
		response.NotFound(c, "상품을 찾을 수 없습니다.")
		return
	}
	response.Success(c, p)
}

type createProductRequest struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	Price         int    `json:"price" binding:"required,gt=0"`
	ImageURL      string `json:"imageUrl"`
	Category      string `json:"category"`
	Weight        int    `json:"weight"`
	Available     bool   `json:"available"`
	DetailPageURL string `json:"detailPageUrl"`
}

// CreateProduct 상품 추가 또는 시트 동기화 (관리자 전용).
// ?action=backup-to-sheet 는 시트로 내보내기, ?action=sync-from-sheet 는
// 시트 내용으로 로컬 카탈로그 교체.
// @Summary 상품 추가 / 시트 동기화
// @Tags 상품
// @Accept json
// @Produce json
// @Param action query string false "backup-to-sheet | sync-from-sheet"
// @Success 201 {object} response.Response{data=model.Product}
// @Failure 400 {object} response.Response
// @Router /api/products [post]
func (h *Handler) CreateProduct(c *gin.Context) {
	switch c.Query("action") {
	case "backup-to-sheet":
		if err := h.products.BackupToSheet(c.Request.Context()); err != nil {
			response.InternalError(c, errors.New("구글 시트 백업 실패"))
			return
		}
		response.SuccessMessage(c, "구글 시트에 백업 완료")
		return
	case "sync-from-sheet":
		products, err := h.products.SyncFromSheet(c.Request.Context())
		if err != nil {
			response.InternalError(c, errors.New("구글 시트에서 불러오기 실패"))
			return
		}
		response.Success(c, products)
		return
	}

	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	p, err := h.products.Add(model.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		ImageURL:      req.ImageURL,
		Category:      req.Category,
		Weight:        req.Weight,
		Available:     req.Available,
		DetailPageURL: req.DetailPageURL,
	})
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, p)
}

// UpdateProduct 상품 부분 수정 (관리자 전용)
// @Summary 상품 수정
// @Tags 상품
// @Param id path string true "상품 ID"
// @Accept json
// @Produce json
// @Success 200 {object} response.Response{data=model.Product}
// @Failure 404 {object} response.Response
// @Router /api/products/{id} [put]
func (h *Handler) UpdateProduct(c *gin.Context) {
	var u service.ProductUpdate
	if err := c.ShouldBindJSON(&u); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	p, err := h.products.Update(c.Param("id"), u)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Success(c, p)
}

// DeleteProduct 상품 삭제 (관리자 전용)
// @Summary 상품 삭제
// @Tags 상품
// @Param id path string true "상품 ID"
// @Produce json
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/products/{id} [delete]
func (h *Handler) DeleteProduct(c *gin.Context) {
	if err := h.products.Delete(c.Param("id")); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.SuccessMessage(c, "상품이 삭제되었습니다.")
}

// ReorderProducts 표시 순서 일괄 변경 (관리자 전용)
// @Summary 상품 순서 변경
// @Tags 상품
// @Accept json
// @Produce json
// @Success 200 {object} response.Response{data=[]model.Product}
// @Router /api/products/reorder [put]
func (h *Handler) ReorderProducts(c *gin.Context) {
	var entries []service.ReorderEntry
	if err := c.ShouldBindJSON(&entries); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	products, err := h.products.Reorder(entries)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, products)
}
