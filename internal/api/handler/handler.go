package handler

import (
	"github.com/damda-market/storefront/internal/repository"
	"github.com/damda-market/storefront/internal/service"
)

// Handler 모든 HTTP 핸들러의 의존성 묶음
type Handler struct {
	products *service.ProductService
	orders   *service.OrderService
	payment  service.PaymentClient
	content  *service.ContentService
	auth     *service.AuthService
	members  *service.MemberService
	notion   *service.NotionService
	store    *repository.FileStore
	backup   *repository.SheetBackup
}

func New(
	products *service.ProductService,
	orders *service.OrderService,
	payment service.PaymentClient,
	content *service.ContentService,
	auth *service.AuthService,
	members *service.MemberService,
	notion *service.NotionService,
	store *repository.FileStore,
	backup *repository.SheetBackup,
) *Handler {
	return &Handler{
		products: products,
		orders:   orders,
		payment:  payment,
		content:  content,
		auth:     auth,
		members:  members,
		notion:   notion,
		store:    store,
		backup:   backup,
	}
}
