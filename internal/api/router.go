package api

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	_ "github.com/damda-market/storefront/docs"
	"github.com/damda-market/storefront/internal/api/handler"
	"github.com/damda-market/storefront/internal/api/middleware"
	"github.com/damda-market/storefront/internal/service"
	"github.com/damda-market/storefront/pkg/response"
)

// NewRouter 공개/관리자 라우트 구성
func NewRouter(h *handler.Handler, auth *service.AuthService, serviceName string, otelEnabled bool) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog())
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	if otelEnabled {
		r.Use(otelgin.Middleware(serviceName))
	}

	r.GET("/healthz", func(c *gin.Context) {
		response.Success(c, gin.H{"status": "healthy", "service": serviceName})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	pub := r.Group("/api")
	{
		pub.POST("/auth/verify-admin", middleware.LoginRateLimit(), h.VerifyAdmin)
		pub.GET("/auth/check-auth", h.CheckAuth)
		pub.POST("/auth/logout", h.Logout)

		pub.GET("/products", h.ListProducts)
		pub.GET("/products/:id", h.GetProduct)

		pub.POST("/orders", h.CreateOrder)
		pub.GET("/orders/search", h.SearchOrders)
		pub.POST("/confirm-payment", h.ConfirmPayment)
		pub.POST("/cancel-payment", h.CancelPayment)

		pub.GET("/intro-content", h.GetIntroContent)
		pub.GET("/homepage-settings", h.GetHomepageSettings)
		pub.GET("/business-info", h.GetBusinessInfo)
		pub.GET("/pages/:path", h.GetPage)

		pub.POST("/members/validate", h.ValidateMember)

		pub.GET("/notion/:pageId", h.GetNotionPage)
		pub.GET("/notion/image/:pageId", h.GetNotionFirstImage)
	}

	admin := r.Group("/api", middleware.RequireAuth(auth))
	{
		admin.POST("/auth/change-password", h.ChangePassword)

		admin.POST("/products", h.CreateProduct)
		admin.PUT("/products/reorder", h.ReorderProducts)
		admin.PUT("/products/:id", h.UpdateProduct)
		admin.DELETE("/products/:id", h.DeleteProduct)

		admin.GET("/orders", h.ListOrders)
		admin.GET("/orders/:id", h.GetOrder)
		admin.PUT("/orders/:id", h.UpdateOrderStatus)

		admin.POST("/intro-content", h.SaveIntroContent)
		admin.PUT("/homepage-settings", h.SaveHomepageSettings)
		admin.POST("/business-info", h.SaveBusinessInfo)

		admin.GET("/pages/list", h.ListPages)
		admin.POST("/pages/create", h.CreatePage)
		admin.PUT("/pages/:path", h.UpdatePage)
		admin.DELETE("/pages/:path", h.DeletePage)

		admin.POST("/members", h.AddMember)
		admin.GET("/settings/member-validation", h.GetMemberValidation)
		admin.PUT("/settings/member-validation", h.SetMemberValidation)
	}

	return r
}
