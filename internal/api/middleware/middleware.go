package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/damda-market/storefront/internal/service"
	"github.com/damda-market/storefront/pkg/logger"
	"github.com/damda-market/storefront/pkg/response"
)

// AuthCookieName 관리자 세션 쿠키
const AuthCookieName = "auth_token"

// RequireAuth 쿠키의 세션 토큰을 검증하는 관리자 게이트
func RequireAuth(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(AuthCookieName)
		if err != nil || auth.VerifyToken(token) != nil {
			response.Unauthorized(c, "인증이 필요합니다.")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequestID 요청마다 X-Request-ID 부여
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// AccessLog zap 기반 접근 로그
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", c.GetString("request_id")),
		)
	}
}

// Recovery 패닉을 세트리로 보내고 500으로 변환한다.
// 요청 핸들러가 조용히 죽는 일이 없도록 하는 마지막 방어선.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				err := fmt.Errorf("panic: %v", r)
				sentry.CurrentHub().Recover(r)
				logger.Error("handler panic", zap.Any("panic", r),
					zap.String("path", c.Request.URL.Path))
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					response.Response{Code: http.StatusInternalServerError, Message: err.Error()})
			}
		}()
		c.Next()
	}
}

// ipLimiter 클라이언트 IP별 토큰 버킷
type ipLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	r        rate.Limit
	b        int
}

func (l *ipLimiter) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	lim, ok := l.limiters[ip]
	if !ok {
		lim = rate.NewLimiter(l.r, l.b)
		l.limiters[ip] = lim
	}
	return lim
}

// LoginRateLimit 로그인 시도 제한 (IP당 분당 10회 수준)
func LoginRateLimit() gin.HandlerFunc {
	l := &ipLimiter{limiters: make(map[string]*rate.Limiter), r: rate.Every(6 * time.Second), b: 10}
	return func(c *gin.Context) {
		if !l.get(c.ClientIP()).Allow() {
			response.Error(c, http.StatusTooManyRequests, "요청이 너무 많습니다. 잠시 후 다시 시도해주세요.", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
