package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.uber.org/zap"

	"github.com/damda-market/storefront/internal/api"
	"github.com/damda-market/storefront/internal/api/handler"
	"github.com/damda-market/storefront/internal/config"
	"github.com/damda-market/storefront/internal/repository"
	"github.com/damda-market/storefront/internal/service"
	"github.com/damda-market/storefront/pkg/logger"
)

const serviceName = "storefront"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger.Init(cfg.LogLevel, cfg.Development)
	defer logger.Sync()

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: environment(cfg.Development),
		}); err != nil {
			logger.Warn("sentry 초기화 실패", zap.Error(err))
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.OTelEnabled {
		shutdown, err := initTracing(ctx)
		if err != nil {
			logger.Warn("트레이싱 초기화 실패", zap.Error(err))
		} else {
			defer shutdown(context.Background())
		}
	}

	// 구글 시트: 관리자 비밀번호, 회원 명단, 상품 백업, (기본값) 주문 원장
	values, err := repository.NewSheetsValues(ctx, cfg.GoogleSheetID, repository.SheetsCredentials{
		ClientEmail: cfg.GoogleClientEmail,
		PrivateKey:  cfg.GooglePrivateKey,
		ProjectID:   cfg.GoogleProjectID,
	})
	if err != nil {
		logger.Error("구글 시트 클라이언트 생성 실패", zap.Error(err))
		os.Exit(1)
	}
	backup := repository.NewSheetBackup(values)
	memberRepo := repository.NewMemberRepository(values)

	var orderRepo repository.OrderRepository
	switch cfg.LedgerDriver {
	case "sqlite", "postgres":
		db, err := repository.OpenLedgerDB(cfg.LedgerDriver, cfg.LedgerDSN)
		if err != nil {
			logger.Error("주문 원장 DB 연결 실패", zap.Error(err))
			os.Exit(1)
		}
		orderRepo, err = repository.NewGormOrderRepository(db)
		if err != nil {
			logger.Error("주문 원장 마이그레이션 실패", zap.Error(err))
			os.Exit(1)
		}
	default:
		orderRepo = repository.NewSheetsOrderRepository(values)
	}

	store := repository.NewFileStore(cfg.DataDir)

	var cache *redis.Client
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn("레디스 연결 실패, 노션 캐시 없이 기동", zap.Error(err))
	} else {
		cache = rdb
	}

	payment := service.NewTossClient(cfg.TossAPIBaseURL, cfg.TossSecretKey)
	products := service.NewProductService(store, backup)
	orders := service.NewOrderService(orderRepo, products, payment)
	content := service.NewContentService(store)
	auth := service.NewAuthService(backup, cfg.JWTSecret)
	members := service.NewMemberService(memberRepo)
	notion := service.NewNotionService(service.NewNotionFetcher(cfg.NotionAPIKey), cache, cfg.NotionCacheTTL)

	h := handler.New(products, orders, payment, content, auth, members, notion, store, backup)
	r := api.NewRouter(h, auth, serviceName, cfg.OTelEnabled)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("서버 시작", zap.String("port", cfg.Port), zap.String("ledger", cfg.LedgerDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("서버 종료", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("종료 신호 수신, 정리 중")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("서버 정리 실패", zap.Error(err))
	}
}

func environment(development bool) string {
	if development {
		return "development"
	}
	return "production"
}

func initTracing(ctx context.Context) (func(context.Context) error, error) {
	exp, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}
	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(serviceName),
	))
	if err != nil {
		return nil, err
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}
