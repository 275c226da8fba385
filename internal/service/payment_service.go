package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/damda-market/storefront/pkg/logger"
)

// PaymentClient 결제사 승인/취소 계약. 두 호출 모두 단발이며 재시도하지 않는다.
type PaymentClient interface {
	// Confirm 위젯이 발급한 paymentKey를 주문번호/금액과 함께 승인한다.
	// 금액은 승인 시점 위변조 검증을 위해 전 구간 그대로 전달된다.
	Confirm(ctx context.Context, paymentKey, orderID string, amount int) (json.RawMessage, error)
	// Cancel 승인된 결제를 사유와 함께 취소한다.
	Cancel(ctx context.Context, paymentKey, reason string) error
}

// ProviderError 결제사가 돌려준 오류. 메시지는 가공 없이 호출자에게 전달한다.
type ProviderError struct {
	Status  int    `json:"-"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("결제사 오류 [%s]: %s", e.Code, e.Message)
}

// TossClient Toss Payments V2 REST 클라이언트
type TossClient struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

func NewTossClient(baseURL, secretKey string) *TossClient {
	return &TossClient{
		baseURL:    baseURL,
		secretKey:  secretKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *TossClient) Confirm(ctx context.Context, paymentKey, orderID string, amount int) (json.RawMessage, error) {
	body := map[string]interface{}{
		"paymentKey": paymentKey,
		"orderId":    orderID,
		"amount":     amount,
	}
	return c.post(ctx, c.baseURL+"/v1/payments/confirm", body)
}

func (c *TossClient) Cancel(ctx context.Context, paymentKey, reason string) error {
	body := map[string]interface{}{"cancelReason": reason}
	_, err := c.post(ctx, c.baseURL+"/v1/payments/"+paymentKey+"/cancel", body)
	return err
}

func (c *TossClient) post(ctx context.Context, url string, body interface{}) (json.RawMessage, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	// 시크릿 키 뒤에 콜론을 붙인 Basic 인증
	auth := base64.StdEncoding.EncodeToString([]byte(c.secretKey + ":"))
	req.Header.Set("Authorization", "Basic "+auth)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("payment provider request failed", zap.String("url", url), zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		pe := &ProviderError{Status: resp.StatusCode}
		if err := json.Unmarshal(raw, pe); err != nil || pe.Message == "" {
			pe.Message = string(raw)
		}
		logger.Warn("payment provider rejected request",
			zap.Int("status", resp.StatusCode), zap.String("code", pe.Code))
		return nil, pe
	}
	return json.RawMessage(raw), nil
}
