package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damda-market/storefront/internal/model"
	"github.com/damda-market/storefront/internal/repository"
	"github.com/damda-market/storefront/internal/service"
)

type fakeSheet struct {
	data map[string][][]interface{}
}

func newFakeSheet() *fakeSheet {
	return &fakeSheet{data: map[string][][]interface{}{}}
}

func (f *fakeSheet) Get(_ context.Context, rng string) ([][]interface{}, error) {
	return f.data[rng], nil
}

func (f *fakeSheet) Update(_ context.Context, rng string, values [][]interface{}) error {
	f.data[rng] = values
	return nil
}

func (f *fakeSheet) Append(_ context.Context, rng string, values [][]interface{}) error {
	f.data[rng] = append(f.data[rng], values...)
	return nil
}

func (f *fakeSheet) Clear(_ context.Context, rng string) error {
	delete(f.data, rng)
	return nil
}

type fakeOrderRepo struct {
	orders    []*model.Order
	appendErr error
	updateErr error
}

func (f *fakeOrderRepo) Append(_ context.Context, o *model.Order) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.orders = append(f.orders, o)
	return nil
}

func (f *fakeOrderRepo) GetAll(_ context.Context) ([]*model.Order, error) {
	return f.orders, nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id string) (*model.Order, error) {
	for _, o := range f.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, repository.ErrOrderNotFound
}

func (f *fakeOrderRepo) GetByPhone(_ context.Context, phone string) ([]*model.Order, error) {
	want := repository.NormalizePhone(phone)
	matched := []*model.Order{}
	for _, o := range f.orders {
		if repository.NormalizePhone(o.CustomerPhone) == want {
			matched = append(matched, o)
		}
	}
	return matched, nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id string, status model.OrderStatus, reason, cancelledAt string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for _, o := range f.orders {
		if o.ID == id {
			o.Status = status
			o.CancelReason = reason
			o.CancelledAt = cancelledAt
			return nil
		}
	}
	return repository.ErrOrderNotFound
}

type fakePayment struct {
	cancelErr error
	cancelled []string
}

func (f *fakePayment) Confirm(_ context.Context, paymentKey, orderID string, amount int) (json.RawMessage, error) {
	return json.RawMessage(`{"status":"DONE"}`), nil
}

func (f *fakePayment) Cancel(_ context.Context, paymentKey, reason string) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelled = append(f.cancelled, paymentKey)
	return nil
}

type testEnv struct {
	handler *Handler
	sheet   *fakeSheet
	repo    *fakeOrderRepo
	pay     *fakePayment
	auth    *service.AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sheet := newFakeSheet()
	sheet.data["password!A2"] = [][]interface{}{{"admin1234"}}

	store := repository.NewFileStore(t.TempDir())
	backup := repository.NewSheetBackup(sheet)
	repo := &fakeOrderRepo{}
	pay := &fakePayment{}

	products := service.NewProductService(store, backup)
	_ = store.Write(repository.DocProducts, []model.Product{
		{ID: "p1", Name: "사과", Price: 10000, Available: true, DisplayOrder: 1},
		{ID: "p2", Name: "배", Price: 5000, Available: true, DisplayOrder: 2},
	})

	orders := service.NewOrderService(repo, products, pay)
	content := service.NewContentService(store)
	auth := service.NewAuthService(backup, "test-secret")
	members := service.NewMemberService(repository.NewMemberRepository(sheet))
	notion := service.NewNotionService(nil, nil, 0)

	h := New(products, orders, pay, content, auth, members, notion, store, backup)
	return &testEnv{handler: h, sheet: sheet, repo: repo, pay: pay, auth: auth}
}

func perform(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestVerifyAdmin(t *testing.T) {
	env := newTestEnv(t)
	r := gin.New()
	r.POST("/api/auth/verify-admin", env.handler.VerifyAdmin)

	w := perform(r, http.MethodPost, "/api/auth/verify-admin", `{"password":"admin1234"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "auth_token", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.NoError(t, env.auth.VerifyToken(cookies[0].Value))

	w = perform(r, http.MethodPost, "/api/auth/verify-admin", `{"password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = perform(r, http.MethodPost, "/api/auth/verify-admin", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckAuth(t *testing.T) {
	env := newTestEnv(t)
	r := gin.New()
	r.GET("/api/auth/check-auth", env.handler.CheckAuth)

	w := perform(r, http.MethodGet, "/api/auth/check-auth", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := env.auth.GenerateToken()
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/api/auth/check-auth", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateOrderRepricesTotal(t *testing.T) {
	env := newTestEnv(t)
	r := gin.New()
	r.POST("/api/orders", env.handler.CreateOrder)

	// 클라이언트가 금액을 보내더라도 서버 산정 금액이 쓰인다
	body := `{
		"customerName":"홍길동","customerPhone":"010-1234-5678",
		"products":[{"productId":"p1","quantity":2},{"productId":"p2","quantity":1}],
		"totalAmount":1
	}`
	w := perform(r, http.MethodPost, "/api/orders", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data model.Order `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 25000, resp.Data.TotalAmount)
	assert.Equal(t, model.OrderStatusPending, resp.Data.Status)
}

func TestCreateOrderMissingFields(t *testing.T) {
	env := newTestEnv(t)
	r := gin.New()
	r.POST("/api/orders", env.handler.CreateOrder)

	w := perform(r, http.MethodPost, "/api/orders", `{"customerName":"홍길동"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrderLedgerFailureReportsCancellation(t *testing.T) {
	env := newTestEnv(t)
	env.repo.appendErr = errors.New("sheet down")
	r := gin.New()
	r.POST("/api/orders", env.handler.CreateOrder)

	body := `{
		"customerName":"홍길동","customerPhone":"010-1234-5678","paymentKey":"key-1",
		"products":[{"productId":"p1","quantity":1}]
	}`
	w := perform(r, http.MethodPost, "/api/orders", body)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp struct {
		Data map[string]bool `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data["paymentConfirmed"])
	assert.True(t, resp.Data["paymentCancelled"])
	assert.Equal(t, []string{"key-1"}, env.pay.cancelled)
}

func TestSearchOrdersValidation(t *testing.T) {
	env := newTestEnv(t)
	r := gin.New()
	r.GET("/api/orders/search", env.handler.SearchOrders)

	w := perform(r, http.MethodGet, "/api/orders/search", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = perform(r, http.MethodGet, "/api/orders/search?phone=123", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchOrdersHidesPaymentKey(t *testing.T) {
	env := newTestEnv(t)
	env.repo.orders = []*model.Order{{
		ID: "order-1", CustomerPhone: "010-1234-5678",
		PaymentKey: "secret-key", Status: model.OrderStatusPending,
	}}
	r := gin.New()
	r.GET("/api/orders/search", env.handler.SearchOrders)

	w := perform(r, http.MethodGet, "/api/orders/search?phone=010-1234-5678", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "secret-key")
	assert.Contains(t, w.Body.String(), `"hasPayment":true`)
}

func TestUpdateOrderStatusIllegalTransition(t *testing.T) {
	env := newTestEnv(t)
	env.repo.orders = []*model.Order{{ID: "order-1", Status: model.OrderStatusCompleted}}
	r := gin.New()
	r.PUT("/api/orders/:id", env.handler.UpdateOrderStatus)

	w := perform(r, http.MethodPut, "/api/orders/order-1", `{"status":"pending"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = perform(r, http.MethodPut, "/api/orders/order-x", `{"status":"confirmed"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateOrderStatusLedgerGap(t *testing.T) {
	env := newTestEnv(t)
	env.repo.orders = []*model.Order{{ID: "order-1", Status: model.OrderStatusPending, PaymentKey: "key-1"}}
	env.repo.updateErr = errors.New("sheet down")
	r := gin.New()
	r.PUT("/api/orders/:id", env.handler.UpdateOrderStatus)

	w := perform(r, http.MethodPut, "/api/orders/order-1",
		`{"status":"cancelled","cancelReason":"품절"}`)
	// 결제 취소는 성공했으므로 200에 수동 대사 표시를 담는다
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"paymentCancelled":true`)
	assert.Equal(t, []string{"key-1"}, env.pay.cancelled)
}

func TestValidateMemberFlagOffPassesEmptyBody(t *testing.T) {
	env := newTestEnv(t)
	env.sheet.data["member_list!D1:E1"] = [][]interface{}{{"memberValidation", "false"}}
	r := gin.New()
	r.POST("/api/members/validate", env.handler.ValidateMember)

	w := perform(r, http.MethodPost, "/api/members/validate", `{}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"isValid":true`)
}

func TestListProducts(t *testing.T) {
	env := newTestEnv(t)
	r := gin.New()
	r.GET("/api/products", env.handler.ListProducts)

	w := perform(r, http.MethodGet, "/api/products", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "사과")
}
