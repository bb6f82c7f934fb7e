package member

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pitstop-dev/loyalty-gateway/internal/config"
	"github.com/pitstop-dev/loyalty-gateway/internal/http/response"
	"github.com/pitstop-dev/loyalty-gateway/internal/loyalty"
	"github.com/pitstop-dev/loyalty-gateway/internal/models"
	"github.com/pitstop-dev/loyalty-gateway/internal/provider"
	"github.com/pitstop-dev/loyalty-gateway/internal/service"
	"github.com/pitstop-dev/loyalty-gateway/internal/store"
)

// stubAPI 按需打桩上游接口，未打桩的方法返回失败信封
type stubAPI struct {
	exchangeCalls int64
	claimCalls    int64

	getMembershipConfig func(ctx context.Context) *loyalty.Result[models.MembershipConfig]
	getMyMembership     func(ctx context.Context, token string) *loyalty.Result[models.Membership]
	getMyCoupons        func(ctx context.Context, token string, filter *loyalty.MyCouponsFilter) *loyalty.Result[loyalty.MyCouponsOutput]
	useCoupon           func(ctx context.Context, token string, input loyalty.UseCouponInput) *loyalty.Result[loyalty.UseCouponOutput]
	exchangeCoupon      func(ctx context.Context, token string, input loyalty.ExchangeCouponInput) *loyalty.Result[loyalty.ExchangeCouponOutput]
	claimGift           func(ctx context.Context, token string, input loyalty.ClaimGiftInput) *loyalty.Result[loyalty.ClaimGiftOutput]
}

func stubFail[T any]() *loyalty.Result[T] {
	return loyalty.Fail[T]("SERVICE_UNAVAILABLE", "not stubbed", nil)
}

func (s *stubAPI) GetMembershipConfig(ctx context.Context) *loyalty.Result[models.MembershipConfig] {
	if s.getMembershipConfig != nil {
		return s.getMembershipConfig(ctx)
	}
	return stubFail[models.MembershipConfig]()
}

func (s *stubAPI) GetMyMembership(ctx context.Context, token string) *loyalty.Result[models.Membership] {
	if s.getMyMembership != nil {
		return s.getMyMembership(ctx, token)
	}
	return stubFail[models.Membership]()
}

func (s *stubAPI) GetMyCoupons(ctx context.Context, token string, filter *loyalty.MyCouponsFilter) *loyalty.Result[loyalty.MyCouponsOutput] {
	if s.getMyCoupons != nil {
		return s.getMyCoupons(ctx, token, filter)
	}
	return stubFail[loyalty.MyCouponsOutput]()
}

func (s *stubAPI) GetCouponDetail(ctx context.Context, token, code string) *loyalty.Result[loyalty.CouponDetailOutput] {
	return stubFail[loyalty.CouponDetailOutput]()
}

func (s *stubAPI) GetCouponHistory(ctx context.Context, token string, filter *loyalty.CouponHistoryFilter) *loyalty.Result[loyalty.CouponHistoryOutput] {
	return stubFail[loyalty.CouponHistoryOutput]()
}

func (s *stubAPI) GetGiftLinkInfo(ctx context.Context, linkToken string) *loyalty.Result[models.GiftLinkInfo] {
	return stubFail[models.GiftLinkInfo]()
}

func (s *stubAPI) UseCoupon(ctx context.Context, token string, input loyalty.UseCouponInput) *loyalty.Result[loyalty.UseCouponOutput] {
	if s.useCoupon != nil {
		return s.useCoupon(ctx, token, input)
	}
	return stubFail[loyalty.UseCouponOutput]()
}

func (s *stubAPI) ExchangeCoupon(ctx context.Context, token string, input loyalty.ExchangeCouponInput) *loyalty.Result[loyalty.ExchangeCouponOutput] {
	atomic.AddInt64(&s.exchangeCalls, 1)
	if s.exchangeCoupon != nil {
		return s.exchangeCoupon(ctx, token, input)
	}
	return stubFail[loyalty.ExchangeCouponOutput]()
}

func (s *stubAPI) GiftCoupon(ctx context.Context, token string, input loyalty.GiftCouponInput) *loyalty.Result[loyalty.GiftCouponOutput] {
	return stubFail[loyalty.GiftCouponOutput]()
}

func (s *stubAPI) CreateGiftLink(ctx context.Context, token string, input loyalty.CreateGiftLinkInput) *loyalty.Result[loyalty.CreateGiftLinkOutput] {
	return stubFail[loyalty.CreateGiftLinkOutput]()
}

func (s *stubAPI) ClaimGift(ctx context.Context, token string, input loyalty.ClaimGiftInput) *loyalty.Result[loyalty.ClaimGiftOutput] {
	atomic.AddInt64(&s.claimCalls, 1)
	if s.claimGift != nil {
		return s.claimGift(ctx, token, input)
	}
	return stubFail[loyalty.ClaimGiftOutput]()
}

func (s *stubAPI) AccumulateStars(ctx context.Context, token string, input loyalty.AccumulateStarsInput) *loyalty.Result[loyalty.AccumulateStarsOutput] {
	return stubFail[loyalty.AccumulateStarsOutput]()
}

var _ loyalty.API = (*stubAPI)(nil)

// newTestRouter 组装最小容器并挂载会员路由，中间件替身写入会话上下文
func newTestRouter(t *testing.T, api loyalty.API, captchaCfg config.CaptchaConfig) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry := store.NewRegistry(time.Minute)
	t.Cleanup(registry.Close)

	configs := service.NewConfigService(api, time.Minute)
	container := &provider.Container{
		Config:        &config.Config{},
		LoyaltyAPI:    api,
		Registry:      registry,
		ConfigService: configs,
		SessionService: service.NewSessionService(service.SessionServiceInput{
			API:      api,
			Registry: registry,
			Configs:  configs,
		}),
		CaptchaService: service.NewCaptchaService(captchaCfg),
	}
	h := New(container)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("session_id", "sess-1")
		c.Set("member_token", "member-token-1")
		c.Set("member_name", "홍길동")
		c.Next()
	})
	r.GET("/coupons", h.GetCoupons)
	r.GET("/coupons/counts", h.GetCouponCounts)
	r.GET("/coupons/history", h.GetCouponHistory)
	r.POST("/coupons/:code/use", h.UseCoupon)
	r.GET("/exchange/options", h.GetExchangeOptions)
	r.POST("/exchange", h.Exchange)
	r.POST("/gifts/claim", h.ClaimGift)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var envelope response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("解析响应失败: %v body=%s", err, w.Body.String())
	}
	return w, envelope
}

func TestUseCouponSuccess(t *testing.T) {
	usedAt := time.Now()
	api := &stubAPI{
		useCoupon: func(ctx context.Context, token string, input loyalty.UseCouponInput) *loyalty.Result[loyalty.UseCouponOutput] {
			if token != "member-token-1" {
				t.Fatalf("令牌应透传, got %s", token)
			}
			if input.Code != "CPN-1" {
				t.Fatalf("券码应取自路径参数, got %s", input.Code)
			}
			return loyalty.Ok(&loyalty.UseCouponOutput{Coupon: models.RewardCoupon{
				Code:   "CPN-1",
				Status: "USED",
				UsedAt: &usedAt,
			}})
		},
	}
	r := newTestRouter(t, api, config.CaptchaConfig{})

	w, envelope := doJSON(t, r, http.MethodPost, "/coupons/CPN-1/use", "")
	if w.Code != http.StatusOK {
		t.Fatalf("http status want 200 got %d", w.Code)
	}
	if envelope.StatusCode != response.CodeOK {
		t.Fatalf("status_code want 0 got %d", envelope.StatusCode)
	}
	if envelope.Msg != "쿠폰을 사용했습니다" {
		t.Fatalf("成功消息不符, got %s", envelope.Msg)
	}
}

func TestUseCouponUpstreamConflict(t *testing.T) {
	api := &stubAPI{
		useCoupon: func(ctx context.Context, token string, input loyalty.UseCouponInput) *loyalty.Result[loyalty.UseCouponOutput] {
			return loyalty.Fail[loyalty.UseCouponOutput]("CONFLICT", "이미 사용된 쿠폰입니다", nil)
		},
	}
	r := newTestRouter(t, api, config.CaptchaConfig{})

	_, envelope := doJSON(t, r, http.MethodPost, "/coupons/CPN-1/use", "")
	if envelope.StatusCode != response.CodeConflict {
		t.Fatalf("status_code want 409 got %d", envelope.StatusCode)
	}
	if envelope.Msg != "이미 사용된 쿠폰입니다" {
		t.Fatalf("上游错误消息应原样透出, got %s", envelope.Msg)
	}
}

func TestExchangeInsufficientStars(t *testing.T) {
	api := &stubAPI{
		getMyMembership: func(ctx context.Context, token string) *loyalty.Result[models.Membership] {
			return loyalty.Ok(&models.Membership{MemberID: "m-1", AvailableStars: 5})
		},
	}
	r := newTestRouter(t, api, config.CaptchaConfig{})

	// 默认目录 PREMIUM_WASH 需要 12 颗星
	_, envelope := doJSON(t, r, http.MethodPost, "/exchange", `{"type":"PREMIUM_WASH"}`)
	if envelope.StatusCode != response.CodeBadRequest {
		t.Fatalf("status_code want 400 got %d", envelope.StatusCode)
	}
	if envelope.Msg != "별이 7개 부족합니다" {
		t.Fatalf("缺口提示不符, got %s", envelope.Msg)
	}
	if calls := atomic.LoadInt64(&api.exchangeCalls); calls != 0 {
		t.Fatalf("星星不足不应请求上游, calls=%d", calls)
	}
}

func TestExchangeUnknownType(t *testing.T) {
	api := &stubAPI{}
	r := newTestRouter(t, api, config.CaptchaConfig{})

	_, envelope := doJSON(t, r, http.MethodPost, "/exchange", `{"type":"MYSTERY_BOX"}`)
	if envelope.StatusCode != response.CodeBadRequest {
		t.Fatalf("status_code want 400 got %d", envelope.StatusCode)
	}
	if envelope.Msg != "선택할 수 없는 쿠폰 종류입니다" {
		t.Fatalf("错误消息不符, got %s", envelope.Msg)
	}
	if calls := atomic.LoadInt64(&api.exchangeCalls); calls != 0 {
		t.Fatalf("非法券种不应请求上游, calls=%d", calls)
	}
}

func TestGetExchangeOptionsFallsBackToDefaults(t *testing.T) {
	api := &stubAPI{}
	r := newTestRouter(t, api, config.CaptchaConfig{})

	w, envelope := doJSON(t, r, http.MethodGet, "/exchange/options", "")
	if envelope.StatusCode != response.CodeOK {
		t.Fatalf("status_code want 0 got %d", envelope.StatusCode)
	}
	if body := w.Body.String(); !strings.Contains(body, "PREMIUM_WASH") || !strings.Contains(body, "FUEL_DISCOUNT") {
		t.Fatalf("上游不可用时应回退默认目录, body=%s", body)
	}
}

func TestClaimGiftRequiresCaptcha(t *testing.T) {
	api := &stubAPI{}
	captchaCfg := config.CaptchaConfig{
		Provider: "image",
		Scenes:   config.CaptchaSceneConfig{ClaimGift: true},
	}
	r := newTestRouter(t, api, captchaCfg)

	_, envelope := doJSON(t, r, http.MethodPost, "/gifts/claim", `{"token":"gift-token"}`)
	if envelope.StatusCode != response.CodeBadRequest {
		t.Fatalf("status_code want 400 got %d", envelope.StatusCode)
	}
	if envelope.Msg != "보안 문자를 입력해 주세요" {
		t.Fatalf("应提示验证码必填, got %s", envelope.Msg)
	}
	if calls := atomic.LoadInt64(&api.claimCalls); calls != 0 {
		t.Fatalf("验证码未通过不应请求上游, calls=%d", calls)
	}
}

func TestGetCouponCountsFromFullList(t *testing.T) {
	api := &stubAPI{
		getMyCoupons: func(ctx context.Context, token string, filter *loyalty.MyCouponsFilter) *loyalty.Result[loyalty.MyCouponsOutput] {
			if filter != nil {
				t.Fatalf("统计应使用全量查询, filter=%+v", filter)
			}
			return loyalty.Ok(&loyalty.MyCouponsOutput{Coupons: []models.RewardCoupon{
				{Code: "A", Status: "ACTIVE"},
				{Code: "B", Status: "USED"},
				{Code: "C", Status: "ACTIVE"},
			}})
		},
	}
	r := newTestRouter(t, api, config.CaptchaConfig{})

	_, envelope := doJSON(t, r, http.MethodGet, "/coupons/counts", "")
	if envelope.StatusCode != response.CodeOK {
		t.Fatalf("status_code want 0 got %d", envelope.StatusCode)
	}
	raw, err := json.Marshal(envelope.Data)
	if err != nil {
		t.Fatalf("marshal data: %v", err)
	}
	var counts models.CouponCounts
	if err := json.Unmarshal(raw, &counts); err != nil {
		t.Fatalf("unmarshal counts: %v", err)
	}
	if counts.Active != 2 || counts.Used != 1 || counts.Total != 3 {
		t.Fatalf("counts 不符: %+v", counts)
	}
}

func TestGetCouponHistoryRejectsUnknownEventType(t *testing.T) {
	// 校验先于上游调用，无需桩实现
	r := newTestRouter(t, &stubAPI{}, config.CaptchaConfig{})

	_, envelope := doJSON(t, r, http.MethodGet, "/coupons/history?event_type=LOTTERY", "")
	if envelope.StatusCode != response.CodeBadRequest {
		t.Fatalf("status_code want 400 got %d", envelope.StatusCode)
	}
	if envelope.Msg != "요청 형식이 올바르지 않습니다" {
		t.Fatalf("错误消息不符, got %s", envelope.Msg)
	}
}
