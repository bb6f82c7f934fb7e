package i18n

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{input: "ko-KR", want: "ko-KR"},
		{input: "KO-kr", want: "ko-KR"},
		{input: "ko", want: "ko-KR"},
		{input: "en-GB", want: "en-US"},
		{input: "zh", want: "zh-CN"},
		{input: "ja-JP", want: ""},
		{input: "  ", want: ""},
	}
	for _, tc := range cases {
		if got := Normalize(tc.input); got != tc.want {
			t.Fatalf("Normalize(%q) want %q got %q", tc.input, tc.want, got)
		}
	}
}

func TestResolveLocalePriority(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newCtx := func() *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/", nil)
		return c
	}

	c := newCtx()
	if got := ResolveLocale(c); got != DefaultLocale {
		t.Fatalf("无语言信息应回退默认语言, got %s", got)
	}

	c = newCtx()
	c.Request = httptest.NewRequest("GET", "/?locale=en-US", nil)
	c.Request.Header.Set("X-Locale", "zh-CN")
	if got := ResolveLocale(c); got != "en-US" {
		t.Fatalf("query 参数应优先于请求头, got %s", got)
	}

	c = newCtx()
	c.Request.Header.Set("Accept-Language", "ja-JP,zh;q=0.8")
	if got := ResolveLocale(c); got != "zh-CN" {
		t.Fatalf("应跳过不支持的语言取后续候选, got %s", got)
	}

	// 首次解析结果写入上下文，后续调用不再重新解析
	c = newCtx()
	c.Request.Header.Set("X-Locale", "en-US")
	if got := ResolveLocale(c); got != "en-US" {
		t.Fatalf("want en-US got %s", got)
	}
	c.Request.Header.Set("X-Locale", "zh-CN")
	if got := ResolveLocale(c); got != "en-US" {
		t.Fatalf("已解析的语言应被缓存, got %s", got)
	}
}

func TestTFallbackChain(t *testing.T) {
	if got := T("en-US", "msg.coupon_used"); got != "Coupon used" {
		t.Fatalf("want Coupon used got %s", got)
	}
	// 不支持的语言回退默认语言
	if got := T("fr-FR", "msg.coupon_used"); got != "쿠폰을 사용했습니다" {
		t.Fatalf("应回退默认语言, got %s", got)
	}
	// 目录缺失时回退 key 本身
	if got := T("ko-KR", "msg.not_exists"); got != "msg.not_exists" {
		t.Fatalf("缺失文案应回退 key, got %s", got)
	}
}

func TestSprintf(t *testing.T) {
	if got := Sprintf("ko-KR", "error.stars_insufficient", 7); got != "별이 7개 부족합니다" {
		t.Fatalf("格式化结果不符, got %s", got)
	}
}
