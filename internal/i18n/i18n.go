package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// DefaultLocale 默认语言（平台主站为韩国市场）
const DefaultLocale = "ko-KR"

const localeContextKey = "locale"

var supportedLocales = []string{"ko-KR", "en-US", "zh-CN"}

// ResolveLocale 解析请求语言
// 优先级：query 参数 locale > X-Locale 头 > Accept-Language 头 > 默认语言。
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return DefaultLocale
	}
	if value, ok := c.Get(localeContextKey); ok {
		if locale, ok := value.(string); ok && locale != "" {
			return locale
		}
	}

	candidates := []string{
		c.Query("locale"),
		c.GetHeader("X-Locale"),
	}
	if header := c.GetHeader("Accept-Language"); header != "" {
		for _, part := range strings.Split(header, ",") {
			lang := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
			if lang != "" {
				candidates = append(candidates, lang)
			}
		}
	}

	for _, candidate := range candidates {
		if locale := Normalize(candidate); locale != "" {
			c.Set(localeContextKey, locale)
			return locale
		}
	}
	c.Set(localeContextKey, DefaultLocale)
	return DefaultLocale
}

// Normalize 归一化语言标签，未支持的语言返回空串
func Normalize(raw string) string {
	tag := strings.TrimSpace(raw)
	if tag == "" {
		return ""
	}
	for _, locale := range supportedLocales {
		if strings.EqualFold(tag, locale) {
			return locale
		}
	}
	prefix := strings.ToLower(strings.SplitN(tag, "-", 2)[0])
	switch prefix {
	case "ko":
		return "ko-KR"
	case "en":
		return "en-US"
	case "zh":
		return "zh-CN"
	}
	return ""
}

// T 按语言取文案，缺失时回退默认语言，再回退 key 本身
func T(locale, key string) string {
	if catalog, ok := catalogs[locale]; ok {
		if text, ok := catalog[key]; ok {
			return text
		}
	}
	if locale != DefaultLocale {
		if text, ok := catalogs[DefaultLocale][key]; ok {
			return text
		}
	}
	return key
}

// Sprintf 按语言取带占位符的文案并格式化
func Sprintf(locale, key string, args ...interface{}) string {
	return fmt.Sprintf(T(locale, key), args...)
}
