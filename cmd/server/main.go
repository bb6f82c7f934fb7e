package main

import (
	"flag"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pitstop-dev/loyalty-gateway/internal/app"
	"github.com/pitstop-dev/loyalty-gateway/internal/config"
	"github.com/pitstop-dev/loyalty-gateway/internal/logger"
)

func main() {
	// 加载配置
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if cfg.Server.Mode == "release" {
		if isWeakSecret(cfg.UserJWT.SecretKey) || isWeakSecret(cfg.AdminJWT.SecretKey) {
			stdLog.Fatalf("JWT secret 过弱或仍为默认值，请在生产环境中配置强随机密钥")
		}
		if strings.TrimSpace(cfg.Upstream.Endpoint) == "" {
			stdLog.Fatalf("未配置上游会员服务地址")
		}
	} else if isWeakSecret(cfg.UserJWT.SecretKey) || isWeakSecret(cfg.AdminJWT.SecretKey) {
		stdLog.Printf("警告: JWT secret 过弱或仍为默认值，建议在生产环境中更换")
	}

	// 设置 Gin 模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 解析命令行参数
	var mode string
	flag.StringVar(&mode, "mode", app.ModeAll, "启动模式: all (默认), api, worker")
	flag.Parse()

	if err := app.Run(app.Options{
		Config: cfg,
		Logger: logger.S(),
		Mode:   mode,
	}); err != nil {
		stdLog.Fatalf("服务运行失败: %v", err)
	}
}

func isWeakSecret(secret string) bool {
	if len(secret) < 32 {
		return true
	}
	normalized := strings.ToLower(secret)
	if strings.Contains(normalized, "change-me") ||
		strings.Contains(normalized, "change-in-production") ||
		strings.Contains(normalized, "your-secret-key") {
		return true
	}
	return false
}
