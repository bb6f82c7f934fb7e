package worker

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/hibiken/asynq"

	"github.com/pitstop-dev/loyalty-gateway/internal/logger"
	"github.com/pitstop-dev/loyalty-gateway/internal/provider"
	"github.com/pitstop-dev/loyalty-gateway/internal/queue"
	"github.com/pitstop-dev/loyalty-gateway/internal/service"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskGiftNotifyEmail, c.handleGiftNotifyEmail)
}

func (c *Consumer) handleGiftNotifyEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_gift_notify_email_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.GiftNotifyEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_gift_notify_email_unmarshal_failed", "error", err)
		return err
	}
	recipient := strings.TrimSpace(payload.RecipientEmail)
	if recipient == "" {
		logger.Debugw("worker_gift_notify_email_skip_empty_recipient")
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_gift_notify_email_skip_email_service_nil", "recipient", recipient)
		return nil
	}

	err := c.EmailService.SendGiftNotification(service.GiftNotificationInput{
		RecipientEmail: recipient,
		SenderName:     payload.SenderName,
		CouponName:     payload.CouponName,
		Message:        payload.Message,
		GiftURL:        payload.GiftURL,
		Locale:         payload.Locale,
	})
	if err == service.ErrEmailServiceDisabled || err == service.ErrEmailServiceNotConfigured {
		logger.Debugw("worker_gift_notify_email_skip_disabled", "recipient", recipient)
		return nil
	}
	if err == service.ErrInvalidEmail {
		logger.Debugw("worker_gift_notify_email_skip_invalid_recipient", "recipient", recipient)
		return nil
	}
	if err != nil {
		logger.Warnw("worker_gift_notify_email_send_failed", "recipient", recipient, "error", err)
		return err
	}
	logger.Infow("worker_gift_notify_email_sent", "recipient", recipient, "method", payload.Method)
	return nil
}
