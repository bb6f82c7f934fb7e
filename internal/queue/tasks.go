package queue

import (
	"encoding/json"

	"github.com/hibiken/asynq"

	"github.com/pitstop-dev/loyalty-gateway/internal/constants"
)

// TaskGiftNotifyEmail 赠送通知邮件任务
const TaskGiftNotifyEmail = constants.TaskGiftNotifyEmail

// GiftNotifyEmailPayload 赠送通知邮件任务载荷
type GiftNotifyEmailPayload struct {
	RecipientEmail string `json:"recipient_email"`
	SenderName     string `json:"sender_name"`
	CouponName     string `json:"coupon_name"`
	Method         string `json:"method,omitempty"` // link 或 email
	Message        string `json:"message,omitempty"`
	GiftURL        string `json:"gift_url,omitempty"`
	Locale         string `json:"locale,omitempty"`
}

// NewGiftNotifyEmailTask 创建赠送通知邮件任务
func NewGiftNotifyEmailTask(payload GiftNotifyEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskGiftNotifyEmail, body), nil
}
