package service

import (
	"crypto/tls"
	"fmt"
	"net/mail"
	"net/smtp"
	"strings"
	"sync"

	"github.com/pitstop-dev/loyalty-gateway/internal/config"
	"github.com/pitstop-dev/loyalty-gateway/internal/i18n"
)

// GiftNotificationInput 赠送通知邮件入参
type GiftNotificationInput struct {
	RecipientEmail string `json:"recipient_email"`
	SenderName     string `json:"sender_name"`
	CouponName     string `json:"coupon_name"`
	Message        string `json:"message"`
	GiftURL        string `json:"gift_url"` // 为空表示券已直达对方账户
	Locale         string `json:"locale"`
}

// EmailService 邮件服务
// 只负责赠送通知一类邮件，由队列 worker 异步调用。
type EmailService struct {
	mu  sync.RWMutex
	cfg config.EmailConfig
}

// NewEmailService 创建邮件服务
func NewEmailService(cfg config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// SetConfig 热更新邮件配置
func (s *EmailService) SetConfig(cfg config.EmailConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
}

// SendGiftNotification 发送赠送通知邮件
func (s *EmailService) SendGiftNotification(input GiftNotificationInput) error {
	locale := i18n.Normalize(input.Locale)
	sender := strings.TrimSpace(input.SenderName)
	if sender == "" {
		sender = "회원"
	}
	message := strings.TrimSpace(input.Message)

	subject := i18n.Sprintf(locale, "email.gift.subject", sender)
	var body string
	if giftURL := strings.TrimSpace(input.GiftURL); giftURL != "" {
		body = i18n.Sprintf(locale, "email.gift.body", sender, input.CouponName, message, giftURL)
	} else {
		body = i18n.Sprintf(locale, "email.gift.body_no_link", sender, input.CouponName, message)
	}
	return s.sendTextEmail(input.RecipientEmail, subject, body)
}

func (s *EmailService) sendTextEmail(toEmail, subject, body string) error {
	s.mu.RLock()
	cfg := s.cfg
	s.mu.RUnlock()

	if !cfg.Enabled {
		return ErrEmailServiceDisabled
	}
	if cfg.Host == "" || cfg.Port == 0 || cfg.From == "" {
		return ErrEmailServiceNotConfigured
	}
	if _, err := mail.ParseAddress(toEmail); err != nil {
		return ErrInvalidEmail
	}

	from := buildFromAddress(cfg.From, cfg.FromName)
	msg := buildEmailMessage(from, toEmail, subject, body)
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	var auth smtp.Auth
	if cfg.Username != "" || cfg.Password != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	var err error
	switch {
	case cfg.UseSSL:
		err = sendMailWithSSL(addr, auth, cfg.Host, cfg.From, []string{toEmail}, []byte(msg))
	case cfg.UseTLS:
		err = sendMailWithStartTLS(addr, auth, cfg.Host, cfg.From, []string{toEmail}, []byte(msg))
	default:
		err = smtp.SendMail(addr, auth, cfg.From, []string{toEmail}, []byte(msg))
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEmailSendFailed, err)
	}
	return nil
}

func buildFromAddress(from, name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return from
	}
	return fmt.Sprintf("%s <%s>", name, from)
}

func buildEmailMessage(from, to, subject, body string) string {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return b.String()
}

func sendMailWithSSL(addr string, auth smtp.Auth, host, from string, to []string, msg []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: host})
	if err != nil {
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, host)
	if err != nil {
		return err
	}
	defer client.Close()

	if auth != nil {
		if err := client.Auth(auth); err != nil {
			return err
		}
	}
	return sendSMTPData(client, from, to, msg)
}

func sendMailWithStartTLS(addr string, auth smtp.Auth, host, from string, to []string, msg []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.StartTLS(&tls.Config{ServerName: host}); err != nil {
		return err
	}
	if auth != nil {
		if err := client.Auth(auth); err != nil {
			return err
		}
	}
	return sendSMTPData(client, from, to, msg)
}

func sendSMTPData(client *smtp.Client, from string, to []string, msg []byte) error {
	if err := client.Mail(from); err != nil {
		return err
	}
	for _, recipient := range to {
		if err := client.Rcpt(recipient); err != nil {
			return err
		}
	}
	writer, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := writer.Write(msg); err != nil {
		_ = writer.Close()
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}
	return client.Quit()
}
