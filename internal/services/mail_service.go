package services

import (
	"fmt"
	"net/smtp"
	"os"
	"strconv"
	"strings"
)

type MailServiceInterface interface {
	SendReplyNotification(to, name, originalMessage, response string) error
	SendPasswordReset(to, token string) error
}

// SMTPConfig holds SMTP and branding settings, read from the environment.
type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	FromName   string
	AppBaseURL string
}

func SMTPConfigFromEnv() SMTPConfig {
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if port == 0 {
		port = 587
	}
	return SMTPConfig{
		Host:       os.Getenv("SMTP_HOST"),
		Port:       port,
		Username:   os.Getenv("SMTP_USERNAME"),
		Password:   os.Getenv("SMTP_PASSWORD"),
		From:       os.Getenv("SMTP_FROM"),
		FromName:   os.Getenv("SMTP_FROM_NAME"),
		AppBaseURL: os.Getenv("APP_BASE_URL"),
	}
}

// Enabled reports whether mail sending is configured at all. When it is
// not, NewSMTPMailService callers should pass a nil mailer and skip
// notifications entirely.
func (c SMTPConfig) Enabled() bool { return c.Host != "" }

type smtpMailService struct {
	cfg SMTPConfig
}

func NewSMTPMailService(cfg SMTPConfig) MailServiceInterface {
	return &smtpMailService{cfg: cfg}
}

func (s *smtpMailService) SendReplyNotification(to, name, originalMessage, response string) error {
	subject := "We replied to your message"
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\nWe have replied to your message:\r\n\r\n> %s\r\n\r\nOur response:\r\n\r\n%s\r\n\r\nYou can read it in your dashboard: %s/dashboard\r\n",
		name, originalMessage, response, s.cfg.AppBaseURL,
	)
	return s.send(to, subject, body)
}

func (s *smtpMailService) SendPasswordReset(to, token string) error {
	subject := "Reset your password"
	body := fmt.Sprintf(
		"Hi,\r\n\r\nUse the link below to reset your password. The link is valid for 30 minutes and can be used once.\r\n\r\n%s/auth/reset-password?token=%s\r\n",
		s.cfg.AppBaseURL, token,
	)
	return s.send(to, subject, body)
}

func (s *smtpMailService) send(to, subject, body string) error {
	from := s.cfg.From
	fromHeader := from
	if s.cfg.FromName != "" {
		fromHeader = fmt.Sprintf("%s <%s>", s.cfg.FromName, from)
	}

	var msg strings.Builder
	msg.WriteString("From: " + fromHeader + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}
	return smtp.SendMail(addr, auth, from, []string{to}, []byte(msg.String()))
}
