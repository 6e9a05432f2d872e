package email

import (
	"fmt"
	"net/smtp"

	"cvconnect-backend/config"
)

// Service sends transactional mail via SMTP.
type Service struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
	}
}

// IsConfigured reports whether SMTP credentials are present.
func (s *Service) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}

func (s *Service) SendInvite(to, inviterName, link string) error {
	subject := "You got invited to CVConnect!"
	body := fmt.Sprintf(
		"Hey, you just got invited to CVConnect by %s, click the following link to register %s",
		inviterName, link,
	)
	return s.send(to, subject, body)
}

func (s *Service) SendPasswordReset(to, preferredName, link string) error {
	subject := "Reset your CVConnect password!"
	body := fmt.Sprintf(
		"Hey %s, you just requested a password reset for CVConnect, click the following link to reset your password %s",
		preferredName, link,
	)
	return s.send(to, subject, body)
}

func (s *Service) send(to, subject, body string) error {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s\r\n",
		s.fromEmail, to, subject, body,
	)

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	return smtp.SendMail(addr, auth, s.fromEmail, []string{to}, []byte(msg))
}
