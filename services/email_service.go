package services

import (
	"crypto/tls"
	"errors"
	"fmt"
	"html"
	"net/smtp"
	"os"
	"strings"

	"go.uber.org/zap"
)

var ErrSMTPNotConfigured = errors.New("SMTP not configured")

// Mailer sends notification emails
type Mailer interface {
	IsConfigured() bool
	SendNotificationEmail(to, name, title, message string) error
}

// EmailService handles sending emails via SMTP
type EmailService struct {
	host     string
	port     int
	username string
	password string
	from     string
	appURL   string
}

// NewEmailService reads SMTP_* settings from the environment
func NewEmailService() *EmailService {
	port := 587
	if p := os.Getenv("SMTP_PORT"); p != "" {
		fmt.Sscanf(p, "%d", &port)
	}

	return &EmailService{
		host:     getEnvOrDefault("SMTP_HOST", "smtp.gmail.com"),
		port:     port,
		username: os.Getenv("SMTP_USERNAME"),
		password: os.Getenv("SMTP_PASSWORD"),
		from:     getEnvOrDefault("SMTP_FROM", "admissions@university.ac.in"),
		appURL:   getEnvOrDefault("APP_URL", "http://localhost:3000"),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// IsConfigured checks if SMTP is properly configured
func (e *EmailService) IsConfigured() bool {
	return e.username != "" && e.password != ""
}

// SendNotificationEmail mails a dashboard notification to a student
func (e *EmailService) SendNotificationEmail(to, name, title, message string) error {
	if !e.IsConfigured() {
		return ErrSMTPNotConfigured
	}
	return e.sendEmail(to, title, buildNotificationBody(name, title, message, e.appURL))
}

func buildNotificationBody(name, title, message, appURL string) string {
	if name == "" {
		name = "Student"
	}
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto;">
    <h2>%s</h2>
    <p>Hello %s,</p>
    <p>%s</p>
    <p><a href="%s/dashboard/notifications">Open your dashboard</a></p>
    <p style="font-size: 12px; color: #999;">You are receiving this because email notifications are enabled on your admissions dashboard.</p>
</body>
</html>`, html.EscapeString(title), html.EscapeString(name), html.EscapeString(message), appURL)
}

// sendEmail sends an email using SMTP with STARTTLS
func (e *EmailService) sendEmail(to, subject, htmlBody string) error {
	headers := []string{
		"From: Admissions Office <" + e.from + ">",
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=UTF-8",
	}

	var message strings.Builder
	for _, h := range headers {
		message.WriteString(h + "\r\n")
	}
	message.WriteString("\r\n")
	message.WriteString(htmlBody)

	conn, err := smtp.Dial(fmt.Sprintf("%s:%d", e.host, e.port))
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer conn.Close()

	if err := conn.StartTLS(&tls.Config{ServerName: e.host}); err != nil {
		return fmt.Errorf("failed to start TLS: %w", err)
	}
	if err := conn.Auth(smtp.PlainAuth("", e.username, e.password, e.host)); err != nil {
		return fmt.Errorf("SMTP authentication failed: %w", err)
	}
	if err := conn.Mail(e.from); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := conn.Rcpt(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := conn.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}
	if _, err := w.Write([]byte(message.String())); err != nil {
		return fmt.Errorf("failed to write email body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}
	_ = conn.Quit()

	zap.S().Infow("notification email sent", "to", to)
	return nil
}
