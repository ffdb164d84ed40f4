package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/worklane/jobboard-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// EmailService defines the interface for sending emails
type EmailService interface {
	SendApplicationReceived(to, candidateName, jobTitle, companyName string) error
	SendApplicationStatusUpdate(to, candidateName, jobTitle, status string) error
	SendLeaveDecision(to, employeeName, leaveType, startDate, endDate, decision string, note *string) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type applicationReceivedData struct {
	CandidateName string
	JobTitle      string
	CompanyName   string
}

// SendApplicationReceived confirms to the candidate that their application was recorded
func (s *emailServiceImpl) SendApplicationReceived(to, candidateName, jobTitle, companyName string) error {
	data := applicationReceivedData{
		CandidateName: candidateName,
		JobTitle:      jobTitle,
		CompanyName:   companyName,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "application_received.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Application received: %s", jobTitle), body.String())
}

type applicationStatusData struct {
	CandidateName string
	JobTitle      string
	Status        string
}

// SendApplicationStatusUpdate notifies the candidate of a status change
func (s *emailServiceImpl) SendApplicationStatusUpdate(to, candidateName, jobTitle, status string) error {
	data := applicationStatusData{
		CandidateName: candidateName,
		JobTitle:      jobTitle,
		Status:        status,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "application_status.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Update on your application for %s", jobTitle), body.String())
}

type leaveDecisionData struct {
	EmployeeName string
	LeaveType    string
	StartDate    string
	EndDate      string
	Decision     string
	Note         string
}

// SendLeaveDecision notifies the employee that their leave request was decided
func (s *emailServiceImpl) SendLeaveDecision(to, employeeName, leaveType, startDate, endDate, decision string, note *string) error {
	data := leaveDecisionData{
		EmployeeName: employeeName,
		LeaveType:    leaveType,
		StartDate:    startDate,
		EndDate:      endDate,
		Decision:     decision,
	}
	if note != nil {
		data.Note = *note
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "leave_decision.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Your leave request was %s", decision), body.String())
}

func (s *emailServiceImpl) sendHTML(to, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
