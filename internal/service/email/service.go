package email

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v3"
	"github.com/sirupsen/logrus"

	"prime-property/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

type Service interface {
	SendNewMessageEmail(ctx context.Context, toEmail, recipientName, senderName, propertyTitle, content string) error
	SendListingApprovedEmail(ctx context.Context, toEmail, sellerName, propertyTitle string, propertyID int64) error
	Enabled() bool
}

type service struct {
	client *resend.Client
	config *config.Config
	layout *template.Template
}

// NewService returns a sender that silently drops mail when no Resend API
// key is configured.
func NewService(cfg *config.Config) Service {
	var client *resend.Client
	if cfg.ResendAPIKey != "" {
		client = resend.NewClient(cfg.ResendAPIKey)
	}
	return &service{
		client: client,
		config: cfg,
		layout: template.Must(template.ParseFS(templateFS, "templates/layout.html")),
	}
}

func (s *service) Enabled() bool {
	return s.client != nil
}

func (s *service) render(templateName string, data interface{}) (string, error) {
	tmpl, err := s.layout.Clone()
	if err != nil {
		return "", err
	}
	if _, err := tmpl.ParseFS(templateFS, "templates/"+templateName); err != nil {
		return "", fmt.Errorf("failed to parse email templates: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.ExecuteTemplate(&body, "layout", data); err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}
	return body.String(), nil
}

func (s *service) sendEmail(toEmail, subject, templateName string, data interface{}) error {
	html, err := s.render(templateName, data)
	if err != nil {
		return err
	}

	if !s.Enabled() {
		logrus.WithFields(logrus.Fields{"to": toEmail, "subject": subject}).Debug("email disabled, skipping send")
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Prime Property <%s>", s.config.FromEmail),
		To:      []string{toEmail},
		Html:    html,
		Subject: subject,
	}

	_, err = s.client.Emails.Send(params)
	return err
}

func (s *service) SendNewMessageEmail(ctx context.Context, toEmail, recipientName, senderName, propertyTitle, content string) error {
	data := struct {
		Title         string
		Name          string
		SenderName    string
		PropertyTitle string
		Content       string
		Link          string
	}{
		Title:         "You have a new message",
		Name:          recipientName,
		SenderName:    senderName,
		PropertyTitle: propertyTitle,
		Content:       content,
		Link:          fmt.Sprintf("https://%s/messages", s.config.Domain),
	}
	return s.sendEmail(toEmail, "New message on Prime Property", "new_message.html", data)
}

func (s *service) SendListingApprovedEmail(ctx context.Context, toEmail, sellerName, propertyTitle string, propertyID int64) error {
	data := struct {
		Title         string
		Name          string
		PropertyTitle string
		Link          string
	}{
		Title:         "Your listing is live",
		Name:          sellerName,
		PropertyTitle: propertyTitle,
		Link:          fmt.Sprintf("https://%s/properties/%d", s.config.Domain, propertyID),
	}
	return s.sendEmail(toEmail, "Your listing was approved", "listing_approved.html", data)
}
