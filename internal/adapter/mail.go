// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-blog-accounts/internal/config"
	"github.com/MKhiriev/go-blog-accounts/internal/logger"
	"github.com/MKhiriev/go-blog-accounts/internal/utils"
	"github.com/MKhiriev/go-blog-accounts/models"
)

const (
	messagesPath  = "/v1/messages"
	traceIDHeader = "X-Trace-ID"

	templateEmailConfirmation = "email-confirmation"
	templatePasswordReset     = "password-reset"
)

type mailAdapter struct {
	client *utils.HTTPClient

	sender        string
	publicBaseURL string

	logger *logger.Logger
}

// NewMailAdapter constructs a [Mailer] posting messages to the relay at
// cfg.RelayURL. When no relay is configured the returned Mailer only logs
// the messages it would have sent.
func NewMailAdapter(cfg config.Mail, logger *logger.Logger) Mailer {
	if strings.TrimSpace(cfg.RelayURL) == "" {
		logger.Warn().Str("func", "NewMailAdapter").Msg("mail relay is not configured, mails will only be logged")
		return &logMailer{logger: logger}
	}

	client := utils.NewHTTPClient(strings.TrimRight(cfg.RelayURL, "/"), cfg.Timeout, cfg.Retries)
	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}

	return &mailAdapter{
		client:        client,
		sender:        cfg.Sender,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:        logger,
	}
}

// SendEmailConfirmationMail implements [Mailer].
func (m *mailAdapter) SendEmailConfirmationMail(ctx context.Context, recipient, userName, confirmationCode string) error {
	link := m.link("/api/users/confirm", confirmationCode)

	return m.send(ctx, models.MailMessage{
		From:     m.sender,
		To:       recipient,
		Subject:  "Confirm your email",
		Text:     fmt.Sprintf("Hello, %s!\n\nPlease confirm your email by opening the link below:\n%s\n", userName, link),
		Template: templateEmailConfirmation,
		Data:     map[string]string{"userName": userName, "link": link},
	})
}

// SendPasswordResetMail implements [Mailer].
func (m *mailAdapter) SendPasswordResetMail(ctx context.Context, recipient, resetCode string) error {
	link := m.link("/reset-password", resetCode)

	return m.send(ctx, models.MailMessage{
		From:     m.sender,
		To:       recipient,
		Subject:  "Password reset",
		Text:     fmt.Sprintf("Somebody asked to reset the password of your account.\n\nTo choose a new password open the link below:\n%s\n\nIf it was not you, just ignore this mail.\n", link),
		Template: templatePasswordReset,
		Data:     map[string]string{"link": link},
	})
}

func (m *mailAdapter) send(ctx context.Context, msg models.MailMessage) error {
	if msg.To == "" {
		return ErrNoRecipient
	}

	req := m.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(msg)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}

	resp, err := req.Post(messagesPath)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mailAdapter.send").Str("template", msg.Template).Msg("mail relay request failed")
		return fmt.Errorf("mail relay request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mailAdapter.send").Str("template", msg.Template).Msg("mail relay answered with error")
		return err
	}

	return nil
}

func (m *mailAdapter) link(path, code string) string {
	return m.publicBaseURL + path + "?code=" + url.QueryEscape(code)
}

// logMailer stands in for the relay in development setups.
type logMailer struct {
	logger *logger.Logger
}

func (l *logMailer) SendEmailConfirmationMail(ctx context.Context, recipient, userName, confirmationCode string) error {
	l.logger.Info().Str("func", "*logMailer.SendEmailConfirmationMail").
		Str("to", recipient).Str("user_name", userName).Msg("email confirmation mail not sent: relay disabled")
	return nil
}

func (l *logMailer) SendPasswordResetMail(ctx context.Context, recipient, resetCode string) error {
	l.logger.Info().Str("func", "*logMailer.SendPasswordResetMail").
		Str("to", recipient).Msg("password reset mail not sent: relay disabled")
	return nil
}
