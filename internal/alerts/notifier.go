package alerts

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"villanova-server/internal/observability"
	"villanova-server/internal/store"
)

// EmailSender delivers one HTML email
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, htmlContent string) (string, error)
}

// SMSSender delivers one text message
type SMSSender interface {
	SendSMS(ctx context.Context, to, body string) (string, error)
}

// Alert is a notification for an admin about something the agent did
type Alert struct {
	Subject string
	Summary string
	Details string
}

const emailTemplate = `<html><body>
<h2>{{.Subject}}</h2>
<p>{{.Summary}}</p>
{{if .Details}}<p>{{.Details}}</p>{{end}}
<p><a href="{{.DashboardURL}}">Open AdRoom</a></p>
</body></html>`

type emailData struct {
	Alert
	DashboardURL string
}

// Notifier emails and texts admins. Either channel may be nil; delivery
// failures are logged and never returned.
type Notifier struct {
	email        EmailSender
	sms          SMSSender
	dashboardURL string
	tmpl         *template.Template
	logger       *observability.Logger
}

func NewNotifier(email EmailSender, sms SMSSender, webAppURI string, logger *observability.Logger) *Notifier {
	return &Notifier{
		email:        email,
		sms:          sms,
		dashboardURL: webAppURI + "/adroom",
		tmpl:         template.Must(template.New("alert").Parse(emailTemplate)),
		logger:       logger,
	}
}

// Notify sends alert on every channel the admin has configured
func (n *Notifier) Notify(ctx context.Context, settings store.PlatformSettings, alert Alert) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "admin_id", Value: settings.AdminID},
		observability.Field{Key: "alert_subject", Value: alert.Subject},
	)

	if n.email != nil && settings.NotificationEmail != nil && *settings.NotificationEmail != "" {
		html, err := n.render(alert)
		if err != nil {
			n.logger.Error(ctx, "failed to render alert email", err)
		} else if _, err := n.email.SendEmail(ctx, *settings.NotificationEmail, alert.Subject, html); err != nil {
			n.logger.WarnWithError(ctx, "failed to send alert email", err)
		}
	}

	if n.sms != nil && settings.NotificationPhone != nil && *settings.NotificationPhone != "" {
		body := fmt.Sprintf("AdRoom: %s. %s", alert.Subject, alert.Summary)
		if _, err := n.sms.SendSMS(ctx, *settings.NotificationPhone, body); err != nil {
			n.logger.WarnWithError(ctx, "failed to send alert sms", err)
		}
	}
}

func (n *Notifier) render(alert Alert) (string, error) {
	var buf bytes.Buffer
	if err := n.tmpl.Execute(&buf, emailData{Alert: alert, DashboardURL: n.dashboardURL}); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}
