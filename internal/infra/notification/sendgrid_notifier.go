// Package notification delivers scan alerts to code owners.
package notification

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"time"

	"lifelink/config"
	"lifelink/internal/domain/entity"
	"lifelink/internal/domain/service"
	"lifelink/internal/errors"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const scanAlertSubject = "Your LifeLink emergency profile was just opened"

// mailSender is the part of the SendGrid client the notifier uses.
type mailSender interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

type sendgridNotifier struct {
	client   mailSender
	from     *mail.Email
	timezone *time.Location
}

// NewScanNotifier returns a SendGrid notifier when scan alerts are enabled, otherwise a no-op.
func NewScanNotifier(cfg *config.Config) service.ScanNotifier {
	if cfg.ScanAlert == nil || !cfg.ScanAlert.Enabled {
		return noopNotifier{}
	}

	return newSendgridNotifier(sendgrid.NewSendClient(cfg.ScanAlert.APIKey), cfg.ScanAlert)
}

func newSendgridNotifier(client mailSender, cfg *config.ScanAlertConfig) *sendgridNotifier {
	return &sendgridNotifier{
		client:   client,
		from:     mail.NewEmail(cfg.FromName, cfg.FromEmail),
		timezone: time.UTC,
	}
}

// NotifyScan e-mails the owner of the scanned profile.
func (n *sendgridNotifier) NotifyScan(ctx context.Context, owner *entity.User, profile *entity.EmergencyProfile) error {
	if owner == nil || owner.Email == "" {
		return errors.New("scan alert needs an owner e-mail")
	}

	scannedAt := time.Now().In(n.timezone)
	if profile.LastScanned != nil {
		scannedAt = profile.LastScanned.In(n.timezone)
	}

	plain := fmt.Sprintf(
		"Hello %s,\n\nThe emergency profile for %s (code %s) was opened at %s.\n",
		owner.Name, profile.Name, profile.QRCode, scannedAt.Format(time.RFC1123),
	)
	htmlBody := fmt.Sprintf(
		"<p>Hello %s,</p><p>The emergency profile for <strong>%s</strong> (code %s) was opened at %s.</p>",
		html.EscapeString(owner.Name), html.EscapeString(profile.Name),
		html.EscapeString(profile.QRCode), scannedAt.Format(time.RFC1123),
	)

	message := mail.NewSingleEmail(n.from, scanAlertSubject, mail.NewEmail(owner.Name, owner.Email), plain, htmlBody)

	response, err := n.client.SendWithContext(ctx, message)
	if err != nil {
		return errors.Wrap(err, "failed to send scan alert")
	}
	if response.StatusCode >= http.StatusBadRequest {
		return errors.Errorf("scan alert rejected with status %d: %s", response.StatusCode, response.Body)
	}

	return nil
}

type noopNotifier struct{}

func (noopNotifier) NotifyScan(context.Context, *entity.User, *entity.EmergencyProfile) error {
	return nil
}
