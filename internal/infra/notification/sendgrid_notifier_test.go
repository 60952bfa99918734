package notification

import (
	"context"
	"net/http"
	"testing"
	"time"

	"lifelink/config"
	"lifelink/internal/domain/entity"
	"lifelink/internal/errors"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent     []*mail.SGMailV3
	response *rest.Response
	err      error
}

func (f *fakeSender) SendWithContext(_ context.Context, email *mail.SGMailV3) (*rest.Response, error) {
	f.sent = append(f.sent, email)

	return f.response, f.err
}

func testProfile() *entity.EmergencyProfile {
	scanned := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	return &entity.EmergencyProfile{QRCode: "LL-ABCD1234", Name: "Ana <Doe>", LastScanned: &scanned}
}

func TestNewScanNotifier_DisabledIsNoop(t *testing.T) {
	notifier := NewScanNotifier(&config.Config{})

	assert.IsType(t, noopNotifier{}, notifier)
	assert.NoError(t, notifier.NotifyScan(context.Background(), &entity.User{}, testProfile()))
}

func TestSendgridNotifier_NotifyScan(t *testing.T) {
	sender := &fakeSender{response: &rest.Response{StatusCode: http.StatusAccepted}}
	notifier := newSendgridNotifier(sender, &config.ScanAlertConfig{FromEmail: "alerts@lifelink.example", FromName: "LifeLink"})

	owner := &entity.User{Email: "ana@example.com", Name: "Ana"}
	require.NoError(t, notifier.NotifyScan(context.Background(), owner, testProfile()))

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, scanAlertSubject, msg.Subject)
	assert.Equal(t, "alerts@lifelink.example", msg.From.Address)
	require.Len(t, msg.Personalizations, 1)
	assert.Equal(t, "ana@example.com", msg.Personalizations[0].To[0].Address)
	require.Len(t, msg.Content, 2)
	assert.Contains(t, msg.Content[0].Value, "LL-ABCD1234")
	assert.Contains(t, msg.Content[1].Value, "Ana &lt;Doe&gt;")
}

func TestSendgridNotifier_Failures(t *testing.T) {
	cfg := &config.ScanAlertConfig{FromEmail: "alerts@lifelink.example"}
	owner := &entity.User{Email: "ana@example.com"}

	t.Run("transport error", func(t *testing.T) {
		notifier := newSendgridNotifier(&fakeSender{err: errors.New("dial tcp")}, cfg)
		assert.Error(t, notifier.NotifyScan(context.Background(), owner, testProfile()))
	})

	t.Run("rejected", func(t *testing.T) {
		notifier := newSendgridNotifier(&fakeSender{response: &rest.Response{StatusCode: http.StatusUnauthorized}}, cfg)
		assert.Error(t, notifier.NotifyScan(context.Background(), owner, testProfile()))
	})

	t.Run("missing owner", func(t *testing.T) {
		sender := &fakeSender{}
		notifier := newSendgridNotifier(sender, cfg)
		assert.Error(t, notifier.NotifyScan(context.Background(), nil, testProfile()))
		assert.Empty(t, sender.sent)
	})
}
