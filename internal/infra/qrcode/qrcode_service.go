package qrcode

import (
	"net/url"
	"strings"

	"lifelink/config"
	"lifelink/internal/domain/service"
	"lifelink/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize   = 256
	emergencyPath = "/emergency/"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level, baseURL := defaultSize, "M", ""
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
		baseURL = cfg.QRCode.BaseURL
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(level),
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "M":
		return qrcode.Medium
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// EmergencyURL returns the public resolution URL for a code.
func (s *qrcodeService) EmergencyURL(code string) string {
	return s.baseURL + emergencyPath + url.PathEscape(code)
}

// RenderPNG encodes the emergency URL of a code as a PNG image.
func (s *qrcodeService) RenderPNG(code string) ([]byte, error) {
	if code == "" {
		return nil, errors.New("code must not be empty")
	}

	qrCode, err := qrcode.New(s.EmergencyURL(code), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
