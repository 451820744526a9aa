package qrcode

import (
	"fmt"
	"net/url"
	"strings"

	"passbook/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	baseURL              string
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, baseURL, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		baseURL:              strings.TrimRight(baseURL, "/"),
		errorCorrectionLevel: level,
	}
}

// PassDownloadURL builds the URL a scanning device fetches the pass from.
func (s *qrcodeService) PassDownloadURL(passTypeIdentifier, serialNumber string) string {
	return fmt.Sprintf("%s/v1/passes/%s/%s",
		s.baseURL,
		url.PathEscape(passTypeIdentifier),
		url.PathEscape(serialNumber),
	)
}

// GeneratePassQR generates a QR code encoding the pass download URL
func (s *qrcodeService) GeneratePassQR(passTypeIdentifier, serialNumber string) ([]byte, error) {
	qrCode, err := qrcode.New(s.PassDownloadURL(passTypeIdentifier, serialNumber), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
