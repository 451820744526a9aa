package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GeneratePassQR renders a QR code encoding the download URL of a pass.
	GeneratePassQR(passTypeIdentifier, serialNumber string) ([]byte, error)
}
