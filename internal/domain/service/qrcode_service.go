package service

// QRCodeService renders printable QR images for registry codes.
type QRCodeService interface {
	// EmergencyURL returns the public URL encoded into the image of a code.
	EmergencyURL(code string) string

	// RenderPNG encodes the emergency URL of a code as a PNG image.
	RenderPNG(code string) ([]byte, error)
}

// CodeGenerator produces new random code values.
type CodeGenerator interface {
	Generate() (string, error)
}
