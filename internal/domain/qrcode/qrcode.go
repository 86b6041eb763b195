package qrcode

// Generator renders a payload string as a PNG image.
type Generator interface {
	Generate(payload string) ([]byte, error)
}
