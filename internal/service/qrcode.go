package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(slug string) ([]byte, error) {
	qrData := fmt.Sprintf("%s/menu/%s", g.BaseURL, slug)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}

var _ QRGenerator = (*DefaultQRGenerator)(nil)
