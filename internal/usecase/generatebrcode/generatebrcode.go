package generatebrcode

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Xausdorf/pix-brcode/internal/domain/brcode"
	"github.com/Xausdorf/pix-brcode/internal/domain/qrcode"
)

//go:generate mockgen -destination=mocks/mock_generator.go -package=mocks github.com/Xausdorf/pix-brcode/internal/domain/qrcode Generator

type Request struct {
	ReceiverName        string
	ReceiverCity        string
	ReceiverCountryCode string
	Identifier          string
	Key                 string
	KeyType             string
	Amount              *decimal.Decimal
	Description         string
	IsUniqueTransaction bool
}

type Response struct {
	Payload string
}

type UseCase struct {
	generator qrcode.Generator
}

func NewUseCase(generator qrcode.Generator) *UseCase {
	return &UseCase{generator: generator}
}

func (uc *UseCase) Execute(req Request) (*Response, error) {
	code, err := build(req)
	if err != nil {
		return nil, err
	}
	return &Response{Payload: code.Encode()}, nil
}

// ExecuteQR builds the payload and renders it as a PNG image.
func (uc *UseCase) ExecuteQR(req Request) ([]byte, error) {
	code, err := build(req)
	if err != nil {
		return nil, err
	}

	png, err := uc.generator.Generate(code.Encode())
	if err != nil {
		return nil, fmt.Errorf("render brcode: %w", err)
	}
	return png, nil
}

func build(req Request) (*brcode.BRCode, error) {
	return brcode.New(brcode.Static{
		ReceiverName:        req.ReceiverName,
		ReceiverCity:        req.ReceiverCity,
		ReceiverCountryCode: req.ReceiverCountryCode,
		Identifier:          req.Identifier,
		Key:                 req.Key,
		KeyType:             brcode.KeyType(strings.ToUpper(strings.TrimSpace(req.KeyType))),
		Amount:              req.Amount,
		Description:         req.Description,
		IsUniqueTransaction: req.IsUniqueTransaction,
	})
}
