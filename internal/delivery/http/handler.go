package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/Xausdorf/pix-brcode/internal/domain/brcode"
	"github.com/Xausdorf/pix-brcode/internal/usecase/generatebrcode"
)

const maxBodyBytes = 16 << 10

type Handler struct {
	generateUC *generatebrcode.UseCase
	logger     zerolog.Logger
}

func NewHandler(generateUC *generatebrcode.UseCase, logger zerolog.Logger) *Handler {
	return &Handler{
		generateUC: generateUC,
		logger:     logger,
	}
}

type BRCodeRequest struct {
	ReceiverName        string           `json:"receiverName"`
	ReceiverCity        string           `json:"receiverCity"`
	ReceiverCountryCode string           `json:"receiverCountryCode"`
	Identifier          string           `json:"identifier"`
	Key                 string           `json:"key"`
	KeyType             string           `json:"keyType"`
	Amount              *decimal.Decimal `json:"amount,omitempty"`
	Description         string           `json:"description,omitempty"`
	IsUniqueTransaction bool             `json:"isUniqueTransaction,omitempty"`
}

type BRCodeResponse struct {
	Payload string `json:"payload"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	resp, err := h.generateUC.Execute(req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, BRCodeResponse{Payload: resp.Payload})
}

func (h *Handler) HandleQR(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	png, err := h.generateUC.ExecuteQR(req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(png)
}

func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (generatebrcode.Request, bool) {
	var body BRCodeRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil || dec.Decode(&struct{}{}) != io.EOF {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid json"})
		return generatebrcode.Request{}, false
	}

	return generatebrcode.Request{
		ReceiverName:        body.ReceiverName,
		ReceiverCity:        body.ReceiverCity,
		ReceiverCountryCode: body.ReceiverCountryCode,
		Identifier:          body.Identifier,
		Key:                 body.Key,
		KeyType:             body.KeyType,
		Amount:              body.Amount,
		Description:         body.Description,
		IsUniqueTransaction: body.IsUniqueTransaction,
	}, true
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var vErr *brcode.ValidationError
	if errors.As(err, &vErr) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: vErr.Error(), Field: vErr.Field})
		return
	}

	h.logger.Error().Err(err).Msg("brcode generation failed")
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "brcode generation failed"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
