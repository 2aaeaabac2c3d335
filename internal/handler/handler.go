// Package handler содержит HTTP-обработчики API сервиса проверки NIT.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/mmeshcher/nitcheck/internal/model"
)

// Service определяет контракт бизнес-логики, используемой HTTP-обработчиками.
type Service interface {
	Validate(nit *string, formatted bool) model.ValidationResult
	ValidateBatch(nits []string, formatted bool) []model.BatchItem
	IsEligible(nit string, formatted bool) bool
}

// Handler реализует HTTP-обработчики API сервиса проверки NIT.
type Handler struct {
	service    Service
	logger     *zap.Logger
	validate   *validator.Validate
	batchLimit int
}

// NewHandler создаёт новый экземпляр обработчика HTTP-запросов.
func NewHandler(s Service, logger *zap.Logger, batchLimit int) *Handler {
	return &Handler{
		service:    s,
		logger:     logger,
		validate:   validator.New(),
		batchLimit: batchLimit,
	}
}

// Режим по умолчанию — форматированное представление.
func formattedMode(f *bool) bool {
	if f == nil {
		return true
	}
	return *f
}

type validateRequest struct {
	NIT       *string `json:"nit"`
	Formatted *bool   `json:"formatted"`
}

// ValidateNIT проверяет один номер NIT. Отсутствующее значение nit
// считается корректным и возвращает пустой список ошибок.
func (h *Handler) ValidateNIT(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	result := h.service.Validate(req.NIT, formattedMode(req.Formatted))

	h.writeJSON(w, result)
}

type batchRequest struct {
	NITs      []string `json:"nits" validate:"required,min=1"`
	Formatted *bool    `json:"formatted"`
}

// ValidateBatch проверяет список номеров NIT одним запросом.
func (h *Handler) ValidateBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		http.Error(w, http.StatusText(http.StatusUnprocessableEntity), http.StatusUnprocessableEntity)
		return
	}

	if len(req.NITs) > h.batchLimit {
		http.Error(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
		return
	}

	items := h.service.ValidateBatch(req.NITs, formattedMode(req.Formatted))

	h.writeJSON(w, items)
}

type eligibleRequest struct {
	NIT       string `json:"nit" validate:"required"`
	Formatted *bool  `json:"formatted"`
}

type eligibleResponse struct {
	Eligible bool `json:"eligible"`
}

// CheckEligibility сообщает, соответствует ли строка формату выбранного режима.
func (h *Handler) CheckEligibility(w http.ResponseWriter, r *http.Request) {
	var req eligibleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	eligible := h.service.IsEligible(req.NIT, formattedMode(req.Formatted))

	h.writeJSON(w, eligibleResponse{Eligible: eligible})
}

func (h *Handler) writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("encode response error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
