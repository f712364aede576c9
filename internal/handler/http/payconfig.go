package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jezdibolt/backend-go/internal/domain/payconfig"
	"github.com/jezdibolt/backend-go/internal/handler/http/response"
)

type PayConfigHandler interface {
	ListTiers(w http.ResponseWriter, r *http.Request)
	UpdateTier(w http.ResponseWriter, r *http.Request)
	ListRules(w http.ResponseWriter, r *http.Request)
	UpdateRule(w http.ResponseWriter, r *http.Request)
	ResolveRate(w http.ResponseWriter, r *http.Request)
}

type PayConfigHandlerImpl struct {
	payConfigService payconfig.Service
}

func NewPayConfigHandler(payConfigService payconfig.Service) PayConfigHandler {
	return &PayConfigHandlerImpl{payConfigService: payConfigService}
}

// ListTiers implements PayConfigHandler.
func (h *PayConfigHandlerImpl) ListTiers(w http.ResponseWriter, r *http.Request) {
	tiers, err := h.payConfigService.ListTiers(r.Context())
	if err != nil {
		slog.Error("ListTiers service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, tiers)
}

// UpdateTier implements PayConfigHandler.
func (h *PayConfigHandlerImpl) UpdateTier(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid tier id", nil)
		return
	}

	var req payconfig.UpdateTierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateTier decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := h.payConfigService.UpdateTier(r.Context(), req); err != nil {
		slog.Error("UpdateTier service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Pay rate tier updated", "tier_id", id)
	response.SuccessWithMessage(w, "Pay rate updated", nil)
}

// ListRules implements PayConfigHandler.
func (h *PayConfigHandlerImpl) ListRules(w http.ResponseWriter, r *http.Request) {
	rules, err := h.payConfigService.ListRules(r.Context())
	if err != nil {
		slog.Error("ListRules service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, rules)
}

// UpdateRule implements PayConfigHandler.
func (h *PayConfigHandlerImpl) UpdateRule(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid rule id", nil)
		return
	}

	var req payconfig.UpdateRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateRule decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := h.payConfigService.UpdateRule(r.Context(), req); err != nil {
		slog.Error("UpdateRule service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Pay rule updated", "rule_id", id)
	response.SuccessWithMessage(w, "Pay rule updated", nil)
}

// ResolveRate implements PayConfigHandler. A dry-run endpoint for the
// back office to preview the hourly rate for given figures.
func (h *PayConfigHandlerImpl) ResolveRate(w http.ResponseWriter, r *http.Request) {
	hours, err := strconv.ParseFloat(r.URL.Query().Get("hours"), 64)
	if err != nil {
		response.BadRequest(w, "Invalid hours parameter", nil)
		return
	}
	gross, err := strconv.ParseFloat(r.URL.Query().Get("gross"), 64)
	if err != nil {
		response.BadRequest(w, "Invalid gross parameter", nil)
		return
	}

	rate, err := h.payConfigService.ResolveRate(r.Context(), hours, gross)
	if err != nil {
		slog.Error("ResolveRate service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, map[string]int{"rate_per_hour": rate})
}
