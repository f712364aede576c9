package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jezdibolt/backend-go/internal/domain/earnings"
	"github.com/jezdibolt/backend-go/internal/handler/http/response"
)

type EarningsHandler interface {
	GetAdjustments(w http.ResponseWriter, r *http.Request)
	PutBonus(w http.ResponseWriter, r *http.Request)
	PutPenalty(w http.ResponseWriter, r *http.Request)
	Pay(w http.ResponseWriter, r *http.Request)
	ListByBatch(w http.ResponseWriter, r *http.Request)
	ListUnpaid(w http.ResponseWriter, r *http.Request)
	Recalculate(w http.ResponseWriter, r *http.Request)
	Statement(w http.ResponseWriter, r *http.Request)
}

type EarningsHandlerImpl struct {
	earningsService earnings.Service
}

func NewEarningsHandler(earningsService earnings.Service) EarningsHandler {
	return &EarningsHandlerImpl{earningsService: earningsService}
}

func pathID(r *http.Request, name string) (int, error) {
	return strconv.Atoi(chi.URLParam(r, name))
}

// GetAdjustments implements EarningsHandler. The type query parameter
// selects which ledger to list, defaulting to bonuses.
func (h *EarningsHandlerImpl) GetAdjustments(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid earnings id", nil)
		return
	}

	typ := earnings.AdjustmentType(r.URL.Query().Get("type"))
	if typ == "" {
		typ = earnings.TypeBonus
	}

	items, err := h.earningsService.GetAdjustments(r.Context(), id, typ)
	if err != nil {
		slog.Error("GetAdjustments service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, items)
}

// PutBonus implements EarningsHandler.
func (h *EarningsHandlerImpl) PutBonus(w http.ResponseWriter, r *http.Request) {
	h.replaceAdjustments(w, r, earnings.TypeBonus)
}

// PutPenalty implements EarningsHandler.
func (h *EarningsHandlerImpl) PutPenalty(w http.ResponseWriter, r *http.Request) {
	h.replaceAdjustments(w, r, earnings.TypePenalty)
}

func (h *EarningsHandlerImpl) replaceAdjustments(w http.ResponseWriter, r *http.Request, typ earnings.AdjustmentType) {
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid earnings id", nil)
		return
	}

	var req earnings.AdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ReplaceAdjustments decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.earningsService.ReplaceAdjustments(r.Context(), id, typ, req); err != nil {
		slog.Error("ReplaceAdjustments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Adjustments replaced", "earning_id", id, "type", typ, "items", len(req.Items))
	response.SuccessWithMessage(w, "Adjustments updated", nil)
}

// Pay implements EarningsHandler.
func (h *EarningsHandlerImpl) Pay(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid earnings id", nil)
		return
	}

	var req earnings.PayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Pay decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.earningsService.ApplyPayment(r.Context(), id, req)
	if err != nil {
		slog.Error("Pay service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payment applied", "earning_id", id, "status", result.Status)
	response.Success(w, result)
}

// ListByBatch implements EarningsHandler.
func (h *EarningsHandlerImpl) ListByBatch(w http.ResponseWriter, r *http.Request) {
	batchID, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid batch id", nil)
		return
	}

	records, err := h.earningsService.ListByBatch(r.Context(), batchID)
	if err != nil {
		slog.Error("ListByBatch service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}

// ListUnpaid implements EarningsHandler.
func (h *EarningsHandlerImpl) ListUnpaid(w http.ResponseWriter, r *http.Request) {
	records, err := h.earningsService.ListUnpaid(r.Context())
	if err != nil {
		slog.Error("ListUnpaid service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}

// Recalculate implements EarningsHandler. Re-derives automatic fees on
// a user's open records after a role change.
func (h *EarningsHandlerImpl) Recalculate(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		response.BadRequest(w, "Invalid user id", nil)
		return
	}

	if err := h.earningsService.RecalculateForRoleChange(r.Context(), userID); err != nil {
		slog.Error("Recalculate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Earnings recalculated", "user_id", userID)
	response.SuccessWithMessage(w, "Earnings recalculated", nil)
}

// Statement implements EarningsHandler, returning a PDF.
func (h *EarningsHandlerImpl) Statement(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid earnings id", nil)
		return
	}

	doc, err := h.earningsService.Statement(r.Context(), id)
	if err != nil {
		slog.Error("Statement service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="statement-%d.pdf"`, id))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}
