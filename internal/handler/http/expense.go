package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/expense-tracker/internal/service"
	"github.com/MKhiriev/expense-tracker/internal/utils"
	"github.com/MKhiriev/expense-tracker/models"
)

// ownerFromRequest returns the owner of the authorized session. The auth
// middleware guarantees a session on every protected route.
func ownerFromRequest(r *http.Request) (int64, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return 0, service.ErrTokenIsExpiredOrInvalid
	}
	return userID, nil
}

// expenseIDFromRequest parses the {id} URL parameter. Anything that is not a
// positive integer cannot identify an expense and yields 0, which the ledger
// reports as not found.
func expenseIDFromRequest(r *http.Request) int64 {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

func (h *Handler) listExpenses(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	expenses, err := h.services.ExpenseService.ListExpenses(r.Context(), ownerID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewExpenseResponses(expenses), http.StatusOK)
}

func (h *Handler) addExpense(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.AddExpenseRequest
	if err = decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	expense, err := h.services.ExpenseService.AddExpense(r.Context(), ownerID, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewExpenseResponse(expense), http.StatusCreated)
}

func (h *Handler) getExpense(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	expense, err := h.services.ExpenseService.GetExpense(r.Context(), ownerID, expenseIDFromRequest(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewExpenseResponse(expense), http.StatusOK)
}

func (h *Handler) deleteExpense(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ExpenseService.DeleteExpense(r.Context(), ownerID, expenseIDFromRequest(r)); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, msgExpenseDeleted, http.StatusOK)
}

func (h *Handler) deleteAllExpenses(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	deleted, err := h.services.ExpenseService.DeleteAllExpenses(r.Context(), ownerID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.DeleteAllResponse{
		Message: msgAllExpensesDeleted,
		Deleted: deleted,
	}, http.StatusOK)
}
