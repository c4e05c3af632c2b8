package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gdg-garage/hotel-registration-api/internal/invoice"
	"github.com/gdg-garage/hotel-registration-api/internal/service"
	"github.com/go-chi/chi/v5"
)

// HandleInvoice streams a PDF invoice. It is mounted behind
// auth.AuthMiddleware.
func (h *RegistrationHandler) HandleInvoice(w http.ResponseWriter, r *http.Request) {
	reg, err := h.registrations.Get(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			http.Error(w, "Registration not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to load registration", http.StatusInternalServerError)
		return
	}
	if reg.Room == nil {
		http.Error(w, "Registration has no room", http.StatusUnprocessableEntity)
		return
	}

	pdf, filename, err := invoice.Render(reg, h.registrations.Quote(reg), h.formatter, time.Now())
	if err != nil {
		log.Printf("Failed to render invoice for %s: %v", reg.ID, err)
		http.Error(w, "Failed to render invoice", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(pdf)
}
