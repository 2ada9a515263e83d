package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/kashifaziz477/Money-Management-Ledger/internal/adapter/http/dto"
	"github.com/kashifaziz477/Money-Management-Ledger/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrTransactionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrMemberNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidType),
		errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrEmptyDescription),
		errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrInvalidEmail):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parsePeriod reads the year/month query parameters. year defaults to
// the current year; month defaults to the whole year and also accepts
// the literal "all".
func parsePeriod(r *http.Request) (domain.Period, error) {
	period := domain.Period{
		Year:  time.Now().Year(),
		Month: domain.AllMonths,
	}

	if raw := r.URL.Query().Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return domain.Period{}, errors.New("invalid year")
		}
		period.Year = year
	}

	if raw := r.URL.Query().Get("month"); raw != "" && !strings.EqualFold(raw, "all") {
		month, err := strconv.Atoi(raw)
		if err != nil || month < 1 || month > 12 {
			return domain.Period{}, errors.New("invalid month")
		}
		period.Month = month
	}

	return period, nil
}
