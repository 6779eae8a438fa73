package intake

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/turbolytics/scrivener/pkg/csv"
)

func (i *Intake) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

type validationResponse struct {
	Valid          bool     `json:"valid"`
	ActualHeader   []string `json:"actual_header,omitempty"`
	ExpectedHeader []string `json:"expected_header,omitempty"`
	Error          string   `json:"error,omitempty"`
}

// Validate checks an uploaded file's header against the configured
// contract without ingesting it.
func (i *Intake) Validate(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	header, err := csv.ReadHeader(r.Body)
	if err == nil {
		switch {
		case len(i.expectedHeader) > 0:
			err = csv.ValidateHeader(header, i.expectedHeader)
		case len(i.labels) > 0:
			err = csv.ValidateFirstColumn(header, i.labels)
		}
	}

	resp := validationResponse{
		Valid:        err == nil,
		ActualHeader: header,
	}
	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		resp.Error = err.Error()
		var mismatch *csv.HeaderMismatchError
		if errors.As(err, &mismatch) {
			resp.ExpectedHeader = mismatch.Expected
		}
		i.logger.Warn("header validation failed",
			zap.Strings("actual", header),
			zap.Strings("expected", resp.ExpectedHeader),
		)
		w.WriteHeader(http.StatusUnprocessableEntity)
	}
	json.NewEncoder(w).Encode(resp)
}

func (i *Intake) RegisterRoutes(r *chi.Mux) {
	r.Get("/health", i.Health)
	r.Post("/v1/validate", i.Validate)
}
