package report

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"Portfolio/internal/calc/respond"
)

type Handler struct{}

func (h *Handler) PDF(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "pdf", "application/pdf", GeneratePDF)
}

func (h *Handler) XLSX(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", GenerateExcel)
}

func (h *Handler) serve(w http.ResponseWriter, r *http.Request, ext, contentType string, render func(Estimate) ([]byte, error)) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadPayload(w)
		return
	}
	est, err := NewEstimate(req, time.Now())
	if err != nil {
		respond.CalcError(w, err)
		return
	}
	data, err := render(est)
	if err != nil {
		slog.Error("render report", "format", ext, "reference", est.Reference, "error", err)
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+est.Filename(ext)+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Write(data)
}
