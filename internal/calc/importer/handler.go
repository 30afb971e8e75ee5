package importer

import (
	"log/slog"
	"net/http"

	"Portfolio/internal/calc/respond"
)

const maxUpload = 8 << 20

type Handler struct{}

// Building estimates every usable row of an uploaded workbook.
func (h *Handler) Building(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUpload)
	file, _, err := r.FormFile("file")
	if err != nil {
		respond.JSON(w, http.StatusBadRequest, map[string]string{"error": "file_required", "message": "File required"})
		return
	}
	defer file.Close()

	res, err := ImportBuilding(file)
	if err != nil {
		slog.Info("import rejected", "error", err)
		respond.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_file", "message": err.Error()})
		return
	}
	respond.JSON(w, http.StatusOK, res)
}
