package content

import (
	"net/http"

	"github.com/gorilla/mux"

	"Portfolio/internal/calc/respond"
)

type Handler struct {
	Catalog *Catalog
}

func (h *Handler) All(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, h.Catalog)
}

func (h *Handler) Section(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["section"]
	v, ok := h.Catalog.Section(name)
	if !ok {
		notFound(w, "unknown section "+name)
		return
	}
	respond.JSON(w, http.StatusOK, v)
}

func (h *Handler) Projects(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, h.Catalog.Projects(r.URL.Query().Get("category")))
}

func (h *Handler) Posts(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, h.Catalog.Posts(r.URL.Query().Get("category")))
}

func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	switch kind := mux.Vars(r)["kind"]; kind {
	case "projects":
		respond.JSON(w, http.StatusOK, h.Catalog.ProjectCategories())
	case "posts":
		respond.JSON(w, http.StatusOK, h.Catalog.PostCategories())
	default:
		notFound(w, "no categories for "+kind)
	}
}

func notFound(w http.ResponseWriter, msg string) {
	respond.JSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "message": msg})
}
