package content

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gorilla/mux"
)

func loadDefault(t *testing.T) *Catalog {
	t.Helper()
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return c
}

func TestLoadDefault(t *testing.T) {
	c := loadDefault(t)
	if c.Site.Name == "" {
		t.Error("site name is empty")
	}
	if len(c.Projects) != 4 || len(c.Posts) != 6 || len(c.Pricing) != 4 {
		t.Errorf("projects=%d posts=%d pricing=%d", len(c.Projects), len(c.Posts), len(c.Pricing))
	}
	if c.Posts[0].Date.Year() != 2026 {
		t.Errorf("first post date = %v", c.Posts[0].Date)
	}
	last := c.Pricing[len(c.Pricing)-1]
	if last.Name != "Complete Package" || !last.Popular {
		t.Errorf("last plan = %+v", last)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	data := "site:\n  name: Test\nprojects:\n  - id: 1\n    category: ROADS\n    title: Bypass\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Site.Name != "Test" || len(c.Projects) != 1 {
		t.Errorf("catalog = %+v", c)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseRejects(t *testing.T) {
	tests := map[string]string{
		"no site name":  "skills: []\n",
		"duplicate ids": "site:\n  name: X\nprojects:\n  - id: 1\n  - id: 1\n",
		"bad yaml":      "site: [",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestProjectsFilter(t *testing.T) {
	c := loadDefault(t)
	tests := []struct {
		category string
		want     int
	}{
		{"", 4},
		{"all", 4},
		{"ALL", 4},
		{"residential", 2},
		{"COMMERCIAL", 2},
		{"bridges", 0},
	}
	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			if got := c.Projects(tt.category); len(got) != tt.want {
				t.Errorf("Projects(%q) = %d items, want %d", tt.category, len(got), tt.want)
			}
		})
	}
}

func TestPostsFilter(t *testing.T) {
	c := loadDefault(t)
	got := c.Posts("sustainability")
	if len(got) != 2 {
		t.Fatalf("got %d posts", len(got))
	}
	for _, p := range got {
		if p.Category != "SUSTAINABILITY" {
			t.Errorf("unexpected category %q", p.Category)
		}
	}
}

func TestFilterReturnsCopy(t *testing.T) {
	c := loadDefault(t)
	got := c.Projects("")
	got[0].Title = "changed"
	if c.Projects[0].Title == "changed" {
		t.Error("filter result aliases the catalog")
	}
}

func TestCategories(t *testing.T) {
	c := loadDefault(t)
	projects := c.ProjectCategories()
	if len(projects) != 2 || projects[0] != "RESIDENTIAL" || projects[1] != "COMMERCIAL" {
		t.Errorf("project categories = %v", projects)
	}
	if posts := c.PostCategories(); len(posts) != 5 {
		t.Errorf("post categories = %v", posts)
	}
}

func TestHandler(t *testing.T) {
	h := &Handler{Catalog: loadDefault(t)}
	r := mux.NewRouter()
	r.HandleFunc("/api/content", h.All).Methods("GET")
	r.HandleFunc("/api/content/projects", h.Projects).Methods("GET")
	r.HandleFunc("/api/content/posts", h.Posts).Methods("GET")
	r.HandleFunc("/api/content/categories/{kind}", h.Categories).Methods("GET")
	r.HandleFunc("/api/content/{section}", h.Section).Methods("GET")

	tests := []struct {
		path   string
		status int
		items  int
	}{
		{"/api/content/projects?category=residential", http.StatusOK, 2},
		{"/api/content/posts?category=all", http.StatusOK, 6},
		{"/api/content/skills", http.StatusOK, 5},
		{"/api/content/pricing", http.StatusOK, 4},
		{"/api/content/categories/projects", http.StatusOK, 2},
		{"/api/content/categories/skills", http.StatusNotFound, -1},
		{"/api/content/unknown", http.StatusNotFound, -1},
		{"/api/content", http.StatusOK, -1},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}
			if tt.items < 0 {
				return
			}
			var items []json.RawMessage
			if err := json.NewDecoder(rec.Body).Decode(&items); err != nil {
				t.Fatal(err)
			}
			if len(items) != tt.items {
				t.Errorf("got %d items, want %d", len(items), tt.items)
			}
		})
	}
}
