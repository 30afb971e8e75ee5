// Package content holds the site catalog: profile, skills, projects,
// services, education, blog posts and pricing plans. The catalog is loaded
// once at startup and never modified.
package content

import (
	_ "embed"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultCatalog []byte

type Site struct {
	Name       string `yaml:"name" json:"name"`
	Title      string `yaml:"title" json:"title"`
	Email      string `yaml:"email" json:"email"`
	Phone      string `yaml:"phone" json:"phone"`
	Location   string `yaml:"location" json:"location"`
	LinkedIn   string `yaml:"linkedin" json:"linkedin"`
	Facebook   string `yaml:"facebook" json:"facebook"`
	Instagram  string `yaml:"instagram" json:"instagram"`
	ResumeFile string `yaml:"resume_file" json:"resume_file"`
}

type Skill struct {
	Icon        string `yaml:"icon" json:"icon"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

type Project struct {
	ID          int      `yaml:"id" json:"id"`
	Category    string   `yaml:"category" json:"category"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Tags        []string `yaml:"tags" json:"tags"`
	Image       string   `yaml:"image" json:"image"`
}

// Offer is a service card or a pricing plan.
type Offer struct {
	Name        string   `yaml:"name" json:"name"`
	Price       string   `yaml:"price" json:"price"`
	Description string   `yaml:"description" json:"description"`
	Features    []string `yaml:"features" json:"features"`
	Icon        string   `yaml:"icon" json:"icon"`
	Popular     bool     `yaml:"popular" json:"popular"`
}

type Education struct {
	Year   string `yaml:"year" json:"year"`
	Degree string `yaml:"degree" json:"degree"`
	School string `yaml:"school" json:"school"`
}

type Post struct {
	Date     time.Time `yaml:"date" json:"date"`
	Category string    `yaml:"category" json:"category"`
	Title    string    `yaml:"title" json:"title"`
	Excerpt  string    `yaml:"excerpt" json:"excerpt"`
	Icon     string    `yaml:"icon" json:"icon"`
}

type Catalog struct {
	Site      Site        `yaml:"site" json:"site"`
	Skills    []Skill     `yaml:"skills" json:"skills"`
	Projects  []Project   `yaml:"projects" json:"projects"`
	Services  []Offer     `yaml:"services" json:"services"`
	Education []Education `yaml:"education" json:"education"`
	Posts     []Post      `yaml:"posts" json:"posts"`
	Pricing   []Offer     `yaml:"pricing" json:"pricing"`
}

// Sections lists the catalog sections addressable by name.
var Sections = []string{"site", "skills", "projects", "services", "education", "posts", "pricing"}

// Load reads the catalog from path, or the built-in catalog when path is
// empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Parse(defaultCatalog)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing content YAML: %w", err)
	}
	if err := c.check(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) check() error {
	if c.Site.Name == "" {
		return fmt.Errorf("content: site name is required")
	}
	seen := make(map[int]bool, len(c.Projects))
	for _, p := range c.Projects {
		if seen[p.ID] {
			return fmt.Errorf("content: duplicate project id %d", p.ID)
		}
		seen[p.ID] = true
	}
	return nil
}

// Section returns the named part of the catalog.
func (c *Catalog) Section(name string) (any, bool) {
	switch strings.ToLower(name) {
	case "site":
		return c.Site, true
	case "skills":
		return slices.Clone(c.Skills), true
	case "projects":
		return slices.Clone(c.Projects), true
	case "services":
		return slices.Clone(c.Services), true
	case "education":
		return slices.Clone(c.Education), true
	case "posts":
		return slices.Clone(c.Posts), true
	case "pricing":
		return slices.Clone(c.Pricing), true
	}
	return nil, false
}

// Projects returns the projects in category. An empty category or "all"
// matches everything; matching ignores case.
func (c *Catalog) Projects(category string) []Project {
	return filter(c.Projects, category, func(p Project) string { return p.Category })
}

// Posts filters blog posts the same way as Projects.
func (c *Catalog) Posts(category string) []Post {
	return filter(c.Posts, category, func(p Post) string { return p.Category })
}

// ProjectCategories lists distinct project categories in catalog order.
func (c *Catalog) ProjectCategories() []string {
	return categories(c.Projects, func(p Project) string { return p.Category })
}

func (c *Catalog) PostCategories() []string {
	return categories(c.Posts, func(p Post) string { return p.Category })
}

func matchAll(category string) bool {
	category = strings.TrimSpace(category)
	return category == "" || strings.EqualFold(category, "all")
}

func filter[T any](items []T, category string, key func(T) string) []T {
	if matchAll(category) {
		return slices.Clone(items)
	}
	category = strings.TrimSpace(category)
	out := make([]T, 0, len(items))
	for _, it := range items {
		if strings.EqualFold(key(it), category) {
			out = append(out, it)
		}
	}
	return out
}

func categories[T any](items []T, key func(T) string) []string {
	var out []string
	for _, it := range items {
		k := key(it)
		if !slices.Contains(out, k) {
			out = append(out, k)
		}
	}
	return out
}
