// Package hub loads the categorized link directory shown on the hub page.
package hub

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"poeHub/internal/lib/logger/sl"
	"poeHub/internal/models"
)

var ErrInvalidLink = errors.New("invalid link")

type Link struct {
	Title       string      `json:"title" yaml:"title" validate:"required,max=120"`
	URL         string      `json:"url" yaml:"url" validate:"required,http_url"`
	Description string      `json:"description,omitempty" yaml:"description" validate:"max=300"`
	Category    string      `json:"category" yaml:"category" validate:"required"`
	Game        models.Game `json:"game,omitempty" yaml:"game" validate:"omitempty,oneof=poe1 poe2"`
}

type Category struct {
	ID    string `json:"id" yaml:"id" validate:"required"`
	Name  string `json:"name" yaml:"name" validate:"required"`
	Order int    `json:"order" yaml:"order"`
	Links []Link `json:"links" yaml:"-"`
}

type Directory struct {
	Categories []Category `json:"categories"`
}

// The data file is YAML; JSON files parse the same way.
type document struct {
	Categories []Category `yaml:"categories"`
	Links      []Link     `yaml:"links"`
}

var validate = validator.New()

// Parse builds a directory from data. Invalid categories and links are left
// out and reported; categories are sorted by Order, then name.
func Parse(data []byte) (*Directory, []error, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("hub.Parse: %w", err)
	}

	var rejected []error

	byID := make(map[string]int, len(doc.Categories))
	dir := &Directory{Categories: make([]Category, 0, len(doc.Categories))}

	for _, c := range doc.Categories {
		if err := validate.Struct(c); err != nil {
			rejected = append(rejected, fmt.Errorf("category %q: %w: %v", c.ID, ErrInvalidLink, err))
			continue
		}
		if _, dup := byID[c.ID]; dup {
			rejected = append(rejected, fmt.Errorf("category %q: %w: duplicate id", c.ID, ErrInvalidLink))
			continue
		}

		c.Links = []Link{}
		byID[c.ID] = len(dir.Categories)
		dir.Categories = append(dir.Categories, c)
	}

	for _, l := range doc.Links {
		l.URL = strings.TrimSpace(l.URL)

		if err := validate.Struct(l); err != nil {
			rejected = append(rejected, fmt.Errorf("link %q: %w: %v", l.Title, ErrInvalidLink, err))
			continue
		}

		idx, ok := byID[l.Category]
		if !ok {
			rejected = append(rejected, fmt.Errorf("link %q: %w: unknown category %q", l.Title, ErrInvalidLink, l.Category))
			continue
		}

		dir.Categories[idx].Links = append(dir.Categories[idx].Links, l)
	}

	sort.SliceStable(dir.Categories, func(i, j int) bool {
		a, b := dir.Categories[i], dir.Categories[j]
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		return a.Name < b.Name
	})

	return dir, rejected, nil
}

// ForGame keeps links tagged for game or untagged. Categories left without
// links are dropped. An empty game returns d unchanged.
func (d *Directory) ForGame(game models.Game) *Directory {
	if game == "" {
		return d
	}

	out := &Directory{Categories: make([]Category, 0, len(d.Categories))}

	for _, c := range d.Categories {
		links := make([]Link, 0, len(c.Links))
		for _, l := range c.Links {
			if l.Game == "" || l.Game == game {
				links = append(links, l)
			}
		}

		if len(links) == 0 {
			continue
		}

		c.Links = links
		out.Categories = append(out.Categories, c)
	}

	return out
}

// Source serves the directory loaded from a file and reloads it on demand.
type Source struct {
	path string
	log  *slog.Logger

	mu  sync.RWMutex
	dir *Directory
}

func NewSource(path string, log *slog.Logger) *Source {
	return &Source{
		path: path,
		log:  log,
		dir:  &Directory{Categories: []Category{}},
	}
}

// Reload reads the file again. On failure the previous directory is kept.
func (s *Source) Reload(_ context.Context) error {
	const op = "hub.Source.Reload"

	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	dir, rejected, err := Parse(data)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for _, err := range rejected {
		s.log.Warn("skipping directory entry", slog.String("op", op), sl.Err(err))
	}

	s.mu.Lock()
	s.dir = dir
	s.mu.Unlock()

	return nil
}

func (s *Source) GetDirectory(_ context.Context, game models.Game) (*Directory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.dir.ForGame(game), nil
}
