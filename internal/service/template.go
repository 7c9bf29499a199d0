package service

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lossophy/packattack/internal/domain"
)

// templateFile is the on-disk shape of the template source: a single JSON
// document with a top-level "templates" array.
type templateFile struct {
	Templates []domain.Template `json:"templates"`
}

// TemplateService reads packing-list templates from a JSON file.
// Templates are read-only reference data — the file is re-read on every Load
// so edits show up without a restart, and there is nothing to invalidate.
type TemplateService struct {
	path string
}

// NewTemplateService constructs a TemplateService reading from the given path.
func NewTemplateService(path string) *TemplateService {
	return &TemplateService{path: path}
}

// Load reads and parses the template file.
//
// The failure path is explicit rather than swallowed: a missing or unparsable
// file returns a non-nil error alongside an empty (non-nil) list. Callers that
// want the "no templates available" degradation simply use the list and log
// the error — absent templates are a normal state, not a fault.
func (s *TemplateService) Load() ([]domain.Template, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return []domain.Template{}, fmt.Errorf("service.TemplateService.Load: read %s: %w", s.path, err)
	}

	var file templateFile
	if err := json.Unmarshal(data, &file); err != nil {
		return []domain.Template{}, fmt.Errorf("service.TemplateService.Load: parse %s: %w", s.path, err)
	}

	if file.Templates == nil {
		return []domain.Template{}, nil
	}
	return file.Templates, nil
}

// Find returns the template with the given ID, or ok=false when the ID is
// unknown or the file cannot be read. A load failure degrades to "not found"
// here — the caller asked for one template, not a diagnosis of the file.
func (s *TemplateService) Find(id string) (domain.Template, bool) {
	templates, err := s.Load()
	if err != nil {
		return domain.Template{}, false
	}
	for _, t := range templates {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Template{}, false
}
