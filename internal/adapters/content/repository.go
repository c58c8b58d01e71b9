package content

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"citizenshipbridge/internal/domain"
)

//go:embed site.yaml
var siteYAML []byte

type siteDocument struct {
	Organization domain.Organization `yaml:"organization"`
	Navigation   []domain.Link       `yaml:"navigation"`
	Pages        []domain.Page       `yaml:"pages"`
}

type yamlRepository struct {
	doc    siteDocument
	bySlug map[string]*domain.Page
}

// NewRepository returns a ContentRepository backed by the embedded site.yaml.
func NewRepository() (domain.ContentRepository, error) {
	return Parse(siteYAML)
}

// Parse builds a ContentRepository from a YAML site document.
func Parse(data []byte) (domain.ContentRepository, error) {
	var doc siteDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse site content: %w", err)
	}
	repo := &yamlRepository{doc: doc, bySlug: make(map[string]*domain.Page, len(doc.Pages))}
	for i := range doc.Pages {
		p := &doc.Pages[i]
		if p.Slug == "" {
			return nil, fmt.Errorf("parse site content: page %d has no slug", i)
		}
		if _, dup := repo.bySlug[p.Slug]; dup {
			return nil, fmt.Errorf("parse site content: duplicate page %q", p.Slug)
		}
		repo.bySlug[p.Slug] = p
	}
	return repo, nil
}

func (r *yamlRepository) Organization() domain.Organization {
	return r.doc.Organization
}

func (r *yamlRepository) Navigation() []domain.Link {
	return r.doc.Navigation
}

func (r *yamlRepository) Page(slug string) (*domain.Page, error) {
	p, ok := r.bySlug[slug]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrPageNotFound, slug)
	}
	return p, nil
}
