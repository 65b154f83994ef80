package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ZacxDev/storefront/models"
	"github.com/google/uuid"
)

// Memory keeps everything in process. Records are copied on the way in and
// on the way out.
type Memory struct {
	mu        sync.RWMutex
	templates []models.Template
	websites  []models.Website
	products  []models.Product

	now func() time.Time
}

func NewMemory() *Memory {
	return &Memory{now: time.Now}
}

func (m *Memory) ListTemplates(_ context.Context, category models.Category) ([]models.Template, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []models.Template{}
	for i := len(m.templates) - 1; i >= 0; i-- {
		t := m.templates[i]
		if !t.IsActive || (category != "" && t.Category != category) {
			continue
		}
		out = append(out, cloneTemplate(t))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *Memory) GetTemplate(_ context.Context, id string) (*models.Template, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.templateIndex(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	t := cloneTemplate(m.templates[i])
	return &t, nil
}

func (m *Memory) CreateTemplate(_ context.Context, t *models.Template) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	now := m.now().UTC()
	t.CreatedAt, t.UpdatedAt = now, now
	m.templates = append(m.templates, cloneTemplate(*t))
	return nil
}

func (m *Memory) UpdateTemplate(_ context.Context, t *models.Template) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.templateIndex(t.ID)
	if i < 0 {
		return ErrNotFound
	}
	t.CreatedAt = m.templates[i].CreatedAt
	t.UpdatedAt = m.now().UTC()
	m.templates[i] = cloneTemplate(*t)
	return nil
}

func (m *Memory) DeleteTemplate(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.templateIndex(id)
	if i < 0 {
		return ErrNotFound
	}
	m.templates = append(m.templates[:i], m.templates[i+1:]...)
	return nil
}

func (m *Memory) CreateWebsite(_ context.Context, w *models.Website) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.domainTaken(w.Domain, "") {
		return ErrDomainTaken
	}
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	now := m.now().UTC()
	w.CreatedAt, w.UpdatedAt = now, now
	m.websites = append(m.websites, cloneWebsite(*w))
	return nil
}

func (m *Memory) GetWebsite(_ context.Context, id string) (*models.Website, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.websiteIndex(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	w := cloneWebsite(m.websites[i])
	return &w, nil
}

func (m *Memory) GetWebsiteBySlug(_ context.Context, slug string) (*models.Website, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, w := range m.websites {
		if w.IsActive && strings.EqualFold(w.Domain, slug) {
			w = cloneWebsite(w)
			return &w, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) ListWebsites(_ context.Context, ownerID string) ([]models.Website, error) {
	return m.filterWebsites(func(w models.Website) bool { return w.OwnerID == ownerID }), nil
}

func (m *Memory) ListPublishedWebsites(_ context.Context) ([]models.Website, error) {
	return m.filterWebsites(func(w models.Website) bool { return w.IsActive && w.IsPublished }), nil
}

func (m *Memory) UpdateWebsite(_ context.Context, w *models.Website) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.websiteIndex(w.ID)
	if i < 0 {
		return ErrNotFound
	}
	if m.domainTaken(w.Domain, w.ID) {
		return ErrDomainTaken
	}
	w.CreatedAt = m.websites[i].CreatedAt
	w.UpdatedAt = m.now().UTC()
	m.websites[i] = cloneWebsite(*w)
	return nil
}

func (m *Memory) DeleteWebsite(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.websiteIndex(id)
	if i < 0 {
		return ErrNotFound
	}
	m.websites = append(m.websites[:i], m.websites[i+1:]...)

	kept := m.products[:0]
	for _, p := range m.products {
		if p.WebsiteID != id {
			kept = append(kept, p)
		}
	}
	m.products = kept
	return nil
}

func (m *Memory) ListProducts(_ context.Context, websiteID string) ([]models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []models.Product{}
	for _, p := range m.products {
		if p.WebsiteID == websiteID && p.IsActive {
			out = append(out, cloneProduct(p))
		}
	}
	return out, nil
}

func (m *Memory) CreateProduct(_ context.Context, p *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.websiteIndex(p.WebsiteID) < 0 {
		return ErrNotFound
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := m.now().UTC()
	p.CreatedAt, p.UpdatedAt = now, now
	m.products = append(m.products, cloneProduct(*p))
	return nil
}

func (m *Memory) Close() error { return nil }

func (m *Memory) filterWebsites(keep func(models.Website) bool) []models.Website {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []models.Website{}
	for i := len(m.websites) - 1; i >= 0; i-- {
		if keep(m.websites[i]) {
			out = append(out, cloneWebsite(m.websites[i]))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (m *Memory) templateIndex(id string) int {
	for i, t := range m.templates {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (m *Memory) websiteIndex(id string) int {
	for i, w := range m.websites {
		if w.ID == id {
			return i
		}
	}
	return -1
}

func (m *Memory) domainTaken(domain, exceptID string) bool {
	for _, w := range m.websites {
		if w.ID != exceptID && strings.EqualFold(w.Domain, domain) {
			return true
		}
	}
	return false
}

func cloneTemplate(t models.Template) models.Template {
	t.Features = append([]string(nil), t.Features...)
	t.Pages = append(models.Pages(nil), t.Pages...)
	t.DefaultProducts = append(models.ProductSeeds(nil), t.DefaultProducts...)
	return t
}

func cloneWebsite(w models.Website) models.Website {
	w.Pages = append(models.Pages(nil), w.Pages...)
	return w
}

func cloneProduct(p models.Product) models.Product {
	if p.CompareAtPrice != nil {
		v := *p.CompareAtPrice
		p.CompareAtPrice = &v
	}
	return p
}
