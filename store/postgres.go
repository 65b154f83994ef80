package store

import (
	"context"
	"database/sql"
	_ "embed"
	"time"

	"github.com/ZacxDev/storefront/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

const (
	DefaultMaxOpenConns    = 25
	DefaultMaxIdleConns    = 5
	DefaultConnMaxLifetime = 5 * time.Minute
	DefaultPingTimeout     = 5 * time.Second

	domainConstraint = "websites_domain_key"
	uniqueViolation  = "23505"
)

//go:embed schema.sql
var schema string

const (
	templateColumns = `id, name, description, category, thumbnail, preview_url, features,
		settings, pages, default_products, is_active, created_at, updated_at`

	websiteSelect = `SELECT w.id, w.name, w.description, w.domain, w.logo,
		COALESCE(w.template_id, '') AS template_id,
		COALESCE(t.name, '') AS template_name,
		COALESCE(t.category, 'other') AS category,
		w.owner_id, w.settings, w.pages, w.is_active, w.is_published, w.created_at, w.updated_at
		FROM websites w LEFT JOIN templates t ON t.id = w.template_id`

	productColumns = `id, website_id, name, description, price, compare_at_price, image_url,
		category, is_active, created_at, updated_at`
)

// templateRow carries the features column, which needs a text[] scanner.
type templateRow struct {
	models.Template
	Features pq.StringArray `db:"features"`
}

func (r templateRow) template() models.Template {
	t := r.Template
	t.Features = []string(r.Features)
	if t.Features == nil {
		t.Features = []string{}
	}
	return t
}

type Postgres struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewPostgres(db *sqlx.DB) *Postgres {
	return &Postgres{db: db, now: time.Now}
}

// ConnectPostgres opens a pooled connection and checks it answers.
func ConnectPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}

	db.SetMaxOpenConns(DefaultMaxOpenConns)
	db.SetMaxIdleConns(DefaultMaxIdleConns)
	db.SetConnMaxLifetime(DefaultConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, DefaultPingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "ping database")
	}

	return NewPostgres(db), nil
}

// EnsureSchema creates missing tables and indexes.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	_, err := p.db.ExecContext(ctx, schema)
	return errors.Wrap(err, "ensure schema")
}

func (p *Postgres) ListTemplates(ctx context.Context, category models.Category) ([]models.Template, error) {
	query := `SELECT ` + templateColumns + ` FROM templates WHERE is_active`
	args := []interface{}{}
	if category != "" {
		query += ` AND category = $1`
		args = append(args, string(category))
	}
	query += ` ORDER BY created_at DESC`

	var rows []templateRow
	if err := p.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "list templates")
	}

	out := make([]models.Template, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.template())
	}
	return out, nil
}

func (p *Postgres) GetTemplate(ctx context.Context, id string) (*models.Template, error) {
	var r templateRow
	err := p.db.GetContext(ctx, &r, `SELECT `+templateColumns+` FROM templates WHERE id = $1`, id)
	if err != nil {
		return nil, notFound(err, "get template")
	}
	t := r.template()
	return &t, nil
}

func (p *Postgres) CreateTemplate(ctx context.Context, t *models.Template) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	now := p.now().UTC()
	t.CreatedAt, t.UpdatedAt = now, now

	_, err := p.db.ExecContext(ctx,
		`INSERT INTO templates (`+templateColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		t.ID, t.Name, t.Description, string(t.Category), t.Thumbnail, t.PreviewURL,
		pq.StringArray(t.Features), t.Settings, t.Pages, t.DefaultProducts,
		t.IsActive, t.CreatedAt, t.UpdatedAt,
	)
	return errors.Wrap(err, "create template")
}

func (p *Postgres) UpdateTemplate(ctx context.Context, t *models.Template) error {
	t.UpdatedAt = p.now().UTC()

	res, err := p.db.ExecContext(ctx,
		`UPDATE templates SET name = $2, description = $3, category = $4, thumbnail = $5,
		preview_url = $6, features = $7, settings = $8, pages = $9, default_products = $10,
		is_active = $11, updated_at = $12
		WHERE id = $1`,
		t.ID, t.Name, t.Description, string(t.Category), t.Thumbnail, t.PreviewURL,
		pq.StringArray(t.Features), t.Settings, t.Pages, t.DefaultProducts,
		t.IsActive, t.UpdatedAt,
	)
	return affected(res, err, "update template")
}

func (p *Postgres) DeleteTemplate(ctx context.Context, id string) error {
	res, err := p.db.ExecContext(ctx, `DELETE FROM templates WHERE id = $1`, id)
	return affected(res, err, "delete template")
}

func (p *Postgres) CreateWebsite(ctx context.Context, w *models.Website) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	now := p.now().UTC()
	w.CreatedAt, w.UpdatedAt = now, now

	_, err := p.db.ExecContext(ctx,
		`INSERT INTO websites (id, name, description, domain, logo, template_id, owner_id,
		settings, pages, is_active, is_published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		w.ID, w.Name, w.Description, w.Domain, w.Logo, w.TemplateID, w.OwnerID,
		w.Settings, w.Pages, w.IsActive, w.IsPublished, w.CreatedAt, w.UpdatedAt,
	)
	return domainErr(err, "create website")
}

func (p *Postgres) GetWebsite(ctx context.Context, id string) (*models.Website, error) {
	var w models.Website
	if err := p.db.GetContext(ctx, &w, websiteSelect+` WHERE w.id = $1`, id); err != nil {
		return nil, notFound(err, "get website")
	}
	return &w, nil
}

func (p *Postgres) GetWebsiteBySlug(ctx context.Context, slug string) (*models.Website, error) {
	var w models.Website
	err := p.db.GetContext(ctx, &w,
		websiteSelect+` WHERE lower(w.domain) = lower($1) AND w.is_active`, slug)
	if err != nil {
		return nil, notFound(err, "get website by slug")
	}
	return &w, nil
}

func (p *Postgres) ListWebsites(ctx context.Context, ownerID string) ([]models.Website, error) {
	out := []models.Website{}
	err := p.db.SelectContext(ctx, &out,
		websiteSelect+` WHERE w.owner_id = $1 ORDER BY w.created_at DESC`, ownerID)
	return out, errors.Wrap(err, "list websites")
}

func (p *Postgres) ListPublishedWebsites(ctx context.Context) ([]models.Website, error) {
	out := []models.Website{}
	err := p.db.SelectContext(ctx, &out,
		websiteSelect+` WHERE w.is_active AND w.is_published ORDER BY w.created_at DESC`)
	return out, errors.Wrap(err, "list published websites")
}

func (p *Postgres) UpdateWebsite(ctx context.Context, w *models.Website) error {
	w.UpdatedAt = p.now().UTC()

	res, err := p.db.ExecContext(ctx,
		`UPDATE websites SET name = $2, description = $3, domain = $4, logo = $5,
		settings = $6, pages = $7, is_active = $8, is_published = $9, updated_at = $10
		WHERE id = $1`,
		w.ID, w.Name, w.Description, w.Domain, w.Logo,
		w.Settings, w.Pages, w.IsActive, w.IsPublished, w.UpdatedAt,
	)
	if err != nil {
		return domainErr(err, "update website")
	}
	return affected(res, nil, "update website")
}

func (p *Postgres) DeleteWebsite(ctx context.Context, id string) error {
	res, err := p.db.ExecContext(ctx, `DELETE FROM websites WHERE id = $1`, id)
	return affected(res, err, "delete website")
}

func (p *Postgres) ListProducts(ctx context.Context, websiteID string) ([]models.Product, error) {
	out := []models.Product{}
	err := p.db.SelectContext(ctx, &out,
		`SELECT `+productColumns+` FROM products WHERE website_id = $1 AND is_active ORDER BY seq`,
		websiteID)
	return out, errors.Wrap(err, "list products")
}

func (p *Postgres) CreateProduct(ctx context.Context, prod *models.Product) error {
	if prod.ID == "" {
		prod.ID = uuid.NewString()
	}
	now := p.now().UTC()
	prod.CreatedAt, prod.UpdatedAt = now, now

	_, err := p.db.ExecContext(ctx,
		`INSERT INTO products (`+productColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		prod.ID, prod.WebsiteID, prod.Name, prod.Description, prod.Price, prod.CompareAtPrice,
		prod.ImageURL, prod.Category, prod.IsActive, prod.CreatedAt, prod.UpdatedAt,
	)
	return errors.Wrap(err, "create product")
}

func (p *Postgres) Close() error {
	return p.db.Close()
}

func notFound(err error, op string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return errors.Wrap(err, op)
}

func domainErr(err error, op string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation && pqErr.Constraint == domainConstraint {
		return ErrDomainTaken
	}
	return errors.Wrap(err, op)
}

func affected(res sql.Result, err error, op string) error {
	if err != nil {
		return errors.Wrap(err, op)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, op)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
