package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/domain"
	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/repository"
	"github.com/happydigitalmarketings/MangaiyarFreshFoods/pkg/database"
	apperrors "github.com/happydigitalmarketings/MangaiyarFreshFoods/pkg/errors"
)

// ProductRepository implements repository.ProductRepository using PostgreSQL.
// Weight variants, images and categories are stored as JSONB documents.
type ProductRepository struct {
	pool database.DBTX
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool database.DBTX) *ProductRepository {
	return &ProductRepository{pool: pool}
}

const productColumns = `id, title, slug, description, price, mrp, stock, weight, weight_variants, images, categories, created_at, updated_at`

// Create inserts a new product.
func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) error {
	variantsJSON, imagesJSON, categoriesJSON, err := marshalProductDocs(p)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO products (id, title, slug, description, price, mrp, stock, weight, weight_variants, images, categories, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err = r.pool.Exec(ctx, query,
		p.ID,
		p.Title,
		p.Slug,
		p.Description,
		p.Price,
		p.MRP,
		p.Stock,
		p.Weight,
		variantsJSON,
		imagesJSON,
		categoriesJSON,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("product", "slug", p.Slug)
		}
		return fmt.Errorf("insert product: %w", err)
	}

	return nil
}

// GetByID retrieves a product by id.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetBySlug retrieves a product by its URL slug.
func (r *ProductRepository) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE slug = $1`
	return r.getOne(ctx, query, slug)
}

func (r *ProductRepository) getOne(ctx context.Context, query string, arg any) (*domain.Product, error) {
	row := r.pool.QueryRow(ctx, query, arg)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Product", fmt.Sprint(arg))
		}
		return nil, err
	}

	return p, nil
}

// List returns products matching the filter, newest first, with the total
// count. Category matches against the JSONB categories array; search matches
// title and description case-insensitively.
func (r *ProductRepository) List(ctx context.Context, filter repository.ProductFilter) ([]domain.Product, int, error) {
	var (
		conditions []string
		args       []any
		argIndex   = 1
	)

	if filter.Category != nil {
		conditions = append(conditions, fmt.Sprintf("categories ? $%d", argIndex))
		args = append(args, *filter.Category)
		argIndex++
	}

	if filter.Search != nil {
		conditions = append(conditions, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", argIndex, argIndex))
		args = append(args, "%"+*filter.Search+"%")
		argIndex++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT %s, count(*) OVER() AS total_count
		FROM products
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`,
		productColumns, whereClause, argIndex, argIndex+1,
	)

	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}
	offset := 0
	if filter.Page > 1 {
		offset = (filter.Page - 1) * limit
	}

	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var totalCount int
	products := make([]domain.Product, 0)

	for rows.Next() {
		p, err := scanProductWithCount(rows, &totalCount)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate product rows: %w", err)
	}

	return products, totalCount, nil
}

// Update replaces all mutable fields of a product.
func (r *ProductRepository) Update(ctx context.Context, p *domain.Product) error {
	variantsJSON, imagesJSON, categoriesJSON, err := marshalProductDocs(p)
	if err != nil {
		return err
	}

	query := `
		UPDATE products
		SET title = $1, slug = $2, description = $3, price = $4, mrp = $5, stock = $6,
			weight = $7, weight_variants = $8, images = $9, categories = $10, updated_at = $11
		WHERE id = $12`

	ct, err := r.pool.Exec(ctx, query,
		p.Title,
		p.Slug,
		p.Description,
		p.Price,
		p.MRP,
		p.Stock,
		p.Weight,
		variantsJSON,
		imagesJSON,
		categoriesJSON,
		time.Now().UTC(),
		p.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("product", "slug", p.Slug)
		}
		return fmt.Errorf("update product: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("Product", p.ID)
	}

	return nil
}

// Delete removes a product from the catalog. Orders that reference it keep
// their denormalized snapshots; the reference dangles.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("Product", id)
	}

	return nil
}

func marshalProductDocs(p *domain.Product) (variants, images, categories []byte, err error) {
	if p.WeightVariants == nil {
		p.WeightVariants = []domain.WeightVariant{}
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Categories == nil {
		p.Categories = []string{}
	}

	if variants, err = json.Marshal(p.WeightVariants); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal weight variants: %w", err)
	}
	if images, err = json.Marshal(p.Images); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal images: %w", err)
	}
	if categories, err = json.Marshal(p.Categories); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal categories: %w", err)
	}

	return variants, images, categories, nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var (
		p              domain.Product
		variantsJSON   []byte
		imagesJSON     []byte
		categoriesJSON []byte
	)

	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Slug,
		&p.Description,
		&p.Price,
		&p.MRP,
		&p.Stock,
		&p.Weight,
		&variantsJSON,
		&imagesJSON,
		&categoriesJSON,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}

	if err := unmarshalProductDocs(&p, variantsJSON, imagesJSON, categoriesJSON); err != nil {
		return nil, err
	}

	return &p, nil
}

func scanProductWithCount(rows pgx.Rows, totalCount *int) (*domain.Product, error) {
	var (
		p              domain.Product
		variantsJSON   []byte
		imagesJSON     []byte
		categoriesJSON []byte
	)

	err := rows.Scan(
		&p.ID,
		&p.Title,
		&p.Slug,
		&p.Description,
		&p.Price,
		&p.MRP,
		&p.Stock,
		&p.Weight,
		&variantsJSON,
		&imagesJSON,
		&categoriesJSON,
		&p.CreatedAt,
		&p.UpdatedAt,
		totalCount,
	)
	if err != nil {
		return nil, fmt.Errorf("scan product row: %w", err)
	}

	if err := unmarshalProductDocs(&p, variantsJSON, imagesJSON, categoriesJSON); err != nil {
		return nil, err
	}

	return &p, nil
}

func unmarshalProductDocs(p *domain.Product, variantsJSON, imagesJSON, categoriesJSON []byte) error {
	p.WeightVariants = []domain.WeightVariant{}
	if len(variantsJSON) > 0 && string(variantsJSON) != "null" {
		if err := json.Unmarshal(variantsJSON, &p.WeightVariants); err != nil {
			return fmt.Errorf("unmarshal weight variants: %w", err)
		}
	}

	p.Images = []string{}
	if len(imagesJSON) > 0 && string(imagesJSON) != "null" {
		if err := json.Unmarshal(imagesJSON, &p.Images); err != nil {
			return fmt.Errorf("unmarshal images: %w", err)
		}
	}

	p.Categories = []string{}
	if len(categoriesJSON) > 0 && string(categoriesJSON) != "null" {
		if err := json.Unmarshal(categoriesJSON, &p.Categories); err != nil {
			return fmt.Errorf("unmarshal categories: %w", err)
		}
	}

	return nil
}
