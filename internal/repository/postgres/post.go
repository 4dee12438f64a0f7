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

// PostRepository implements repository.PostRepository using PostgreSQL. Tags
// are stored as a JSONB array.
type PostRepository struct {
	pool database.DBTX
}

// NewPostRepository creates a new PostgreSQL-backed blog post repository.
func NewPostRepository(pool database.DBTX) *PostRepository {
	return &PostRepository{pool: pool}
}

const postColumns = `id, title, slug, content, excerpt, tags, featured_image, author, published_at, created_at, updated_at`

// Create inserts a new blog post.
func (r *PostRepository) Create(ctx context.Context, p *domain.BlogPost) error {
	tagsJSON, err := marshalTags(p)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO posts (id, title, slug, content, excerpt, tags, featured_image, author, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err = r.pool.Exec(ctx, query,
		p.ID, p.Title, p.Slug, p.Content, p.Excerpt, tagsJSON, p.FeaturedImage, p.Author, p.PublishedAt, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("post", "slug", p.Slug)
		}
		return fmt.Errorf("insert post: %w", err)
	}

	return nil
}

// GetBySlugOrID retrieves a post by slug, falling back to id so admin tooling
// can address posts either way.
func (r *PostRepository) GetBySlugOrID(ctx context.Context, slugOrID string) (*domain.BlogPost, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE slug = $1 OR id = $1`

	p, err := scanPost(r.pool.QueryRow(ctx, query, slugOrID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Post", slugOrID)
		}
		return nil, err
	}

	return p, nil
}

// List returns posts matching the filter, newest first, with the total count.
func (r *PostRepository) List(ctx context.Context, filter repository.PostFilter) ([]domain.BlogPost, int, error) {
	var (
		conditions []string
		args       []any
		argIndex   = 1
	)

	if filter.Tag != nil {
		conditions = append(conditions, fmt.Sprintf("tags ? $%d", argIndex))
		args = append(args, *filter.Tag)
		argIndex++
	}

	if filter.PublishedOnly {
		conditions = append(conditions, "published_at IS NOT NULL AND published_at <= NOW()")
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT %s, count(*) OVER() AS total_count
		FROM posts
		%s
		ORDER BY COALESCE(published_at, created_at) DESC
		LIMIT $%d OFFSET $%d`,
		postColumns, whereClause, argIndex, argIndex+1,
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
		return nil, 0, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var totalCount int
	posts := make([]domain.BlogPost, 0)

	for rows.Next() {
		var (
			p        domain.BlogPost
			tagsJSON []byte
		)
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Slug, &p.Content, &p.Excerpt, &tagsJSON, &p.FeaturedImage, &p.Author, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt,
			&totalCount,
		); err != nil {
			return nil, 0, fmt.Errorf("scan post row: %w", err)
		}

		if err := unmarshalTags(&p, tagsJSON); err != nil {
			return nil, 0, err
		}

		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate post rows: %w", err)
	}

	return posts, totalCount, nil
}

// Update replaces all mutable fields of a post.
func (r *PostRepository) Update(ctx context.Context, p *domain.BlogPost) error {
	tagsJSON, err := marshalTags(p)
	if err != nil {
		return err
	}

	query := `
		UPDATE posts
		SET title = $1, slug = $2, content = $3, excerpt = $4, tags = $5, featured_image = $6, author = $7, published_at = $8, updated_at = $9
		WHERE id = $10`

	ct, err := r.pool.Exec(ctx, query,
		p.Title, p.Slug, p.Content, p.Excerpt, tagsJSON, p.FeaturedImage, p.Author, p.PublishedAt, time.Now().UTC(), p.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("post", "slug", p.Slug)
		}
		return fmt.Errorf("update post: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("Post", p.ID)
	}

	return nil
}

// Delete removes a post.
func (r *PostRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("Post", id)
	}

	return nil
}

func marshalTags(p *domain.BlogPost) ([]byte, error) {
	if p.Tags == nil {
		p.Tags = []string{}
	}
	tagsJSON, err := json.Marshal(p.Tags)
	if err != nil {
		return nil, fmt.Errorf("marshal tags: %w", err)
	}
	return tagsJSON, nil
}

func unmarshalTags(p *domain.BlogPost, tagsJSON []byte) error {
	p.Tags = []string{}
	if len(tagsJSON) > 0 && string(tagsJSON) != "null" {
		if err := json.Unmarshal(tagsJSON, &p.Tags); err != nil {
			return fmt.Errorf("unmarshal tags: %w", err)
		}
	}
	return nil
}

func scanPost(row pgx.Row) (*domain.BlogPost, error) {
	var (
		p        domain.BlogPost
		tagsJSON []byte
	)

	err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Content, &p.Excerpt, &tagsJSON, &p.FeaturedImage, &p.Author, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, fmt.Errorf("scan post: %w", err)
	}

	if err := unmarshalTags(&p, tagsJSON); err != nil {
		return nil, err
	}

	return &p, nil
}
