package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/domain"
	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/repository"
	apperrors "github.com/happydigitalmarketings/MangaiyarFreshFoods/pkg/errors"
	"github.com/happydigitalmarketings/MangaiyarFreshFoods/pkg/slug"
)

// BlogService manages storefront blog posts.
type BlogService struct {
	repo   repository.PostRepository
	logger *slog.Logger
}

// NewBlogService creates a new blog service.
func NewBlogService(repo repository.PostRepository, logger *slog.Logger) *BlogService {
	return &BlogService{repo: repo, logger: logger}
}

// PostInput holds the parameters for creating or updating a blog post.
type PostInput struct {
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	Excerpt       string   `json:"excerpt"`
	Tags          []string `json:"tags"`
	FeaturedImage string   `json:"featuredImage"`
	Author        string   `json:"author"`
	Published     *bool    `json:"published"`
}

// CreatePost adds a blog post. Posts publish immediately unless the payload
// marks them as drafts.
func (s *BlogService) CreatePost(ctx context.Context, input PostInput) (*domain.BlogPost, error) {
	if input.Title == "" {
		return nil, apperrors.InvalidInput("Title is required")
	}
	if input.Content == "" {
		return nil, apperrors.InvalidInput("Content is required")
	}

	now := time.Now().UTC()
	post := &domain.BlogPost{
		ID:            uuid.New().String(),
		Title:         input.Title,
		Slug:          slug.Generate(input.Title),
		Content:       input.Content,
		Excerpt:       input.Excerpt,
		Tags:          input.Tags,
		FeaturedImage: input.FeaturedImage,
		Author:        input.Author,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if input.Published == nil || *input.Published {
		publishedAt := now
		post.PublishedAt = &publishedAt
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	s.logger.InfoContext(ctx, "blog post created",
		slog.String("post_id", post.ID),
		slog.String("slug", post.Slug),
	)

	return post, nil
}

// GetPost retrieves a post by slug, falling back to id lookup for admin
// clients that address posts by id.
func (s *BlogService) GetPost(ctx context.Context, slugOrID string) (*domain.BlogPost, error) {
	post, err := s.repo.GetBySlugOrID(ctx, slugOrID)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	return post, nil
}

// ListPosts returns a filtered, paginated page of posts.
func (s *BlogService) ListPosts(ctx context.Context, filter repository.PostFilter) ([]domain.BlogPost, int, error) {
	posts, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list posts: %w", err)
	}
	return posts, total, nil
}

// UpdatePost patches a post's editable fields. The slug is regenerated when
// the title changes.
func (s *BlogService) UpdatePost(ctx context.Context, slugOrID string, input PostInput) (*domain.BlogPost, error) {
	post, err := s.repo.GetBySlugOrID(ctx, slugOrID)
	if err != nil {
		return nil, fmt.Errorf("get post for update: %w", err)
	}

	if input.Title != "" && input.Title != post.Title {
		post.Title = input.Title
		post.Slug = slug.Generate(input.Title)
	}
	if input.Content != "" {
		post.Content = input.Content
	}
	post.Excerpt = input.Excerpt
	if input.Tags != nil {
		post.Tags = input.Tags
	}
	post.FeaturedImage = input.FeaturedImage
	if input.Author != "" {
		post.Author = input.Author
	}
	if input.Published != nil {
		if *input.Published {
			if post.PublishedAt == nil {
				now := time.Now().UTC()
				post.PublishedAt = &now
			}
		} else {
			post.PublishedAt = nil
		}
	}
	post.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}

	s.logger.InfoContext(ctx, "blog post updated", slog.String("post_id", post.ID))
	return post, nil
}

// DeletePost removes a blog post.
func (s *BlogService) DeletePost(ctx context.Context, slugOrID string) error {
	post, err := s.repo.GetBySlugOrID(ctx, slugOrID)
	if err != nil {
		return fmt.Errorf("get post for delete: %w", err)
	}

	if err := s.repo.Delete(ctx, post.ID); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	s.logger.InfoContext(ctx, "blog post deleted", slog.String("post_id", post.ID))
	return nil
}
