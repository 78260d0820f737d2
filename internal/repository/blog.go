package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/la121/consultants-api/internal/entity"
)

// ErrBlogPostNotFound is returned when no post matches the identifier.
var ErrBlogPostNotFound = errors.New("blog post not found")

// BlogRepository declares persistence operations for articles.
type BlogRepository interface {
	List(ctx context.Context, publishedOnly bool) ([]entity.BlogPost, error)
	Create(ctx context.Context, title, slug, content string, published bool) (*entity.BlogPost, error)
	Update(ctx context.Context, id uuid.UUID, title, slug, content *string, published *bool) (*entity.BlogPost, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PGXBlogRepository implements BlogRepository with pgx.
type PGXBlogRepository struct {
	pool pgxPool
}

// NewPGXBlogRepository instantiates a blog repository.
func NewPGXBlogRepository(pool *pgxpool.Pool) *PGXBlogRepository {
	return &PGXBlogRepository{pool: pool}
}

const blogColumns = `id, title, slug, content, published, created_at, updated_at`

// List returns posts newest first, optionally published only.
func (r *PGXBlogRepository) List(ctx context.Context, publishedOnly bool) ([]entity.BlogPost, error) {
	query := `SELECT ` + blogColumns + ` FROM blog_posts`
	if publishedOnly {
		query += ` WHERE published = TRUE`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	defer rows.Close()

	var posts []entity.BlogPost
	for rows.Next() {
		var post entity.BlogPost
		err := rows.Scan(&post.ID, &post.Title, &post.Slug, &post.Content, &post.Published, &post.CreatedAt, &post.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan blog row: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate blog posts: %w", err)
	}
	return posts, nil
}

// Create inserts an article.
func (r *PGXBlogRepository) Create(ctx context.Context, title, slug, content string, published bool) (*entity.BlogPost, error) {
	row := r.pool.QueryRow(ctx, `
        INSERT INTO blog_posts (title, slug, content, published)
        VALUES ($1, $2, $3, $4)
        RETURNING `+blogColumns+`
    `, title, slug, content, published)

	var post entity.BlogPost
	if err := row.Scan(&post.ID, &post.Title, &post.Slug, &post.Content, &post.Published, &post.CreatedAt, &post.UpdatedAt); err != nil {
		return nil, fmt.Errorf("insert blog post: %w", err)
	}
	return &post, nil
}

// Update patches the provided fields only.
func (r *PGXBlogRepository) Update(ctx context.Context, id uuid.UUID, title, slug, content *string, published *bool) (*entity.BlogPost, error) {
	setClauses := make([]string, 0)
	args := make([]any, 0)
	idx := 1

	if title != nil {
		setClauses = append(setClauses, fmt.Sprintf("title = $%d", idx))
		args = append(args, *title)
		idx++
	}
	if slug != nil {
		setClauses = append(setClauses, fmt.Sprintf("slug = $%d", idx))
		args = append(args, *slug)
		idx++
	}
	if content != nil {
		setClauses = append(setClauses, fmt.Sprintf("content = $%d", idx))
		args = append(args, *content)
		idx++
	}
	if published != nil {
		setClauses = append(setClauses, fmt.Sprintf("published = $%d", idx))
		args = append(args, *published)
		idx++
	}

	if len(setClauses) == 0 {
		return nil, errors.New("no fields to update")
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE blog_posts SET %s WHERE id = $%d RETURNING `+blogColumns,
		strings.Join(setClauses, ", "), idx)

	var post entity.BlogPost
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&post.ID, &post.Title, &post.Slug, &post.Content, &post.Published, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBlogPostNotFound
		}
		return nil, fmt.Errorf("update blog post: %w", err)
	}
	return &post, nil
}

// Delete removes a post by id.
func (r *PGXBlogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete blog post: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrBlogPostNotFound
	}
	return nil
}
