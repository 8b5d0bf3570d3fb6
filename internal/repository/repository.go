package repository

import (
	"context"

	"inkwell/internal/models"
)

// UserRepository stores and retrieves registered users.
type UserRepository interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
	// FindByUsername returns the first user with the given name, or
	// ErrNotFound.
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	// Save creates the user when its ID is zero and updates it otherwise.
	Save(ctx context.Context, user *models.User) error
}

// PostRepository stores and retrieves blog posts.
type PostRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Post, error)
	FindByPid(ctx context.Context, pid string) (*models.Post, error)
	// Recent returns up to limit posts, newest first.
	Recent(ctx context.Context, limit int) ([]models.Post, error)
	// ByUser returns the user's posts, newest first.
	ByUser(ctx context.Context, userID uint) ([]models.Post, error)
	Save(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, post *models.Post) error
}

// CommentRepository stores and retrieves comments.
type CommentRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Comment, error)
	// FindByIDs looks up comments in the order given, silently skipping ids
	// that no longer resolve.
	FindByIDs(ctx context.Context, ids []uint) ([]models.Comment, error)
	Save(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, comment *models.Comment) error
}
