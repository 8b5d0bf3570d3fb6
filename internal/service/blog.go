package service

import (
	"context"
	"errors"

	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/utils"

	"github.com/sirupsen/logrus"
)

// BlogService enforces the invariants on post and comment mutations.
// All methods return *utils.AppError values for invariant violations.
type BlogService struct {
	posts    repository.PostRepository
	comments repository.CommentRepository
}

func NewBlogService(posts repository.PostRepository, comments repository.CommentRepository) *BlogService {
	return &BlogService{posts: posts, comments: comments}
}

// CreatePost persists a new post owned by author, with no likes and no
// comments, and returns it.
func (s *BlogService) CreatePost(ctx context.Context, author *models.User, subject, content string) (*models.Post, error) {
	if subject == "" {
		return nil, utils.NewValidationError("Please enter a subject")
	}
	if content == "" {
		return nil, utils.NewValidationError("Please enter some content")
	}

	post := &models.Post{
		Pid:        utils.RandStringBytesMaskImpr(8),
		UserID:     author.ID,
		Subject:    subject,
		Content:    content,
		Likes:      []uint{},
		CommentIDs: []uint{},
	}
	if err := s.posts.Save(ctx, post); err != nil {
		return nil, utils.NewDatabaseError(err)
	}

	logrus.WithFields(logrus.Fields{"post_id": post.ID, "user_id": author.ID}).Info("post created")
	return post, nil
}

// EditPost overwrites subject and content in place. Only the author may
// edit; the creation timestamp is untouched.
func (s *BlogService) EditPost(ctx context.Context, post *models.Post, editor *models.User, subject, content string) error {
	if !post.IsAuthor(editor) {
		return utils.NewForbiddenError("Users can only edit their own posts")
	}
	if subject == "" {
		return utils.NewValidationError("Please enter a subject")
	}
	if content == "" {
		return utils.NewValidationError("Please enter some content")
	}

	post.Subject = subject
	post.Content = content
	if err := s.posts.Save(ctx, post); err != nil {
		return utils.NewDatabaseError(err)
	}
	return nil
}

// DeletePost removes the post and every comment it references. The
// cascade is fail-fast: if any comment delete fails, the post and the
// remaining comments are left intact.
func (s *BlogService) DeletePost(ctx context.Context, post *models.Post, editor *models.User) error {
	if !post.IsAuthor(editor) {
		return utils.NewForbiddenError("Users can only delete their own posts")
	}

	for _, cid := range post.CommentIDs {
		comment, err := s.comments.FindByID(ctx, cid)
		if errors.Is(err, repository.ErrNotFound) {
			// Already gone; a dangling id is not a reason to keep the post.
			continue
		}
		if err != nil {
			return utils.NewDatabaseError(err)
		}
		if err := s.comments.Delete(ctx, comment); err != nil {
			return utils.NewDatabaseError(err)
		}
	}

	if err := s.posts.Delete(ctx, post); err != nil {
		return utils.NewDatabaseError(err)
	}

	logrus.WithFields(logrus.Fields{"post_id": post.ID, "user_id": editor.ID}).Info("post deleted")
	return nil
}

// LikePost records a like from liker. Authors cannot like their own
// posts and a user can like a given post at most once.
func (s *BlogService) LikePost(ctx context.Context, post *models.Post, liker *models.User) error {
	if post.IsAuthor(liker) {
		return utils.NewForbiddenError("Authors aren't permitted to like their own posts")
	}
	if post.HasLiked(liker.ID) {
		return utils.NewAppError(utils.ErrDuplicateLike, "Users are only permitted to like a post once", nil)
	}

	post.AddLike(liker.ID)
	if err := s.posts.Save(ctx, post); err != nil {
		return utils.NewDatabaseError(err)
	}
	return nil
}

// AddComment creates a comment on the given post and appends its id to
// the post's comment list. The comment is written first and the post
// second; a crash in between leaves an unlinked comment behind.
func (s *BlogService) AddComment(ctx context.Context, postID uint, author *models.User, text string) (*models.Comment, error) {
	if text == "" {
		return nil, utils.NewValidationError("Please enter a comment")
	}

	post, err := s.posts.FindByID(ctx, postID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, utils.NewNotFoundError("That post does not exist")
	}
	if err != nil {
		return nil, utils.NewDatabaseError(err)
	}

	comment := &models.Comment{
		PostID: post.ID,
		UserID: author.ID,
		Text:   text,
	}
	if err := s.comments.Save(ctx, comment); err != nil {
		return nil, utils.NewDatabaseError(err)
	}

	post.AddCommentID(comment.ID)
	if err := s.posts.Save(ctx, post); err != nil {
		return nil, utils.NewDatabaseError(err)
	}

	logrus.WithFields(logrus.Fields{"comment_id": comment.ID, "post_id": post.ID, "user_id": author.ID}).Info("comment created")
	return comment, nil
}

// EditComment overwrites the comment text. Only the comment's author may
// edit it.
func (s *BlogService) EditComment(ctx context.Context, comment *models.Comment, editor *models.User, text string) error {
	if !comment.IsAuthor(editor) {
		return utils.NewForbiddenError("Users can only edit comments they themselves have made")
	}
	if text == "" {
		return utils.NewValidationError("Please enter a comment")
	}

	comment.Text = text
	if err := s.comments.Save(ctx, comment); err != nil {
		return utils.NewDatabaseError(err)
	}
	return nil
}

// DeleteComment unlinks the comment from its post and deletes the record.
// The two writes are separate; the unlink happens first so a failure
// never leaves the post listing a deleted comment.
func (s *BlogService) DeleteComment(ctx context.Context, post *models.Post, comment *models.Comment, editor *models.User) error {
	if !comment.IsAuthor(editor) {
		return utils.NewForbiddenError("Users can only delete comments they have made")
	}

	post.RemoveCommentID(comment.ID)
	if err := s.posts.Save(ctx, post); err != nil {
		return utils.NewDatabaseError(err)
	}
	if err := s.comments.Delete(ctx, comment); err != nil {
		return utils.NewDatabaseError(err)
	}
	return nil
}
