package service

import (
	"context"
	"testing"

	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/repository/memory"
	"inkwell/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blogFixture struct {
	store *memory.Store
	blog  *BlogService
	alice *models.User
	bob   *models.User
}

func newBlogFixture(t *testing.T) *blogFixture {
	t.Helper()
	store := memory.NewStore()
	users := NewUserService(store.Users())
	ctx := context.Background()

	alice, err := users.Register(ctx, "alice", "secret123", "")
	require.NoError(t, err)
	bob, err := users.Register(ctx, "bob", "secret456", "")
	require.NoError(t, err)

	return &blogFixture{
		store: store,
		blog:  NewBlogService(store.Posts(), store.Comments()),
		alice: alice,
		bob:   bob,
	}
}

func TestCreatePost(t *testing.T) {
	f := newBlogFixture(t)
	ctx := context.Background()

	post, err := f.blog.CreatePost(ctx, f.alice, "Hello", "World")
	require.NoError(t, err)
	assert.NotZero(t, post.ID)
	assert.Len(t, post.Pid, 8)
	assert.Equal(t, f.alice.ID, post.UserID)
	assert.Equal(t, 0, post.LikeCount())
	assert.Equal(t, 0, post.CommentCount())

	got, err := f.store.Posts().FindByPid(ctx, post.Pid)
	require.NoError(t, err)
	assert.Equal(t, "Hello", got.Subject)
}

func TestCreatePostValidation(t *testing.T) {
	f := newBlogFixture(t)
	ctx := context.Background()

	_, err := f.blog.CreatePost(ctx, f.alice, "", "World")
	assert.True(t, utils.IsErrorCode(err, utils.ErrValidation))

	_, err = f.blog.CreatePost(ctx, f.alice, "Hello", "")
	assert.True(t, utils.IsErrorCode(err, utils.ErrValidation))
}

func TestEditPostOwnership(t *testing.T) {
	f := newBlogFixture(t)
	ctx := context.Background()

	post, err := f.blog.CreatePost(ctx, f.alice, "Hello", "World")
	require.NoError(t, err)
	created := post.CreatedAt

	err = f.blog.EditPost(ctx, post, f.bob, "Hacked", "Hacked")
	assert.True(t, utils.IsErrorCode(err, utils.ErrForbidden))

	// A nil editor is simply not the author, not an error case.
	err = f.blog.EditPost(ctx, post, nil, "Hacked", "Hacked")
	assert.True(t, utils.IsErrorCode(err, utils.ErrForbidden))

	err = f.blog.EditPost(ctx, post, f.alice, "Hello again", "World again")
	require.NoError(t, err)

	got, err := f.store.Posts().FindByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello again", got.Subject)
	assert.Equal(t, "World again", got.Content)
	assert.True(t, got.CreatedAt.Equal(created), "creation timestamp must not change on edit")
}

func TestLikePostRules(t *testing.T) {
	f := newBlogFixture(t)
	ctx := context.Background()

	post, err := f.blog.CreatePost(ctx, f.alice, "Hello", "World")
	require.NoError(t, err)

	// Authors cannot like their own posts.
	err = f.blog.LikePost(ctx, post, f.alice)
	assert.True(t, utils.IsErrorCode(err, utils.ErrForbidden))
	assert.Equal(t, 0, post.LikeCount())

	// First like from another user succeeds.
	err = f.blog.LikePost(ctx, post, f.bob)
	require.NoError(t, err)
	assert.Equal(t, 1, post.LikeCount())

	// Second like from the same user is rejected.
	err = f.blog.LikePost(ctx, post, f.bob)
	assert.True(t, utils.IsErrorCode(err, utils.ErrDuplicateLike))

	got, err := f.store.Posts().FindByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.LikeCount())
}

func TestAddComment(t *testing.T) {
	f := newBlogFixture(t)
	ctx := context.Background()

	post, err := f.blog.CreatePost(ctx, f.alice, "Hello", "World")
	require.NoError(t, err)

	first, err := f.blog.AddComment(ctx, post.ID, f.bob, "first!")
	require.NoError(t, err)
	second, err := f.blog.AddComment(ctx, post.ID, f.alice, "thanks")
	require.NoError(t, err)

	got, err := f.store.Posts().FindByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{first.ID, second.ID}, got.CommentIDs, "comment ids keep creation order")

	comments, err := f.store.Comments().FindByIDs(ctx, got.CommentIDs)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first!", comments[0].Text)
	assert.Equal(t, "thanks", comments[1].Text)
}

func TestAddCommentErrors(t *testing.T) {
	f := newBlogFixture(t)
	ctx := context.Background()

	post, err := f.blog.CreatePost(ctx, f.alice, "Hello", "World")
	require.NoError(t, err)

	_, err = f.blog.AddComment(ctx, post.ID, f.bob, "")
	assert.True(t, utils.IsErrorCode(err, utils.ErrValidation))

	_, err = f.blog.AddComment(ctx, post.ID+100, f.bob, "hi")
	assert.True(t, utils.IsErrorCode(err, utils.ErrNotFound))
}

func TestEditCommentOwnership(t *testing.T) {
	f := newBlogFixture(t)
	ctx := context.Background()

	post, err := f.blog.CreatePost(ctx, f.alice, "Hello", "World")
	require.NoError(t, err)
	comment, err := f.blog.AddComment(ctx, post.ID, f.alice, "original")
	require.NoError(t, err)

	err = f.blog.EditComment(ctx, comment, f.bob, "text")
	assert.True(t, utils.IsErrorCode(err, utils.ErrForbidden))

	err = f.blog.EditComment(ctx, comment, f.alice, "text")
	require.NoError(t, err)

	got, err := f.store.Comments().FindByID(ctx, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "text", got.Text)
}

func TestDeleteComment(t *testing.T) {
	f := newBlogFixture(t)
	ctx := context.Background()

	post, err := f.blog.CreatePost(ctx, f.alice, "Hello", "World")
	require.NoError(t, err)
	keep, err := f.blog.AddComment(ctx, post.ID, f.bob, "keep me")
	require.NoError(t, err)
	drop, err := f.blog.AddComment(ctx, post.ID, f.bob, "drop me")
	require.NoError(t, err)

	post, err = f.store.Posts().FindByID(ctx, post.ID)
	require.NoError(t, err)

	err = f.blog.DeleteComment(ctx, post, drop, f.alice)
	assert.True(t, utils.IsErrorCode(err, utils.ErrForbidden), "only the comment author may delete")

	err = f.blog.DeleteComment(ctx, post, drop, f.bob)
	require.NoError(t, err)

	_, err = f.store.Comments().FindByID(ctx, drop.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	got, err := f.store.Posts().FindByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{keep.ID}, got.CommentIDs)
}

func TestDeletePostCascades(t *testing.T) {
	f := newBlogFixture(t)
	ctx := context.Background()

	post, err := f.blog.CreatePost(ctx, f.alice, "Hello", "World")
	require.NoError(t, err)
	c1, err := f.blog.AddComment(ctx, post.ID, f.bob, "one")
	require.NoError(t, err)
	c2, err := f.blog.AddComment(ctx, post.ID, f.bob, "two")
	require.NoError(t, err)

	post, err = f.store.Posts().FindByID(ctx, post.ID)
	require.NoError(t, err)

	err = f.blog.DeletePost(ctx, post, f.bob)
	assert.True(t, utils.IsErrorCode(err, utils.ErrForbidden), "only the post author may delete")

	err = f.blog.DeletePost(ctx, post, f.alice)
	require.NoError(t, err)

	_, err = f.store.Posts().FindByID(ctx, post.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = f.store.Comments().FindByID(ctx, c1.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = f.store.Comments().FindByID(ctx, c2.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRecentOrder(t *testing.T) {
	f := newBlogFixture(t)
	ctx := context.Background()

	p1, err := f.blog.CreatePost(ctx, f.alice, "first", "body")
	require.NoError(t, err)
	p2, err := f.blog.CreatePost(ctx, f.alice, "second", "body")
	require.NoError(t, err)

	posts, err := f.store.Posts().Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, p2.ID, posts[0].ID, "newest first")
	assert.Equal(t, p1.ID, posts[1].ID)
}
