package handlers

import (
	"html/template"
	"net/http"
	"time"

	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/service"
	"inkwell/internal/utils"

	"github.com/gin-gonic/gin"
)

const frontPageCacheKey = "blog:front"

type BlogHandler struct {
	blog     *service.BlogService
	posts    repository.PostRepository
	comments repository.CommentRepository
}

func NewBlogHandler(blog *service.BlogService, posts repository.PostRepository, comments repository.CommentRepository) *BlogHandler {
	return &BlogHandler{blog: blog, posts: posts, comments: comments}
}

type listEntry struct {
	models.Post
	ContentHTML template.HTML
}

// List is the front page: the ten most recent posts. The rendered
// entries are cached; Render adds per-request fields, so the cache
// holds the slice rather than the whole template payload.
func (h *BlogHandler) List(c *gin.Context) {
	if cached := utils.GetCache().Get(frontPageCacheKey); cached != nil {
		if entries, ok := cached.([]listEntry); ok {
			Render(c, http.StatusOK, "blog/list.html", gin.H{
				"Posts": entries,
				"Title": "inkwell",
			})
			return
		}
	}

	posts, err := h.posts.Recent(c.Request.Context(), 10)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to load posts")
		return
	}

	entries := make([]listEntry, len(posts))
	for i, post := range posts {
		entries[i] = listEntry{Post: post, ContentHTML: utils.RenderMarkdown(post.Content)}
	}
	utils.GetCache().Set(frontPageCacheKey, entries, 1*time.Minute)

	Render(c, http.StatusOK, "blog/list.html", gin.H{
		"Posts": entries,
		"Title": "inkwell",
	})
}

// renderPermalink renders the post page, optionally with an error banner.
// The like handler reuses it to show invariant violations inline, the way
// the rest of the page already does.
func (h *BlogHandler) renderPermalink(c *gin.Context, post *models.Post, code int, errMsg string) {
	comments, err := h.comments.FindByIDs(c.Request.Context(), post.CommentIDs)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to load comments")
		return
	}

	type commentEntry struct {
		models.Comment
		TextHTML template.HTML
	}
	entries := make([]commentEntry, len(comments))
	for i, comment := range comments {
		entries[i] = commentEntry{Comment: comment, TextHTML: utils.RenderMarkdown(comment.Text)}
	}

	data := gin.H{
		"Post":        post,
		"PostContent": utils.RenderMarkdown(post.Content),
		"Comments":    entries,
		"LikeCount":   post.LikeCount(),
		"Title":       post.Subject,
	}
	if errMsg != "" {
		data["Error"] = errMsg
	}
	Render(c, code, "blog/permalink.html", data)
}

// Detail is the permalink page for a single post.
func (h *BlogHandler) Detail(c *gin.Context) {
	var post *models.Post
	if !runGate(c, h.postExists(&post)) {
		return
	}
	h.renderPermalink(c, post, http.StatusOK, "")
}

func (h *BlogHandler) ShowCreate(c *gin.Context) {
	Render(c, http.StatusOK, "blog/create.html", gin.H{"Title": "New post"})
}

func (h *BlogHandler) Create(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	subject := c.PostForm("subject")
	content := c.PostForm("content")

	post, err := h.blog.CreatePost(c.Request.Context(), user, subject, content)
	if err != nil {
		if utils.IsErrorCode(err, utils.ErrValidation) {
			Render(c, http.StatusBadRequest, "blog/create.html", gin.H{
				"Error":   err.Error(),
				"Subject": subject,
				"Content": content,
			})
			return
		}
		RenderError(c, http.StatusInternalServerError, "Failed to create post")
		return
	}

	utils.GetCache().Delete(frontPageCacheKey)
	c.Redirect(http.StatusFound, "/p/"+post.Pid)
}

func (h *BlogHandler) ShowEdit(c *gin.Context) {
	var (
		post *models.Post
		user *models.User
	)
	if !runGate(c,
		h.postExists(&post),
		userLoggedIn(&user),
		ownsPost(&post, &user, "Users can only edit their own posts"),
	) {
		return
	}

	Render(c, http.StatusOK, "blog/edit.html", gin.H{
		"Title": "Edit post",
		"Post":  post,
	})
}

func (h *BlogHandler) Update(c *gin.Context) {
	var (
		post *models.Post
		user *models.User
	)
	if !runGate(c, h.postExists(&post), userLoggedIn(&user)) {
		return
	}

	subject := c.PostForm("subject")
	content := c.PostForm("content")

	err := h.blog.EditPost(c.Request.Context(), post, user, subject, content)
	if err != nil {
		switch {
		case utils.IsErrorCode(err, utils.ErrForbidden):
			RenderError(c, http.StatusForbidden, err.Error())
		case utils.IsErrorCode(err, utils.ErrValidation):
			Render(c, http.StatusBadRequest, "blog/edit.html", gin.H{
				"Error": err.Error(),
				"Post":  post,
			})
		default:
			RenderError(c, http.StatusInternalServerError, "Failed to save post")
		}
		return
	}

	utils.GetCache().Delete(frontPageCacheKey)
	c.Redirect(http.StatusFound, "/p/"+post.Pid)
}

func (h *BlogHandler) Delete(c *gin.Context) {
	var (
		post *models.Post
		user *models.User
	)
	if !runGate(c, h.postExists(&post), userLoggedIn(&user)) {
		return
	}

	if err := h.blog.DeletePost(c.Request.Context(), post, user); err != nil {
		if utils.IsErrorCode(err, utils.ErrForbidden) {
			h.renderPermalink(c, post, http.StatusForbidden, err.Error())
			return
		}
		RenderError(c, http.StatusInternalServerError, "Failed to delete post")
		return
	}

	utils.GetCache().Delete(frontPageCacheKey)
	c.Redirect(http.StatusFound, "/welcome")
}

// Like records a like; rule violations re-render the permalink with an
// inline error message.
func (h *BlogHandler) Like(c *gin.Context) {
	var (
		post *models.Post
		user *models.User
	)
	if !runGate(c, h.postExists(&post), userLoggedIn(&user)) {
		return
	}

	if err := h.blog.LikePost(c.Request.Context(), post, user); err != nil {
		if utils.IsErrorCode(err, utils.ErrForbidden) || utils.IsErrorCode(err, utils.ErrDuplicateLike) {
			h.renderPermalink(c, post, http.StatusForbidden, err.Error())
			return
		}
		RenderError(c, http.StatusInternalServerError, "Failed to like post")
		return
	}

	c.Redirect(http.StatusFound, "/p/"+post.Pid)
}

func (h *BlogHandler) ShowComment(c *gin.Context) {
	var (
		post *models.Post
		user *models.User
	)
	if !runGate(c, h.postExists(&post), userLoggedIn(&user)) {
		return
	}

	Render(c, http.StatusOK, "blog/comment.html", gin.H{
		"Title": "New comment",
		"Post":  post,
	})
}

func (h *BlogHandler) CreateComment(c *gin.Context) {
	var (
		post *models.Post
		user *models.User
	)
	if !runGate(c, h.postExists(&post), userLoggedIn(&user)) {
		return
	}

	text := c.PostForm("comment")
	_, err := h.blog.AddComment(c.Request.Context(), post.ID, user, text)
	if err != nil {
		switch {
		case utils.IsErrorCode(err, utils.ErrValidation):
			Render(c, http.StatusBadRequest, "blog/comment.html", gin.H{
				"Error": err.Error(),
				"Post":  post,
			})
		case utils.IsErrorCode(err, utils.ErrNotFound):
			RenderError(c, http.StatusNotFound, err.Error())
		default:
			RenderError(c, http.StatusInternalServerError, "Failed to save comment")
		}
		return
	}

	c.Redirect(http.StatusFound, "/p/"+post.Pid)
}

// parentPost resolves the post a comment belongs to. The comment list on
// the post is maintained by the blog service, so the reference should
// always resolve; a dangling one is reported as not found.
func (h *BlogHandler) parentPost(c *gin.Context, comment *models.Comment) (*models.Post, bool) {
	post, err := h.posts.FindByID(c.Request.Context(), comment.PostID)
	if err != nil {
		RenderError(c, http.StatusNotFound, "That post does not exist")
		return nil, false
	}
	return post, true
}

func (h *BlogHandler) ShowEditComment(c *gin.Context) {
	var (
		comment *models.Comment
		user    *models.User
	)
	if !runGate(c,
		h.commentExists(&comment),
		userLoggedIn(&user),
		ownsComment(&comment, &user, "Users can only edit comments they themselves have made"),
	) {
		return
	}
	post, ok := h.parentPost(c, comment)
	if !ok {
		return
	}

	Render(c, http.StatusOK, "blog/comment.html", gin.H{
		"Title":   "Edit comment",
		"Post":    post,
		"Comment": comment,
	})
}

func (h *BlogHandler) UpdateComment(c *gin.Context) {
	var (
		comment *models.Comment
		user    *models.User
	)
	if !runGate(c, h.commentExists(&comment), userLoggedIn(&user)) {
		return
	}
	post, ok := h.parentPost(c, comment)
	if !ok {
		return
	}

	text := c.PostForm("comment")
	err := h.blog.EditComment(c.Request.Context(), comment, user, text)
	if err != nil {
		switch {
		case utils.IsErrorCode(err, utils.ErrForbidden):
			RenderError(c, http.StatusForbidden, err.Error())
		case utils.IsErrorCode(err, utils.ErrValidation):
			Render(c, http.StatusBadRequest, "blog/comment.html", gin.H{
				"Error":   err.Error(),
				"Post":    post,
				"Comment": comment,
			})
		default:
			RenderError(c, http.StatusInternalServerError, "Failed to save comment")
		}
		return
	}

	c.Redirect(http.StatusFound, "/p/"+post.Pid)
}

func (h *BlogHandler) DeleteComment(c *gin.Context) {
	var (
		comment *models.Comment
		user    *models.User
	)
	if !runGate(c, h.commentExists(&comment), userLoggedIn(&user)) {
		return
	}
	post, ok := h.parentPost(c, comment)
	if !ok {
		return
	}

	if err := h.blog.DeleteComment(c.Request.Context(), post, comment, user); err != nil {
		if utils.IsErrorCode(err, utils.ErrForbidden) {
			RenderError(c, http.StatusForbidden, err.Error())
			return
		}
		RenderError(c, http.StatusInternalServerError, "Failed to delete comment")
		return
	}

	c.Redirect(http.StatusFound, "/p/"+post.Pid)
}
