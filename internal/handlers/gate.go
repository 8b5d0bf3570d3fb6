package handlers

import (
	"net/http"

	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/utils"

	"github.com/gin-gonic/gin"
)

// The gate is an ordered pipeline of request checks. Each check either
// passes, filling in its output, or writes the response and stops the
// chain. Checks run strictly in the order given, so a request for a
// missing post 404s before any login redirect, and a login redirect
// happens before any ownership error.

type check func(c *gin.Context) bool

func runGate(c *gin.Context, checks ...check) bool {
	for _, ck := range checks {
		if !ck(c) {
			return false
		}
	}
	return true
}

// postExists resolves the :pid route param into *dst, or 404s.
func (h *BlogHandler) postExists(dst **models.Post) check {
	return func(c *gin.Context) bool {
		post, err := h.posts.FindByPid(c.Request.Context(), c.Param("pid"))
		if err != nil {
			RenderError(c, http.StatusNotFound, "That post does not exist")
			return false
		}
		*dst = post
		return true
	}
}

// commentExists resolves the :cid route param into *dst, or 404s.
func (h *BlogHandler) commentExists(dst **models.Comment) check {
	return func(c *gin.Context) bool {
		id := utils.StringToInt(c.Param("cid"))
		if id > 0 {
			comment, err := h.comments.FindByID(c.Request.Context(), uint(id))
			if err == nil {
				*dst = comment
				return true
			}
		}
		RenderError(c, http.StatusNotFound, "That comment does not exist")
		return false
	}
}

// userLoggedIn resolves the session user into *dst, or redirects to the
// login page.
func userLoggedIn(dst **models.User) check {
	return func(c *gin.Context) bool {
		if user, exists := c.Get(middleware.CheckUserKey); exists {
			*dst = user.(*models.User)
			return true
		}
		c.Redirect(http.StatusFound, "/login")
		return false
	}
}

// ownsPost rejects users who are not the post's author.
func ownsPost(post **models.Post, user **models.User, message string) check {
	return func(c *gin.Context) bool {
		if (*post).IsAuthor(*user) {
			return true
		}
		RenderError(c, http.StatusForbidden, message)
		return false
	}
}

// ownsComment rejects users who are not the comment's author.
func ownsComment(comment **models.Comment, user **models.User, message string) check {
	return func(c *gin.Context) bool {
		if (*comment).IsAuthor(*user) {
			return true
		}
		RenderError(c, http.StatusForbidden, message)
		return false
	}
}
