package handlers

import (
	"net/http"

	"inkwell/internal/auth"
	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/service"
	"inkwell/internal/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	users  *service.UserService
	posts  repository.PostRepository
	signer *auth.CookieSigner
}

func NewAuthHandler(users *service.UserService, posts repository.PostRepository, signer *auth.CookieSigner) *AuthHandler {
	return &AuthHandler{users: users, posts: posts, signer: signer}
}

// setSessionCookie issues the signed identity cookie. Path=/ and no
// expiry; the token stays valid until the signing key changes.
func (h *AuthHandler) setSessionCookie(c *gin.Context, user *models.User) {
	token := h.signer.Sign(utils.UintToString(user.ID))
	c.SetCookie(middleware.SessionCookieName, token, 0, "/", "", false, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	Render(c, http.StatusOK, "auth/signup.html", nil)
}

func (h *AuthHandler) Register(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	verify := c.PostForm("verify")
	email := c.PostForm("email")

	data := gin.H{"Username": username, "Email": email}
	inputError := false
	if !utils.ValidUsername(username) {
		data["UserError"] = "That's not a valid username"
		inputError = true
	}
	if !utils.ValidPassword(password) {
		data["PasswdError"] = "That wasn't a valid password"
		inputError = true
	} else if password != verify {
		data["VerifyError"] = "Your passwords didn't match"
		inputError = true
	}
	if !utils.ValidEmail(email) {
		data["EmailError"] = "That's not a valid email"
		inputError = true
	}
	if inputError {
		Render(c, http.StatusBadRequest, "auth/signup.html", data)
		return
	}

	user, err := h.users.Register(c.Request.Context(), username, password, email)
	if err != nil {
		if utils.IsErrorCode(err, utils.ErrUserExists) {
			data["UserError"] = "The user already exists"
			Render(c, http.StatusConflict, "auth/signup.html", data)
			return
		}
		RenderError(c, http.StatusInternalServerError, "Signup failed, please try again")
		return
	}

	h.setSessionCookie(c, user)
	c.Redirect(http.StatusFound, "/welcome")
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	Render(c, http.StatusOK, "auth/login.html", nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := h.users.Authenticate(c.Request.Context(), username, password)
	if err != nil {
		if utils.IsErrorCode(err, utils.ErrInvalidCredentials) {
			Render(c, http.StatusUnauthorized, "auth/login.html", gin.H{
				"Username": username,
				"Error":    "Invalid login",
			})
			return
		}
		RenderError(c, http.StatusInternalServerError, "Login failed, please try again")
		return
	}

	h.setSessionCookie(c, user)
	c.Redirect(http.StatusFound, "/welcome")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	clearSessionCookie(c)
	c.Redirect(http.StatusFound, "/login")
}

// Welcome shows the logged-in user's page with their own posts.
func (h *AuthHandler) Welcome(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	posts, err := h.posts.ByUser(c.Request.Context(), user.ID)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to load your posts")
		return
	}

	Render(c, http.StatusOK, "auth/welcome.html", gin.H{
		"Title": "Welcome, " + user.Username,
		"Posts": posts,
	})
}
