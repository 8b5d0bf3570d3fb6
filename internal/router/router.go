package router

import (
	"inkwell/internal/handlers"
	"inkwell/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the handlers into the engine. Routes that address
// a specific post or comment stay outside the AuthRequired group: their
// handlers gate resource-exists before the login check, so a request for
// a missing resource 404s even when anonymous.
func RegisterRoutes(r *gin.Engine, authHandler *handlers.AuthHandler, blogHandler *handlers.BlogHandler) {
	// Public Routes
	r.GET("/", blogHandler.List)
	r.GET("/p/:pid", blogHandler.Detail)

	r.GET("/signup", authHandler.ShowRegister)
	r.POST("/signup", authHandler.Register)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// Gated per-resource routes (exists -> logged in -> ownership)
	r.GET("/p/:pid/edit", blogHandler.ShowEdit)
	r.POST("/p/:pid/edit", blogHandler.Update)
	r.POST("/p/:pid/delete", blogHandler.Delete)
	r.POST("/p/:pid/like", blogHandler.Like)
	r.GET("/p/:pid/comment", blogHandler.ShowComment)
	r.POST("/p/:pid/comment", blogHandler.CreateComment)
	r.GET("/comment/:cid/edit", blogHandler.ShowEditComment)
	r.POST("/comment/:cid/edit", blogHandler.UpdateComment)
	r.POST("/comment/:cid/delete", blogHandler.DeleteComment)

	// Protected Routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/welcome", authHandler.Welcome)
		authorized.GET("/submit", blogHandler.ShowCreate)
		authorized.POST("/submit", blogHandler.Create)
	}
}
