// Package router wires the handlers onto the gin engine. Route layout:
//
//	/api/*    public reads plus the contact form
//	/login    auth entry points (also /signup, /logout)
//	/admin/*  protected admin surface, gated by the auth middleware
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/rajit909/portfolio-api/internal/handler"
	"github.com/rajit909/portfolio-api/internal/model/request"
	"github.com/rajit909/portfolio-api/internal/validation"
)

// Handlers bundles everything Register needs. The auth gate itself is
// installed as a global middleware by the server, before these routes.
type Handlers struct {
	Auth    *handler.AuthHandler
	Content *handler.ContentHandler
	Admin   *handler.AdminHandler
	Suggest *handler.SuggestHandler
	Github  *handler.GithubHandler
	Contact *handler.ContactHandler
}

func Register(r *gin.Engine, h Handlers) {
	// Public read API.
	api := r.Group("/api")
	{
		api.GET("/posts", h.Content.ListPosts)
		api.GET("/posts/:slug",
			validation.Validate[any, request.SlugParam, any](), h.Content.GetPost)
		api.GET("/projects", h.Content.ListProjects)
		api.GET("/projects/:slug",
			validation.Validate[any, request.SlugParam, any](), h.Content.GetProject)
		api.GET("/achievements", h.Content.ListAchievements)
		api.GET("/tech-stack", h.Content.ListTech)
		api.GET("/profile", h.Content.GetProfile)
		api.GET("/github-activity", h.Github.Contributions)
		api.POST("/contact",
			validation.Validate[request.ContactRequest, any, any](), h.Contact.Submit)
	}

	// Auth entry points. Login and signup bind JSON or form themselves,
	// so no validation middleware here.
	r.GET("/login", h.Auth.LoginPage)
	r.POST("/login", h.Auth.Login)
	r.GET("/signup", h.Auth.SignupPage)
	r.POST("/signup", h.Auth.Signup)
	r.POST("/logout", h.Auth.Logout)

	// Admin surface. Reachability is enforced by the gate middleware;
	// these routes only see verified requests.
	admin := r.Group("/admin")
	{
		admin.GET("", h.Admin.Dashboard)

		admin.GET("/posts", h.Content.ListPosts)
		admin.POST("/posts",
			validation.Validate[request.PostRequest, any, any](), h.Content.CreatePost)
		admin.PUT("/posts/:slug",
			validation.Validate[request.PostRequest, request.SlugParam, any](), h.Content.UpdatePost)
		admin.DELETE("/posts/:slug",
			validation.Validate[any, request.SlugParam, any](), h.Content.DeletePost)

		admin.POST("/projects",
			validation.Validate[request.ProjectRequest, any, any](), h.Content.CreateProject)
		admin.PUT("/projects/:slug",
			validation.Validate[request.ProjectRequest, request.SlugParam, any](), h.Content.UpdateProject)
		admin.DELETE("/projects/:slug",
			validation.Validate[any, request.SlugParam, any](), h.Content.DeleteProject)

		admin.POST("/achievements",
			validation.Validate[request.AchievementRequest, any, any](), h.Content.CreateAchievement)
		admin.PUT("/achievements/:id",
			validation.Validate[request.AchievementRequest, request.IDParam, any](), h.Content.UpdateAchievement)
		admin.DELETE("/achievements/:id",
			validation.Validate[any, request.IDParam, any](), h.Content.DeleteAchievement)

		admin.POST("/tech-stack",
			validation.Validate[request.TechRequest, any, any](), h.Content.CreateTech)
		admin.PUT("/tech-stack/:id",
			validation.Validate[request.TechRequest, request.IDParam, any](), h.Content.UpdateTech)
		admin.DELETE("/tech-stack/:id",
			validation.Validate[any, request.IDParam, any](), h.Content.DeleteTech)

		admin.GET("/profile", h.Content.GetProfile)
		admin.PUT("/profile",
			validation.Validate[request.ProfileRequest, any, any](), h.Content.UpdateProfile)

		suggest := admin.Group("/suggest")
		{
			suggest.POST("/tags",
				validation.Validate[request.SuggestTagsRequest, any, any](), h.Suggest.SuggestTags)
			suggest.POST("/content",
				validation.Validate[request.SuggestContentRequest, any, any](), h.Suggest.SuggestContent)
			suggest.POST("/image",
				validation.Validate[request.GenerateImageRequest, any, any](), h.Suggest.GenerateImage)
			suggest.POST("/project-description",
				validation.Validate[request.ProjectDescriptionRequest, any, any](), h.Suggest.ProjectDescription)
		}
	}
}
