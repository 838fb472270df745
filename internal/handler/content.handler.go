package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rajit909/portfolio-api/internal/constant"
	"github.com/rajit909/portfolio-api/internal/model/request"
	"github.com/rajit909/portfolio-api/internal/model/response"
	"github.com/rajit909/portfolio-api/internal/repository"
	"github.com/rajit909/portfolio-api/internal/service"
	"github.com/rajit909/portfolio-api/pkg/cache"
)

type ContentHandler struct {
	content *service.ContentService
	cache   cache.Cache // may be nil
}

func NewContentHandler(content *service.ContentService, contentCache cache.Cache) *ContentHandler {
	return &ContentHandler{content: content, cache: contentCache}
}

func (h *ContentHandler) writeError(c *gin.Context, err error) {
	var res response.ResponseData
	switch {
	case errors.Is(err, repository.ErrNotFound):
		res = constant.NOT_FOUND
	case errors.Is(err, service.ErrSlugTaken),
		errors.Is(err, service.ErrImageTooLarge),
		errors.Is(err, service.ErrProfileMissing):
		res = constant.BAD_REQUEST
		res.Error = err.Error()
	default:
		res = constant.INTERNAL_SERVER_ERROR
	}
	c.JSON(res.Ec, res)
}

// ---- Public reads ----

// ListPosts godoc
//
//	@Summary	List blog posts
//	@Tags		Public
//	@Produce	json
//	@Success	200	{object}	response.ResponseData
//	@Router		/api/posts [get]
func (h *ContentHandler) ListPosts(c *gin.Context) {
	respondCached(c, h.cache, service.CachePostsPrefix, func(ctx context.Context) (any, error) {
		return h.content.ListPosts(ctx)
	})
}

// GetPost godoc
//
//	@Summary	Get a blog post by slug
//	@Tags		Public
//	@Produce	json
//	@Param		slug	path		string	true	"Post slug"
//	@Success	200		{object}	response.ResponseData
//	@Failure	404		{object}	response.ResponseData
//	@Router		/api/posts/{slug} [get]
func (h *ContentHandler) GetPost(c *gin.Context) {
	params := validatedParams[request.SlugParam](c)

	post, err := h.content.GetPost(c.Request.Context(), params.Slug)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ResponseData{Ec: http.StatusOK, Data: post})
}

func (h *ContentHandler) ListProjects(c *gin.Context) {
	respondCached(c, h.cache, service.CacheProjectsPrefix, func(ctx context.Context) (any, error) {
		return h.content.ListProjects(ctx)
	})
}

func (h *ContentHandler) GetProject(c *gin.Context) {
	params := validatedParams[request.SlugParam](c)

	project, err := h.content.GetProject(c.Request.Context(), params.Slug)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ResponseData{Ec: http.StatusOK, Data: project})
}

func (h *ContentHandler) ListAchievements(c *gin.Context) {
	respondCached(c, h.cache, service.CacheAchievementsPrefix, func(ctx context.Context) (any, error) {
		return h.content.ListAchievements(ctx)
	})
}

func (h *ContentHandler) ListTech(c *gin.Context) {
	respondCached(c, h.cache, service.CacheTechPrefix, func(ctx context.Context) (any, error) {
		return h.content.ListTech(ctx)
	})
}

func (h *ContentHandler) GetProfile(c *gin.Context) {
	respondCached(c, h.cache, service.CacheProfileKey, func(ctx context.Context) (any, error) {
		return h.content.GetProfile(ctx)
	})
}

// ---- Admin: posts ----

// CreatePost godoc
//
//	@Summary	Create a blog post
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Param		post	body		request.PostRequest	true	"Post payload"
//	@Success	201		{object}	response.ResponseData
//	@Router		/admin/posts [post]
func (h *ContentHandler) CreatePost(c *gin.Context) {
	body := validatedBody[request.PostRequest](c)

	post, err := h.content.CreatePost(c.Request.Context(), body)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.ResponseData{Ec: http.StatusCreated, Data: post})
}

func (h *ContentHandler) UpdatePost(c *gin.Context) {
	params := validatedParams[request.SlugParam](c)
	body := validatedBody[request.PostRequest](c)

	post, err := h.content.UpdatePost(c.Request.Context(), params.Slug, body)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ResponseData{Ec: http.StatusOK, Data: post})
}

func (h *ContentHandler) DeletePost(c *gin.Context) {
	params := validatedParams[request.SlugParam](c)

	if err := h.content.DeletePost(c.Request.Context(), params.Slug); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ResponseData{Ec: http.StatusOK, Msg: "Post deleted"})
}

// ---- Admin: projects ----

func (h *ContentHandler) CreateProject(c *gin.Context) {
	body := validatedBody[request.ProjectRequest](c)

	project, err := h.content.CreateProject(c.Request.Context(), body)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.ResponseData{Ec: http.StatusCreated, Data: project})
}

func (h *ContentHandler) UpdateProject(c *gin.Context) {
	params := validatedParams[request.SlugParam](c)
	body := validatedBody[request.ProjectRequest](c)

	project, err := h.content.UpdateProject(c.Request.Context(), params.Slug, body)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ResponseData{Ec: http.StatusOK, Data: project})
}

func (h *ContentHandler) DeleteProject(c *gin.Context) {
	params := validatedParams[request.SlugParam](c)

	if err := h.content.DeleteProject(c.Request.Context(), params.Slug); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ResponseData{Ec: http.StatusOK, Msg: "Project deleted"})
}

// ---- Admin: achievements ----

func (h *ContentHandler) CreateAchievement(c *gin.Context) {
	body := validatedBody[request.AchievementRequest](c)

	achievement, err := h.content.CreateAchievement(c.Request.Context(), body)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.ResponseData{Ec: http.StatusCreated, Data: achievement})
}

func (h *ContentHandler) UpdateAchievement(c *gin.Context) {
	params := validatedParams[request.IDParam](c)
	body := validatedBody[request.AchievementRequest](c)

	achievement, err := h.content.UpdateAchievement(c.Request.Context(), params.ID, body)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ResponseData{Ec: http.StatusOK, Data: achievement})
}

func (h *ContentHandler) DeleteAchievement(c *gin.Context) {
	params := validatedParams[request.IDParam](c)

	if err := h.content.DeleteAchievement(c.Request.Context(), params.ID); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ResponseData{Ec: http.StatusOK, Msg: "Achievement deleted"})
}

// ---- Admin: tech stack ----

func (h *ContentHandler) CreateTech(c *gin.Context) {
	body := validatedBody[request.TechRequest](c)

	tech, err := h.content.CreateTech(c.Request.Context(), body)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.ResponseData{Ec: http.StatusCreated, Data: tech})
}

func (h *ContentHandler) UpdateTech(c *gin.Context) {
	params := validatedParams[request.IDParam](c)
	body := validatedBody[request.TechRequest](c)

	tech, err := h.content.UpdateTech(c.Request.Context(), params.ID, body)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ResponseData{Ec: http.StatusOK, Data: tech})
}

func (h *ContentHandler) DeleteTech(c *gin.Context) {
	params := validatedParams[request.IDParam](c)

	if err := h.content.DeleteTech(c.Request.Context(), params.ID); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ResponseData{Ec: http.StatusOK, Msg: "Tech entry deleted"})
}

// ---- Admin: profile ----

func (h *ContentHandler) UpdateProfile(c *gin.Context) {
	body := validatedBody[request.ProfileRequest](c)

	profile, err := h.content.UpdateProfile(c.Request.Context(), body)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ResponseData{Ec: http.StatusOK, Data: profile})
}
