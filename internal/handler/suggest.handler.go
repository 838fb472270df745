package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rajit909/portfolio-api/internal/constant"
	"github.com/rajit909/portfolio-api/internal/model/request"
	"github.com/rajit909/portfolio-api/internal/model/response"
	"github.com/rajit909/portfolio-api/internal/service"
	"go.uber.org/zap"
)

// SuggestHandler serves the admin assist endpoints. Failures are
// isolated: a broken suggestion backend never blocks content editing,
// the handlers just report that no suggestion is available.
type SuggestHandler struct {
	suggest *service.SuggestService
	logger  *zap.Logger
}

func NewSuggestHandler(suggest *service.SuggestService) *SuggestHandler {
	return &SuggestHandler{
		suggest: suggest,
		logger:  zap.L().With(zap.String("handler", "suggest")),
	}
}

func (h *SuggestHandler) unavailable(c *gin.Context, err error) {
	h.logger.Warn("Suggestion unavailable", zap.Error(err))
	res := constant.SUGGESTION_FAILED
	c.JSON(res.Ec, res)
}

// SuggestTags godoc
//
//	@Summary	Suggest tags for blog content
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Param		content	body		request.SuggestTagsRequest	true	"Post content"
//	@Success	200		{object}	response.ResponseData
//	@Failure	502		{object}	response.ResponseData
//	@Router		/admin/suggest/tags [post]
func (h *SuggestHandler) SuggestTags(c *gin.Context) {
	body := validatedBody[request.SuggestTagsRequest](c)

	tags, err := h.suggest.SuggestTags(c.Request.Context(), body.Content)
	if err != nil {
		h.unavailable(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ResponseData{
		Ec:   http.StatusOK,
		Data: gin.H{"tags": tags},
	})
}

func (h *SuggestHandler) SuggestContent(c *gin.Context) {
	body := validatedBody[request.SuggestContentRequest](c)

	content, err := h.suggest.SuggestContent(c.Request.Context(), body.Topic)
	if err != nil {
		h.unavailable(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ResponseData{
		Ec:   http.StatusOK,
		Data: gin.H{"content": content},
	})
}

func (h *SuggestHandler) GenerateImage(c *gin.Context) {
	body := validatedBody[request.GenerateImageRequest](c)

	imageURL, err := h.suggest.GenerateImage(c.Request.Context(), body.Prompt)
	if err != nil {
		h.unavailable(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ResponseData{
		Ec:   http.StatusOK,
		Data: gin.H{"imageUrl": imageURL},
	})
}

func (h *SuggestHandler) ProjectDescription(c *gin.Context) {
	body := validatedBody[request.ProjectDescriptionRequest](c)

	description, err := h.suggest.GenerateProjectDescription(c.Request.Context(), body.Title, body.Technologies)
	if err != nil {
		h.unavailable(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ResponseData{
		Ec:   http.StatusOK,
		Data: gin.H{"description": description},
	})
}
