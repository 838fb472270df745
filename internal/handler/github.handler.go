package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rajit909/portfolio-api/internal/constant"
	"github.com/rajit909/portfolio-api/internal/model/response"
	"github.com/rajit909/portfolio-api/internal/service"
)

type GithubHandler struct {
	github *service.GithubService
}

func NewGithubHandler(github *service.GithubService) *GithubHandler {
	return &GithubHandler{github: github}
}

// Contributions godoc
//
//	@Summary	GitHub contribution calendar
//	@Tags		Public
//	@Produce	json
//	@Success	200	{object}	response.ResponseData
//	@Failure	500	{object}	response.ResponseData
//	@Router		/api/github-activity [get]
func (h *GithubHandler) Contributions(c *gin.Context) {
	activity, err := h.github.ContributionActivity(c.Request.Context())
	if err != nil {
		// Unconfigured token and upstream failures look the same to the
		// public site.
		res := constant.INTERNAL_SERVER_ERROR
		c.JSON(res.Ec, res)
		return
	}
	c.JSON(http.StatusOK, response.ResponseData{Ec: http.StatusOK, Data: activity})
}
