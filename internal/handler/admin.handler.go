package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rajit909/portfolio-api/internal/auth"
	"github.com/rajit909/portfolio-api/internal/model/response"
	"github.com/rajit909/portfolio-api/internal/service"
)

// AdminHandler serves the admin dashboard. The gate guarantees an
// identity for everything under /admin; the fallback re-verification in
// CurrentIdentity only matters if the handler is wired without it.
type AdminHandler struct {
	content  *service.ContentService
	verifier *auth.Verifier
}

func NewAdminHandler(content *service.ContentService, verifier *auth.Verifier) *AdminHandler {
	return &AdminHandler{content: content, verifier: verifier}
}

// Dashboard godoc
//
//	@Summary	Admin dashboard summary
//	@Tags		Admin
//	@Produce	json
//	@Success	200	{object}	response.ResponseData
//	@Failure	302	{string}	string	"redirect to /login"
//	@Router		/admin [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	identity := auth.CurrentIdentity(c, h.verifier)
	if identity == nil {
		c.Redirect(http.StatusFound, auth.LoginPath)
		return
	}

	c.JSON(http.StatusOK, response.ResponseData{
		Ec: http.StatusOK,
		Data: gin.H{
			"user":   identity,
			"counts": h.content.Counts(c.Request.Context()),
		},
	})
}
