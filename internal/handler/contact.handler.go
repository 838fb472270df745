package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rajit909/portfolio-api/internal/model/request"
	"github.com/rajit909/portfolio-api/internal/model/response"
	"go.uber.org/zap"
)

// ContactHandler accepts the public contact form. Messages are logged
// for pickup; there is no mail relay.
type ContactHandler struct {
	logger *zap.Logger
}

func NewContactHandler() *ContactHandler {
	return &ContactHandler{logger: zap.L().With(zap.String("handler", "contact"))}
}

// Submit godoc
//
//	@Summary	Submit the contact form
//	@Tags		Public
//	@Accept		json
//	@Produce	json
//	@Param		message	body		request.ContactRequest	true	"Contact message"
//	@Success	200		{object}	response.ResponseData
//	@Router		/api/contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	body := validatedBody[request.ContactRequest](c)

	h.logger.Info("Contact message received",
		zap.String("name", body.Name),
		zap.String("email", body.Email),
		zap.Int("messageLength", len(body.Message)))

	c.JSON(http.StatusOK, response.ResponseData{
		Ec:  http.StatusOK,
		Msg: "Thanks for reaching out! I will get back to you soon.",
	})
}
