// Package handler holds the gin handlers: the public read API, the
// auth entry points and the admin CRUD surface. Handlers translate
// service errors into ResponseData payloads and never touch the
// database directly.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rajit909/portfolio-api/internal/constant"
	"github.com/rajit909/portfolio-api/internal/model/response"
	"github.com/rajit909/portfolio-api/internal/repository"
	"github.com/rajit909/portfolio-api/pkg/cache"
	"github.com/rajit909/portfolio-api/util"
)

// respondCached serves a public read endpoint with cache and ETag
// support. The fetch callback is only invoked on a cache miss; the
// marshaled payload is what gets cached, so cached and fresh responses
// share one ETag.
func respondCached(c *gin.Context, contentCache cache.Cache, key string, fetch func(ctx context.Context) (any, error)) {
	ctx := c.Request.Context()

	var payload []byte
	if contentCache != nil {
		if cached, ok := contentCache.Get(ctx, key); ok {
			payload = cached
		}
	}

	if payload == nil {
		data, err := fetch(ctx)
		if err != nil {
			res := constant.INTERNAL_SERVER_ERROR
			if errors.Is(err, repository.ErrNotFound) {
				res = constant.NOT_FOUND
			}
			c.JSON(res.Ec, res)
			return
		}

		body := response.ResponseData{Ec: http.StatusOK, Data: data}
		marshaled, err := json.Marshal(body)
		if err != nil {
			res := constant.INTERNAL_SERVER_ERROR
			c.JSON(res.Ec, res)
			return
		}
		payload = marshaled

		if contentCache != nil {
			contentCache.Set(ctx, key, payload)
		}
	}

	etag := util.GenerateETag(payload)
	c.Header("ETag", etag)
	if c.GetHeader("If-None-Match") == etag {
		c.Status(http.StatusNotModified)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}

func validatedBody[T any](c *gin.Context) T {
	return c.MustGet("validatedBody").(T)
}

func validatedParams[T any](c *gin.Context) T {
	return c.MustGet("validatedParams").(T)
}
