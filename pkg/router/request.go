package router

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/questx-lab/scratchcard/pkg/errorx"
)

func parseRequest[Request any](c *gin.Context, method string) (*Request, error) {
	req := new(Request)
	switch method {
	case http.MethodGet:
		if err := c.ShouldBindQuery(req); err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid query: %v", err)
		}

	case http.MethodPost:
		if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
			return nil, errorx.New(errorx.BadRequest, "Invalid body: %v", err)
		}

	default:
		return nil, errorx.New(errorx.BadRequest, "Unsupported method %s", method)
	}

	return req, nil
}
