package router

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/questx-lab/scratchcard/pkg/errorx"
	"github.com/questx-lab/scratchcard/pkg/xcontext"
)

type response struct {
	Code  int    `json:"code"`
	Error string `json:"error,omitempty"`
	Data  any    `json:"data,omitempty"`
}

func newResponse(data any) response {
	return response{
		Code: 0,
		Data: data,
	}
}

func newErrorResponse(err error) response {
	var errx errorx.Error
	if errors.As(err, &errx) {
		return response{
			Code:  int(errx.Code),
			Error: errx.Message,
		}
	}

	return response{
		Code:  int(errorx.Unknown.Code),
		Error: errorx.Unknown.Message,
	}
}

// writeResponse writes the envelope. Domain errors keep a 200 status, the
// client reads the code field.
func writeResponse(ctx context.Context, c *gin.Context) {
	if err := xcontext.Error(ctx); err != nil {
		c.JSON(http.StatusOK, newErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, newResponse(xcontext.Response(ctx)))
}
