package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/questx-lab/scratchcard/pkg/xcontext"
)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc may return a new context, a nil context keeps the current
// one.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc runs after the response is written, whether the request failed
// or not.
type CloserFunc func(ctx context.Context)

type Router struct {
	ctx    context.Context
	engine *gin.Engine

	befores []MiddlewareFunc
	afters  []MiddlewareFunc
	closers []CloserFunc
}

// New creates the root router. Every request context derives from ctx, so it
// should carry the configurations, logger and database.
func New(ctx context.Context) *Router {
	gin.SetMode(gin.ReleaseMode)
	return &Router{
		ctx:    ctx,
		engine: gin.New(),
	}
}

// Branch returns a router sharing the routes table but owning a copy of the
// middlewares, so middlewares added to the branch do not leak to the parent.
func (r *Router) Branch() *Router {
	return &Router{
		ctx:     r.ctx,
		engine:  r.engine,
		befores: append([]MiddlewareFunc{}, r.befores...),
		afters:  append([]MiddlewareFunc{}, r.afters...),
		closers: append([]CloserFunc{}, r.closers...),
	}
}

func (r *Router) Before(m MiddlewareFunc) {
	r.befores = append(r.befores, m)
}

func (r *Router) After(m MiddlewareFunc) {
	r.afters = append(r.afters, m)
}

func (r *Router) AddCloser(c CloserFunc) {
	r.closers = append(r.closers, c)
}

func (r *Router) Handler() http.Handler {
	return r.engine
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.engine.GET(pattern, wrapHandler(r, http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.engine.POST(pattern, wrapHandler(r, http.MethodPost, handler))
}

func wrapHandler[Request, Response any](
	r *Router,
	method string,
	handler HandlerFunc[Request, Response],
) gin.HandlerFunc {
	befores := r.befores
	afters := r.afters
	closers := r.closers

	return func(c *gin.Context) {
		ctx := xcontext.WithHTTPRequest(r.ctx, c.Request)
		defer func() {
			writeResponse(ctx, c)
			for _, closer := range closers {
				closer(ctx)
			}
		}()

		var err error
		for _, m := range befores {
			if ctx, err = runMiddleware(ctx, m); err != nil {
				ctx = xcontext.WithError(ctx, err)
				return
			}
		}

		req, err := parseRequest[Request](c, method)
		if err != nil {
			ctx = xcontext.WithError(ctx, err)
			return
		}

		resp, err := handler(ctx, req)
		if err != nil {
			ctx = xcontext.WithError(ctx, err)
			return
		}
		ctx = xcontext.WithResponse(ctx, resp)

		for _, m := range afters {
			if ctx, err = runMiddleware(ctx, m); err != nil {
				ctx = xcontext.WithError(ctx, err)
				return
			}
		}
	}
}

func runMiddleware(ctx context.Context, m MiddlewareFunc) (context.Context, error) {
	newCtx, err := m(ctx)
	if err != nil {
		return ctx, err
	}

	if newCtx != nil {
		return newCtx, nil
	}

	return ctx, nil
}
