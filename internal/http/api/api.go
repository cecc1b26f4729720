package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error is a handler-level failure with the HTTP status it maps to. Messages
// are static, user-facing strings describing the failed intent; raw transport
// errors are logged, never returned to clients.
type Error struct {
	Code    int
	Message string
}

// HandlerFunc is the shape of every JSON endpoint: a result or an Error.
type HandlerFunc func(ctx *gin.Context) (any, *Error)

// ResolveEndpoint adapts a HandlerFunc into a gin handler with uniform
// success and error envelopes.
func ResolveEndpoint(h HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result, apiErr := h(ctx)
		if apiErr != nil {
			ctx.JSON(apiErr.Code, gin.H{"error": apiErr.Message})
			return
		}
		ctx.JSON(http.StatusOK, result)
	}
}

// Controller is the mounting surface handed to each Module.
type Controller struct {
	Group *gin.RouterGroup
}

func (c *Controller) GET(path string, h HandlerFunc) {
	c.Group.GET(path, ResolveEndpoint(h))
}

func (c *Controller) PUT(path string, h HandlerFunc) {
	c.Group.PUT(path, ResolveEndpoint(h))
}

func (c *Controller) POST(path string, h HandlerFunc) {
	c.Group.POST(path, ResolveEndpoint(h))
}

// StreamGET registers a raw gin handler for endpoints that manage their own
// response lifecycle (server-sent events).
func (c *Controller) StreamGET(path string, h gin.HandlerFunc) {
	c.Group.GET(path, h)
}
