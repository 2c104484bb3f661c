package router

import "github.com/gin-gonic/gin"

// Module is a feature slice that owns a set of routes. Each module hangs
// its handlers and middleware off the shared /api group.
type Module interface {
	Register(rg *gin.RouterGroup)
}
