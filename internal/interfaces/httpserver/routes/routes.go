package routes

import (
	"github.com/gin-gonic/gin"

	"reel-server/reel-api/internal/interfaces/httpserver/handlers"
)

// Routes encapsulates application route registration.
type Routes struct {
	handlers *handlers.Provider
}

func NewRoutes(provider *handlers.Provider) *Routes {
	return &Routes{handlers: provider}
}

// Register attaches all routes. Paths are unversioned; they are part of
// the public contract.
func (r *Routes) Register(router gin.IRouter) {
	router.POST("/users", r.handlers.User.Create)
	router.GET("/users/:id", r.handlers.User.Get)

	router.POST("/upload", r.handlers.Video.Upload)
	router.GET("/video/:id", r.handlers.Video.Get)
	router.GET("/videos", r.handlers.Video.List)
}
