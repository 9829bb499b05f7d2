package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/azamatb/notekeeper/internal/domain"
	"github.com/azamatb/notekeeper/internal/transport/http/handler"
	"github.com/azamatb/notekeeper/internal/transport/http/middleware"
	"github.com/azamatb/notekeeper/internal/usecase"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	sloggin "github.com/samber/slog-gin"
)

func NewRouter(logger *slog.Logger, auth *usecase.AuthUsecase, authHandler *handler.AuthHandler, noteHandler *handler.NoteHandler, corsOrigin string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = []string{corsOrigin}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello! The backend is running.")
	})

	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)
	r.POST("/refresh", authHandler.Refresh)

	// Protected note routes; owner identity comes from the access token only.
	notes := r.Group("/api/notes", middleware.Auth(auth, domain.TokenKindAccess))
	notes.POST("", noteHandler.Create)
	notes.GET("", noteHandler.List)
	notes.GET("/:id", noteHandler.Get)
	notes.PUT("/:id", noteHandler.Update)
	notes.DELETE("/:id", noteHandler.Delete)

	return r
}
