package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	corsgin "github.com/rs/cors/wrapper/gin"

	"github.com/ramo772/blog-management-api/cmd/api/auth"
	"github.com/ramo772/blog-management-api/cmd/api/handlers"
	"github.com/ramo772/blog-management-api/cmd/api/middleware"
	"github.com/ramo772/blog-management-api/cmd/api/services"
)

// New assembles the HTTP surface. Services come in as constructed
// collaborators so tests can wire them over fake stores.
func New(authSvc *services.AuthService, blogSvc *services.BlogService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(corsgin.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", auth.TokenHeader},
		ExposedHeaders: []string{auth.TokenHeader},
	}))
	r.Use(middleware.RequestLogging())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		authGroup := api.Group("/auth")
		authGroup.POST("/register", handlers.RegisterHandler(authSvc))
		authGroup.POST("/login", handlers.LoginHandler(authSvc))

		blogs := api.Group("/blogs")
		blogs.GET("", handlers.ListBlogsHandler(blogSvc))
		blogs.GET("/search", handlers.SearchBlogsHandler(blogSvc))
		blogs.GET("/category/:category", handlers.BlogsByCategoryHandler(blogSvc))
		blogs.GET("/:id", handlers.GetBlogHandler(blogSvc))

		protected := blogs.Group("")
		protected.Use(middleware.AuthMiddleware(authSvc))
		protected.POST("", handlers.CreateBlogHandler(blogSvc))
		protected.PUT("/:id", handlers.UpdateBlogHandler(blogSvc))
		protected.DELETE("/:id", handlers.DeleteBlogHandler(blogSvc))
	}

	return r
}
