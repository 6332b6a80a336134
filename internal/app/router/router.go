// Package router assembles the HTTP route table.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	authhandler "task_backend/internal/feature/auth/transport/handler"
	taskhandler "task_backend/internal/feature/tasks/transport/handler"
	"task_backend/internal/platform/middleware"
	"task_backend/internal/platform/token"
)

// NewRouter builds the engine with the public auth endpoints, the
// session-guarded task endpoints, and a health probe.
func NewRouter(auth *authhandler.AuthHandler, tasks *taskhandler.TaskHandler, sessions *token.Manager) *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Credential endpoints are rate limited per client IP.
	limiter := middleware.NewRateLimiter(rate.Limit(1), 10)

	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", limiter.Middleware(), auth.Register)
		authGroup.POST("/login", limiter.Middleware(), auth.Login)
		authGroup.POST("/logout", auth.Logout)
	}

	protected := r.Group("/api", token.AuthRequired(sessions))
	{
		protected.DELETE("/auth/account", auth.DeleteAccount)

		protected.GET("/tasks", tasks.List)
		protected.POST("/tasks", tasks.Create)
		protected.GET("/tasks/:id", tasks.Get)
		protected.PUT("/tasks/:id", tasks.Update)
		protected.DELETE("/tasks/:id", tasks.Delete)
	}

	return r
}
