package server

import (
	"fmt"
	"net/http"
	"os"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	errs "github.com/priyanshusingh1234/spell/errors"
	"github.com/priyanshusingh1234/spell/server/response"
)

func (s *Server) setupRouter() *gin.Engine {
	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "test" {
		r := gin.New()
		s.defineRoutes(r)
		return r
	}

	r := gin.New()

	// LoggerWithFormatter middleware will write the logs to gin.DefaultWriter
	// By default gin.DefaultWriter = os.Stdout
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
			param.ClientIP,
			param.TimeStamp.Format(time.RFC1123),
			param.Method,
			param.Path,
			param.Request.Proto,
			param.StatusCode,
			param.Latency,
			param.Request.UserAgent(),
			param.ErrorMessage,
		)
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.MaxMultipartMemory = 8 << 20
	s.defineRoutes(r)

	return r
}

func (s *Server) defineRoutes(router *gin.Engine) {
	store := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{Rate: time.Minute, Limit: 20})
	limitRate := limitCredentialRoutes(store)

	apirouter := router.Group("/api")

	users := apirouter.Group("/users")
	users.POST("/register", limitRate, s.handleRegister())
	users.POST("/login", limitRate, s.handleLogin())
	users.GET("", s.handleGetAuthors())
	users.GET("/:id", s.handleGetUser())
	users.POST("/change-avatar", s.Authorize(), s.handleChangeAvatar())
	users.PATCH("/edit-user", s.Authorize(), s.handleEditUser())

	posts := apirouter.Group("/posts")
	posts.POST("", s.Authorize(), s.handleCreatePost())
	posts.GET("", s.handleGetPosts())
	posts.GET("/:id", s.handleGetPost())
	posts.PATCH("/:id", s.Authorize(), s.handleEditPost())
	posts.DELETE("/:id", s.Authorize(), s.handleDeletePost())
	posts.GET("/users/:id", s.handleGetUserPosts())
	posts.GET("/categories/:category", s.handleGetCatPosts())

	// Uploaded media is served statically by its generated filename.
	router.Static("/uploads", s.Config.UploadDir)

	router.NoRoute(func(c *gin.Context) {
		response.JSON(c, "", http.StatusNotFound, nil,
			errs.New(fmt.Sprintf("NOT FOUND - %s", c.Request.URL.Path), http.StatusNotFound))
	})
}
