package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	errs "github.com/priyanshusingh1234/spell/errors"
	"github.com/priyanshusingh1234/spell/models"
	"github.com/priyanshusingh1234/spell/server/response"
)

func (s *Server) handleCreatePost() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			respondAndAbort(c, "", http.StatusUnauthorized, nil, errs.ErrUnauthorized)
			return
		}

		title := c.PostForm("title")
		category := c.PostForm("category")
		description := c.PostForm("description")

		thumbnail, err := c.FormFile("thumbnail")
		if err != nil {
			thumbnail = nil
		}

		post, apiErr := s.PostService.CreatePost(userID, title, category, description, thumbnail)
		if apiErr != nil {
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}

		c.JSON(http.StatusCreated, post)
	}
}

func (s *Server) handleGetPosts() gin.HandlerFunc {
	return func(c *gin.Context) {
		posts, err := s.PostService.GetAllPosts()
		if err != nil {
			response.JSON(c, "", http.StatusInternalServerError, nil, errs.ErrInternalServerError)
			return
		}

		c.JSON(http.StatusOK, posts)
	}
}

func (s *Server) handleGetPost() gin.HandlerFunc {
	return func(c *gin.Context) {
		postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			response.JSON(c, "", http.StatusNotFound, nil, errs.New("Post not found.", http.StatusNotFound))
			return
		}

		post, apiErr := s.PostService.GetPostByID(uint(postID))
		if apiErr != nil {
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}

		c.JSON(http.StatusOK, post)
	}
}

func (s *Server) handleGetCatPosts() gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.Param("category")

		posts, err := s.PostService.GetPostsByCategory(category)
		if err != nil {
			response.JSON(c, "", http.StatusInternalServerError, nil, errs.ErrInternalServerError)
			return
		}

		c.JSON(http.StatusOK, posts)
	}
}

func (s *Server) handleGetUserPosts() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			response.JSON(c, "", http.StatusNotFound, nil, errs.New("User not found.", http.StatusNotFound))
			return
		}

		posts, listErr := s.PostService.GetPostsByUser(uint(userID))
		if listErr != nil {
			response.JSON(c, "", http.StatusInternalServerError, nil, errs.ErrInternalServerError)
			return
		}

		c.JSON(http.StatusOK, posts)
	}
}

func (s *Server) handleEditPost() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			respondAndAbort(c, "", http.StatusUnauthorized, nil, errs.ErrUnauthorized)
			return
		}

		postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			response.JSON(c, "", http.StatusNotFound, nil, errs.New("Post not found.", http.StatusNotFound))
			return
		}

		var request models.EditPostRequest
		if err := c.ShouldBind(&request); err != nil {
			response.JSON(c, "", http.StatusUnprocessableEntity, nil,
				errs.New("Please fill in all fields with valid data.", http.StatusUnprocessableEntity))
			return
		}
		if err := request.Conform(); err != nil {
			response.JSON(c, "", http.StatusInternalServerError, nil, errs.ErrInternalServerError)
			return
		}

		// Thumbnail stays optional on edit.
		thumbnail, err := c.FormFile("thumbnail")
		if err != nil {
			thumbnail = nil
		}

		post, apiErr := s.PostService.EditPost(userID, uint(postID), request.Title, request.Category, request.Description, thumbnail)
		if apiErr != nil {
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}

		c.JSON(http.StatusOK, post)
	}
}

func (s *Server) handleDeletePost() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			respondAndAbort(c, "", http.StatusUnauthorized, nil, errs.ErrUnauthorized)
			return
		}

		postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			response.JSON(c, "", http.StatusNotFound, nil, errs.New("Post not found.", http.StatusNotFound))
			return
		}

		if apiErr := s.PostService.DeletePost(userID, uint(postID)); apiErr != nil {
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Post %d deleted successfully.", postID)})
	}
}
