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

func (s *Server) handleRegister() gin.HandlerFunc {
	return func(c *gin.Context) {
		var request models.RegisterRequest
		if err := c.ShouldBind(&request); err != nil {
			response.JSON(c, "", http.StatusUnprocessableEntity, nil,
				errs.New("Fill in all fields.", http.StatusUnprocessableEntity))
			return
		}

		user, apiErr := s.AuthService.SignupUser(&request)
		if apiErr != nil {
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": fmt.Sprintf("New user %s registered", user.Email)})
	}
}

func (s *Server) handleLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var request models.LoginRequest
		if err := c.ShouldBind(&request); err != nil {
			response.JSON(c, "", http.StatusUnprocessableEntity, nil,
				errs.New("Fill in all fields.", http.StatusUnprocessableEntity))
			return
		}

		loginResponse, apiErr := s.AuthService.LoginUser(&request)
		if apiErr != nil {
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}

		c.JSON(http.StatusOK, loginResponse)
	}
}

func (s *Server) handleGetUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			response.JSON(c, "", http.StatusNotFound, nil, errs.New("User not found.", http.StatusNotFound))
			return
		}

		user, apiErr := s.AuthService.GetUserProfile(uint(userID))
		if apiErr != nil {
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

func (s *Server) handleGetAuthors() gin.HandlerFunc {
	return func(c *gin.Context) {
		authors, err := s.AuthService.GetAllUsers()
		if err != nil {
			response.JSON(c, "", http.StatusInternalServerError, nil, errs.ErrInternalServerError)
			return
		}

		c.JSON(http.StatusOK, authors)
	}
}

func (s *Server) handleChangeAvatar() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			respondAndAbort(c, "", http.StatusUnauthorized, nil, errs.ErrUnauthorized)
			return
		}

		// Missing file is the service's 422; every other multipart
		// failure is the client's problem.
		avatar, err := c.FormFile("avatar")
		if err != nil {
			avatar = nil
		}

		user, apiErr := s.AuthService.ChangeAvatar(userID, avatar)
		if apiErr != nil {
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

func (s *Server) handleEditUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			respondAndAbort(c, "", http.StatusUnauthorized, nil, errs.ErrUnauthorized)
			return
		}

		var request models.EditUserRequest
		if err := c.ShouldBind(&request); err != nil {
			response.JSON(c, "", http.StatusUnprocessableEntity, nil,
				errs.New("Fill in all the fields.", http.StatusUnprocessableEntity))
			return
		}

		user, apiErr := s.AuthService.EditUser(userID, &request)
		if apiErr != nil {
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}

		c.JSON(http.StatusOK, user)
	}
}
