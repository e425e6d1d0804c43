package server

import (
	"net/http"
	"strings"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-gonic/gin"
	errs "github.com/priyanshusingh1234/spell/errors"
	"github.com/priyanshusingh1234/spell/server/response"
	"github.com/priyanshusingh1234/spell/services/jwt"
)

// Authorize verifies the bearer credential and attaches the caller's
// identity to the request context. It trusts the signed claims as-is;
// no database lookup happens here.
func (s *Server) Authorize() gin.HandlerFunc {
	return func(c *gin.Context) {
		accessToken := getTokenFromHeader(c)
		if accessToken == "" {
			respondAndAbort(c, "", http.StatusUnauthorized, nil, errs.New("No token found", http.StatusUnauthorized))
			return
		}

		accessClaims, err := jwt.ValidateAndGetClaims(accessToken, s.Config.JWTSecret)
		if err != nil {
			respondAndAbort(c, "", http.StatusUnauthorized, nil, errs.New("Invalid token.", http.StatusUnauthorized))
			return
		}

		var userID uint
		switch v := accessClaims["id"].(type) {
		case float64:
			userID = uint(v)
		default:
			respondAndAbort(c, "", http.StatusUnauthorized, nil, errs.New("Invalid token.", http.StatusUnauthorized))
			return
		}

		c.Set("userID", userID)
		if name, ok := accessClaims["name"].(string); ok {
			c.Set("name", name)
		}
		c.Next()
	}
}

// limitCredentialRoutes rate-limits register and login per client IP.
func limitCredentialRoutes(store ratelimit.Store) gin.HandlerFunc {
	return ratelimit.RateLimiter(store, &ratelimit.Options{
		ErrorHandler:   errs.ErrorHandler,
		KeyFunc:        keyFunc,
		BeforeResponse: nil,
	})
}

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}

// respondAndAbort calls response.JSON and aborts the Context
func respondAndAbort(c *gin.Context, message string, status int, data interface{}, e *errs.Error) {
	response.JSON(c, message, status, data, e)
	c.Abort()
}

// getTokenFromHeader returns the token string in the authorization
// header, or "" when the header is absent or not Bearer-shaped.
func getTokenFromHeader(c *gin.Context) string {
	authHeader := c.Request.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// currentUserID reads the identity the Authorize middleware attached.
func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	userID, ok := v.(uint)
	return userID, ok
}
