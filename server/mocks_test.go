package server

import (
	"mime/multipart"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/priyanshusingh1234/spell/config"
	apiError "github.com/priyanshusingh1234/spell/errors"
	"github.com/priyanshusingh1234/spell/models"
	"github.com/priyanshusingh1234/spell/services/jwt"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

// MockAuthService is a mock implementation of services.AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) SignupUser(request *models.RegisterRequest) (*models.User, *apiError.Error) {
	args := m.Called(request)
	var user *models.User
	if args.Get(0) != nil {
		user = args.Get(0).(*models.User)
	}
	var apiErr *apiError.Error
	if args.Get(1) != nil {
		apiErr = args.Get(1).(*apiError.Error)
	}
	return user, apiErr
}

func (m *MockAuthService) LoginUser(loginRequest *models.LoginRequest) (*models.LoginResponse, *apiError.Error) {
	args := m.Called(loginRequest)
	var resp *models.LoginResponse
	if args.Get(0) != nil {
		resp = args.Get(0).(*models.LoginResponse)
	}
	var apiErr *apiError.Error
	if args.Get(1) != nil {
		apiErr = args.Get(1).(*apiError.Error)
	}
	return resp, apiErr
}

func (m *MockAuthService) GetUserProfile(userID uint) (*models.User, *apiError.Error) {
	args := m.Called(userID)
	var user *models.User
	if args.Get(0) != nil {
		user = args.Get(0).(*models.User)
	}
	var apiErr *apiError.Error
	if args.Get(1) != nil {
		apiErr = args.Get(1).(*apiError.Error)
	}
	return user, apiErr
}

func (m *MockAuthService) GetAllUsers() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockAuthService) ChangeAvatar(userID uint, avatar *multipart.FileHeader) (*models.User, *apiError.Error) {
	args := m.Called(userID, avatar)
	var user *models.User
	if args.Get(0) != nil {
		user = args.Get(0).(*models.User)
	}
	var apiErr *apiError.Error
	if args.Get(1) != nil {
		apiErr = args.Get(1).(*apiError.Error)
	}
	return user, apiErr
}

func (m *MockAuthService) EditUser(userID uint, request *models.EditUserRequest) (*models.User, *apiError.Error) {
	args := m.Called(userID, request)
	var user *models.User
	if args.Get(0) != nil {
		user = args.Get(0).(*models.User)
	}
	var apiErr *apiError.Error
	if args.Get(1) != nil {
		apiErr = args.Get(1).(*apiError.Error)
	}
	return user, apiErr
}

// MockPostService is a mock implementation of services.PostService
type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) CreatePost(userID uint, title, category, description string, thumbnail *multipart.FileHeader) (*models.Post, *apiError.Error) {
	args := m.Called(userID, title, category, description, thumbnail)
	var post *models.Post
	if args.Get(0) != nil {
		post = args.Get(0).(*models.Post)
	}
	var apiErr *apiError.Error
	if args.Get(1) != nil {
		apiErr = args.Get(1).(*apiError.Error)
	}
	return post, apiErr
}

func (m *MockPostService) GetAllPosts() ([]models.Post, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostService) GetPostByID(postID uint) (*models.Post, *apiError.Error) {
	args := m.Called(postID)
	var post *models.Post
	if args.Get(0) != nil {
		post = args.Get(0).(*models.Post)
	}
	var apiErr *apiError.Error
	if args.Get(1) != nil {
		apiErr = args.Get(1).(*apiError.Error)
	}
	return post, apiErr
}

func (m *MockPostService) GetPostsByCategory(category string) ([]models.Post, error) {
	args := m.Called(category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostService) GetPostsByUser(userID uint) ([]models.Post, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostService) EditPost(userID, postID uint, title, category, description string, thumbnail *multipart.FileHeader) (*models.Post, *apiError.Error) {
	args := m.Called(userID, postID, title, category, description, thumbnail)
	var post *models.Post
	if args.Get(0) != nil {
		post = args.Get(0).(*models.Post)
	}
	var apiErr *apiError.Error
	if args.Get(1) != nil {
		apiErr = args.Get(1).(*apiError.Error)
	}
	return post, apiErr
}

func (m *MockPostService) DeletePost(userID, postID uint) *apiError.Error {
	args := m.Called(userID, postID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*apiError.Error)
}

// newTestServer wires a router around mocked services.
func newTestServer(t *testing.T) (*gin.Engine, *MockAuthService, *MockPostService) {
	t.Helper()
	t.Setenv("GIN_MODE", "test")
	gin.SetMode(gin.TestMode)

	authService := new(MockAuthService)
	postService := new(MockPostService)
	s := &Server{
		Config: &config.Config{
			JWTSecret: testSecret,
			UploadDir: t.TempDir(),
		},
		AuthService: authService,
		PostService: postService,
	}
	return s.setupRouter(), authService, postService
}

func bearerToken(t *testing.T, userID uint, name string) string {
	t.Helper()
	token, err := jwt.GenerateToken(userID, name, testSecret)
	require.NoError(t, err)
	return "Bearer " + token
}
