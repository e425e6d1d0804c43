package services

import (
	"mime/multipart"

	"github.com/priyanshusingh1234/spell/models"
	"github.com/stretchr/testify/mock"
)

// MockAuthRepo is a mock implementation of db.AuthRepository
type MockAuthRepo struct {
	mock.Mock
}

func (m *MockAuthRepo) CreateUser(user *models.User) (*models.User, error) {
	args := m.Called(user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthRepo) IsEmailExist(email string) error {
	args := m.Called(email)
	return args.Error(0)
}

func (m *MockAuthRepo) FindUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthRepo) FindUserByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthRepo) GetAllUsers() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockAuthRepo) UpdateUserAvatar(userID uint, filename string) error {
	args := m.Called(userID, filename)
	return args.Error(0)
}

func (m *MockAuthRepo) UpdateUserProfile(userID uint, name, email, hashedPassword string) error {
	args := m.Called(userID, name, email, hashedPassword)
	return args.Error(0)
}

func (m *MockAuthRepo) AdjustPostCount(userID uint, delta int) error {
	args := m.Called(userID, delta)
	return args.Error(0)
}

// MockPostRepo is a mock implementation of db.PostRepository
type MockPostRepo struct {
	mock.Mock
}

func (m *MockPostRepo) CreatePost(post *models.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepo) GetAllPosts() ([]models.Post, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepo) GetPostByID(id uint) (*models.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepo) GetPostsByCategory(category string) ([]models.Post, error) {
	args := m.Called(category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepo) GetPostsByUserID(userID uint) ([]models.Post, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepo) UpdatePost(post *models.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepo) DeletePost(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockMedia is a mock implementation of MediaService
type MockMedia struct {
	mock.Mock
}

func (m *MockMedia) SaveUpload(fileHeader *multipart.FileHeader, filename string) error {
	args := m.Called(fileHeader, filename)
	return args.Error(0)
}

func (m *MockMedia) Delete(filename string) error {
	args := m.Called(filename)
	return args.Error(0)
}

func (m *MockMedia) Exists(filename string) bool {
	args := m.Called(filename)
	return args.Bool(0)
}

func (m *MockMedia) Path(filename string) string {
	args := m.Called(filename)
	return args.String(0)
}
