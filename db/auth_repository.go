package db

import (
	"log"

	"github.com/pkg/errors"
	"github.com/priyanshusingh1234/spell/models"
	"gorm.io/gorm"
)

type AuthRepository interface {
	CreateUser(user *models.User) (*models.User, error)
	IsEmailExist(email string) error
	FindUserByEmail(email string) (*models.User, error)
	FindUserByID(id uint) (*models.User, error)
	GetAllUsers() ([]models.User, error)
	UpdateUserAvatar(userID uint, filename string) error
	UpdateUserProfile(userID uint, name, email, hashedPassword string) error
	AdjustPostCount(userID uint, delta int) error
}

type authRepo struct {
	DB *gorm.DB
}

func NewAuthRepo(db *GormDB) AuthRepository {
	return &authRepo{db.DB}
}

func (a *authRepo) CreateUser(user *models.User) (*models.User, error) {
	if user == nil {
		log.Println("CreateUser error: user is nil")
		return nil, errors.New("user is nil")
	}

	result := a.DB.Create(user)
	if result.Error != nil {
		log.Printf("CreateUser error: %v", result.Error)
		return nil, result.Error
	}

	return user, nil
}

func (a *authRepo) IsEmailExist(email string) error {
	var count int64
	err := a.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return errors.Wrap(err, "gorm count error")
	}
	if count > 0 {
		return errors.New("email already in use")
	}
	return nil
}

func (a *authRepo) FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := a.DB.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, errors.Wrap(err, "could not find user by email")
	}
	return &user, nil
}

func (a *authRepo) FindUserByID(id uint) (*models.User, error) {
	var user models.User
	err := a.DB.First(&user, id).Error
	if err != nil {
		return nil, errors.Wrap(err, "could not find user by id")
	}
	return &user, nil
}

func (a *authRepo) GetAllUsers() ([]models.User, error) {
	var users []models.User
	if err := a.DB.Find(&users).Error; err != nil {
		return nil, errors.Wrap(err, "could not list users")
	}
	return users, nil
}

func (a *authRepo) UpdateUserAvatar(userID uint, filename string) error {
	result := a.DB.Model(&models.User{}).Where("id = ?", userID).Update("avatar", filename)
	if result.Error != nil {
		return errors.Wrap(result.Error, "could not update avatar")
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (a *authRepo) UpdateUserProfile(userID uint, name, email, hashedPassword string) error {
	result := a.DB.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"name":            name,
		"email":           email,
		"hashed_password": hashedPassword,
	})
	if result.Error != nil {
		return errors.Wrap(result.Error, "could not update profile")
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AdjustPostCount moves the posts counter by delta in a single atomic
// update, so concurrent creations never lose an increment.
func (a *authRepo) AdjustPostCount(userID uint, delta int) error {
	result := a.DB.Model(&models.User{}).Where("id = ?", userID).
		Update("posts", gorm.Expr("posts + ?", delta))
	if result.Error != nil {
		return errors.Wrap(result.Error, "could not adjust post count")
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
