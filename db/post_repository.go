package db

import (
	"github.com/pkg/errors"
	"github.com/priyanshusingh1234/spell/models"
	"gorm.io/gorm"
)

type PostRepository interface {
	CreatePost(post *models.Post) error
	GetAllPosts() ([]models.Post, error)
	GetPostByID(id uint) (*models.Post, error)
	GetPostsByCategory(category string) ([]models.Post, error)
	GetPostsByUserID(userID uint) ([]models.Post, error)
	UpdatePost(post *models.Post) error
	DeletePost(id uint) error
}

type postRepo struct {
	DB *gorm.DB
}

func NewPostRepo(db *GormDB) PostRepository {
	return &postRepo{db.DB}
}

func (r *postRepo) CreatePost(post *models.Post) error {
	if err := r.DB.Create(post).Error; err != nil {
		return errors.Wrap(err, "could not create post")
	}
	return nil
}

func (r *postRepo) GetAllPosts() ([]models.Post, error) {
	var posts []models.Post
	if err := r.DB.Order("updated_at DESC").Find(&posts).Error; err != nil {
		return nil, errors.Wrap(err, "could not list posts")
	}
	return posts, nil
}

func (r *postRepo) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.DB.First(&post, id).Error; err != nil {
		return nil, errors.Wrap(err, "could not find post")
	}
	return &post, nil
}

func (r *postRepo) GetPostsByCategory(category string) ([]models.Post, error) {
	var posts []models.Post
	if err := r.DB.Where("category = ?", category).Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, errors.Wrap(err, "could not list posts by category")
	}
	return posts, nil
}

func (r *postRepo) GetPostsByUserID(userID uint) ([]models.Post, error) {
	var posts []models.Post
	if err := r.DB.Where("creator_id = ?", userID).Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, errors.Wrap(err, "could not list posts by user")
	}
	return posts, nil
}

func (r *postRepo) UpdatePost(post *models.Post) error {
	result := r.DB.Model(&models.Post{}).Where("id = ?", post.ID).Updates(map[string]interface{}{
		"title":       post.Title,
		"category":    post.Category,
		"description": post.Description,
		"thumbnail":   post.Thumbnail,
	})
	if result.Error != nil {
		return errors.Wrap(result.Error, "could not update post")
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *postRepo) DeletePost(id uint) error {
	result := r.DB.Delete(&models.Post{}, id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "could not delete post")
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
