package services

import (
	"errors"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/priyanshusingh1234/spell/config"
	"github.com/priyanshusingh1234/spell/db"
	apiError "github.com/priyanshusingh1234/spell/errors"
	"github.com/priyanshusingh1234/spell/models"
	"gorm.io/gorm"
)

// PostService interface
type PostService interface {
	CreatePost(userID uint, title, category, description string, thumbnail *multipart.FileHeader) (*models.Post, *apiError.Error)
	GetAllPosts() ([]models.Post, error)
	GetPostByID(postID uint) (*models.Post, *apiError.Error)
	GetPostsByCategory(category string) ([]models.Post, error)
	GetPostsByUser(userID uint) ([]models.Post, error)
	EditPost(userID, postID uint, title, category, description string, thumbnail *multipart.FileHeader) (*models.Post, *apiError.Error)
	DeletePost(userID, postID uint) *apiError.Error
}

// postService struct
type postService struct {
	Config   *config.Config
	postRepo db.PostRepository
	authRepo db.AuthRepository
	media    MediaService
}

// NewPostService creates a new instance of PostService
func NewPostService(postRepo db.PostRepository, authRepo db.AuthRepository, media MediaService, conf *config.Config) PostService {
	return &postService{
		Config:   conf,
		postRepo: postRepo,
		authRepo: authRepo,
		media:    media,
	}
}

// CreatePost stores the thumbnail first and creates the record after;
// if the record cannot be created the stored file is removed again.
func (p *postService) CreatePost(userID uint, title, category, description string, thumbnail *multipart.FileHeader) (*models.Post, *apiError.Error) {
	if title == "" || category == "" || description == "" || thumbnail == nil {
		return nil, apiError.New("Fill in all the fields and choose a thumbnail.", http.StatusUnprocessableEntity)
	}

	if thumbnail.Size > p.Config.MaxThumbnailSize {
		return nil, apiError.New("Thumbnail must be less than 2 MB.", http.StatusUnprocessableEntity)
	}

	newFilename := uniqueThumbnailName(thumbnail.Filename)
	if err := p.media.SaveUpload(thumbnail, newFilename); err != nil {
		log.Printf("Error saving thumbnail for user %d: %v", userID, err)
		return nil, apiError.New("File upload failed.", http.StatusInternalServerError)
	}

	post := &models.Post{
		Title:       title,
		Category:    category,
		Description: description,
		Thumbnail:   newFilename,
		CreatorID:   userID,
	}

	if err := p.postRepo.CreatePost(post); err != nil {
		deleteQuietly(p.media, newFilename)
		log.Printf("Error creating post for user %d: %v", userID, err)
		return nil, apiError.New("Post could not be created.", http.StatusUnprocessableEntity)
	}

	if err := p.authRepo.AdjustPostCount(userID, 1); err != nil {
		log.Printf("Error incrementing post count for user %d: %v", userID, err)
		return nil, apiError.ErrInternalServerError
	}

	return post, nil
}

func (p *postService) GetAllPosts() ([]models.Post, error) {
	return p.postRepo.GetAllPosts()
}

func (p *postService) GetPostByID(postID uint) (*models.Post, *apiError.Error) {
	post, err := p.postRepo.GetPostByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.New("Post not found.", http.StatusNotFound)
		}
		log.Printf("Error fetching post %d: %v", postID, err)
		return nil, apiError.ErrInternalServerError
	}
	return post, nil
}

func (p *postService) GetPostsByCategory(category string) ([]models.Post, error) {
	return p.postRepo.GetPostsByCategory(category)
}

func (p *postService) GetPostsByUser(userID uint) ([]models.Post, error) {
	return p.postRepo.GetPostsByUserID(userID)
}

// EditPost applies the record update before touching any files, so a
// stale-thumbnail deletion failure can never block a successful edit.
func (p *postService) EditPost(userID, postID uint, title, category, description string, thumbnail *multipart.FileHeader) (*models.Post, *apiError.Error) {
	if title == "" || category == "" || len(description) < 12 {
		return nil, apiError.New("Please fill in all fields with valid data.", http.StatusUnprocessableEntity)
	}

	oldPost, err := p.postRepo.GetPostByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.New("Post not found.", http.StatusNotFound)
		}
		log.Printf("Error fetching post %d: %v", postID, err)
		return nil, apiError.ErrInternalServerError
	}

	if oldPost.CreatorID != userID {
		return nil, apiError.New("You are not authorized to edit this post.", http.StatusForbidden)
	}

	updated := *oldPost
	updated.Title = title
	updated.Category = category
	updated.Description = description

	if thumbnail != nil {
		if thumbnail.Size > p.Config.MaxThumbnailSize {
			return nil, apiError.New("Thumbnail must be less than 2 MB.", http.StatusUnprocessableEntity)
		}

		newFilename := uniqueThumbnailName(thumbnail.Filename)
		if err := p.media.SaveUpload(thumbnail, newFilename); err != nil {
			log.Printf("Error saving thumbnail for post %d: %v", postID, err)
			return nil, apiError.New("File upload failed.", http.StatusInternalServerError)
		}
		updated.Thumbnail = newFilename
	}

	if err := p.postRepo.UpdatePost(&updated); err != nil {
		if updated.Thumbnail != oldPost.Thumbnail {
			deleteQuietly(p.media, updated.Thumbnail)
		}
		log.Printf("Error updating post %d: %v", postID, err)
		return nil, apiError.New("Could not update post.", http.StatusBadRequest)
	}

	if updated.Thumbnail != oldPost.Thumbnail {
		deleteQuietly(p.media, oldPost.Thumbnail)
	}

	fresh, err := p.postRepo.GetPostByID(postID)
	if err != nil {
		log.Printf("Error refetching post %d: %v", postID, err)
		return &updated, nil
	}
	return fresh, nil
}

// DeletePost removes the record and decrements the creator's counter
// first; the thumbnail file is cleaned up afterwards, best-effort. A
// thumbnail already missing on disk does not block the deletion.
func (p *postService) DeletePost(userID, postID uint) *apiError.Error {
	post, err := p.postRepo.GetPostByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError.New("Post not found.", http.StatusNotFound)
		}
		log.Printf("Error fetching post %d: %v", postID, err)
		return apiError.ErrInternalServerError
	}

	if post.CreatorID != userID {
		return apiError.New("You are not authorized to delete this post.", http.StatusForbidden)
	}

	if err := p.postRepo.DeletePost(postID); err != nil {
		log.Printf("Error deleting post %d: %v", postID, err)
		return apiError.ErrInternalServerError
	}

	if err := p.authRepo.AdjustPostCount(userID, -1); err != nil {
		log.Printf("Error decrementing post count for user %d: %v", userID, err)
		return apiError.ErrInternalServerError
	}

	deleteQuietly(p.media, post.Thumbnail)

	return nil
}
