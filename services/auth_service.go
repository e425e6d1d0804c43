package services

import (
	"errors"
	"log"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/priyanshusingh1234/spell/config"
	"github.com/priyanshusingh1234/spell/db"
	apiError "github.com/priyanshusingh1234/spell/errors"
	"github.com/priyanshusingh1234/spell/models"
	"github.com/priyanshusingh1234/spell/services/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService interface
type AuthService interface {
	SignupUser(request *models.RegisterRequest) (*models.User, *apiError.Error)
	LoginUser(loginRequest *models.LoginRequest) (*models.LoginResponse, *apiError.Error)
	GetUserProfile(userID uint) (*models.User, *apiError.Error)
	GetAllUsers() ([]models.User, error)
	ChangeAvatar(userID uint, avatar *multipart.FileHeader) (*models.User, *apiError.Error)
	EditUser(userID uint, request *models.EditUserRequest) (*models.User, *apiError.Error)
}

// authService struct
type authService struct {
	Config   *config.Config
	authRepo db.AuthRepository
	media    MediaService
}

// NewAuthService instantiate an authService
func NewAuthService(authRepo db.AuthRepository, media MediaService, conf *config.Config) AuthService {
	return &authService{
		Config:   conf,
		authRepo: authRepo,
		media:    media,
	}
}

func (a *authService) SignupUser(request *models.RegisterRequest) (*models.User, *apiError.Error) {
	if err := request.Conform(); err != nil {
		log.Printf("SignupUser conform error: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	if request.Name == "" || request.Email == "" || request.Password == "" || request.Password2 == "" {
		return nil, apiError.New("Fill in all fields.", http.StatusUnprocessableEntity)
	}

	if err := a.authRepo.IsEmailExist(request.Email); err != nil {
		log.Printf("SignupUser error: %v", err)
		return nil, apiError.New("User already exists.", http.StatusUnprocessableEntity)
	}

	if err := models.ValidatePassword(strings.TrimSpace(request.Password)); err != nil {
		return nil, apiError.New(err.Error(), http.StatusUnprocessableEntity)
	}

	if request.Password != request.Password2 {
		return nil, apiError.New("Passwords do not match.", http.StatusUnprocessableEntity)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("SignupUser error hashing password: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	user := &models.User{
		Name:           request.Name,
		Email:          request.Email,
		HashedPassword: string(hashedPassword),
	}

	createdUser, err := a.authRepo.CreateUser(user)
	if err != nil {
		log.Printf("SignupUser error creating user: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	return createdUser, nil
}

// LoginUser logs in a user and returns the signed credential. Unknown
// email and wrong password produce the same response on purpose.
func (a *authService) LoginUser(loginRequest *models.LoginRequest) (*models.LoginResponse, *apiError.Error) {
	if err := loginRequest.Conform(); err != nil {
		log.Printf("LoginUser conform error: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	if loginRequest.Email == "" || loginRequest.Password == "" {
		return nil, apiError.New("Fill in all fields.", http.StatusUnprocessableEntity)
	}

	foundUser, err := a.authRepo.FindUserByEmail(loginRequest.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.ErrInvalidPassword
		}
		log.Printf("Error finding user by email: %v", err)
		return nil, apiError.New("unable to find user", http.StatusInternalServerError)
	}

	if err := foundUser.VerifyPassword(loginRequest.Password); err != nil {
		log.Printf("Invalid password for user %s", foundUser.Email)
		return nil, apiError.ErrInvalidPassword
	}

	token, err := jwt.GenerateToken(foundUser.ID, foundUser.Name, a.Config.JWTSecret)
	if err != nil {
		log.Printf("Error generating token for user %s: %v", foundUser.Email, err)
		return nil, apiError.ErrInternalServerError
	}

	return &models.LoginResponse{
		Token: token,
		ID:    foundUser.ID,
		Name:  foundUser.Name,
	}, nil
}

func (a *authService) GetUserProfile(userID uint) (*models.User, *apiError.Error) {
	user, err := a.authRepo.FindUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.New("User not found.", http.StatusNotFound)
		}
		log.Printf("Error fetching user %d: %v", userID, err)
		return nil, apiError.ErrInternalServerError
	}
	return user, nil
}

func (a *authService) GetAllUsers() ([]models.User, error) {
	users, err := a.authRepo.GetAllUsers()
	if err != nil {
		return nil, err
	}
	return users, nil
}

// ChangeAvatar stores the uploaded image under a fresh generated name,
// points the user record at it, then removes the previous file. A
// failed removal of the old avatar is logged and never fails the
// request.
func (a *authService) ChangeAvatar(userID uint, avatar *multipart.FileHeader) (*models.User, *apiError.Error) {
	if avatar == nil {
		return nil, apiError.New("Please choose an image.", http.StatusUnprocessableEntity)
	}

	if avatar.Size > a.Config.MaxAvatarSize {
		return nil, apiError.New("Image must be less than or equal to 500kb.", http.StatusUnprocessableEntity)
	}

	user, err := a.authRepo.FindUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.New("User not found.", http.StatusNotFound)
		}
		log.Printf("Error fetching user %d: %v", userID, err)
		return nil, apiError.ErrInternalServerError
	}

	newFilename := uniqueAvatarName(avatar.Filename)
	if err := a.media.SaveUpload(avatar, newFilename); err != nil {
		log.Printf("Error saving avatar for user %d: %v", userID, err)
		return nil, apiError.New("File upload failed.", http.StatusInternalServerError)
	}

	if err := a.authRepo.UpdateUserAvatar(userID, newFilename); err != nil {
		deleteQuietly(a.media, newFilename)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.New("User not found.", http.StatusNotFound)
		}
		log.Printf("Error updating avatar for user %d: %v", userID, err)
		return nil, apiError.New("Avatar could not be updated.", http.StatusUnprocessableEntity)
	}

	deleteQuietly(a.media, user.Avatar)

	user.Avatar = newFilename
	return user, nil
}

func (a *authService) EditUser(userID uint, request *models.EditUserRequest) (*models.User, *apiError.Error) {
	if err := request.Conform(); err != nil {
		log.Printf("EditUser conform error: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	if request.Name == "" || request.Email == "" || request.CurrentPassword == "" ||
		request.NewPassword == "" || request.ConfirmNewPassword == "" {
		return nil, apiError.New("Fill in all the fields.", http.StatusUnprocessableEntity)
	}

	user, err := a.authRepo.FindUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.New("User not found.", http.StatusNotFound)
		}
		log.Printf("Error fetching user %d: %v", userID, err)
		return nil, apiError.ErrInternalServerError
	}

	existing, err := a.authRepo.FindUserByEmail(request.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Error checking email %s: %v", request.Email, err)
		return nil, apiError.ErrInternalServerError
	}
	if existing != nil && existing.ID != userID {
		return nil, apiError.New("Email already registered.", http.StatusUnprocessableEntity)
	}

	if err := user.VerifyPassword(request.CurrentPassword); err != nil {
		return nil, apiError.New("Invalid current password.", http.StatusUnprocessableEntity)
	}

	if request.NewPassword != request.ConfirmNewPassword {
		return nil, apiError.New("Passwords don't match(new).", http.StatusUnprocessableEntity)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("EditUser error hashing password: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	if err := a.authRepo.UpdateUserProfile(userID, request.Name, request.Email, string(hashedPassword)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.New("User not found.", http.StatusNotFound)
		}
		log.Printf("Error updating profile for user %d: %v", userID, err)
		return nil, apiError.ErrInternalServerError
	}

	user.Name = request.Name
	user.Email = request.Email
	user.HashedPassword = string(hashedPassword)
	return user, nil
}
