package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"cantina_backend/internal/models"
	"cantina_backend/internal/repositories"
	"cantina_backend/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

// RegisterRequest is used for registering a regular ("jovem") user.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest is used for both regular and admin login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the issued tokens and the authenticated user.
type AuthResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	User         models.User `json:"user"`
}

// AuthService handles registration, login and token refresh. Registration
// always assigns the "jovem" role; the single admin account is gated by an
// environment-supplied credential pair compared by plain equality (an access
// convenience for a trusted deployment, not a security boundary).
type AuthService interface {
	RegisterJovem(req RegisterRequest) (*models.User, error)
	Login(req LoginRequest) (*AuthResponse, error)
	LoginAdm(req LoginRequest) (*AuthResponse, error)
	RefreshToken(refreshToken string) (*AuthResponse, error)
	GetUser(userID string) (*models.User, error)
}

type authService struct {
	userRepo    repositories.UserRepository
	db          *sql.DB
	admEmail    string
	admPassword string
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(userRepo repositories.UserRepository, db *sql.DB, admEmail, admPassword string) AuthService {
	return &authService{
		userRepo:    userRepo,
		db:          db,
		admEmail:    admEmail,
		admPassword: admPassword,
	}
}

func (s *authService) RegisterJovem(req RegisterRequest) (*models.User, error) {
	if !utils.IsValidEmail(req.Email) {
		return nil, fmt.Errorf("%w: invalid email address", ErrValidation)
	}
	if !utils.IsValidPasswordLength(req.Password, minPasswordLength) {
		return nil, fmt.Errorf("%w: password must have at least %d characters", ErrValidation, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		Name:         nameFromEmail(req.Email),
		Role:         models.RoleJovem,
		PasswordHash: string(hash),
	}
	if _, err := s.userRepo.Create(s.db, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) Login(req LoginRequest) (*AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidPassword
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidPassword
	}
	return s.issueTokens(user)
}

// LoginAdm checks the credential pair against the configured admin email and
// password. On first successful login the admin user record is created
// lazily, so a fresh database needs no seeding step.
func (s *authService) LoginAdm(req LoginRequest) (*AuthResponse, error) {
	if s.admEmail == "" || req.Email != s.admEmail || req.Password != s.admPassword {
		return nil, ErrInvalidAdmLogin
	}

	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
		hash, hashErr := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if hashErr != nil {
			return nil, fmt.Errorf("failed to hash password: %w", hashErr)
		}
		user = &models.User{
			Email:        req.Email,
			Name:         "Administrador",
			Role:         models.RoleAdm,
			PasswordHash: string(hash),
		}
		if _, err := s.userRepo.Create(s.db, user); err != nil {
			return nil, err
		}
	}
	return s.issueTokens(user)
}

func (s *authService) RefreshToken(refreshToken string) (*AuthResponse, error) {
	claims, err := utils.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPassword, err)
	}
	user, err := s.userRepo.GetByID(claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.issueTokens(user)
}

func (s *authService) GetUser(userID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) issueTokens(user *models.User) (*AuthResponse, error) {
	accessToken, err := utils.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	refreshToken, err := utils.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         *user,
	}, nil
}

// nameFromEmail derives a display name from the email local part, the same
// convention the registration flow has always used.
func nameFromEmail(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}
