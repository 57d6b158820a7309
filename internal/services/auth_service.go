package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"

	"leafmarket/internal/models"
	"leafmarket/internal/repositories"
)

// AuthService handles business logic for authentication and authorization.
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtSecret  []byte
	tokenDurat time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour,
	}
}

// Register creates a new account. The email must be unused (compared
// case-insensitively; the stored value keeps its casing), and a declared
// state must be on the jurisdiction allow-list. Defaults: role user, Basic
// tier, active, joined today. Returns the record with the credential
// stripped.
func (s *AuthService) Register(user *models.User) (*models.User, error) {
	if existing, err := s.userRepo.GetByEmail(user.Email); err == nil && existing != nil {
		return nil, fmt.Errorf("email '%s': %w", user.Email, models.ErrEmailTaken)
	}
	if user.State != "" && !models.IsLegalState(user.State) {
		return nil, models.ErrStateNotLegal
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashedPassword)

	user.Role = models.NormalizeRole(user.Role)
	if user.MembershipTier == "" {
		user.MembershipTier = models.TierBasic
	}
	user.IsActive = true
	user.JoinDate = time.Now().Format("2006-01-02")
	if user.Preferences == (models.Preferences{}) {
		user.Preferences = models.DefaultPreferences()
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	registered := user.Sanitized()
	return &registered, nil
}

// Login authenticates by email (case-insensitive) and password. An unknown
// email reports not-found; a password mismatch reports invalid credentials.
// On success it returns the stripped record and a signed JWT.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", models.ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    models.NormalizeRole(user.Role),
		"exp":     time.Now().Add(s.tokenDurat).Unix(),
		"iat":     time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	logged := user.Sanitized()
	return &logged, tokenString, nil
}

// ChangePassword replaces the stored credential after verifying the current
// one.
func (s *AuthService) ChangePassword(id int, current, next string) error {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(current)); err != nil {
		return models.ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashed)

	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// ValidateToken parses and validates a JWT token, returning the claims if
// valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}
