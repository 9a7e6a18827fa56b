package services

import (
	"errors"
	"time"

	"quizapp/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrEmailTaken is returned by Register when the email already has an account.
	ErrEmailTaken = errors.New("email already exists")
	// ErrInvalidCredentials covers both an unknown email and a wrong password,
	// so callers cannot tell which stage failed.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AuthService struct {
	db          *gorm.DB
	jwtSecret   string
	tokenExpiry time.Duration
}

func NewAuthService(db *gorm.DB, jwtSecret string, tokenExpiryHours int) *AuthService {
	return &AuthService{
		db:          db,
		jwtSecret:   jwtSecret,
		tokenExpiry: time.Duration(tokenExpiryHours) * time.Hour,
	}
}

// SessionClaims is the JWT payload carried by every authenticated request.
// SessionID keys the user's transient quiz attempt state, so a fresh login
// (fresh token) never sees a previous session's in-flight attempt.
type SessionClaims struct {
	UserID    uint   `json:"user_id"`
	Name      string `json:"name"`
	IsAdmin   bool   `json:"is_admin"`
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

func (s *AuthService) Register(name, email, password string) (*models.User, error) {
	var existing models.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		IsAdmin:  false,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *AuthService) Authenticate(email, password string) (*models.User, string, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.createToken(&user)
	if err != nil {
		return nil, "", err
	}

	return &user, token, nil
}

func (s *AuthService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) createToken(user *models.User) (string, error) {
	claims := &SessionClaims{
		UserID:    user.ID,
		Name:      user.Name,
		IsAdmin:   user.IsAdmin,
		SessionID: uuid.NewString(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ParseToken verifies the signature and expiry and returns the session claims.
func ParseToken(tokenString, secret string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
