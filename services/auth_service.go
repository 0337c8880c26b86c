package services

import (
	"crypto/subtle"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Bossnapi119/pakawinasiayam/repository"
	"github.com/Bossnapi119/pakawinasiayam/utils"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService issues role tokens for the three panels. Admin logins check the
// bcrypt hash in the store; kitchen and developer are fixed shared
// credentials from config.
type AuthService struct {
	Repo *repository.AdminRepository
	Cfg  AuthConfig
}

type AuthConfig struct {
	JWTSecret     string
	AdminTTL      time.Duration
	KitchenTTL    time.Duration
	DeveloperTTL  time.Duration
	KitchenPIN    string
	DeveloperUser string
	DeveloperPass string
}

func NewAuthService(repo *repository.AdminRepository, cfg AuthConfig) *AuthService {
	return &AuthService{Repo: repo, Cfg: cfg}
}

func (s *AuthService) AdminLogin(username, password string) (string, error) {
	admin, err := s.Repo.FindByUsername(username)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return utils.GenerateToken(admin.ID, "admin", s.Cfg.JWTSecret, s.Cfg.AdminTTL)
}

func (s *AuthService) KitchenLogin(pin string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(pin), []byte(s.Cfg.KitchenPIN)) != 1 {
		return "", ErrInvalidCredentials
	}
	return utils.GenerateToken(0, "kitchen", s.Cfg.JWTSecret, s.Cfg.KitchenTTL)
}

func (s *AuthService) DeveloperLogin(username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.Cfg.DeveloperUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.Cfg.DeveloperPass)) == 1
	if !userOK || !passOK {
		return "", ErrInvalidCredentials
	}
	return utils.GenerateToken(0, "developer", s.Cfg.JWTSecret, s.Cfg.DeveloperTTL)
}

func (s *AuthService) ChangePassword(adminID uint, current, next string) error {
	admin, err := s.Repo.FindByID(adminID)
	if err != nil {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(current)); err != nil {
		return ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.Repo.UpdatePassword(adminID, string(hash))
}
