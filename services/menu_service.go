package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Bossnapi119/pakawinasiayam/entity"
	"github.com/Bossnapi119/pakawinasiayam/repository"
)

var ErrMenuItemNotFound = errors.New("menu item not found")

type MenuService struct {
	Repo    *repository.MenuRepository
	Uploads *UploadStore
}

func NewMenuService(repo *repository.MenuRepository, uploads *UploadStore) *MenuService {
	return &MenuService{Repo: repo, Uploads: uploads}
}

func (s *MenuService) ListActive() ([]entity.MenuItem, error) {
	return s.Repo.ListActive()
}

func (s *MenuService) ListAll() ([]entity.MenuItem, error) {
	return s.Repo.ListAll()
}

type MenuItemIn struct {
	Name        string
	Description string
	Price       int64
	Category    entity.MenuCategory
	IsActive    bool
}

func (in *MenuItemIn) validate() *ValidationError {
	if in.Name == "" {
		return &ValidationError{Field: "name", Msg: "required"}
	}
	if in.Price < 0 {
		return &ValidationError{Field: "price", Msg: "must not be negative"}
	}
	if !in.Category.Valid() {
		return &ValidationError{Field: "category", Msg: "must be Main, Set, Side or Drink"}
	}
	return nil
}

func (s *MenuService) Create(in *MenuItemIn, imagePath string) (*entity.MenuItem, error) {
	if verr := in.validate(); verr != nil {
		return nil, verr
	}
	m := &entity.MenuItem{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		IsActive:    in.IsActive,
		Image:       imagePath,
	}
	if err := s.Repo.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

// Update replaces the row and, when a new image was uploaded, removes the old
// file only after the row update succeeded.
func (s *MenuService) Update(id uint, in *MenuItemIn, imagePath string) error {
	if verr := in.validate(); verr != nil {
		return verr
	}

	old, err := s.Repo.Get(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrMenuItemNotFound
	}
	if err != nil {
		return err
	}

	fields := map[string]any{
		"name":        in.Name,
		"description": in.Description,
		"price":       in.Price,
		"category":    in.Category,
		"is_active":   in.IsActive,
	}
	if imagePath != "" {
		fields["image"] = imagePath
	}
	if err := s.Repo.Update(id, fields); err != nil {
		return err
	}

	if imagePath != "" && old.Image != "" {
		s.Uploads.Remove(old.Image)
	}
	return nil
}

func (s *MenuService) Delete(id uint) error {
	old, err := s.Repo.Get(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrMenuItemNotFound
	}
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	if old.Image != "" {
		s.Uploads.Remove(old.Image)
	}
	return nil
}
