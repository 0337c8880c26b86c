package services

import (
	"io"

	"github.com/Bossnapi119/pakawinasiayam/entity"
	"github.com/Bossnapi119/pakawinasiayam/repository"
)

type SiteService struct {
	Repo    *repository.SiteRepository
	Uploads *UploadStore
}

func NewSiteService(repo *repository.SiteRepository, uploads *UploadStore) *SiteService {
	return &SiteService{Repo: repo, Uploads: uploads}
}

func (s *SiteService) Get() (*entity.SiteConfig, error) {
	return s.Repo.Get()
}

type SiteConfigIn struct {
	BrandName      string `json:"brandName"`
	DailySpecial   string `json:"dailySpecial"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	OperatingHours string `json:"operatingHours"`
}

func (s *SiteService) Update(in *SiteConfigIn) error {
	return s.Repo.Update(map[string]any{
		"brand_name":      in.BrandName,
		"daily_special":   in.DailySpecial,
		"address":         in.Address,
		"phone":           in.Phone,
		"operating_hours": in.OperatingHours,
	})
}

// ReplaceLogo stores the new file, points the config at it, then deletes the
// old one. Delete only happens after the config write succeeded.
func (s *SiteService) ReplaceLogo(r io.Reader, size int64, origName string) (string, error) {
	return s.replaceImage(r, size, origName, "logo_path", func(c *entity.SiteConfig) string { return c.LogoPath })
}

func (s *SiteService) ReplacePoster(r io.Reader, size int64, origName string) (string, error) {
	return s.replaceImage(r, size, origName, "landing_poster_path", func(c *entity.SiteConfig) string { return c.LandingPosterPath })
}

func (s *SiteService) replaceImage(r io.Reader, size int64, origName, column string, oldPath func(*entity.SiteConfig) string) (string, error) {
	cfg, err := s.Repo.Get()
	if err != nil {
		return "", err
	}

	newPath, err := s.Uploads.SaveImage(r, size, origName)
	if err != nil {
		return "", err
	}

	if err := s.Repo.Update(map[string]any{column: newPath}); err != nil {
		s.Uploads.Remove(newPath)
		return "", err
	}

	if old := oldPath(cfg); old != "" {
		s.Uploads.Remove(old)
	}
	return newPath, nil
}
