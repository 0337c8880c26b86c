package entity

// SiteConfig is a singleton row (id=1).
type SiteConfig struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	BrandName        string `json:"brandName"`
	DailySpecial     string `json:"dailySpecial"`
	LogoPath         string `json:"logoPath"`
	LandingPosterPath string `json:"landingPosterPath"`
	Address          string `json:"address"`
	Phone            string `json:"phone"`
	OperatingHours   string `json:"operatingHours"`
}
