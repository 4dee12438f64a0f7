package domain

import "time"

// Banner positions on the storefront home page.
const (
	BannerPositionHeroSlider = "hero_slider"
	BannerPositionMidBanner  = "mid_banner"
)

// Banner is a promotional image shown on the storefront.
type Banner struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle,omitempty"`
	ImageURL  string    `json:"imageUrl"`
	LinkURL   string    `json:"linkUrl,omitempty"`
	Position  string    `json:"position"`
	SortOrder int       `json:"sortOrder"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsValidBannerPosition checks if a position string is valid.
func IsValidBannerPosition(position string) bool {
	return position == BannerPositionHeroSlider || position == BannerPositionMidBanner
}
