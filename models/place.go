package models

import (
	"time"

	"github.com/lib/pq"
)

type Place struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	CreatedAt         time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	Name              string         `gorm:"not null" json:"name"`
	NameHi            string         `json:"name_hi,omitempty"`
	NameTa            string         `json:"name_ta,omitempty"`
	State             string         `gorm:"not null;index" json:"state"`
	City              string         `gorm:"not null" json:"city"`
	Category          string         `gorm:"not null;index" json:"category"` // Heritage | Nature | Adventure | Religious
	Description       string         `gorm:"not null" json:"description"`
	DescriptionHi     string         `json:"description_hi,omitempty"`
	DescriptionTa     string         `json:"description_ta,omitempty"`
	BestTimeToVisit   string         `json:"bestTimeToVisit"`
	Location          string         `json:"location"` // coordinate pair or map URL, free text
	Images            pq.StringArray `gorm:"type:text[]" json:"images"`
	EntryFees         string         `json:"entryFees"`
	Timings           string         `json:"timings"`
	NearbyAttractions pq.StringArray `gorm:"type:text[]" json:"nearbyAttractions"`
	AverageRating     float64        `gorm:"default:0;index" json:"averageRating"`
	TotalReviews      int            `gorm:"default:0" json:"totalReviews"`
	Views             int            `gorm:"default:0" json:"views"`
	Reviews           []Review       `json:"reviews,omitempty" gorm:"foreignKey:PlaceID"`
}
