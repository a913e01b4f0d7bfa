package models

import "time"

type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"index"`
	PlaceID   uint      `json:"placeId" gorm:"index"`
	Rating    int       `json:"rating"`                     // 1 - 5
	Comment   string    `json:"comment"`                    // max 1000 characters
	Language  string    `gorm:"default:en" json:"language"` // en | hi | ta
	UserName  string    `json:"userName"`                   // denormalized at creation time
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	User      User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Place     Place     `json:"place,omitempty" gorm:"foreignKey:PlaceID"`
}
