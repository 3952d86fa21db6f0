package models

import (
	"time"

	"gorm.io/gorm"
)

// Brand is the tenant root; integration credentials are never serialized
type Brand struct {
	ID                  uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name                string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	LogoURL             string    `gorm:"size:1024" json:"logoUrl,omitempty"`
	Palette             JSON      `json:"palette,omitempty"`
	FacebookAccessToken string    `gorm:"type:text" json:"-"`
	FacebookAdAccountID string    `gorm:"size:64" json:"facebookAdAccountId,omitempty"`
	GoogleRefreshToken  string    `gorm:"type:text" json:"-"`
	GoogleRootFolderID  string    `gorm:"size:128" json:"googleRootFolderId,omitempty"`
	BreakEvenROAS       float64   `gorm:"column:break_even_roas;not null;default:0" json:"breakEvenRoas"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`

	FacebookConnected bool `gorm:"-" json:"facebookConnected"`
	GoogleConnected   bool `gorm:"-" json:"googleConnected"`
}

// TableName overrides the table name for Brand
func (Brand) TableName() string {
	return "brands"
}

// AfterFind derives the connection flags
func (b *Brand) AfterFind(tx *gorm.DB) error {
	b.Decorate()
	return nil
}

// AfterSave derives the connection flags
func (b *Brand) AfterSave(tx *gorm.DB) error {
	b.Decorate()
	return nil
}

// Decorate sets the derived, non persisted fields
func (b *Brand) Decorate() {
	b.FacebookConnected = b.FacebookAccessToken != "" && b.FacebookAdAccountID != ""
	b.GoogleConnected = b.GoogleRefreshToken != ""
}
