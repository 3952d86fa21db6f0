package models

import "time"

// CreatorStatus tracks onboarding of external talent
type CreatorStatus string

const (
	CreatorProspect   CreatorStatus = "PROSPECT"
	CreatorOnboarding CreatorStatus = "ONBOARDING"
	CreatorActive     CreatorStatus = "ACTIVE"
	CreatorInactive   CreatorStatus = "INACTIVE"
)

func (s CreatorStatus) Valid() bool {
	switch s {
	case CreatorProspect, CreatorOnboarding, CreatorActive, CreatorInactive:
		return true
	}
	return false
}

// Creator is an external content producer uploading raw footage
type Creator struct {
	ID                uint64        `gorm:"primaryKey;autoIncrement" json:"id"`
	BrandID           uint64        `gorm:"not null;uniqueIndex:idx_creators_brand_email" json:"brandId"`
	Name              string        `gorm:"size:255;not null" json:"name"`
	Email             string        `gorm:"size:255;not null;uniqueIndex:idx_creators_brand_email" json:"email"`
	Country           string        `gorm:"size:64" json:"country,omitempty"`
	Language          string        `gorm:"size:64" json:"language,omitempty"`
	Platform          string        `gorm:"size:64" json:"platform,omitempty"`
	Status            CreatorStatus `gorm:"size:16;not null;default:PROSPECT" json:"status"`
	ActiveDeliveryCID string        `gorm:"column:active_delivery_cid;size:16" json:"activeDeliveryCid,omitempty"`
	OnboardedAt       *time.Time    `json:"onboardedAt,omitempty"`
	Notes             string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt         time.Time     `json:"createdAt"`
	UpdatedAt         time.Time     `json:"updatedAt"`
}

// TableName overrides the table name for Creator
func (Creator) TableName() string {
	return "creators"
}
