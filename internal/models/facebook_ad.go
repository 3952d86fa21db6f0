package models

import "time"

// FacebookAd caches ad-level insights; the id is the ad platform id
type FacebookAd struct {
	ID            string    `gorm:"primaryKey;size:64" json:"id"`
	BrandID       uint64    `gorm:"not null;index" json:"brandId"`
	BatchID       *uint64   `gorm:"index" json:"batchId"`
	Batch         *AdBatch  `gorm:"constraint:OnDelete:SET NULL" json:"-"`
	Name          string    `gorm:"size:512" json:"name"`
	Status        string    `gorm:"size:32" json:"status,omitempty"`
	CampaignName  string    `gorm:"size:512" json:"campaignName,omitempty"`
	AdsetName     string    `gorm:"size:512" json:"adsetName,omitempty"`
	Spend         float64   `gorm:"not null;default:0" json:"spend"`
	ROAS          float64   `gorm:"column:roas;not null;default:0" json:"roas"`
	PurchaseValue float64   `gorm:"not null;default:0" json:"purchaseValue"`
	CPM           float64   `gorm:"column:cpm;not null;default:0" json:"cpm"`
	CTR           float64   `gorm:"column:ctr;not null;default:0" json:"ctr"`
	Impressions   int64     `gorm:"not null;default:0" json:"impressions"`
	Clicks        int64     `gorm:"not null;default:0" json:"clicks"`
	Insights      JSON      `json:"insights,omitempty"`
	SyncedAt      time.Time `json:"syncedAt"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// TableName overrides the table name for FacebookAd
func (FacebookAd) TableName() string {
	return "facebook_ads"
}
