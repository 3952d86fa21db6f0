package models

import "time"

// Ad is a competitor ad captured from an export or entered manually.
// PostID is the external dedup key.
type Ad struct {
	ID             uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID         string     `gorm:"size:64;not null;uniqueIndex" json:"postId"`
	BrandID        *uint64    `gorm:"index" json:"brandId,omitempty"`
	AdvertiserName string     `gorm:"column:brand;size:255;index" json:"brand"`
	PostURL        string     `gorm:"size:2048" json:"postUrl,omitempty"`
	Headline       string     `gorm:"type:text" json:"headline"`
	Description    string     `gorm:"type:text" json:"description"`
	VideoURL       string     `gorm:"size:2048" json:"videoUrl,omitempty"`
	ImageURL       string     `gorm:"size:2048" json:"imageUrl,omitempty"`
	ThumbnailURL   string     `gorm:"size:2048" json:"thumbnailUrl,omitempty"`
	PublishDate    *time.Time `json:"publishDate,omitempty"`
	FirstSeen      time.Time  `gorm:"not null;index" json:"firstSeen"`
	LastSeen       time.Time  `gorm:"not null;index" json:"lastSeen"`
	Priority       *int       `gorm:"index" json:"priority"`
	Notes          string     `gorm:"type:text" json:"notes,omitempty"`
	WhyItWorks     string     `gorm:"type:text" json:"whyItWorks,omitempty"`
	Transcript     string     `gorm:"type:text" json:"transcript,omitempty"`
	MainMessaging  string     `gorm:"type:text" json:"mainMessaging,omitempty"`

	FormatID         *uint64           `gorm:"index" json:"formatId,omitempty"`
	Format           *AdFormat         `gorm:"constraint:OnDelete:SET NULL" json:"format,omitempty"`
	HookID           *uint64           `gorm:"index" json:"hookId,omitempty"`
	Hook             *AdHook           `gorm:"constraint:OnDelete:SET NULL" json:"hook,omitempty"`
	ThemeID          *uint64           `gorm:"index" json:"themeId,omitempty"`
	Theme            *AdTheme          `gorm:"constraint:OnDelete:SET NULL" json:"theme,omitempty"`
	DesireID         *uint64           `gorm:"index" json:"desireId,omitempty"`
	Desire           *AdDesire         `gorm:"constraint:OnDelete:SET NULL" json:"desire,omitempty"`
	AwarenessLevelID *uint64           `gorm:"index" json:"awarenessLevelId,omitempty"`
	AwarenessLevel   *AdAwarenessLevel `gorm:"constraint:OnDelete:SET NULL" json:"awarenessLevel,omitempty"`
	DemographicID    *uint64           `gorm:"index" json:"demographicId,omitempty"`
	Demographic      *AdDemographic    `gorm:"constraint:OnDelete:SET NULL" json:"demographic,omitempty"`

	Snapshots []AdSnapshot `gorm:"constraint:OnDelete:CASCADE" json:"snapshots,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// AdSnapshot is one append-only engagement reading for an Ad
type AdSnapshot struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	AdID          uint64    `gorm:"not null;index" json:"adId"`
	Likes         int64     `gorm:"not null;default:0" json:"likes"`
	Shares        int64     `gorm:"not null;default:0" json:"shares"`
	Comments      int64     `gorm:"not null;default:0" json:"comments"`
	CapturedAt    time.Time `gorm:"not null;index" json:"capturedAt"`
	ImportBatchID *uint64   `gorm:"index" json:"importBatchId,omitempty"`
}

// ImportBatch groups the snapshots written by one import run
type ImportBatch struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName overrides the table name for Ad
func (Ad) TableName() string {
	return "ads"
}

// TableName overrides the table name for AdSnapshot
func (AdSnapshot) TableName() string {
	return "ad_snapshots"
}

// TableName overrides the table name for ImportBatch
func (ImportBatch) TableName() string {
	return "import_batches"
}
