package models

import "time"

// BatchStatus is a production pipeline stage
type BatchStatus string

const (
	StatusIdeation        BatchStatus = "IDEATION"
	StatusCreatorBriefing BatchStatus = "CREATOR_BRIEFING"
	StatusFilming         BatchStatus = "FILMING"
	StatusEditorBriefing  BatchStatus = "EDITOR_BRIEFING"
	StatusEditing         BatchStatus = "EDITING"
	StatusReview          BatchStatus = "REVIEW"
	StatusAIBoost         BatchStatus = "AI_BOOST"
	StatusLearning        BatchStatus = "LEARNING"
	StatusArchived        BatchStatus = "ARCHIVED"
	StatusTrashed         BatchStatus = "TRASHED"
)

// PipelineOrder lists the forward stages; TRASHED is a side state
var PipelineOrder = []BatchStatus{
	StatusIdeation,
	StatusCreatorBriefing,
	StatusFilming,
	StatusEditorBriefing,
	StatusEditing,
	StatusReview,
	StatusAIBoost,
	StatusLearning,
	StatusArchived,
}

// Valid reports whether s is a known status, TRASHED included
func (s BatchStatus) Valid() bool {
	if s == StatusTrashed {
		return true
	}
	for _, p := range PipelineOrder {
		if p == s {
			return true
		}
	}
	return false
}

// BatchType says where the batch idea came from
type BatchType string

const (
	BatchTypeCopycat   BatchType = "COPYCAT"
	BatchTypeNetNew    BatchType = "NET_NEW"
	BatchTypeIteration BatchType = "ITERATION"
)

func (t BatchType) Valid() bool {
	return t == BatchTypeCopycat || t == BatchTypeNetNew || t == BatchTypeIteration
}

// ItemStatus is the per-variation sub state
type ItemStatus string

const (
	ItemPending ItemStatus = "PENDING"
	ItemDone    ItemStatus = "DONE"
)

func (s ItemStatus) Valid() bool {
	return s == ItemPending || s == ItemDone
}

// AdBatch is one unit of creative production work
type AdBatch struct {
	ID               uint64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string      `gorm:"size:255;not null" json:"name"`
	Status           BatchStatus `gorm:"size:32;not null;default:IDEATION;index" json:"status"`
	BatchType        BatchType   `gorm:"size:16;not null;default:NET_NEW" json:"batchType"`
	Priority         *int        `json:"priority"`
	BrandID          *uint64     `gorm:"index" json:"brandId,omitempty"`
	AngleID          uint64      `gorm:"not null;index" json:"angleId"`
	Angle            *AdAngle    `gorm:"constraint:OnDelete:RESTRICT" json:"angle,omitempty"`
	FormatID         *uint64     `gorm:"index" json:"formatId,omitempty"`
	Format           *AdFormat   `gorm:"constraint:OnDelete:SET NULL" json:"format,omitempty"`
	ReferenceAdID    *uint64     `gorm:"index" json:"referenceAdId,omitempty"`
	ReferenceAd      *Ad         `gorm:"constraint:OnDelete:SET NULL" json:"referenceAd,omitempty"`
	ReferenceBatchID *uint64     `gorm:"index" json:"referenceBatchId,omitempty"`
	ReferenceBatch   *AdBatch    `gorm:"constraint:OnDelete:SET NULL" json:"referenceBatch,omitempty"`
	Idea             string      `gorm:"type:text" json:"idea,omitempty"`
	Brief            string      `gorm:"type:text" json:"brief,omitempty"`
	CreatorBrief     string      `gorm:"type:text" json:"creatorBrief,omitempty"`
	Shotlist         string      `gorm:"type:text" json:"shotlist,omitempty"`
	MainMessaging    string      `gorm:"type:text" json:"mainMessaging,omitempty"`
	Learnings        string      `gorm:"type:text" json:"learnings,omitempty"`
	AIVariations     JSON        `gorm:"column:ai_variations" json:"aiVariations,omitempty"`
	LaunchedAt       *time.Time  `json:"launchedAt"`
	ProjectFilesURL  string      `gorm:"size:2048" json:"projectFilesUrl,omitempty"`
	Items            []BatchItem `gorm:"foreignKey:BatchID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	Creators         []Creator   `gorm:"many2many:batch_creators;constraint:OnDelete:CASCADE" json:"creators,omitempty"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

// BatchItem is one variation (script/hook/format combination) of a batch
type BatchItem struct {
	ID                uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	BatchID           uint64     `gorm:"not null;uniqueIndex:idx_batch_items_variation" json:"batchId"`
	VariationIndex    string     `gorm:"size:2;not null;uniqueIndex:idx_batch_items_variation" json:"variationIndex"`
	Status            ItemStatus `gorm:"size:16;not null;default:PENDING" json:"status"`
	FormatID          *uint64    `gorm:"index" json:"formatId,omitempty"`
	Format            *AdFormat  `gorm:"constraint:OnDelete:SET NULL" json:"format,omitempty"`
	HookID            *uint64    `gorm:"index" json:"hookId,omitempty"`
	Hook              *AdHook    `gorm:"constraint:OnDelete:SET NULL" json:"hook,omitempty"`
	Script            string     `gorm:"type:text" json:"script,omitempty"`
	Notes             string     `gorm:"type:text" json:"notes,omitempty"`
	RequestedDuration int        `json:"requestedDuration,omitempty"`
	VideoURL          string     `gorm:"size:2048" json:"videoUrl,omitempty"`
	VideoName         string     `gorm:"size:512" json:"videoName,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// TableName overrides the table name for AdBatch
func (AdBatch) TableName() string {
	return "ad_batches"
}

// TableName overrides the table name for BatchItem
func (BatchItem) TableName() string {
	return "batch_items"
}
