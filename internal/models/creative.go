package models

import (
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"
)

// CreativeType is the media class of a produced asset
type CreativeType string

const (
	CreativeVideo CreativeType = "VIDEO"
	CreativeImage CreativeType = "IMAGE"
)

// Creative is a produced video or image asset
type Creative struct {
	ID           uint64       `gorm:"primaryKey;autoIncrement" json:"id"`
	BrandID      uint64       `gorm:"not null;index" json:"brandId"`
	CreatorID    *uint64      `gorm:"index" json:"creatorId,omitempty"`
	Creator      *Creator     `gorm:"constraint:OnDelete:SET NULL" json:"creator,omitempty"`
	DriveFileID  *string      `gorm:"size:128;uniqueIndex" json:"driveFileId,omitempty"`
	CID          string       `gorm:"column:cid;size:16;index" json:"cid,omitempty"`
	Name         string       `gorm:"size:512;not null" json:"name"`
	Type         CreativeType `gorm:"size:8;not null;index" json:"type"`
	MimeType     string       `gorm:"size:128" json:"mimeType,omitempty"`
	ThumbnailURL string       `gorm:"size:2048" json:"thumbnailUrl,omitempty"`
	Width        int          `json:"width,omitempty"`
	Height       int          `json:"height,omitempty"`
	DurationMs   int64        `json:"durationMs,omitempty"`
	FolderPath   string       `gorm:"size:1024" json:"folderPath,omitempty"`
	Tags         []Tag        `gorm:"many2many:creative_tags;constraint:OnDelete:CASCADE" json:"tags"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// TableName overrides the table name for Creative
func (Creative) TableName() string {
	return "creatives"
}

// TagKind discriminates tag namespaces
type TagKind string

const (
	TagPlain       TagKind = "PLAIN"
	TagGroupID     TagKind = "GROUP_ID"
	TagLevel1      TagKind = "LEVEL1"
	TagBunch       TagKind = "BUNCH"
	TagAIGenerated TagKind = "AI_GENERATED"
)

const (
	groupIDPrefix = "CID-"
	level1Prefix  = "L1:"
	bunchPrefix   = "BUNCH:"
	aiPrefix      = "AI:"
)

var (
	deliveryCID = regexp.MustCompile(`^C-\d{6}$`)
	groupCID    = regexp.MustCompile(`^CID-\d{1,12}$`)
)

// IsCID reports whether label is a bare group or delivery id that fits the cid column
func IsCID(label string) bool {
	return groupCID.MatchString(label) || deliveryCID.MatchString(label)
}

func (k TagKind) Valid() bool {
	switch k {
	case TagPlain, TagGroupID, TagLevel1, TagBunch, TagAIGenerated:
		return true
	}
	return false
}

// Tag is a structured creative label, unique per kind and label
type Tag struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Kind      TagKind   `gorm:"size:16;not null;uniqueIndex:idx_tags_kind_label" json:"kind"`
	Label     string    `gorm:"size:255;not null;uniqueIndex:idx_tags_kind_label" json:"label"`
	Name      string    `gorm:"-" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName overrides the table name for Tag
func (Tag) TableName() string {
	return "tags"
}

// AfterFind fills the legacy display name
func (t *Tag) AfterFind(tx *gorm.DB) error {
	t.Name = t.LegacyName()
	return nil
}

// AfterCreate fills the legacy display name
func (t *Tag) AfterCreate(tx *gorm.DB) error {
	t.Name = t.LegacyName()
	return nil
}

// LegacyName renders the tag in the prefixed string form older clients expect.
// Group ids keep their full cid as the label.
func (t Tag) LegacyName() string {
	switch t.Kind {
	case TagLevel1:
		return level1Prefix + t.Label
	case TagBunch:
		return bunchPrefix + t.Label
	case TagAIGenerated:
		return aiPrefix + t.Label
	default:
		return t.Label
	}
}

// ParseTag turns a legacy tag string into a structured tag
func ParseTag(name string) Tag {
	name = strings.TrimSpace(name)
	switch {
	case strings.HasPrefix(name, groupIDPrefix), deliveryCID.MatchString(name):
		return NewTag(TagGroupID, name)
	case strings.HasPrefix(name, level1Prefix):
		return NewTag(TagLevel1, strings.TrimSpace(strings.TrimPrefix(name, level1Prefix)))
	case strings.HasPrefix(name, bunchPrefix):
		return NewTag(TagBunch, strings.TrimSpace(strings.TrimPrefix(name, bunchPrefix)))
	case strings.HasPrefix(name, aiPrefix):
		return NewTag(TagAIGenerated, strings.TrimSpace(strings.TrimPrefix(name, aiPrefix)))
	default:
		return NewTag(TagPlain, name)
	}
}

// NewTag builds an unsaved tag
func NewTag(kind TagKind, label string) Tag {
	t := Tag{Kind: kind, Label: label}
	t.Name = t.LegacyName()
	return t
}
