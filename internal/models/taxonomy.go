package models

import "time"

// Taxon holds the fields shared by every creative-strategy tag table
type Taxon struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Category    string    `gorm:"size:255" json:"category,omitempty"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Base exposes the shared fields of an embedding taxonomy model
func (t *Taxon) Base() *Taxon {
	return t
}

// TaxonRef names a column that points at a taxonomy row.
// Required references block deletion; optional ones are nulled.
type TaxonRef struct {
	Table    string
	Column   string
	Required bool
}

// Taxonomy is implemented by the pointer types of every taxonomy model
type Taxonomy interface {
	Base() *Taxon
	TableName() string
	References() []TaxonRef
}

// AdFormat is a production format, e.g. "Talking head" or "Copycat / Direct Response"
type AdFormat struct {
	Taxon
}

// AdHook is an opening line or visual pattern
type AdHook struct {
	Taxon
}

// AdTheme is the "what" of an angle
type AdTheme struct {
	Taxon
}

// AdDesire is the "why" of an angle
type AdDesire struct {
	Taxon
}

// AdAwarenessLevel is the audience awareness stage
type AdAwarenessLevel struct {
	Taxon
}

// AdDemographic is the "who" of an angle
type AdDemographic struct {
	Taxon
}

func (AdFormat) TableName() string         { return "ad_formats" }
func (AdHook) TableName() string           { return "ad_hooks" }
func (AdTheme) TableName() string          { return "ad_themes" }
func (AdDesire) TableName() string         { return "ad_desires" }
func (AdAwarenessLevel) TableName() string { return "ad_awareness_levels" }
func (AdDemographic) TableName() string    { return "ad_demographics" }

func (AdFormat) References() []TaxonRef {
	return []TaxonRef{{"ads", "format_id", false}, {"ad_batches", "format_id", false}, {"batch_items", "format_id", false}}
}

func (AdHook) References() []TaxonRef {
	return []TaxonRef{{"ads", "hook_id", false}, {"batch_items", "hook_id", false}}
}

func (AdTheme) References() []TaxonRef {
	return []TaxonRef{{"ad_angles", "theme_id", true}, {"ads", "theme_id", false}}
}

func (AdDesire) References() []TaxonRef {
	return []TaxonRef{{"ad_angles", "desire_id", true}, {"ads", "desire_id", false}}
}

func (AdAwarenessLevel) References() []TaxonRef {
	return []TaxonRef{{"ad_angles", "awareness_level_id", true}, {"ads", "awareness_level_id", false}}
}

func (AdDemographic) References() []TaxonRef {
	return []TaxonRef{{"ad_angles", "demographic_id", true}, {"ads", "demographic_id", false}}
}

// AdAngle is one who/why/what creative strategy combination
type AdAngle struct {
	ID               uint64            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string            `gorm:"size:255;not null" json:"name"`
	BrandID          *uint64           `gorm:"index" json:"brandId,omitempty"`
	DesireID         uint64            `gorm:"not null;index" json:"desireId"`
	Desire           *AdDesire         `gorm:"constraint:OnDelete:RESTRICT" json:"desire,omitempty"`
	ThemeID          uint64            `gorm:"not null;index" json:"themeId"`
	Theme            *AdTheme          `gorm:"constraint:OnDelete:RESTRICT" json:"theme,omitempty"`
	DemographicID    uint64            `gorm:"not null;index" json:"demographicId"`
	Demographic      *AdDemographic    `gorm:"constraint:OnDelete:RESTRICT" json:"demographic,omitempty"`
	AwarenessLevelID uint64            `gorm:"not null;index" json:"awarenessLevelId"`
	AwarenessLevel   *AdAwarenessLevel `gorm:"constraint:OnDelete:RESTRICT" json:"awarenessLevel,omitempty"`
	ConceptDoc       string            `gorm:"type:text" json:"conceptDoc,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

// TableName overrides the table name for AdAngle
func (AdAngle) TableName() string {
	return "ad_angles"
}
