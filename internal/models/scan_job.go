package models

import "time"

// ScanStatus is the lifecycle of a drive scan job
type ScanStatus string

const (
	ScanPending   ScanStatus = "PENDING"
	ScanRunning   ScanStatus = "RUNNING"
	ScanCompleted ScanStatus = "COMPLETED"
	ScanFailed    ScanStatus = "FAILED"
)

// ScanJob is a durable drive scan record polled by clients
type ScanJob struct {
	ID             string     `gorm:"primaryKey;size:36" json:"id"`
	BrandID        uint64     `gorm:"not null;index" json:"brandId"`
	FolderID       string     `gorm:"size:128;not null" json:"folderId"`
	Status         ScanStatus `gorm:"size:16;not null;default:PENDING;index" json:"status"`
	FilesProcessed int        `gorm:"not null;default:0" json:"filesProcessed"`
	FilesSkipped   int        `gorm:"not null;default:0" json:"filesSkipped"`
	FilesFailed    int        `gorm:"not null;default:0" json:"filesFailed"`
	FoldersVisited int        `gorm:"not null;default:0" json:"foldersVisited"`
	FoldersFailed  int        `gorm:"not null;default:0" json:"foldersFailed"`
	Error          string     `gorm:"type:text" json:"error,omitempty"`
	StartedAt      *time.Time `json:"startedAt,omitempty"`
	FinishedAt     *time.Time `json:"finishedAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// TableName overrides the table name for ScanJob
func (ScanJob) TableName() string {
	return "scan_jobs"
}

// Terminal reports whether the job has finished
func (j ScanJob) Terminal() bool {
	return j.Status == ScanCompleted || j.Status == ScanFailed
}
