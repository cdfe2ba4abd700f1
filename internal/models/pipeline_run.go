package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StageIngest  = "ingest"
	StageClean   = "clean"
	StageReport  = "report"
	StageSegment = "segment"

	RunStatusStarted   = "started"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

// PipelineRun is the audit record of one stage execution.
type PipelineRun struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Stage      string     `gorm:"type:varchar(20);not null;index" json:"stage"`
	Status     string     `gorm:"type:varchar(20);not null" json:"status"`
	RowsIn     int64      `gorm:"default:0" json:"rows_in"`
	RowsOut    int64      `gorm:"default:0" json:"rows_out"`
	Error      string     `gorm:"type:text" json:"error,omitempty"`
	StartedAt  time.Time  `gorm:"not null;index" json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

// BeforeCreate hook for PipelineRun
func (r *PipelineRun) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.StartedAt.IsZero() {
		r.StartedAt = time.Now()
	}
	if r.Status == "" {
		r.Status = RunStatusStarted
	}
	return nil
}

// TableName returns the table name for PipelineRun
func (PipelineRun) TableName() string {
	return "pipeline_runs"
}

// Duration is the wall-clock time of a finished run, zero while running.
func (r *PipelineRun) Duration() time.Duration {
	if r.FinishedAt == nil {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// IsValidStage checks if the stage name is one of the pipeline stages
func IsValidStage(stage string) bool {
	switch stage {
	case StageIngest, StageClean, StageReport, StageSegment:
		return true
	default:
		return false
	}
}
