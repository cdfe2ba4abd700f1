package repositories

import (
	"errors"
	"fmt"

	"retail-analytics/internal/models"

	"gorm.io/gorm"
)

var ErrRunNotFound = errors.New("pipeline run not found")

// pipelineRunRepository implements PipelineRunRepositoryInterface
type pipelineRunRepository struct {
	db *gorm.DB
}

// NewPipelineRunRepository creates a new run log repository
func NewPipelineRunRepository(db *gorm.DB) PipelineRunRepositoryInterface {
	return &pipelineRunRepository{
		db: db,
	}
}

// Create records a new pipeline run
func (r *pipelineRunRepository) Create(run *models.PipelineRun) error {
	if err := r.db.Create(run).Error; err != nil {
		return fmt.Errorf("failed to create pipeline run: %w", err)
	}
	return nil
}

// Update persists run status changes
func (r *pipelineRunRepository) Update(run *models.PipelineRun) error {
	result := r.db.Model(&models.PipelineRun{ID: run.ID}).
		Updates(map[string]interface{}{
			"status":      run.Status,
			"rows_in":     run.RowsIn,
			"rows_out":    run.RowsOut,
			"error":       run.Error,
			"finished_at": run.FinishedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update pipeline run: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRunNotFound
	}
	return nil
}

// GetRecent retrieves the newest runs across all stages
func (r *pipelineRunRepository) GetRecent(limit int) ([]models.PipelineRun, error) {
	var runs []models.PipelineRun
	if err := r.db.Order("started_at DESC").Limit(limit).Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to get recent runs: %w", err)
	}
	return runs, nil
}

// GetByStage retrieves the newest runs for one stage
func (r *pipelineRunRepository) GetByStage(stage string, limit int) ([]models.PipelineRun, error) {
	var runs []models.PipelineRun
	if err := r.db.Where("stage = ?", stage).
		Order("started_at DESC").
		Limit(limit).
		Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to get runs by stage: %w", err)
	}
	return runs, nil
}
