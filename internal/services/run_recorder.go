package services

import (
	"log/slog"
	"time"

	"retail-analytics/internal/models"
	"retail-analytics/internal/repositories"
)

type runRecorder struct {
	runs repositories.PipelineRunRepositoryInterface
}

// NewRunRecorder creates a new run recorder
func NewRunRecorder(runs repositories.PipelineRunRepositoryInterface) RunRecorderInterface {
	return &runRecorder{
		runs: runs,
	}
}

// Record wraps a stage execution in a pipeline run entry. The stage error
// is always surfaced to the caller; run-log bookkeeping failures are logged
// but never mask it.
func (r *runRecorder) Record(stage string, fn func() (int64, int64, error)) error {
	run := &models.PipelineRun{
		Stage:     stage,
		Status:    models.RunStatusStarted,
		StartedAt: time.Now(),
	}

	if err := r.runs.Create(run); err != nil {
		slog.Warn("failed to record run start", "stage", stage, "error", err)
	}

	rowsIn, rowsOut, stageErr := fn()

	finished := time.Now()
	run.FinishedAt = &finished
	run.RowsIn = rowsIn
	run.RowsOut = rowsOut

	if stageErr != nil {
		run.Status = models.RunStatusFailed
		run.Error = stageErr.Error()
	} else {
		run.Status = models.RunStatusCompleted
	}

	if err := r.runs.Update(run); err != nil {
		slog.Warn("failed to record run outcome", "stage", stage, "error", err)
	}

	if stageErr != nil {
		slog.Error("stage failed",
			"stage", stage,
			"run_id", run.ID.String(),
			"duration_ms", finished.Sub(run.StartedAt).Milliseconds(),
			"error", stageErr)
		return stageErr
	}

	slog.Info("stage completed",
		"stage", stage,
		"run_id", run.ID.String(),
		"rows_in", rowsIn,
		"rows_out", rowsOut,
		"duration_ms", finished.Sub(run.StartedAt).Milliseconds())

	return nil
}
