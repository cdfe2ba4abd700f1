package repositories

import (
	"testing"
	"time"

	"retail-analytics/internal/database"
	"retail-analytics/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// PipelineRunRepositorySuite defines the test suite for PipelineRunRepository
type PipelineRunRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo PipelineRunRepositoryInterface
}

// SetupTest runs before each test in the suite
func (s *PipelineRunRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewPipelineRunRepository(s.db.DB)
}

// TearDownTest runs after each test in the suite
func (s *PipelineRunRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestPipelineRunRepositorySuite runs the test suite
func TestPipelineRunRepositorySuite(t *testing.T) {
	suite.Run(t, new(PipelineRunRepositorySuite))
}

func (s *PipelineRunRepositorySuite) TestCreate() {
	run := &models.PipelineRun{Stage: models.StageIngest}

	s.NoError(s.repo.Create(run))
	s.NotEqual(uuid.Nil, run.ID)
	s.Equal(models.RunStatusStarted, run.Status)
	s.False(run.StartedAt.IsZero())
}

func (s *PipelineRunRepositorySuite) TestUpdate() {
	run := &models.PipelineRun{Stage: models.StageClean}
	s.Require().NoError(s.repo.Create(run))

	finished := time.Now().UTC()
	run.Status = models.RunStatusCompleted
	run.RowsIn = 541909
	run.RowsOut = 536641
	run.FinishedAt = &finished

	s.NoError(s.repo.Update(run))

	runs, err := s.repo.GetByStage(models.StageClean, 1)
	s.NoError(err)
	s.Require().Len(runs, 1)
	s.Equal(models.RunStatusCompleted, runs[0].Status)
	s.Equal(int64(541909), runs[0].RowsIn)
	s.Equal(int64(536641), runs[0].RowsOut)
	s.NotNil(runs[0].FinishedAt)
}

func (s *PipelineRunRepositorySuite) TestUpdate_MissingRun() {
	run := &models.PipelineRun{
		ID:     uuid.New(),
		Stage:  models.StageReport,
		Status: models.RunStatusFailed,
	}

	err := s.repo.Update(run)
	s.ErrorIs(err, ErrRunNotFound)
}

func (s *PipelineRunRepositorySuite) TestGetRecent() {
	for i, stage := range []string{models.StageIngest, models.StageClean, models.StageReport} {
		run := &models.PipelineRun{
			Stage:     stage,
			StartedAt: time.Now().UTC().Add(time.Duration(i) * time.Minute),
		}
		s.Require().NoError(s.repo.Create(run))
	}

	runs, err := s.repo.GetRecent(2)
	s.NoError(err)
	s.Require().Len(runs, 2)

	// Newest first.
	s.Equal(models.StageReport, runs[0].Stage)
	s.Equal(models.StageClean, runs[1].Stage)
}

func (s *PipelineRunRepositorySuite) TestGetByStage() {
	now := time.Now().UTC()
	for i := 0; i < 3; i++ {
		run := &models.PipelineRun{
			Stage:     models.StageSegment,
			StartedAt: now.Add(time.Duration(i) * time.Minute),
		}
		s.Require().NoError(s.repo.Create(run))
	}
	other := &models.PipelineRun{Stage: models.StageIngest, StartedAt: now}
	s.Require().NoError(s.repo.Create(other))

	runs, err := s.repo.GetByStage(models.StageSegment, 10)
	s.NoError(err)
	s.Len(runs, 3)
	for _, run := range runs {
		s.Equal(models.StageSegment, run.Stage)
	}
}
