package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/hospital-record-service/internal/analysis"
	"github.com/spec-kit/hospital-record-service/internal/domain"
	"github.com/spec-kit/hospital-record-service/internal/events"
	"github.com/spec-kit/hospital-record-service/internal/repository"
	"github.com/spec-kit/hospital-record-service/internal/storage"
)

// TestService manages medical tests and their images.
type TestService struct {
	tests        repository.TestRepository
	testImages   repository.TestImageRepository
	resultImages repository.ResultImageRepository
	patients     repository.PatientRepository
	images       *storage.ImageStore
	analyzer     *analysis.Client
	dispatcher   events.Dispatcher
	logger       *zap.Logger
}

// TestDependencies bundles repo requirements for the test service.
type TestDependencies struct {
	TestRepo        repository.TestRepository
	TestImageRepo   repository.TestImageRepository
	ResultImageRepo repository.ResultImageRepository
	PatientRepo     repository.PatientRepository
}

// NewTestService builds the service.
func NewTestService(deps TestDependencies, images *storage.ImageStore, analyzer *analysis.Client, dispatcher events.Dispatcher, logger *zap.Logger) *TestService {
	return &TestService{
		tests:        deps.TestRepo,
		testImages:   deps.TestImageRepo,
		resultImages: deps.ResultImageRepo,
		patients:     deps.PatientRepo,
		images:       images,
		analyzer:     analyzer,
		dispatcher:   dispatcher,
		logger:       logger,
	}
}

// Create orders a test for a patient.
func (s *TestService) Create(ctx context.Context, test *domain.MedicalTest) (*domain.MedicalTest, error) {
	if _, err := s.patients.GetByID(ctx, test.PatientID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}
	if err := s.tests.Create(ctx, test); err != nil {
		return nil, err
	}
	return test, nil
}

// GetByID fetches one test.
func (s *TestService) GetByID(ctx context.Context, id int64) (*domain.MedicalTest, error) {
	test, err := s.tests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTestNotFound
		}
		return nil, err
	}
	return test, nil
}

// ListByPatient returns a patient's tests.
func (s *TestService) ListByPatient(ctx context.Context, patientID int64) ([]domain.MedicalTest, error) {
	return s.tests.ListByPatient(ctx, patientID)
}

// RecordResult stores a manually entered result.
func (s *TestService) RecordResult(ctx context.Context, id int64, result string) (*domain.MedicalTest, error) {
	test, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.tests.SetResult(ctx, id, result); err != nil {
		return nil, err
	}
	test.Result = &result
	s.publishResult(ctx, test, result)
	return test, nil
}

// AttachImage stores an uploaded diagnostic image for a test. When the
// analysis service is configured, the image is forwarded and its verdict
// recorded as the test result.
func (s *TestService) AttachImage(ctx context.Context, testID int64, src io.Reader) (*domain.TestImage, error) {
	test, err := s.GetByID(ctx, testID)
	if err != nil {
		return nil, err
	}

	path, err := s.images.Save(src)
	if err != nil {
		return nil, err
	}

	image := &domain.TestImage{
		ImageURL:  path,
		TestID:    test.ID,
		PatientID: test.PatientID,
	}
	if err := s.testImages.Create(ctx, image); err != nil {
		return nil, err
	}

	if s.analyzer.Enabled() {
		if err := s.analyzeAndRecord(ctx, test, path); err != nil {
			// the image is stored regardless; the result can be entered manually
			s.logger.Warn("image analysis failed",
				zap.Int64("test_id", test.ID), zap.Error(err))
		}
	}

	return image, nil
}

// ListImages returns the diagnostic images attached to a test.
func (s *TestService) ListImages(ctx context.Context, testID int64) ([]domain.TestImage, error) {
	if _, err := s.GetByID(ctx, testID); err != nil {
		return nil, err
	}
	return s.testImages.ListByTest(ctx, testID)
}

// AttachResultImage stores an annotated result image for a test.
func (s *TestService) AttachResultImage(ctx context.Context, testID int64, src io.Reader) (*domain.ResultImage, error) {
	test, err := s.GetByID(ctx, testID)
	if err != nil {
		return nil, err
	}

	path, err := s.images.Save(src)
	if err != nil {
		return nil, err
	}

	image := &domain.ResultImage{
		ImageURL:  path,
		TestID:    test.ID,
		PatientID: test.PatientID,
	}
	if err := s.resultImages.Create(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}

// ListResultImages returns the result images attached to a test.
func (s *TestService) ListResultImages(ctx context.Context, testID int64) ([]domain.ResultImage, error) {
	if _, err := s.GetByID(ctx, testID); err != nil {
		return nil, err
	}
	return s.resultImages.ListByTest(ctx, testID)
}

func (s *TestService) analyzeAndRecord(ctx context.Context, test *domain.MedicalTest, imagePath string) error {
	verdict, err := s.analyzer.Analyze(ctx, imagePath)
	if err != nil {
		return err
	}
	encoded, err := json.Marshal(verdict)
	if err != nil {
		return err
	}
	result := string(encoded)
	if err := s.tests.SetResult(ctx, test.ID, result); err != nil {
		return err
	}
	s.publishResult(ctx, test, result)
	return nil
}

func (s *TestService) publishResult(ctx context.Context, test *domain.MedicalTest, result string) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventTestResultRecorded,
		Timestamp: time.Now(),
		Payload: events.TestResultPayload{
			TestID:    test.ID,
			PatientID: test.PatientID,
			Result:    result,
		},
	})
}
