package service

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/hospital-record-service/internal/domain"
	"github.com/spec-kit/hospital-record-service/internal/events"
	"github.com/spec-kit/hospital-record-service/internal/storage"
)

type fakePatientRepo struct {
	mu       sync.Mutex
	patients map[int64]domain.Patient
	nextID   int64
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{patients: make(map[int64]domain.Patient), nextID: 1}
}

func (r *fakePatientRepo) Create(_ context.Context, patient *domain.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	patient.ID = r.nextID
	r.nextID++
	r.patients[patient.ID] = *patient
	return nil
}

func (r *fakePatientRepo) Update(_ context.Context, patient *domain.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.patients[patient.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.patients[patient.ID] = *patient
	return nil
}

func (r *fakePatientRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.patients[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.patients, id)
	return nil
}

func (r *fakePatientRepo) GetByID(_ context.Context, id int64) (*domain.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if patient, ok := r.patients[id]; ok {
		copied := patient
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *fakePatientRepo) ListByHospital(_ context.Context, hospitalID int64, limit, offset int) ([]domain.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Patient, 0)
	for _, patient := range r.patients {
		if patient.HospitalID == hospitalID {
			out = append(out, patient)
		}
	}
	return out, nil
}

type fakeTestRepo struct {
	mu     sync.Mutex
	tests  map[int64]domain.MedicalTest
	nextID int64
}

func newFakeTestRepo() *fakeTestRepo {
	return &fakeTestRepo{tests: make(map[int64]domain.MedicalTest), nextID: 1}
}

func (r *fakeTestRepo) Create(_ context.Context, test *domain.MedicalTest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	test.ID = r.nextID
	r.nextID++
	test.CreatedAt = time.Now()
	test.UpdatedAt = test.CreatedAt
	r.tests[test.ID] = *test
	return nil
}

func (r *fakeTestRepo) SetResult(_ context.Context, id int64, result string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	test, ok := r.tests[id]
	if !ok {
		return pgx.ErrNoRows
	}
	test.Result = &result
	test.UpdatedAt = time.Now()
	r.tests[id] = test
	return nil
}

func (r *fakeTestRepo) GetByID(_ context.Context, id int64) (*domain.MedicalTest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if test, ok := r.tests[id]; ok {
		copied := test
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeTestRepo) ListByPatient(_ context.Context, patientID int64) ([]domain.MedicalTest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.MedicalTest, 0)
	for _, test := range r.tests {
		if test.PatientID == patientID {
			out = append(out, test)
		}
	}
	return out, nil
}

func (r *fakeTestRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tests[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.tests, id)
	return nil
}

type fakeTestImageRepo struct {
	mu     sync.Mutex
	images []domain.TestImage
}

func (r *fakeTestImageRepo) Create(_ context.Context, image *domain.TestImage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	image.ID = int64(len(r.images) + 1)
	image.CreatedAt = time.Now()
	r.images = append(r.images, *image)
	return nil
}

func (r *fakeTestImageRepo) ListByTest(_ context.Context, testID int64) ([]domain.TestImage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.TestImage, 0)
	for _, image := range r.images {
		if image.TestID == testID {
			out = append(out, image)
		}
	}
	return out, nil
}

type fakeResultImageRepo struct {
	mu     sync.Mutex
	images []domain.ResultImage
}

func (r *fakeResultImageRepo) Create(_ context.Context, image *domain.ResultImage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	image.ID = int64(len(r.images) + 1)
	image.CreatedAt = time.Now()
	r.images = append(r.images, *image)
	return nil
}

func (r *fakeResultImageRepo) ListByTest(_ context.Context, testID int64) ([]domain.ResultImage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.ResultImage, 0)
	for _, image := range r.images {
		if image.TestID == testID {
			out = append(out, image)
		}
	}
	return out, nil
}

type testFixture struct {
	service  *TestService
	patients *fakePatientRepo
	tests    *fakeTestRepo
	captured *[]events.Event
}

func newTestFixture(t *testing.T) *testFixture {
	t.Helper()

	patients := newFakePatientRepo()
	tests := newFakeTestRepo()
	dispatcher := events.NewInMemoryDispatcher()

	captured := &[]events.Event{}
	dispatcher.Subscribe(events.EventTestResultRecorded, func(_ context.Context, event events.Event) error {
		*captured = append(*captured, event)
		return nil
	})

	images, err := storage.NewImageStore(t.TempDir())
	require.NoError(t, err)

	svc := NewTestService(TestDependencies{
		TestRepo:        tests,
		TestImageRepo:   &fakeTestImageRepo{},
		ResultImageRepo: &fakeResultImageRepo{},
		PatientRepo:     patients,
	}, images, nil, dispatcher, zap.NewNop())

	return &testFixture{service: svc, patients: patients, tests: tests, captured: captured}
}

func (f *testFixture) seedPatient(t *testing.T) *domain.Patient {
	t.Helper()
	patient := &domain.Patient{
		FirstName:  "Rowan",
		LastName:   "Diaz",
		DOB:        time.Date(1985, time.January, 20, 0, 0, 0, 0, time.UTC),
		HospitalID: 1,
		UserID:     1,
	}
	require.NoError(t, f.patients.Create(context.Background(), patient))
	return patient
}

func TestCreateTestRequiresPatient(t *testing.T) {
	f := newTestFixture(t)

	_, err := f.service.Create(context.Background(), &domain.MedicalTest{PatientID: 99})
	require.ErrorIs(t, err, ErrPatientNotFound)

	patient := f.seedPatient(t)
	created, err := f.service.Create(context.Background(), &domain.MedicalTest{PatientID: patient.ID})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.Nil(t, created.Result)
}

func TestRecordResultPublishesEvent(t *testing.T) {
	f := newTestFixture(t)
	patient := f.seedPatient(t)

	created, err := f.service.Create(context.Background(), &domain.MedicalTest{PatientID: patient.ID})
	require.NoError(t, err)

	updated, err := f.service.RecordResult(context.Background(), created.ID, "negative")
	require.NoError(t, err)
	require.NotNil(t, updated.Result)
	require.Equal(t, "negative", *updated.Result)

	require.Len(t, *f.captured, 1)
	payload, ok := (*f.captured)[0].Payload.(events.TestResultPayload)
	require.True(t, ok)
	require.Equal(t, created.ID, payload.TestID)
	require.Equal(t, "negative", payload.Result)

	_, err = f.service.RecordResult(context.Background(), 99, "negative")
	require.ErrorIs(t, err, ErrTestNotFound)
}

func TestAttachImageStoresFileAndRecord(t *testing.T) {
	f := newTestFixture(t)
	patient := f.seedPatient(t)

	created, err := f.service.Create(context.Background(), &domain.MedicalTest{PatientID: patient.ID})
	require.NoError(t, err)

	image, err := f.service.AttachImage(context.Background(), created.ID, bytes.NewReader([]byte("scan")))
	require.NoError(t, err)
	require.Equal(t, created.ID, image.TestID)
	require.Equal(t, patient.ID, image.PatientID)
	require.NotEmpty(t, image.ImageURL)

	listed, err := f.service.ListImages(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	// no analyzer configured, so the result stays empty
	stored, err := f.service.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Nil(t, stored.Result)

	_, err = f.service.AttachImage(context.Background(), 99, bytes.NewReader(nil))
	require.ErrorIs(t, err, ErrTestNotFound)
}

func TestAttachResultImage(t *testing.T) {
	f := newTestFixture(t)
	patient := f.seedPatient(t)

	created, err := f.service.Create(context.Background(), &domain.MedicalTest{PatientID: patient.ID})
	require.NoError(t, err)

	image, err := f.service.AttachResultImage(context.Background(), created.ID, bytes.NewReader([]byte("annotated")))
	require.NoError(t, err)
	require.Equal(t, created.ID, image.TestID)

	listed, err := f.service.ListResultImages(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
}
