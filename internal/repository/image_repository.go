package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hospital-record-service/internal/domain"
)

// TestImageRepository stores uploaded diagnostic images.
type TestImageRepository interface {
	Create(ctx context.Context, image *domain.TestImage) error
	ListByTest(ctx context.Context, testID int64) ([]domain.TestImage, error)
}

// ResultImageRepository stores annotated result images.
type ResultImageRepository interface {
	Create(ctx context.Context, image *domain.ResultImage) error
	ListByTest(ctx context.Context, testID int64) ([]domain.ResultImage, error)
}

type testImageRepository struct {
	pool *pgxpool.Pool
}

// NewTestImageRepository instantiates repository.
func NewTestImageRepository(pool *pgxpool.Pool) TestImageRepository {
	return &testImageRepository{pool: pool}
}

func (r *testImageRepository) Create(ctx context.Context, image *domain.TestImage) error {
	const query = `
        INSERT INTO test_images (image_url, test_id, patient_id)
        VALUES ($1,$2,$3)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		image.ImageURL,
		image.TestID,
		image.PatientID,
	).Scan(&image.ID, &image.CreatedAt)
}

func (r *testImageRepository) ListByTest(ctx context.Context, testID int64) ([]domain.TestImage, error) {
	const query = `
        SELECT id, image_url, test_id, patient_id, created_at
        FROM test_images WHERE test_id=$1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, testID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []domain.TestImage
	for rows.Next() {
		var image domain.TestImage
		if err := rows.Scan(&image.ID, &image.ImageURL, &image.TestID, &image.PatientID, &image.CreatedAt); err != nil {
			return nil, err
		}
		images = append(images, image)
	}
	return images, rows.Err()
}

type resultImageRepository struct {
	pool *pgxpool.Pool
}

// NewResultImageRepository instantiates repository.
func NewResultImageRepository(pool *pgxpool.Pool) ResultImageRepository {
	return &resultImageRepository{pool: pool}
}

func (r *resultImageRepository) Create(ctx context.Context, image *domain.ResultImage) error {
	const query = `
        INSERT INTO result_images (image_url, test_id, patient_id)
        VALUES ($1,$2,$3)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		image.ImageURL,
		image.TestID,
		image.PatientID,
	).Scan(&image.ID, &image.CreatedAt)
}

func (r *resultImageRepository) ListByTest(ctx context.Context, testID int64) ([]domain.ResultImage, error) {
	const query = `
        SELECT id, image_url, test_id, patient_id, created_at
        FROM result_images WHERE test_id=$1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, testID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []domain.ResultImage
	for rows.Next() {
		var image domain.ResultImage
		if err := rows.Scan(&image.ID, &image.ImageURL, &image.TestID, &image.PatientID, &image.CreatedAt); err != nil {
			return nil, err
		}
		images = append(images, image)
	}
	return images, rows.Err()
}
