package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hospital-record-service/internal/domain"
)

// TestRepository encapsulates medical test persistence.
type TestRepository interface {
	Create(ctx context.Context, test *domain.MedicalTest) error
	SetResult(ctx context.Context, id int64, result string) error
	GetByID(ctx context.Context, id int64) (*domain.MedicalTest, error)
	ListByPatient(ctx context.Context, patientID int64) ([]domain.MedicalTest, error)
	Delete(ctx context.Context, id int64) error
}

type testRepository struct {
	pool *pgxpool.Pool
}

// NewTestRepository instantiates repository.
func NewTestRepository(pool *pgxpool.Pool) TestRepository {
	return &testRepository{pool: pool}
}

func (r *testRepository) Create(ctx context.Context, test *domain.MedicalTest) error {
	const query = `
        INSERT INTO tests (description, result, patient_id)
        VALUES ($1,$2,$3)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		test.Description,
		test.Result,
		test.PatientID,
	).Scan(&test.ID, &test.CreatedAt, &test.UpdatedAt)
}

func (r *testRepository) SetResult(ctx context.Context, id int64, result string) error {
	const query = `UPDATE tests SET result=$1, updated_at=NOW() WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, result, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *testRepository) GetByID(ctx context.Context, id int64) (*domain.MedicalTest, error) {
	const query = `
        SELECT id, description, result, patient_id, created_at, updated_at
        FROM tests WHERE id=$1`
	var test domain.MedicalTest
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&test.ID,
		&test.Description,
		&test.Result,
		&test.PatientID,
		&test.CreatedAt,
		&test.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *testRepository) ListByPatient(ctx context.Context, patientID int64) ([]domain.MedicalTest, error) {
	const query = `
        SELECT id, description, result, patient_id, created_at, updated_at
        FROM tests WHERE patient_id=$1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tests []domain.MedicalTest
	for rows.Next() {
		var test domain.MedicalTest
		if err := rows.Scan(
			&test.ID,
			&test.Description,
			&test.Result,
			&test.PatientID,
			&test.CreatedAt,
			&test.UpdatedAt,
		); err != nil {
			return nil, err
		}
		tests = append(tests, test)
	}
	return tests, rows.Err()
}

func (r *testRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM tests WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
