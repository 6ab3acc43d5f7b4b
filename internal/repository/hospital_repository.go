package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hospital-record-service/internal/domain"
)

// HospitalRepository encapsulates hospital persistence.
type HospitalRepository interface {
	Create(ctx context.Context, hospital *domain.Hospital) error
	Update(ctx context.Context, hospital *domain.Hospital) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Hospital, error)
	GetByNameOrEmail(ctx context.Context, name, email string) (*domain.Hospital, error)
	List(ctx context.Context) ([]domain.Hospital, error)
}

type hospitalRepository struct {
	pool *pgxpool.Pool
}

// NewHospitalRepository instantiates repository.
func NewHospitalRepository(pool *pgxpool.Pool) HospitalRepository {
	return &hospitalRepository{pool: pool}
}

func (r *hospitalRepository) Create(ctx context.Context, hospital *domain.Hospital) error {
	const query = `
        INSERT INTO hospitals (name, address, contact, email)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		hospital.Name,
		hospital.Address,
		hospital.Contact,
		hospital.Email,
	).Scan(&hospital.ID, &hospital.CreatedAt, &hospital.UpdatedAt)
}

func (r *hospitalRepository) Update(ctx context.Context, hospital *domain.Hospital) error {
	const query = `
        UPDATE hospitals SET name=$1, address=$2, contact=$3, email=$4, updated_at=NOW()
        WHERE id=$5`
	cmd, err := r.pool.Exec(ctx, query,
		hospital.Name,
		hospital.Address,
		hospital.Contact,
		hospital.Email,
		hospital.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *hospitalRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM hospitals WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *hospitalRepository) GetByID(ctx context.Context, id int64) (*domain.Hospital, error) {
	const query = `
        SELECT id, name, address, contact, email, created_at, updated_at
        FROM hospitals WHERE id=$1`
	var hospital domain.Hospital
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&hospital.ID,
		&hospital.Name,
		&hospital.Address,
		&hospital.Contact,
		&hospital.Email,
		&hospital.CreatedAt,
		&hospital.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &hospital, nil
}

func (r *hospitalRepository) GetByNameOrEmail(ctx context.Context, name, email string) (*domain.Hospital, error) {
	const query = `
        SELECT id, name, address, contact, email, created_at, updated_at
        FROM hospitals WHERE name=$1 OR email=$2`
	var hospital domain.Hospital
	if err := r.pool.QueryRow(ctx, query, name, email).Scan(
		&hospital.ID,
		&hospital.Name,
		&hospital.Address,
		&hospital.Contact,
		&hospital.Email,
		&hospital.CreatedAt,
		&hospital.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &hospital, nil
}

func (r *hospitalRepository) List(ctx context.Context) ([]domain.Hospital, error) {
	const query = `
        SELECT id, name, address, contact, email, created_at, updated_at
        FROM hospitals ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hospitals []domain.Hospital
	for rows.Next() {
		var hospital domain.Hospital
		if err := rows.Scan(
			&hospital.ID,
			&hospital.Name,
			&hospital.Address,
			&hospital.Contact,
			&hospital.Email,
			&hospital.CreatedAt,
			&hospital.UpdatedAt,
		); err != nil {
			return nil, err
		}
		hospitals = append(hospitals, hospital)
	}
	return hospitals, rows.Err()
}
