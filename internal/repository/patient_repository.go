package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hospital-record-service/internal/domain"
)

// PatientRepository encapsulates patient persistence.
type PatientRepository interface {
	Create(ctx context.Context, patient *domain.Patient) error
	Update(ctx context.Context, patient *domain.Patient) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Patient, error)
	ListByHospital(ctx context.Context, hospitalID int64, limit, offset int) ([]domain.Patient, error)
}

type patientRepository struct {
	pool *pgxpool.Pool
}

// NewPatientRepository instantiates repository.
func NewPatientRepository(pool *pgxpool.Pool) PatientRepository {
	return &patientRepository{pool: pool}
}

const patientColumns = `id, first_name, middle_name, last_name, dob, gender, contact, address,
        hospital_id, user_id, created_at, updated_at`

func (r *patientRepository) Create(ctx context.Context, patient *domain.Patient) error {
	const query = `
        INSERT INTO patients (first_name, middle_name, last_name, dob, gender, contact, address, hospital_id, user_id)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		patient.FirstName,
		patient.MiddleName,
		patient.LastName,
		patient.DOB,
		patient.Gender,
		patient.Contact,
		patient.Address,
		patient.HospitalID,
		patient.UserID,
	).Scan(&patient.ID, &patient.CreatedAt, &patient.UpdatedAt)
}

func (r *patientRepository) Update(ctx context.Context, patient *domain.Patient) error {
	const query = `
        UPDATE patients SET first_name=$1, middle_name=$2, last_name=$3, dob=$4, gender=$5,
            contact=$6, address=$7, updated_at=NOW()
        WHERE id=$8`
	cmd, err := r.pool.Exec(ctx, query,
		patient.FirstName,
		patient.MiddleName,
		patient.LastName,
		patient.DOB,
		patient.Gender,
		patient.Contact,
		patient.Address,
		patient.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *patientRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM patients WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *patientRepository) GetByID(ctx context.Context, id int64) (*domain.Patient, error) {
	const query = `SELECT ` + patientColumns + ` FROM patients WHERE id=$1`
	var patient domain.Patient
	if err := scanPatient(r.pool.QueryRow(ctx, query, id), &patient); err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) ListByHospital(ctx context.Context, hospitalID int64, limit, offset int) ([]domain.Patient, error) {
	const query = `SELECT ` + patientColumns + ` FROM patients WHERE hospital_id=$1 ORDER BY id LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, hospitalID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var patients []domain.Patient
	for rows.Next() {
		var patient domain.Patient
		if err := scanPatient(rows, &patient); err != nil {
			return nil, err
		}
		patients = append(patients, patient)
	}
	return patients, rows.Err()
}

func scanPatient(row pgx.Row, patient *domain.Patient) error {
	return row.Scan(
		&patient.ID,
		&patient.FirstName,
		&patient.MiddleName,
		&patient.LastName,
		&patient.DOB,
		&patient.Gender,
		&patient.Contact,
		&patient.Address,
		&patient.HospitalID,
		&patient.UserID,
		&patient.CreatedAt,
		&patient.UpdatedAt,
	)
}
