package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/hospital-record-service/internal/domain"
)

func TestHospitalCreateRejectsDuplicates(t *testing.T) {
	repo := newFakeHospitalRepo()
	svc := NewHospitalService(repo)

	email := "front-desk@general.example.com"
	first, err := svc.Create(context.Background(), &domain.Hospital{Name: "General", Address: "1 Main St", Email: &email})
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	_, err = svc.Create(context.Background(), &domain.Hospital{Name: "General", Address: "2 Elm St"})
	require.ErrorIs(t, err, ErrHospitalExists)

	_, err = svc.Create(context.Background(), &domain.Hospital{Name: "Mercy", Address: "2 Elm St", Email: &email})
	require.ErrorIs(t, err, ErrHospitalExists)
}

func TestHospitalUpdateAndDelete(t *testing.T) {
	repo := newFakeHospitalRepo()
	svc := NewHospitalService(repo)

	created, err := svc.Create(context.Background(), &domain.Hospital{Name: "General", Address: "1 Main St"})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), &domain.Hospital{ID: created.ID, Name: "General Renamed", Address: "1 Main St"})
	require.NoError(t, err)
	require.Equal(t, "General Renamed", updated.Name)

	_, err = svc.Update(context.Background(), &domain.Hospital{ID: 99, Name: "Ghost", Address: "void"})
	require.ErrorIs(t, err, ErrHospitalNotFound)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	require.ErrorIs(t, svc.Delete(context.Background(), created.ID), ErrHospitalNotFound)

	_, err = svc.GetByID(context.Background(), created.ID)
	require.ErrorIs(t, err, ErrHospitalNotFound)
}
