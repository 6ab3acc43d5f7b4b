package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hospital-record-service/internal/api/dto"
	"github.com/spec-kit/hospital-record-service/internal/auth"
	"github.com/spec-kit/hospital-record-service/internal/domain"
	"github.com/spec-kit/hospital-record-service/internal/service"
)

// PatientsHandler exposes patient record endpoints.
type PatientsHandler struct {
	patients *service.PatientService
	users    *service.UserService
}

// NewPatientsHandler constructs handler.
func NewPatientsHandler(patients *service.PatientService, users *service.UserService) *PatientsHandler {
	return &PatientsHandler{patients: patients, users: users}
}

// Create handles POST /patients. The admitting account is recorded on the
// patient row.
func (h *PatientsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	req, dob, err := parsePatientRequest(c)
	if err != nil {
		return err
	}

	admitter, err := h.users.GetByEmail(c.Context(), principal.Subject)
	if err != nil {
		return err
	}

	created, err := h.patients.Register(c.Context(), &domain.Patient{
		FirstName:  req.FirstName,
		MiddleName: req.MiddleName,
		LastName:   req.LastName,
		DOB:        dob,
		Gender:     req.Gender,
		Contact:    req.Contact,
		Address:    req.Address,
		HospitalID: req.HospitalID,
		UserID:     admitter.ID,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewPatientResponse(created)})
}

// Show handles GET /patients/:id.
func (h *PatientsHandler) Show(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	patient, err := h.patients.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewPatientResponse(patient)})
}

// Update handles PUT /patients/:id.
func (h *PatientsHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	req, dob, err := parsePatientRequest(c)
	if err != nil {
		return err
	}

	updated, err := h.patients.Update(c.Context(), &domain.Patient{
		ID:         id,
		FirstName:  req.FirstName,
		MiddleName: req.MiddleName,
		LastName:   req.LastName,
		DOB:        dob,
		Gender:     req.Gender,
		Contact:    req.Contact,
		Address:    req.Address,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusAccepted).JSON(fiber.Map{"data": dto.NewPatientResponse(updated)})
}

// Delete handles DELETE /patients/:id.
func (h *PatientsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.patients.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// ListByHospital handles GET /hospitals/:id/patients.
func (h *PatientsHandler) ListByHospital(c *fiber.Ctx) error {
	hospitalID, err := parseID(c)
	if err != nil {
		return err
	}
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)

	patients, err := h.patients.ListByHospital(c.Context(), hospitalID, limit, offset)
	if err != nil {
		return err
	}
	resp := make([]dto.PatientResponse, 0, len(patients))
	for i := range patients {
		resp = append(resp, dto.NewPatientResponse(&patients[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

func parsePatientRequest(c *fiber.Ctx) (*dto.PatientRequest, time.Time, error) {
	var req dto.PatientRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, time.Time{}, fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.FirstName == "" || req.LastName == "" {
		return nil, time.Time{}, fiber.NewError(http.StatusBadRequest, "first_name and last_name required")
	}
	dob, err := time.Parse("2006-01-02", req.DOB)
	if err != nil {
		return nil, time.Time{}, fiber.NewError(http.StatusBadRequest, "dob must be YYYY-MM-DD")
	}
	return &req, dob, nil
}
