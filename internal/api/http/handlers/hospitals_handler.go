package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hospital-record-service/internal/api/dto"
	"github.com/spec-kit/hospital-record-service/internal/domain"
	"github.com/spec-kit/hospital-record-service/internal/service"
)

// HospitalsHandler exposes hospital CRUD endpoints.
type HospitalsHandler struct {
	hospitals *service.HospitalService
}

// NewHospitalsHandler constructs handler.
func NewHospitalsHandler(hospitals *service.HospitalService) *HospitalsHandler {
	return &HospitalsHandler{hospitals: hospitals}
}

// List handles GET /hospitals.
func (h *HospitalsHandler) List(c *fiber.Ctx) error {
	hospitals, err := h.hospitals.List(c.Context())
	if err != nil {
		return err
	}
	resp := make([]dto.HospitalResponse, 0, len(hospitals))
	for i := range hospitals {
		resp = append(resp, dto.NewHospitalResponse(&hospitals[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Create handles POST /hospitals.
func (h *HospitalsHandler) Create(c *fiber.Ctx) error {
	req, err := parseHospitalRequest(c)
	if err != nil {
		return err
	}

	created, err := h.hospitals.Create(c.Context(), &domain.Hospital{
		Name:    req.Name,
		Address: req.Address,
		Contact: req.Contact,
		Email:   req.Email,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewHospitalResponse(created)})
}

// Show handles GET /hospitals/:id.
func (h *HospitalsHandler) Show(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	hospital, err := h.hospitals.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewHospitalResponse(hospital)})
}

// Update handles PUT /hospitals/:id.
func (h *HospitalsHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	req, err := parseHospitalRequest(c)
	if err != nil {
		return err
	}

	updated, err := h.hospitals.Update(c.Context(), &domain.Hospital{
		ID:      id,
		Name:    req.Name,
		Address: req.Address,
		Contact: req.Contact,
		Email:   req.Email,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusAccepted).JSON(fiber.Map{"data": dto.NewHospitalResponse(updated)})
}

// Delete handles DELETE /hospitals/:id.
func (h *HospitalsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.hospitals.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func parseHospitalRequest(c *fiber.Ctx) (*dto.HospitalRequest, error) {
	var req dto.HospitalRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" || req.Address == "" {
		return nil, fiber.NewError(http.StatusBadRequest, "name and address required")
	}
	return &req, nil
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, fiber.NewError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
