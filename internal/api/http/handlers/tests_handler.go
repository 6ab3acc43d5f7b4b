package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hospital-record-service/internal/api/dto"
	"github.com/spec-kit/hospital-record-service/internal/domain"
	"github.com/spec-kit/hospital-record-service/internal/service"
)

// TestsHandler exposes medical test and image endpoints.
type TestsHandler struct {
	tests *service.TestService
}

// NewTestsHandler constructs handler.
func NewTestsHandler(tests *service.TestService) *TestsHandler {
	return &TestsHandler{tests: tests}
}

// Create handles POST /patients/:id/tests.
func (h *TestsHandler) Create(c *fiber.Ctx) error {
	patientID, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.TestCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	created, err := h.tests.Create(c.Context(), &domain.MedicalTest{
		Description: req.Description,
		PatientID:   patientID,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewTestResponse(created)})
}

// ListByPatient handles GET /patients/:id/tests.
func (h *TestsHandler) ListByPatient(c *fiber.Ctx) error {
	patientID, err := parseID(c)
	if err != nil {
		return err
	}

	tests, err := h.tests.ListByPatient(c.Context(), patientID)
	if err != nil {
		return err
	}
	resp := make([]dto.TestResponse, 0, len(tests))
	for i := range tests {
		resp = append(resp, dto.NewTestResponse(&tests[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Show handles GET /tests/:id.
func (h *TestsHandler) Show(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	test, err := h.tests.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTestResponse(test)})
}

// RecordResult handles PUT /tests/:id/result.
func (h *TestsHandler) RecordResult(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.TestResultRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Result == "" {
		return fiber.NewError(http.StatusBadRequest, "result required")
	}

	test, err := h.tests.RecordResult(c.Context(), id, req.Result)
	if err != nil {
		return err
	}
	return c.Status(http.StatusAccepted).JSON(fiber.Map{"data": dto.NewTestResponse(test)})
}

// AttachImage handles POST /tests/:id/images. Expects a multipart form with
// an "image" file field.
func (h *TestsHandler) AttachImage(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	header, err := c.FormFile("image")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "image file required")
	}
	file, err := header.Open()
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "unable to read image")
	}
	defer file.Close()

	image, err := h.tests.AttachImage(c.Context(), id, file)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": newImageResponse(image.ID, image.ImageURL, image.TestID, image.PatientID, image.CreatedAt)})
}

// ListImages handles GET /tests/:id/images.
func (h *TestsHandler) ListImages(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	images, err := h.tests.ListImages(c.Context(), id)
	if err != nil {
		return err
	}
	resp := make([]dto.ImageResponse, 0, len(images))
	for i := range images {
		img := images[i]
		resp = append(resp, newImageResponse(img.ID, img.ImageURL, img.TestID, img.PatientID, img.CreatedAt))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// AttachResultImage handles POST /tests/:id/result-images.
func (h *TestsHandler) AttachResultImage(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	header, err := c.FormFile("image")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "image file required")
	}
	file, err := header.Open()
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "unable to read image")
	}
	defer file.Close()

	image, err := h.tests.AttachResultImage(c.Context(), id, file)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": newImageResponse(image.ID, image.ImageURL, image.TestID, image.PatientID, image.CreatedAt)})
}

// ListResultImages handles GET /tests/:id/result-images.
func (h *TestsHandler) ListResultImages(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	images, err := h.tests.ListResultImages(c.Context(), id)
	if err != nil {
		return err
	}
	resp := make([]dto.ImageResponse, 0, len(images))
	for i := range images {
		img := images[i]
		resp = append(resp, newImageResponse(img.ID, img.ImageURL, img.TestID, img.PatientID, img.CreatedAt))
	}
	return c.JSON(fiber.Map{"data": resp})
}
