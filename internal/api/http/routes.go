package httpapi

import (
	"encoding/base64"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/josiah1121/BuckWatch/internal/sighting"
	"github.com/josiah1121/BuckWatch/internal/summary"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *sighting.Service, dashboard *summary.Provider) {
	v1 := app.Group("/api/v1")

	v1.Post("/cameras", func(c *fiber.Ctx) error {
		var req createCameraRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		cam, err := service.CreateCamera(req.Name, req.Latitude, req.Longitude)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to save camera")
		}
		return c.Status(fiber.StatusCreated).JSON(cam)
	})

	v1.Get("/cameras", func(c *fiber.Ctx) error {
		cams, err := service.Cameras()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to list cameras")
		}
		return c.JSON(cams)
	})

	v1.Post("/sightings", func(c *fiber.Ctx) error {
		var req createSightingRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		enrichReq, err := req.toEnrichRequest()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		rec, err := service.Enrich(c.UserContext(), enrichReq)
		if err != nil {
			switch {
			case errors.Is(err, sighting.ErrCameraNotFound):
				return fiber.NewError(fiber.StatusNotFound, "camera not found")
			case errors.Is(err, sighting.ErrStoreWrite):
				return fiber.NewError(fiber.StatusInternalServerError, "failed to save sighting")
			default:
				return fiber.NewError(fiber.StatusInternalServerError, "failed to create sighting")
			}
		}
		return c.Status(fiber.StatusCreated).JSON(rec)
	})

	v1.Get("/sightings", func(c *fiber.Ctx) error {
		recs, err := service.Sightings(sighting.Filter{
			Camera:     c.Query("camera"),
			AnimalType: c.Query("animal"),
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to list sightings")
		}
		return c.JSON(recs)
	})

	v1.Get("/dashboard/summary", func(c *fiber.Ctx) error {
		s, err := dashboard.Get()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to build dashboard summary")
		}
		return c.JSON(s)
	})
}

// createCameraRequest is the payload for dropping a new camera pin.
type createCameraRequest struct {
	Name      string  `json:"name" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// createSightingRequest is the payload for logging a capture. Image is
// base64-encoded and optional; buck size is only accepted for Buck.
type createSightingRequest struct {
	Name       string `json:"name"`
	Camera     string `json:"camera" validate:"required"`
	AnimalType string `json:"animalType" validate:"required"`
	BuckSize   string `json:"buckSize"`
	Date       string `json:"date" validate:"required"`
	Time       string `json:"time" validate:"required"`
	Image      string `json:"image"`
}

func (r *createSightingRequest) toEnrichRequest() (sighting.EnrichRequest, error) {
	var req sighting.EnrichRequest

	if r.BuckSize != "" && r.AnimalType != string(sighting.AnimalBuck) {
		return req, errors.New("buckSize is only valid when animalType is Buck")
	}

	date, err := time.Parse(sighting.DateLayout, r.Date)
	if err != nil {
		return req, errors.New("invalid date; use YYYY-MM-DD")
	}
	clock, err := time.Parse(sighting.TimeLayout, r.Time)
	if err != nil {
		return req, errors.New("invalid time; use HH:MM")
	}

	var image []byte
	if r.Image != "" {
		image, err = base64.StdEncoding.DecodeString(r.Image)
		if err != nil {
			return req, errors.New("invalid image; expected base64")
		}
	}

	req = sighting.EnrichRequest{
		CameraName: r.Camera,
		Name:       r.Name,
		Image:      image,
		AnimalType: r.AnimalType,
		BuckSize:   r.BuckSize,
		Date:       date,
		Time:       clock,
	}
	return req, nil
}
