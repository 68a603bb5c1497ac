package contractapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Abraxas-365/laboral/labor/contract"
	"github.com/Abraxas-365/laboral/labor/contract/contractsrv"
	"github.com/Abraxas-365/laboral/pkg/iam/auth"
	"github.com/Abraxas-365/laboral/pkg/kernel"
)

const uploadField = "contractFile"

// Handlers provides HTTP handlers for contract operations
type Handlers struct {
	service *contractsrv.ContractService
}

func NewHandlers(service *contractsrv.ContractService) *Handlers {
	return &Handlers{service: service}
}

// ListContracts
// GET /api/contracts
func (h *Handlers) ListContracts(c *fiber.Ctx) error {
	userID, err := auth.MustUserID(c)
	if err != nil {
		return err
	}

	contracts, err := h.service.ListContracts(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(contracts)
}

// CreateContract
// POST /api/contracts
func (h *Handlers) CreateContract(c *fiber.Ctx) error {
	userID, err := auth.MustUserID(c)
	if err != nil {
		return err
	}

	var req contract.CreateContractRequest
	if err := c.BodyParser(&req); err != nil {
		return contract.ErrInvalidContract().WithDetail("parse_error", err.Error())
	}

	created, err := h.service.CreateContract(c.Context(), userID, req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateContract
// PUT /api/contracts/:id
func (h *Handlers) UpdateContract(c *fiber.Ctx) error {
	userID, err := auth.MustUserID(c)
	if err != nil {
		return err
	}

	var req contract.UpdateContractRequest
	if err := c.BodyParser(&req); err != nil {
		return contract.ErrInvalidContract().WithDetail("parse_error", err.Error())
	}

	updated, err := h.service.UpdateContract(c.Context(), kernel.ContractID(c.Params("id")), userID, req)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

// DeleteContract
// DELETE /api/contracts/:id
func (h *Handlers) DeleteContract(c *fiber.Ctx) error {
	userID, err := auth.MustUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteContract(c.Context(), kernel.ContractID(c.Params("id")), userID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"msg": "Contrato eliminado"})
}

// UploadContract receives a multipart contract file
// POST /api/contracts/upload
func (h *Handlers) UploadContract(c *fiber.Ctx) error {
	userID, err := auth.MustUserID(c)
	if err != nil {
		return err
	}

	header, err := c.FormFile(uploadField)
	if err != nil {
		return contract.ErrMissingFile().WithDetail("field", uploadField)
	}

	file, err := header.Open()
	if err != nil {
		return contract.ErrMissingFile().WithCause(err)
	}
	defer file.Close()

	created, err := h.service.UploadContract(c.Context(), userID, contractsrv.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get(fiber.HeaderContentType),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		return err
	}

	return c.JSON(contract.UploadResponse{Msg: "Archivo recibido", Contract: created})
}

// Tenure returns the years of service derived from the contracts
// GET /api/contracts/tenure
func (h *Handlers) Tenure(c *fiber.Ctx) error {
	userID, err := auth.MustUserID(c)
	if err != nil {
		return err
	}

	resp, err := h.service.Tenure(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// RegisterRoutes registers contract routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware fiber.Handler) {
	api := app.Group("/api/contracts", authMiddleware)

	api.Get("/", handlers.ListContracts)
	api.Post("/", handlers.CreateContract)
	api.Post("/upload", handlers.UploadContract)
	api.Get("/tenure", handlers.Tenure)
	api.Put("/:id", handlers.UpdateContract)
	api.Delete("/:id", handlers.DeleteContract)
}
