package http

import (
	"github.com/gofiber/fiber/v2"

	appdocument "github.com/sgp-sistemas/sgp-api/internal/application/document"
	"github.com/sgp-sistemas/sgp-api/internal/application/dto"
	appprocess "github.com/sgp-sistemas/sgp-api/internal/application/process"
	"github.com/sgp-sistemas/sgp-api/internal/domain"
	"github.com/sgp-sistemas/sgp-api/internal/domain/repository"
)

// ProcessHandler endpoints de processos: CRUD, transição de status dedicada,
// upload/download de documentos e ficha em PDF.
type ProcessHandler struct {
	processUseCase  *appprocess.UseCase
	documentUseCase *appdocument.UseCase
}

func NewProcessHandler(processUseCase *appprocess.UseCase, documentUseCase *appdocument.UseCase) *ProcessHandler {
	return &ProcessHandler{processUseCase: processUseCase, documentUseCase: documentUseCase}
}

// Create POST /api/processes
func (h *ProcessHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateProcessRequest
	if !bindAndValidate(c, &req) {
		return nil
	}
	resp, err := h.processUseCase.Create(c.Context(), GetActor(c), req)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List GET /api/processes?query=&status=&priority=
func (h *ProcessHandler) List(c *fiber.Ctx) error {
	filter := repository.ProcessFilter{
		Query:    c.Query("query"),
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
	}
	list, err := h.processUseCase.List(GetActor(c), filter)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(list)
}

// Get GET /api/processes/:id
func (h *ProcessHandler) Get(c *fiber.Ctx) error {
	resp, err := h.processUseCase.Get(GetActor(c), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(resp)
}

// Update PUT /api/processes/:id
func (h *ProcessHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateProcessRequest
	if !bindAndValidate(c, &req) {
		return nil
	}
	resp, err := h.processUseCase.Update(c.Context(), GetActor(c), c.Params("id"), req)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(resp)
}

// UpdateStatus POST /api/processes/:id/status
func (h *ProcessHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateStatusRequest
	if !bindAndValidate(c, &req) {
		return nil
	}
	actor := GetActor(c)
	if err := h.processUseCase.Transition(c.Context(), actor, c.Params("id"), req.Status, req.Observation); err != nil {
		return respondDomainError(c, err)
	}
	resp, err := h.processUseCase.Get(actor, c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(resp)
}

// Upload POST /api/processes/upload (multipart/form-data: file + processId)
func (h *ProcessHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return respondDomainError(c, domain.ErrMissingField)
	}
	processID := c.FormValue("processId")
	if processID == "" {
		return respondDomainError(c, domain.ErrMissingField)
	}
	data, err := readUpload(fh)
	if err != nil {
		return respondDomainError(c, err)
	}
	resp, err := h.documentUseCase.Upload(c.Context(), GetActor(c), processID, appdocument.Upload{
		Filename: fh.Filename,
		Data:     data,
		Type:     c.FormValue("type"),
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Download GET /api/processes/:id/documents/:documentId
func (h *ProcessHandler) Download(c *fiber.Ctx) error {
	data, filename, err := h.documentUseCase.Download(c.Context(), GetActor(c), c.Params("id"), c.Params("documentId"))
	if err != nil {
		return respondDomainError(c, err)
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Set(fiber.HeaderContentType, fiber.MIMEOctetStream)
	return c.Send(data)
}

// Report GET /api/processes/:id/report — ficha do processo em PDF.
func (h *ProcessHandler) Report(c *fiber.Ctx) error {
	pdf, filename, err := h.processUseCase.Report(GetActor(c), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(pdf)
}
