package http

import (
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/sgp-sistemas/sgp-api/internal/application/document"
	"github.com/sgp-sistemas/sgp-api/internal/application/dto"
	"github.com/sgp-sistemas/sgp-api/internal/application/usecase"
	"github.com/sgp-sistemas/sgp-api/internal/domain/repository"
)

// ClientHandler endpoints de clientes. Criação chega via multipart com
// anexos opcionais; o restante é JSON.
type ClientHandler struct {
	clientUseCase *usecase.ClientUseCase
}

func NewClientHandler(clientUseCase *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{clientUseCase: clientUseCase}
}

// Create POST /api/clients (multipart/form-data)
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateClientRequest
	if !bindAndValidate(c, &req) {
		return nil
	}

	files, err := collectUploads(c, "documents")
	if err != nil {
		return respondDomainError(c, err)
	}

	resp, err := h.clientUseCase.Create(c.Context(), GetActor(c), req, files)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List GET /api/clients?query=&type=&status=
func (h *ClientHandler) List(c *fiber.Ctx) error {
	filter := repository.ClientFilter{
		Query:  c.Query("query"),
		Type:   c.Query("type"),
		Status: c.Query("status"),
	}
	list, err := h.clientUseCase.List(GetActor(c), filter)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(list)
}

// Get GET /api/clients/:id
func (h *ClientHandler) Get(c *fiber.Ctx) error {
	resp, err := h.clientUseCase.Get(GetActor(c), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(resp)
}

// Update PUT|PATCH /api/clients/:id
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateClientRequest
	if !bindAndValidate(c, &req) {
		return nil
	}
	resp, err := h.clientUseCase.Update(GetActor(c), c.Params("id"), req)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(resp)
}

// Delete DELETE /api/clients/:id — cascata sobre processos, histórico e
// documentos do cliente.
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	if err := h.clientUseCase.Delete(c.Context(), GetActor(c), c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// collectUploads lê todas as partes de arquivo do campo informado. Ausência
// de multipart ou do campo não é erro: devolve lista vazia.
func collectUploads(c *fiber.Ctx, field string) ([]document.Upload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil
	}
	var out []document.Upload
	for _, fh := range form.File[field] {
		data, err := readUpload(fh)
		if err != nil {
			return nil, err
		}
		out = append(out, document.Upload{Filename: fh.Filename, Data: data})
	}
	return out, nil
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
