package http

import (
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/fluxbill-api/internal/application/assistant"
	"github.com/jhoicas/fluxbill-api/internal/application/dto"
)

// AssistantHandler maneja los endpoints del asistente de lenguaje natural.
type AssistantHandler struct {
	planner *assistant.Planner
}

// NewAssistantHandler construye el handler.
func NewAssistantHandler(planner *assistant.Planner) *AssistantHandler {
	return &AssistantHandler{planner: planner}
}

// Text POST /assistant/text {text, active_tab}
// Devuelve siempre 200 con un comando renderizable salvo error de
// configuración o del upstream (500).
func (h *AssistantHandler) Text(c *fiber.Ctx) error {
	var req dto.AssistantTextRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	cmd, err := h.planner.PlanText(c.Context(), req.Text, req.ActiveTab)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.AssistantResponse{Transcript: req.Text, Command: cmd})
}

// Voice POST /assistant/voice (multipart: file, active_tab)
// El audio se persiste en un archivo temporal que se elimina en todos los
// caminos de salida, incluida la falla de transcripción o planificación.
func (h *AssistantHandler) Voice(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "falta el archivo de audio"})
	}
	activeTab := c.FormValue("active_tab", assistant.DefaultActiveTab)

	ext := filepath.Ext(fileHeader.Filename)
	if ext == "" {
		ext = ".webm"
	}
	tmp, err := os.CreateTemp("", "fluxbill-voice-*"+ext)
	if err != nil {
		return respondDomainError(c, err)
	}
	tmpPath := tmp.Name()
	_ = tmp.Close()
	defer os.Remove(tmpPath)

	if err := c.SaveFile(fileHeader, tmpPath); err != nil {
		return respondDomainError(c, err)
	}

	transcript, cmd, err := h.planner.PlanVoice(c.Context(), tmpPath, activeTab)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.AssistantResponse{Transcript: transcript, Command: cmd})
}
