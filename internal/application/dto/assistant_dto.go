package dto

import "github.com/jhoicas/fluxbill-api/internal/domain/command"

// AssistantTextRequest body para POST /assistant/text.
type AssistantTextRequest struct {
	Text      string `json:"text"`
	ActiveTab string `json:"active_tab"`
}

// AssistantResponse respuesta de ambos endpoints del asistente.
// En el flujo de voz Transcript lleva lo transcrito; en texto, el texto original.
type AssistantResponse struct {
	Transcript string          `json:"transcript"`
	Command    command.Command `json:"command"`
}
