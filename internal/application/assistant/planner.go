package assistant

import (
	"context"
	"time"

	"github.com/jhoicas/fluxbill-api/internal/application/ports"
	"github.com/jhoicas/fluxbill-api/internal/domain/command"
)

// Timeout de la llamada al modelo: un único intento, sin retries.
const planTimeout = 60 * time.Second

// DefaultActiveTab se asume cuando la petición no indica pestaña activa.
const DefaultActiveTab = "dashboard"

// Mensajes de los fallbacks recuperables.
const (
	replyNotUnderstood = `I could not understand. Try: "open invoices", "search apex".`
	replyInvalidFormat = "I got an invalid command format. Try again."
	replyNothingHeard  = "I could not hear anything. Try again."
)

// Planner convierte texto libre (o voz transcrita) más la pestaña activa en un
// Command validado. Todo fallo posterior a una llamada exitosa al modelo
// degrada a un comando "none" seguro: la UI siempre recibe algo renderizable.
// Solo los errores de configuración y del upstream suben al caller.
type Planner struct {
	llm ports.LLMService
	stt ports.Transcriber
}

// NewPlanner construye el planner inyectando los puertos.
func NewPlanner(llm ports.LLMService, stt ports.Transcriber) *Planner {
	return &Planner{llm: llm, stt: stt}
}

// PlanText pide al modelo el comando para el texto dado y lo valida contra el
// esquema. Errores de credencial o del upstream se propagan; cualquier salida
// malformada del modelo produce el fallback "none".
func (p *Planner) PlanText(ctx context.Context, text, activeTab string) (command.Command, error) {
	if activeTab == "" {
		activeTab = DefaultActiveTab
	}

	ctx, cancel := context.WithTimeout(ctx, planTimeout)
	defer cancel()

	raw, err := p.llm.Complete(ctx, systemPrompt(), userMessage(activeTab, text))
	if err != nil {
		return command.Command{}, err
	}

	obj, ok := extractJSONObject(raw)
	if !ok {
		return command.Fallback(replyNotUnderstood), nil
	}

	cmd, ok := coerceCommand(obj)
	if !ok {
		return command.Fallback(replyInvalidFormat), nil
	}

	return command.Validate(cmd), nil
}

// PlanVoice transcribe el audio del archivo y planifica sobre el transcript.
// Transcript vacío (nada de habla) responde el fallback "none" sin invocar al
// modelo; no es un error.
func (p *Planner) PlanVoice(ctx context.Context, audioPath, activeTab string) (string, command.Command, error) {
	transcript, err := p.stt.TranscribeFile(ctx, audioPath)
	if err != nil {
		return "", command.Command{}, err
	}
	if transcript == "" {
		return "", command.Fallback(replyNothingHeard), nil
	}

	cmd, err := p.PlanText(ctx, transcript, activeTab)
	if err != nil {
		return "", command.Command{}, err
	}
	return transcript, cmd, nil
}
