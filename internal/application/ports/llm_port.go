package ports

import "context"

// LLMService define el puerto de salida hacia el modelo de lenguaje remoto.
// Cualquier adaptador (OpenRouter, Gemini, mock) debe implementar esta
// interfaz; la aplicación solo conoce este contrato.
type LLMService interface {
	// Complete envía un prompt de sistema y un mensaje de usuario y devuelve
	// el texto crudo de la respuesta del modelo. No interpreta el contenido.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}
