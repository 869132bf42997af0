package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrLLMNotConfigured = errors.New("OPENROUTER_API_KEY no configurado")
	ErrSTTNotConfigured = errors.New("GROQ_API_KEY no configurado")
	ErrUpstream         = errors.New("error del servicio remoto")
)
