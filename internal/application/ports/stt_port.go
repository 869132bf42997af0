package ports

import "context"

// Transcriber define el puerto de salida hacia el modelo de voz.
// Audio entra, texto sale; el modelo es opaco para la aplicación.
type Transcriber interface {
	// TranscribeFile transcribe el audio del archivo indicado y devuelve el
	// transcript en inglés como un único string trimmed. Ausencia de habla
	// produce "" sin error: es un resultado esperado, no un fallo.
	TranscribeFile(ctx context.Context, path string) (string, error)
}
