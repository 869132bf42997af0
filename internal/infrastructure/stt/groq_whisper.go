package stt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/fluxbill-api/internal/application/ports"
	"github.com/jhoicas/fluxbill-api/internal/domain"
)

// Verificar en tiempo de compilación que GroqWhisperService implementa Transcriber.
var _ ports.Transcriber = (*GroqWhisperService)(nil)

const (
	defaultGroqTranscriptionsURL = "https://api.groq.com/openai/v1/audio/transcriptions"

	// Segmentos con probabilidad de no-habla por encima de este umbral se
	// descartan: suprime el silencio y el ruido de fondo del transcript.
	noSpeechThreshold = 0.6

	englishBiasPrompt = "This is English. Transcribe only English words."
)

// GroqWhisperService adaptador que implementa Transcriber contra la API
// Whisper de Groq (audio/transcriptions, compatible OpenAI).
type GroqWhisperService struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewGroqWhisperService construye el adaptador. model acepta el nombre
// completo del modelo Groq o un tamaño corto ("small", "large") que se
// resuelve al modelo hospedado equivalente.
// Si apiKey está vacío las llamadas devuelven domain.ErrSTTNotConfigured.
func NewGroqWhisperService(apiKey, model string, log zerolog.Logger) *GroqWhisperService {
	return &GroqWhisperService{
		apiKey:  apiKey,
		model:   resolveModel(model),
		baseURL: defaultGroqTranscriptionsURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}
}

// resolveModel mapea tamaños cortos de Whisper al modelo hospedado en Groq.
func resolveModel(model string) string {
	if strings.HasPrefix(model, "whisper-") {
		return model
	}
	switch model {
	case "large", "large-v3":
		return "whisper-large-v3"
	default:
		// tiny/base/small/medium locales no existen en Groq; el turbo es el
		// equivalente rápido
		return "whisper-large-v3-turbo"
	}
}

type groqSegment struct {
	Text         string  `json:"text"`
	NoSpeechProb float64 `json:"no_speech_prob"`
}

type groqTranscription struct {
	Text     string        `json:"text"`
	Segments []groqSegment `json:"segments"`
}

// TranscribeFile sube el archivo de audio a Groq y devuelve el transcript en
// inglés: los segmentos no vacíos, en orden cronológico, unidos con espacio y
// trimmed. Ausencia de habla produce "" sin error.
func (s *GroqWhisperService) TranscribeFile(ctx context.Context, path string) (string, error) {
	if s.apiKey == "" {
		return "", domain.ErrSTTNotConfigured
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("STT: abrir audio: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return "", fmt.Errorf("STT: crear form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", fmt.Errorf("STT: copiar audio: %w", err)
	}

	fields := map[string]string{
		"model":           s.model,
		"language":        "en",
		"response_format": "verbose_json",
		"temperature":     "0",
		"prompt":          englishBiasPrompt,
	}
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			return "", fmt.Errorf("STT: escribir campo %s: %w", k, err)
		}
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("STT: cerrar multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, &buf)
	if err != nil {
		return "", fmt.Errorf("STT: crear HTTP request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: llamada STT fallida: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("%w: leer respuesta STT: %v", domain.ErrUpstream, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: Groq error: %d %s", domain.ErrUpstream, resp.StatusCode, string(rawBody))
	}

	var tr groqTranscription
	if err := json.Unmarshal(rawBody, &tr); err != nil {
		return "", fmt.Errorf("%w: deserializar respuesta Groq: %v", domain.ErrUpstream, err)
	}

	transcript := joinSegments(tr)
	s.log.Debug().Str("model", s.model).Int("segments", len(tr.Segments)).
		Str("transcript", transcript).Msg("transcripción completada")
	return transcript, nil
}

// joinSegments concatena los segmentos con habla; si el formato verbose no
// trae segmentos cae al campo text plano.
func joinSegments(tr groqTranscription) string {
	if len(tr.Segments) == 0 {
		return strings.TrimSpace(tr.Text)
	}
	parts := make([]string, 0, len(tr.Segments))
	for _, seg := range tr.Segments {
		if seg.NoSpeechProb > noSpeechThreshold {
			continue
		}
		if text := strings.TrimSpace(seg.Text); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
