package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jhoicas/fluxbill-api/internal/application/ports"
	"github.com/jhoicas/fluxbill-api/internal/domain"
)

// Verificar en tiempo de compilación que OpenRouterService implementa LLMService.
var _ ports.LLMService = (*OpenRouterService)(nil)

const (
	defaultOpenRouterURL = "https://openrouter.ai/api/v1/chat/completions"

	// Temperatura baja: salida literal y determinista, no creativa.
	chatTemperature = 0.1
)

// OpenRouterService adaptador que implementa LLMService contra la API
// chat-completions de OpenRouter (formato compatible OpenAI).
// Usa net/http de la librería estándar; no requiere SDK.
type OpenRouterService struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewOpenRouterService construye el adaptador.
// model suele ser "meta-llama/llama-3.1-8b-instruct".
// Si apiKey está vacío las llamadas devuelven domain.ErrLLMNotConfigured.
func NewOpenRouterService(apiKey, model string) *OpenRouterService {
	return &OpenRouterService{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultOpenRouterURL,
		httpClient: &http.Client{
			// Cota superior fija de espera; el planner impone además su propio
			// context.WithTimeout. Un solo intento, sin retries.
			Timeout: 60 * time.Second,
		},
	}
}

// ── Estructuras del protocolo chat-completions ────────────────────────────────

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// Complete envía system+user al modelo y devuelve el texto crudo de la respuesta.
// No interpreta el contenido; eso es trabajo del planner.
func (s *OpenRouterService) Complete(ctx context.Context, systemPrompt, userMsg string) (string, error) {
	if s.apiKey == "" {
		return "", domain.ErrLLMNotConfigured
	}

	payload := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userMsg},
		},
		Temperature: chatTemperature,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("%w: timeout o cancelación: %v", domain.ErrUpstream, ctx.Err())
		}
		return "", fmt.Errorf("%w: llamada HTTP fallida: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("%w: leer respuesta: %v", domain.ErrUpstream, err)
	}

	// El status del upstream y su cuerpo se propagan tal cual en el mensaje.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: OpenRouter error: %d %s", domain.ErrUpstream, resp.StatusCode, string(rawBody))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(rawBody, &chatResp); err != nil {
		return "", fmt.Errorf("%w: deserializar respuesta OpenRouter: %v", domain.ErrUpstream, err)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("%w: OpenRouter devolvió respuesta sin choices", domain.ErrUpstream)
	}

	return chatResp.Choices[0].Message.Content, nil
}
