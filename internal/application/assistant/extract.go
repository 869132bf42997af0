package assistant

import (
	"encoding/json"
	"regexp"

	"github.com/jhoicas/fluxbill-api/internal/domain/command"
)

// jsonBlockRe captura el primer span {...} del texto (greedy, multilínea) para
// cuando el modelo envuelve el JSON en prosa o markdown.
var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// extractJSONObject extrae un objeto JSON de la respuesta libre del modelo.
// Estrategia en dos fases: parsear el texto completo como JSON; si falla,
// buscar el primer span {...} y parsear eso. Nunca lanza: si no hay objeto
// devuelve ok=false y el caller degrada al fallback.
func extractJSONObject(text string) (map[string]any, bool) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(text), &obj); err == nil {
		return obj, true
	}

	span := jsonBlockRe.FindString(text)
	if span == "" {
		return nil, false
	}
	obj = nil
	if err := json.Unmarshal([]byte(span), &obj); err != nil {
		return nil, false
	}
	return obj, true
}

// coerceCommand convierte el objeto genérico en un Command. Campos ausentes
// toman defaults (action "none", reply "ok"); un campo presente con tipo
// equivocado es un mismatch estructural y devuelve ok=false.
func coerceCommand(obj map[string]any) (command.Command, bool) {
	cmd := command.Command{Action: "none", Args: map[string]any{}, Reply: "ok"}

	if v, present := obj["action"]; present {
		s, isStr := v.(string)
		if !isStr {
			return cmd, false
		}
		cmd.Action = s
	}
	if v, present := obj["target"]; present && v != nil {
		s, isStr := v.(string)
		if !isStr {
			return cmd, false
		}
		cmd.Target = &s
	}
	if v, present := obj["args"]; present && v != nil {
		m, isMap := v.(map[string]any)
		if !isMap {
			return cmd, false
		}
		cmd.Args = m
	}
	if v, present := obj["reply"]; present {
		s, isStr := v.(string)
		if !isStr {
			return cmd, false
		}
		cmd.Reply = s
	}

	return cmd, true
}
