// Package command define el vocabulario de comandos de UI que el asistente
// puede emitir y las reglas que todo comando debe cumplir antes de entregarse
// al frontend. La salida del modelo nunca se confía: todo candidato pasa por
// Validate y cualquier violación degrada a un comando "none" seguro.
package command

import "strings"

// Actions reconocidas por el dashboard.
var Actions = []string{
	"click",
	"type",
	"none",

	// CRUD y filtros
	"create_invoice",
	"delete_invoice",
	"update_invoice",
	"filter_invoices",

	"create_customer",
	"delete_customer",
	"update_customer",

	"create_subscription",
	"delete_subscription",
	"update_subscription",
}

// Targets de UI sobre los que aplican click/type.
var Targets = []string{
	// navegación
	"nav.dashboard",
	"nav.invoices",
	"nav.subscriptions",
	"nav.customers",
	"nav.reports",
	"nav.settings",

	// campos/acciones de UI
	"field.search",
	"action.createInvoice",
	"action.collectPayment",
}

// Command es la instrucción estructurada que consume el frontend.
// Es transitorio: se produce fresco por cada petición al asistente y no se persiste.
type Command struct {
	Action string         `json:"action"`
	Target *string        `json:"target"`
	Args   map[string]any `json:"args"`
	Reply  string         `json:"reply"`
}

// Fallback construye el comando "none" seguro con un mensaje aclaratorio.
// Es la salida de todo camino de fallo recuperable del planner.
func Fallback(reply string) Command {
	return Command{Action: "none", Target: nil, Args: map[string]any{}, Reply: reply}
}

// IsAction indica si s pertenece al set fijo de acciones.
func IsAction(s string) bool {
	return contains(Actions, s)
}

// IsTarget indica si s pertenece al set fijo de targets.
func IsTarget(s string) bool {
	return contains(Targets, s)
}

// Validate aplica los guardrails del esquema sobre un candidato y devuelve el
// comando definitivo. Nunca falla: una violación produce el fallback "none".
//
// Reglas:
//   - action debe pertenecer al set fijo
//   - target debe ser null o pertenecer al set fijo
//   - action=="type" exige target=="field.search" y args.text no vacío (se guarda trimmed)
func Validate(cmd Command) Command {
	if cmd.Args == nil {
		cmd.Args = map[string]any{}
	}

	if !IsAction(cmd.Action) {
		return Fallback("That action is not supported.")
	}
	if cmd.Target != nil && !IsTarget(*cmd.Target) {
		return Fallback("That UI target is not supported.")
	}

	if cmd.Action == "type" {
		text, _ := cmd.Args["text"].(string)
		text = strings.TrimSpace(text)
		if cmd.Target == nil || *cmd.Target != "field.search" || text == "" {
			return Fallback("Tell me what to search for.")
		}
		cmd.Args["text"] = text
	}

	return cmd
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
