package billing

import "strings"

// matchesQuery indica si la query (trimmed, case-insensitive) es substring de
// alguno de los campos buscables. Query vacía hace match con todo.
//
// El filtro se aplica en memoria sobre el listado completo: O(tamaño de tabla)
// por petición, asumido para datasets de demo.
func matchesQuery(q string, fields []string) bool {
	ql := strings.ToLower(strings.TrimSpace(q))
	if ql == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), ql) {
			return true
		}
	}
	return false
}
