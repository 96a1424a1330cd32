// Package keywords scores column headers against per-field keyword sets
// to infer which source column holds which transaction field.
package keywords

import (
	"strings"
	"sync"

	"dmunoz/cartola-csv/internal/textutil"
)

// Match scores awarded by MatchColumn, strongest first.
const (
	ScoreExact     = 1.0 // header equals a keyword after normalization
	ScoreSubstring = 0.7 // header contains a keyword
	ScoreWord      = 0.5 // a header word equals a keyword word
)

// Match is a scored column candidate for a field.
type Match struct {
	Column string
	Score  float64
}

// Registry holds the field-to-keywords table. It is seeded with the
// default sets and grows append-only through AddCustomKeywords; build one
// per application instance and pass it explicitly — there is no package
// level table.
type Registry struct {
	mu     sync.RWMutex
	fields map[string][]string
}

// defaultFieldKeywords covers the header spellings seen in Chilean and
// generic bank exports, Spanish and English.
func defaultFieldKeywords() map[string][]string {
	return map[string][]string{
		"date": {
			"fecha", "date", "fecha pago", "fecha operación", "fecha transacción",
			"fecha operacion", "fecha transaccion", "fecha de operación",
			"fecha de pago", "fecha de transacción", "fecha operativa", "fecha valor",
		},
		"description": {
			"descripción", "descripcion", "description", "concepto", "detalle",
			"glosa", "desc", "concept", "detalle de operación", "detalle de operacion",
			"descripción de operación", "motivo",
		},
		"amount": {
			"monto", "amount", "valor", "importe", "cargo", "abono", "debe", "haber",
			"valor de operación", "valor de operacion", "total", "saldo",
		},
		"type": {
			"tipo", "type", "tipo de operación", "tipo de operacion",
			"tipo operación", "operación", "operacion",
		},
		"cargo": {
			"cargo", "debe", "egreso", "débito", "debito", "retiro", "salida",
		},
		"abono": {
			"abono", "haber", "ingreso", "crédito", "credito", "depósito",
			"deposito", "entrada",
		},
	}
}

// NewRegistry creates a registry seeded with the default keyword sets.
func NewRegistry() *Registry {
	return &Registry{fields: defaultFieldKeywords()}
}

// AddCustomKeywords appends keywords to a field's set, creating the field
// if unknown. Existing keywords are never removed.
func (r *Registry) AddCustomKeywords(field string, keywords []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := strings.ToLower(field)
	r.fields[key] = append(r.fields[key], keywords...)
}

// Keywords returns a copy of a field's keyword set.
func (r *Registry) Keywords(field string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string{}, r.fields[strings.ToLower(field)]...)
}

// MatchColumn scores a column header against a field's keyword set.
// Tiers are evaluated strongest first and return on first hit: exact
// normalized equality, then substring containment, then word-level
// equality; no hit scores zero.
func (r *Registry) MatchColumn(field, columnName string) float64 {
	r.mu.RLock()
	keywords := r.fields[strings.ToLower(field)]
	r.mu.RUnlock()

	if len(keywords) == 0 || columnName == "" {
		return 0
	}

	normalizedColumn := textutil.Normalize(columnName)
	if normalizedColumn == "" {
		return 0
	}

	for _, keyword := range keywords {
		if textutil.Normalize(keyword) == normalizedColumn {
			return ScoreExact
		}
	}

	for _, keyword := range keywords {
		if strings.Contains(normalizedColumn, textutil.Normalize(keyword)) {
			return ScoreSubstring
		}
	}

	columnWords := strings.Fields(normalizedColumn)
	for _, word := range columnWords {
		for _, keyword := range keywords {
			for _, keywordWord := range strings.Fields(textutil.Normalize(keyword)) {
				if word == keywordWord {
					return ScoreWord
				}
			}
		}
	}

	return 0
}

// BestMatch returns the highest-scoring column for a field, or false when
// nothing scores above zero. On ties the first-seen column wins.
func (r *Registry) BestMatch(field string, columnNames []string) (Match, bool) {
	var best Match
	found := false
	for _, columnName := range columnNames {
		score := r.MatchColumn(field, columnName)
		if score > 0 && (!found || score > best.Score) {
			best = Match{Column: columnName, Score: score}
			found = true
		}
	}
	return best, found
}
