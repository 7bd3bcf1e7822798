package utils

import (
	"fmt"
	"strings"
	"time"
)

// isoLayouts são os formatos ISO-8601 aceitos, do mais comum para o menos comum
var isoLayouts = []string{
	time.DateOnly,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateTime,
	time.RFC3339,
	time.RFC3339Nano,
}

// ParseISOInLocation interpreta uma data ou data-hora ISO-8601. Valores sem fuso
// são considerados no fuso informado.
func ParseISOInLocation(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range isoLayouts {
		t, err := time.ParseInLocation(layout, value, loc)
		if err == nil {
			return t.In(loc), nil
		}
	}

	return time.Time{}, fmt.Errorf("data ISO inválida: %q", value)
}

// StartOfDay retorna a meia-noite do dia de t no fuso de t
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfMonth retorna o primeiro instante do mês de t no fuso de t
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
