package utils

import (
	"strings"
	"time"
)

// DateLayouts são os formatos aceitos para colunas de data dos CSVs, em ordem de prioridade.
// Datas ambíguas (01/02/2006) são lidas como mês/dia.
var DateLayouts = []string{
	time.RFC3339,
	time.DateOnly,
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"2006-01-02 15:04",
	time.DateTime,
	"1/2/2006 15:04",
	"1/2/2006 15:04:05",
	"01/02/2006 15:04:05",
	"2006-01-02T15:04:05",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"02-Jan-2006",
	"2006-01",
	time.RFC1123,
	time.RFC1123Z,
}

// ParseCalendarDate tenta todos os formatos conhecidos
func ParseCalendarDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range DateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// ShortMonth retorna o nome abreviado do mês (Jan, Feb, ...)
func ShortMonth(t time.Time) string {
	return t.Month().String()[:3]
}
