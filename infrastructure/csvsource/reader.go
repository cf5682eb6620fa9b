// Package csvsource lê arquivos CSV enviados no upload
package csvsource

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vfg2006/analytics-forge-api/internal/domain"
)

const utf8BOM = "\ufeff"

var ErrMalformedCSV = errors.New("CSV malformado")

// Read converte o CSV em linhas com o cabeçalho como chave. As células ficam
// como texto; a coerção é do normalizador. Toda linha carrega o cabeçalho
// completo: células que faltam em linhas curtas ficam nulas e colunas extras
// sem cabeçalho são descartadas.
func Read(r io.Reader) (domain.Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return domain.Dataset{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: erro ao ler cabeçalho: %v", ErrMalformedCSV, err)
	}

	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], utf8BOM)
	}

	rows := make(domain.Dataset, 0)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedCSV, err)
		}

		row := domain.NewRow(len(headers))
		for i, header := range headers {
			if i < len(record) {
				row.Set(header, domain.String(record[i]))
				continue
			}
			row.Set(header, domain.Null())
		}
		rows = append(rows, row)
	}

	return rows, nil
}
