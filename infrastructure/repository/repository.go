// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	rawDataTable       = "raw_data"
	processedDataTable = "processed_data"
	summaryDataTable   = "summary_data"
)

// execError anexa o código do postgres quando o erro vem do driver pq
func execError(action string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("erro no banco de dados ao %s: %w (código: %s)", action, pqErr, pqErr.Code)
	}
	return fmt.Errorf("erro ao %s: %w", action, err)
}

// encodeJSON serializa uma coluna JSON; valores nulos viram NULL no banco.
// O texto é enviado como string para funcionar tanto em JSONB quanto em TEXT.
func encodeJSON(value any, isNil bool) (any, error) {
	if isNil {
		return nil, nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}

	return string(data), nil
}

// decodeJSON ignora colunas NULL, mantendo o valor zero do destino
func decodeJSON(data []byte, target any) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	return json.Unmarshal(data, target)
}
