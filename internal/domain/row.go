package domain

import (
	"bytes"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// Row é uma linha do dataset. A ordem das colunas é preservada:
// primeiro o cabeçalho do CSV, depois as colunas derivadas.
type Row struct {
	keys   []string
	values map[string]Value
}

// Dataset é a sequência ordenada de linhas de um upload
type Dataset []Row

func NewRow(capacity int) Row {
	return Row{
		keys:   make([]string, 0, capacity),
		values: make(map[string]Value, capacity),
	}
}

// RowOf monta uma linha a partir de pares chave/valor, na ordem informada.
// Valores nativos (string, float64, int, nil) são convertidos com ValueOf.
func RowOf(pairs ...any) Row {
	row := NewRow(len(pairs) / 2)
	for i := 0; i+1 < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			continue
		}
		row.Set(key, ValueOf(pairs[i+1]))
	}
	return row
}

// Set grava o valor da coluna; colunas novas entram no fim da ordem
func (r *Row) Set(key string, v Value) {
	if r.values == nil {
		r.values = make(map[string]Value)
	}
	if _, exists := r.values[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.values[key] = v
}

// Get retorna o valor da coluna; colunas ausentes são nulas
func (r Row) Get(key string) Value {
	return r.values[key]
}

func (r Row) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Keys retorna as colunas na ordem de inserção
func (r Row) Keys() []string {
	return r.keys
}

func (r Row) Len() int {
	return len(r.keys)
}

// Native converte a linha para um map simples, usado em payloads externos
func (r Row) Native() map[string]any {
	out := make(map[string]any, len(r.keys))
	for _, k := range r.keys {
		out[k] = r.values[k].Interface()
	}
	return out
}

func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := r.values[k].MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON lê o objeto preservando a ordem das chaves
func (r *Row) UnmarshalJSON(data []byte) error {
	iter := jsoniter.ParseBytes(json, data)
	if iter.WhatIsNext() != jsoniter.ObjectValue {
		return fmt.Errorf("linha inválida: esperado objeto JSON")
	}

	row := NewRow(8)
	iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
		row.Set(key, readValue(it))
		return true
	})
	if iter.Error != nil {
		return fmt.Errorf("erro ao decodificar linha: %w", iter.Error)
	}

	*r = row
	return nil
}

func (v *Value) UnmarshalJSON(data []byte) error {
	iter := jsoniter.ParseBytes(json, data)
	value := readValue(iter)
	if iter.Error != nil {
		return fmt.Errorf("erro ao decodificar valor: %w", iter.Error)
	}
	*v = value
	return nil
}

func readValue(it *jsoniter.Iterator) Value {
	switch it.WhatIsNext() {
	case jsoniter.NilValue:
		it.ReadNil()
		return Null()
	case jsoniter.NumberValue:
		return Number(it.ReadFloat64())
	case jsoniter.StringValue:
		return String(it.ReadString())
	case jsoniter.BoolValue:
		return ValueOf(it.ReadBool())
	default:
		// objetos e listas aninhados viram texto bruto
		return String(string(it.SkipAndReturnBytes()))
	}
}
