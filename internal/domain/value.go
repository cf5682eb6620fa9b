// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"math"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Kind identifica o tipo de um valor de célula
type Kind uint8

const (
	KindNull Kind = iota
	KindNumber
	KindString
)

// Value é o valor de uma célula: nulo, número ou texto.
// É comparável e pode ser usado como chave de map.
type Value struct {
	kind Kind
	num  float64
	str  string
}

func Null() Value {
	return Value{}
}

func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

func String(s string) Value {
	return Value{kind: KindString, str: s}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsNull() bool {
	return v.kind == KindNull
}

func (v Value) IsNumber() bool {
	return v.kind == KindNumber
}

func (v Value) IsString() bool {
	return v.kind == KindString
}

// IsBlank indica se o valor é nulo ou texto vazio
func (v Value) IsBlank() bool {
	return v.kind == KindNull || (v.kind == KindString && v.str == "")
}

// Float retorna o número e se o valor é numérico
func (v Value) Float() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// FloatOrZero retorna o número ou 0 para qualquer valor não numérico
func (v Value) FloatOrZero() float64 {
	if v.kind != KindNumber {
		return 0
	}
	return v.num
}

// Text retorna o texto bruto e se o valor é texto
func (v Value) Text() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// String renderiza o valor como texto, com números no formato do JavaScript
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return FormatNumber(v.num)
	case KindString:
		return v.str
	default:
		return "null"
	}
}

// Interface converte o valor para um tipo nativo (nil, float64 ou string)
func (v Value) Interface() any {
	switch v.kind {
	case KindNumber:
		return v.num
	case KindString:
		return v.str
	default:
		return nil
	}
}

// ValueOf converte um valor nativo decodificado de JSON para Value
func ValueOf(raw any) Value {
	switch t := raw.(type) {
	case nil:
		return Null()
	case Value:
		return t
	case float64:
		return Number(t)
	case float32:
		return Number(float64(t))
	case int:
		return Number(float64(t))
	case int64:
		return Number(float64(t))
	case string:
		return String(t)
	case bool:
		return String(strconv.FormatBool(t))
	default:
		return Null()
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumber:
		return []byte(formatJSONNumber(v.num)), nil
	case KindString:
		return json.Marshal(v.str)
	default:
		return []byte("null"), nil
	}
}

// FormatNumber formata um número como o String() do JavaScript
func FormatNumber(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	if math.IsInf(f, 1) {
		return "Infinity"
	}
	if math.IsInf(f, -1) {
		return "-Infinity"
	}
	if f == 0 {
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		// 1e+21 em vez de 1e+021
		mantissa, exp, _ := strings.Cut(s, "e")
		sign := exp[:1]
		digits := strings.TrimLeft(exp[1:], "0")
		return mantissa + "e" + sign + digits
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatJSONNumber(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	return FormatNumber(f)
}
