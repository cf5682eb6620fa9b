package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{name: "inteiro", in: 1200, want: "1200"},
		{name: "decimal", in: 12.5, want: "12.5"},
		{name: "zero negativo", in: math.Copysign(0, -1), want: "0"},
		{name: "grande", in: 1e21, want: "1e+21"},
		{name: "pequeno", in: 1.5e-7, want: "1.5e-7"},
		{name: "NaN", in: math.NaN(), want: "NaN"},
		{name: "infinito", in: math.Inf(-1), want: "-Infinity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.in))
		})
	}
}

func TestValue_IsBlank(t *testing.T) {
	assert.True(t, Null().IsBlank())
	assert.True(t, String("").IsBlank())
	assert.False(t, Number(0).IsBlank())
	assert.False(t, String("0").IsBlank())
}

func TestValue_ComparavelComoChave(t *testing.T) {
	counts := map[Value]int{}
	for _, v := range []Value{String("a"), String("a"), Number(1), ValueOf(1), Null(), ValueOf(nil)} {
		counts[v]++
	}

	assert.Equal(t, map[Value]int{String("a"): 2, Number(1): 2, Null(): 2}, counts)
}

func TestValue_JSON(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{name: "nulo", value: Null(), want: "null"},
		{name: "número", value: Number(2.5), want: "2.5"},
		{name: "texto", value: String(`R$ "10"`), want: `"R$ \"10\""`},
		{name: "NaN vira nulo", value: Number(math.NaN()), want: "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.value.MarshalJSON()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}
}

func TestValueOf_Booleano(t *testing.T) {
	assert.Equal(t, String("true"), ValueOf(true))
	assert.Equal(t, Null(), ValueOf([]int{1}))
}
