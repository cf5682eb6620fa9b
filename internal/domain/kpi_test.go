package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKPIPayload_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		validate func(t *testing.T, payload KPIPayload)
	}{
		{
			name:  "lista do motor",
			input: `[{"label":"Total Revenue","value":1500,"type":"currency"},{"label":"Avg","value":"2.5000%","type":"percent"}]`,
			validate: func(t *testing.T, payload KPIPayload) {
				assert.True(t, payload.IsLabeled())
				require.Len(t, payload.Labeled, 2)
				assert.Equal(t, 1500.0, payload.Labeled[0].Value)
				assert.Equal(t, "2.5000%", payload.Labeled[1].Value)
			},
		},
		{
			name:  "resumo do agregador",
			input: `{"totalRevenue":2500,"growth":-10,"primaryMetric":"Revenue","categoryMetric":"Region","scatterKeys":["Revenue","Units"]}`,
			validate: func(t *testing.T, payload KPIPayload) {
				assert.False(t, payload.IsLabeled())
				require.NotNil(t, payload.Summary)
				assert.Equal(t, 2500.0, payload.Summary.TotalRevenue)
				assert.Equal(t, []string{"Revenue", "Units"}, payload.Summary.ScatterKeys)
			},
		},
		{
			name:  "objeto vazio",
			input: `{}`,
			validate: func(t *testing.T, payload KPIPayload) {
				assert.Nil(t, payload.Summary)
				assert.Nil(t, payload.Labeled)
			},
		},
		{
			name:  "lista vazia continua rotulada",
			input: `[]`,
			validate: func(t *testing.T, payload KPIPayload) {
				assert.True(t, payload.IsLabeled())
				assert.Empty(t, payload.Labeled)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload KPIPayload
			require.NoError(t, json.Unmarshal([]byte(tt.input), &payload))
			tt.validate(t, payload)
		})
	}
}

func TestKPIPayload_FormatoInvalido(t *testing.T) {
	var payload KPIPayload
	assert.Error(t, json.Unmarshal([]byte(`"texto"`), &payload))
}

func TestKPIPayload_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(SummaryPayload(&KPISummary{TotalRevenue: 10, PrimaryMetric: "Revenue", ScatterKeys: []string{}}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"totalRevenue":10,"growth":0,"primaryMetric":"Revenue","categoryMetric":"","scatterKeys":[]}`, string(out))

	out, err = json.Marshal(KPIPayload{})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(out))
}

func TestAggregateResult_KPIVazio(t *testing.T) {
	out, err := json.Marshal(EmptyAggregate())
	require.NoError(t, err)
	assert.JSONEq(t, `{"monthly":[],"category":[],"gender":[],"scatter":[],"kpi":{}}`, string(out))

	var decoded AggregateResult
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Nil(t, decoded.KPI)
}
