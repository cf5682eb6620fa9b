package domain

// ColumnType é o tipo inferido de uma coluna pelo motor de recomendação
type ColumnType string

const (
	ColumnID      ColumnType = "id"
	ColumnNumeric ColumnType = "numeric"
	ColumnDate    ColumnType = "date"
	ColumnString  ColumnType = "string"
)

// ColumnProfile descreve uma coluna do dataset analisado.
// Min, Max e Mean só existem para colunas numéricas.
type ColumnProfile struct {
	Name          string     `json:"name"`
	Type          ColumnType `json:"type"`
	IsCategorical bool       `json:"is_categorical"`
	UniqueCount   int        `json:"unique_count"`
	NullCount     int        `json:"null_count"`
	Min           *float64   `json:"min"`
	Max           *float64   `json:"max"`
	Mean          *float64   `json:"mean"`
}

type DatasetProfile struct {
	Columns  []ColumnProfile `json:"columns"`
	RowCount int             `json:"row_count"`
}
