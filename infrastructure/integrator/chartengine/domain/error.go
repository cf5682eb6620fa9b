package chartenginedomain

import "fmt"

// ErrorResponse representa a estrutura de erro do motor de gráficos.
// Detail é texto nos erros de negócio e lista nos erros de validação (422).
type ErrorResponse struct {
	Detail any `json:"detail"`
}

func (e *ErrorResponse) Message() string {
	switch detail := e.Detail.(type) {
	case nil:
		return ""
	case string:
		return detail
	default:
		return fmt.Sprintf("%v", detail)
	}
}
