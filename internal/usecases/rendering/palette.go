package rendering

// palette é o ciclo fixo de cores para séries e fatias
var palette = [...]string{"#0088FE", "#00C49F", "#FFBB28", "#FF8042", "#AF19FF", "#10b981"}

const (
	primaryColor   = "var(--primary)"
	secondaryColor = "#3b82f6"
	areaColor      = "#10b981"
	medianColor    = "red"
	transparent    = "transparent"
)

// Palette devolve a cor do índice; a mesma posição sempre recebe a mesma cor
func Palette(index int) string {
	n := len(palette)
	return palette[((index%n)+n)%n]
}

func colorOr(color string, index int) string {
	if color != "" {
		return color
	}
	return Palette(index)
}
