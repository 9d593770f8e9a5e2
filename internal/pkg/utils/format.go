package utils

import "fmt"

// FormatDistance форматирует расстояние в метрах для отображения:
// от 1000 м в километрах с двумя знаками, иначе целые метры
func FormatDistance(meters int) string {
	if meters >= 1000 {
		return fmt.Sprintf("%.2f 公里", float64(meters)/1000.0)
	}
	return fmt.Sprintf("%d 米", meters)
}

// FormatDuration форматирует длительность в секундах: "H小时M分钟" либо "M分钟"
func FormatDuration(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	if hours > 0 {
		return fmt.Sprintf("%d小时%d分钟", hours, minutes)
	}
	return fmt.Sprintf("%d分钟", minutes)
}
