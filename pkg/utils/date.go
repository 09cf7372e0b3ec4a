package utils

import "time"

// DateWindow retorna o início e o fim (YYYY-MM-DD, UTC) de uma janela de days dias terminando em now
func DateWindow(now time.Time, days int) (string, string) {
	end := now.UTC()
	start := end.AddDate(0, 0, -days)

	return start.Format(time.DateOnly), end.Format(time.DateOnly)
}
