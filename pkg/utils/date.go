package utils

import "time"

const (
	brazilianDate = "02/01/2006"
	fileDate      = "2006-01-02"
)

func FormatDate(t time.Time) string {
	return t.Format(brazilianDate)
}

// FileDate é usada no nome dos arquivos exportados
func FileDate(t time.Time) string {
	return t.Format(fileDate)
}
