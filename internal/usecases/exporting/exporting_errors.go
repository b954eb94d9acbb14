package exporting

import "errors"

var ErrNothingToExport = errors.New("não há dados para exportar")
