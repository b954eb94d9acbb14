package reporting

import "errors"

// ErrDataSourceUnavailable indica que uma das coleções não pôde ser lida.
// Nenhuma métrica é calculada a partir de uma busca que falhou.
var ErrDataSourceUnavailable = errors.New("fonte de dados indisponível")
