package aggregating

import "errors"

// ErrEmptyInput indica agregação sobre um conjunto de registros vazio,
// tipicamente um filtro que não casou com nenhuma linha do dataset
var ErrEmptyInput = errors.New("conjunto de registros vazio para agregação")
