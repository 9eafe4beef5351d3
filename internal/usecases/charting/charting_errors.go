package charting

import "errors"

// ErrUnknownDimension indica uma dimensão de agrupamento fora do conjunto suportado
var ErrUnknownDimension = errors.New("dimensão de agrupamento desconhecida")
