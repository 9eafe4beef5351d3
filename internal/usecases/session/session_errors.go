package session

import "errors"

// ErrSessionNotFound indica uma sessão desconhecida ou já removida pelo sweeper
var ErrSessionNotFound = errors.New("sessão não encontrada ou expirada")
