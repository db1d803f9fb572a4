package service

import (
	"errors"
	"fmt"
)

// Domain error taxonomy. Write paths are fail-loud: they return these errors
// up the stack and the enclosing transaction rolls back. Read paths are
// fail-soft: they log and return zero values instead.
var (
	ErrValidacion        = errors.New("datos invalidos")
	ErrUnidadDesconocida = errors.New("unidad no reconocida")
	ErrStockInsuficiente = errors.New("stock insuficiente")
	ErrNoEncontrado      = errors.New("no encontrado")
)

// Motivos de bloqueo de compra.
const (
	MotivoBloqueado    = "BLOQUEADO"
	MotivoInsuficiente = "INSUFICIENTE"
	MotivoWarning      = "WARNING"
)

// CompraBloqueadaError indicates the cash gate rejected a purchase.
// Motivo is MotivoBloqueado (no physical cash at all) or MotivoInsuficiente
// (cash below the purchase total).
type CompraBloqueadaError struct {
	Motivo  string
	Detalle string
}

func (e *CompraBloqueadaError) Error() string {
	return fmt.Sprintf("compra bloqueada (%s): %s", e.Motivo, e.Detalle)
}

// EsCompraBloqueada reports whether err is a cash-gate rejection.
func EsCompraBloqueada(err error) bool {
	var cb *CompraBloqueadaError
	return errors.As(err, &cb)
}
