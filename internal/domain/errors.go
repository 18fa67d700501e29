package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrUsernameTaken     = errors.New("el nombre de usuario ya está registrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrInsufficientStock = errors.New("stock insuficiente")

	// ErrConsistency señala una línea de venta o reposición que referencia un
	// producto inexistente. La transacción completa se revierte: no hay skip
	// silencioso de líneas.
	ErrConsistency = errors.New("línea referencia un producto inexistente")

	// ErrTotalMismatch señala que el total enviado por el cliente no coincide
	// con la suma de las líneas. El total siempre se recalcula en el servidor.
	ErrTotalMismatch = errors.New("el total no coincide con las líneas")
)
