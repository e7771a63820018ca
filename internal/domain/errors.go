package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrClientNotFound     = errors.New("cliente no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrTokenNotConfigured = errors.New("token de API DominioDZ no configurado")
)
