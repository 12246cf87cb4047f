package domain

import "errors"

// Errores de input: se rechazan de inmediato con causa especifica, sin retry.
var (
	ErrIncompleteInput = errors.New("incomplete input: fewer than 10 answers")
	ErrUnknownTrait    = errors.New("unknown trait dimension")
	ErrUnknownQuestion = errors.New("unknown question or option")
	ErrDuplicateDomain = errors.New("duplicate domain in preference triple")
	ErrUnknownDomain   = errors.New("unknown domain")
)

// Errores de configuracion: fatales al arranque, nunca recuperables en runtime.
var (
	ErrEmptyCatalog    = errors.New("career catalog is empty")
	ErrMissingTemplate = errors.New("career entry missing template data")
)
