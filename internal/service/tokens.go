package service

import "github.com/tiktoken-go/tokenizer"

// TokenCounter estima tokens con el codec cl100k. Si el codec no carga, cae
// a la heuristica de bytes/4 para no bloquear el arranque.
type TokenCounter struct {
	codec tokenizer.Codec
}

func NewTokenCounter() *TokenCounter {
	codec, err := tokenizer.Get(tokenizer.Cl100kBase)
	if err != nil {
		codec = nil
	}
	return &TokenCounter{codec: codec}
}

// Count devuelve la cantidad de tokens del texto.
func (c *TokenCounter) Count(text string) int {
	if c == nil || c.codec == nil {
		return len(text)/4 + 1
	}
	ids, _, err := c.codec.Encode(text)
	if err != nil {
		return len(text)/4 + 1
	}
	return len(ids)
}
