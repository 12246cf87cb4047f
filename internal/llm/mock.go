package llm

import "context"

// MockClient permite tests sin llamar a un proveedor real. Registra la
// cantidad de llamadas y el ultimo prompt recibido.
type MockClient struct {
	Response string
	Tokens   int
	Err      error

	Calls      int
	LastPrompt string
}

func (m *MockClient) Generate(ctx context.Context, prompt string) (Completion, error) {
	m.Calls++
	m.LastPrompt = prompt
	return Completion{Text: m.Response, Tokens: m.Tokens}, m.Err
}
