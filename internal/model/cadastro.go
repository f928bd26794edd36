package model

// Cadastro is a person registration.
type Cadastro struct {
	ID             ID      `json:"id"`
	Nome           string  `json:"nome"`
	Email          string  `json:"email"`
	Telefone       string  `json:"telefone"`
	DataNascimento string  `json:"data_nascimento"`
	Endereco       *string `json:"endereco,omitempty"`
}

// Key returns the list key.
func (c Cadastro) Key() string { return c.ID.String() }
