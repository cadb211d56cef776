package clientapp

import (
	"strconv"
	"strings"
)

// ClienteForm é o formulário cru, antes de qualquer request.
// Nada chega na rede sem passar por Validate.
type ClienteForm struct {
	Nome  string
	Idade string
	UF    string
}

type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Message
}

const (
	MsgNomeObrigatorio = "Informe o nome."
	MsgIdadeInvalida   = "Idade deve ser um número inteiro entre 0 e 150."
	MsgUFInvalida      = "UF deve ter exatamente 2 letras."
)

// Validate devolve o payload normalizado (nome sem espaços nas
// pontas, idade numérica, UF maiúscula) ou a lista de erros de campo.
func (f ClienteForm) Validate() (ClientePayload, []FieldError) {
	var errs []FieldError

	nome := strings.TrimSpace(f.Nome)
	if nome == "" {
		errs = append(errs, FieldError{Field: "Nome", Message: MsgNomeObrigatorio})
	}

	idade, err := strconv.Atoi(strings.TrimSpace(f.Idade))
	if err != nil || idade < 0 || idade > 150 {
		errs = append(errs, FieldError{Field: "Idade", Message: MsgIdadeInvalida})
	}

	uf := strings.ToUpper(strings.TrimSpace(f.UF))
	if len(uf) != 2 {
		errs = append(errs, FieldError{Field: "UF", Message: MsgUFInvalida})
	}

	if len(errs) > 0 {
		return ClientePayload{}, errs
	}

	return ClientePayload{
		Nome:  nome,
		Idade: idade,
		UF:    uf,
	}, nil
}
