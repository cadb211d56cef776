package cliente

import (
	"strings"

	"github.com/viniciusbrks/cadastro-clientes/internal/httperr"
	"github.com/viniciusbrks/cadastro-clientes/internal/models"
)

const (
	IdadeMin = 0
	IdadeMax = 150
)

// Códigos de negócio mapeados para HTTP nos handlers
const (
	CodeNomeObrigatorio      = "nome_obrigatorio"
	CodeIdadeInvalida        = "idade_invalida"
	CodeUFInvalida           = "uf_invalida"
	CodeClienteNaoEncontrado = "cliente_nao_encontrado"
)

// Normalize deixa o registro no formato canônico antes de
// validar/persistir: nome sem espaços nas pontas, UF maiúscula.
func Normalize(c *models.Cliente) {
	c.Nome = strings.TrimSpace(c.Nome)
	c.UF = strings.ToUpper(strings.TrimSpace(c.UF))
}

// Validate assume registro já normalizado.
func Validate(c *models.Cliente) error {
	if c.Nome == "" {
		return httperr.ErrBusiness(CodeNomeObrigatorio)
	}

	if c.Idade < IdadeMin || c.Idade > IdadeMax {
		return httperr.ErrBusiness(CodeIdadeInvalida)
	}

	if !ufValida(c.UF) {
		return httperr.ErrBusiness(CodeUFInvalida)
	}

	return nil
}

func ufValida(uf string) bool {
	if len(uf) != 2 {
		return false
	}
	for _, r := range uf {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
