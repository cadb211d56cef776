package clientapp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClienteFormValidate_OK(t *testing.T) {
	form := ClienteForm{Nome: "  Ana Silva ", Idade: "30", UF: " sp "}

	payload, errs := form.Validate()

	require.Empty(t, errs)
	assert.Equal(t, "Ana Silva", payload.Nome)
	assert.Equal(t, 30, payload.Idade)
	assert.Equal(t, "SP", payload.UF)
}

func TestClienteFormValidate_IdadeBoundaries(t *testing.T) {
	cases := []struct {
		idade string
		valid bool
	}{
		{"0", true},
		{"150", true},
		{"-1", false},
		{"151", false},
		{"abc", false},
		{"", false},
	}

	for _, tc := range cases {
		t.Run(tc.idade, func(t *testing.T) {
			form := ClienteForm{Nome: "Ana", Idade: tc.idade, UF: "SP"}

			_, errs := form.Validate()

			if tc.valid {
				assert.Empty(t, errs)
				return
			}

			require.Len(t, errs, 1)
			assert.Equal(t, "Idade", errs[0].Field)
			assert.Equal(t, MsgIdadeInvalida, errs[0].Message)
		})
	}
}

func TestClienteFormValidate_UFLength(t *testing.T) {
	cases := []struct {
		uf    string
		valid bool
	}{
		{"SP", true},
		{"rj", true}, // normalizado para maiúscula
		{"S", false},
		{"SPO", false},
		{"", false},
	}

	for _, tc := range cases {
		t.Run("uf="+tc.uf, func(t *testing.T) {
			form := ClienteForm{Nome: "Ana", Idade: "30", UF: tc.uf}

			_, errs := form.Validate()

			if tc.valid {
				assert.Empty(t, errs)
				return
			}

			require.Len(t, errs, 1)
			assert.Equal(t, "UF", errs[0].Field)
		})
	}
}

func TestClienteFormValidate_NomeEmBranco(t *testing.T) {
	form := ClienteForm{Nome: "   ", Idade: "30", UF: "SP"}

	_, errs := form.Validate()

	require.Len(t, errs, 1)
	assert.Equal(t, "Nome", errs[0].Field)
	assert.Equal(t, MsgNomeObrigatorio, errs[0].Message)
}

func TestClienteFormValidate_AcumulaErros(t *testing.T) {
	form := ClienteForm{Nome: "", Idade: "abc", UF: "SPO"}

	_, errs := form.Validate()

	assert.Len(t, errs, 3)
}
