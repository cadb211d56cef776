package clientapp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewState_WithClientesSubstituiSnapshot(t *testing.T) {
	first := []Cliente{{ID: 1, Nome: "Ana", Idade: 30, UF: "SP"}}
	second := []Cliente{
		{ID: 1, Nome: "Ana", Idade: 30, UF: "SP"},
		{ID: 2, Nome: "Bruno", Idade: 41, UF: "RJ"},
	}

	s1 := ViewState{}.WithClientes(first)
	s2 := s1.WithClientes(second)

	// o estado anterior não é remendado
	assert.Len(t, s1.Clientes, 1)
	assert.Len(t, s2.Clientes, 2)
}

func TestViewState_FecharFormularioLimpaEdicao(t *testing.T) {
	alvo := &Cliente{ID: 7, Nome: "Ana"}

	s := ViewState{}.OpenForm(alvo)
	assert.True(t, s.FormVisible)
	assert.Equal(t, alvo, s.Editing)

	s = s.CloseForm()
	assert.False(t, s.FormVisible)
	assert.Nil(t, s.Editing)
}

func TestViewState_FecharConfirmacaoLimpaAlvo(t *testing.T) {
	alvo := &Cliente{ID: 7, Nome: "Ana"}

	s := ViewState{}.OpenConfirm(alvo)
	assert.True(t, s.ConfirmVisible)
	assert.Equal(t, alvo, s.Deleting)

	s = s.CloseConfirm()
	assert.False(t, s.ConfirmVisible)
	assert.Nil(t, s.Deleting)
}
