package clientapp

// ViewState é o estado de tela imutável por render: a lista é um
// snapshot substituído por inteiro após cada mutação bem-sucedida,
// nunca remendado no lugar. Dois modais, cada um com seu registro
// alvo, que é limpo sempre que o modal fecha.
type ViewState struct {
	Clientes []Cliente

	FormVisible    bool
	ConfirmVisible bool

	Editing  *Cliente
	Deleting *Cliente
}

// WithClientes troca o snapshot inteiro da lista.
func (s ViewState) WithClientes(clientes []Cliente) ViewState {
	s.Clientes = clientes
	return s
}

// OpenForm abre o formulário; com registro, é edição.
func (s ViewState) OpenForm(editing *Cliente) ViewState {
	s.FormVisible = true
	s.Editing = editing
	return s
}

func (s ViewState) CloseForm() ViewState {
	s.FormVisible = false
	s.Editing = nil
	return s
}

// OpenConfirm abre a confirmação de remoção nomeando o alvo.
func (s ViewState) OpenConfirm(deleting *Cliente) ViewState {
	s.ConfirmVisible = true
	s.Deleting = deleting
	return s
}

// CloseConfirm sempre roda após a tentativa, com ou sem sucesso.
func (s ViewState) CloseConfirm() ViewState {
	s.ConfirmVisible = false
	s.Deleting = nil
	return s
}
