package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/viniciusbrks/cadastro-clientes/internal/clientapp"
)

var createForm clientapp.ClienteForm

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Cadastra um novo cliente",
	RunE: func(cmd *cobra.Command, args []string) error {
		return createRun()
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringVar(&createForm.Nome, "nome", "", "Nome completo")
	createCmd.Flags().StringVar(&createForm.Idade, "idade", "", "Idade (0 a 150)")
	createCmd.Flags().StringVar(&createForm.UF, "uf", "", "UF (2 letras)")
}

// validateForm é a porta do formulário: nenhum request sai
// enquanto houver erro de campo.
func validateForm(form clientapp.ClienteForm) (clientapp.ClientePayload, error) {
	payload, fieldErrs := form.Validate()
	if len(fieldErrs) > 0 {
		for _, fe := range fieldErrs {
			fmt.Println(fe.Message)
		}
		return clientapp.ClientePayload{}, errors.New("corrija os campos e tente novamente")
	}
	return payload, nil
}

func createRun() error {
	payload, err := validateForm(createForm)
	if err != nil {
		return err
	}

	api := newClient()

	if err := api.Create(context.Background(), payload); err != nil {
		return fail(err)
	}

	fmt.Println("Cliente criado com sucesso.")

	// lista recarregada após a mutação
	clientes, err := api.List(context.Background())
	if err != nil {
		return fail(err)
	}
	renderClientes(clientes)
	return nil
}
