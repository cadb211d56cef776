package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/viniciusbrks/cadastro-clientes/internal/clientapp"
)

var updateForm clientapp.ClienteForm

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Edita um cliente existente",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateRun(args[0])
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().StringVar(&updateForm.Nome, "nome", "", "Nome completo")
	updateCmd.Flags().StringVar(&updateForm.Idade, "idade", "", "Idade (0 a 150)")
	updateCmd.Flags().StringVar(&updateForm.UF, "uf", "", "UF (2 letras)")
}

func updateRun(arg string) error {
	id, err := parseArgID(arg)
	if err != nil {
		return err
	}

	payload, err := validateForm(updateForm)
	if err != nil {
		return err
	}

	api := newClient()

	if err := api.Update(context.Background(), id, payload); err != nil {
		return fail(err)
	}

	fmt.Println("Cliente atualizado com sucesso.")

	clientes, err := api.List(context.Background())
	if err != nil {
		return fail(err)
	}
	renderClientes(clientes)
	return nil
}
