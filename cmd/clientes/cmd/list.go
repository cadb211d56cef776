package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/viniciusbrks/cadastro-clientes/internal/clientapp"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lista todos os clientes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listRun()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func listRun() error {
	clientes, err := newClient().List(context.Background())
	if err != nil {
		return fail(err)
	}

	state := clientapp.ViewState{}.WithClientes(clientes)
	renderClientes(state.Clientes)
	return nil
}
