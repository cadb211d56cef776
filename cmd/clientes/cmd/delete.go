package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/viniciusbrks/cadastro-clientes/internal/clientapp"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove um cliente (pede confirmação)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return deleteRun(args[0])
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVar(&deleteYes, "yes", false, "Remove sem perguntar")
}

// Remoção em duas etapas: a confirmação nomeia o registro alvo
// e é sempre dispensada após a tentativa, com ou sem sucesso.
func deleteRun(arg string) error {
	id, err := parseArgID(arg)
	if err != nil {
		return err
	}

	api := newClient()

	cliente, err := api.Get(context.Background(), id)
	if err != nil {
		return fail(err)
	}

	state := clientapp.ViewState{}.OpenConfirm(cliente)
	defer func() {
		state = state.CloseConfirm()
	}()

	if !deleteYes {
		fmt.Printf("Remover cliente %q (id %d)? [s/N] ", state.Deleting.Nome, state.Deleting.ID)

		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if !strings.EqualFold(strings.TrimSpace(answer), "s") {
			fmt.Println("Remoção cancelada.")
			return nil
		}
	}

	if err := api.Delete(context.Background(), id); err != nil {
		return fail(err)
	}

	fmt.Println("Cliente removido com sucesso.")

	clientes, err := api.List(context.Background())
	if err != nil {
		return fail(err)
	}
	renderClientes(clientes)
	return nil
}
