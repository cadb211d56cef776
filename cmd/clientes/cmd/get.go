package cmd

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/viniciusbrks/cadastro-clientes/internal/clientapp"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Mostra um cliente pelo id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return getRun(args[0])
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func parseArgID(arg string) (uint, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, errors.New("Identificador inválido.")
	}
	return uint(id), nil
}

func getRun(arg string) error {
	id, err := parseArgID(arg)
	if err != nil {
		return err
	}

	cliente, err := newClient().Get(context.Background(), id)
	if err != nil {
		return fail(err)
	}

	renderClientes([]clientapp.Cliente{*cliente})
	return nil
}
