package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/viniciusbrks/cadastro-clientes/internal/clientapp"
)

var (
	apiURL string

	log = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "clientes",
	Short: "Cadastro de clientes",
	Long:  `Lista, cria, edita e remove clientes via API de cadastro.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "http://localhost:8080", "Endereço da API")
}

func newClient() *clientapp.Client {
	return clientapp.New(clientapp.Config{BaseURL: apiURL})
}

// failMessage traduz a taxonomia de erros do app para o usuário.
// Timeout e falha de rede têm mensagens distintas.
func failMessage(err error) string {
	switch {
	case errors.Is(err, clientapp.ErrTimeout):
		return "O servidor demorou demais para responder. Tente novamente."
	case errors.Is(err, clientapp.ErrConexao):
		return "Não foi possível conectar ao servidor. Verifique sua conexão."
	case errors.Is(err, clientapp.ErrClienteNaoEncontrado):
		return "Cliente não encontrado."
	default:
		return "Não foi possível completar a operação. Tente novamente."
	}
}

func fail(err error) error {
	log.WithError(err).Debug("request falhou")
	return errors.New(failMessage(err))
}

func renderClientes(clientes []clientapp.Cliente) {
	if len(clientes) == 0 {
		fmt.Println("Nenhum cliente cadastrado.")
		return
	}

	fmt.Printf("%-6s %-30s %-6s %-3s\n", "ID", "NOME", "IDADE", "UF")
	for _, c := range clientes {
		fmt.Printf("%-6d %-30s %-6d %-3s\n", c.ID, c.Nome, c.Idade, c.UF)
	}
}
