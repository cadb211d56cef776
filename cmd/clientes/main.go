package main

import "github.com/viniciusbrks/cadastro-clientes/cmd/clientes/cmd"

func main() {
	cmd.Execute()
}
