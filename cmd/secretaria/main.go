package main

import "github.com/rbmartins/secretaria/internal/cli"

func main() {
	cli.Execute()
}
