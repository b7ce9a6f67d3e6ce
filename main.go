package main

import (
	"os"

	"github.com/joergsteffens/odoo-cli/src/cli"
)

func main() {
	os.Exit(cli.Execute())
}
