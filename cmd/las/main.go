// Package main provides the las command line tool.
package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/cantwellc/LAS/internal/cli"
)

func main() {
	cobra.CheckErr(cli.NewCLI().ExecuteContext(context.Background()))
}
