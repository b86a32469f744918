// Package cli provides a bare root command scaffold for the nefdecode
// application. The CLI's actual root command is defined in cmd/root.go,
// which does not use this package.
package cli

import (
	"github.com/spf13/cobra"
)

// NewCommand builds a "nefdecode" root command with no subcommands.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "nefdecode",
		Short: "Decodes Nikon NEF raw camera files.",
	}
}
