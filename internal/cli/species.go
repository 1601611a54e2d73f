package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/pawsearch/internal/domain"
)

func speciesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "species",
		Short: "List the species accepted by --species",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printSpecies(cmd.OutOrStdout())
		},
	}
}

func printSpecies(w io.Writer) {
	for _, c := range domain.Categories() {
		fmt.Fprintf(w, "%-8s %s  %s\n", c.Token, c.Icon, c.Label)
	}
}
