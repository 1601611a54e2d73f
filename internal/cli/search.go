package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/pawsearch/internal/domain"
	"github.com/aalvaropc/pawsearch/internal/infra/logger"
	"github.com/aalvaropc/pawsearch/internal/usecase"
)

func searchCmd(g *globalFlags) *cobra.Command {
	var text string
	var species string
	var format string

	c := &cobra.Command{
		Use:   "search",
		Short: "Run one search and print the matching customers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			selected, err := domain.ParseSpeciesList(species)
			if err != nil {
				return err
			}

			ws, err := loadWorkspace(*g)
			if err != nil {
				return err
			}
			defer ws.close()

			if ws.cfgErr != nil {
				return ws.cfgErr
			}

			ctrl := usecase.NewController()
			ctrl.SetQuery(text)
			for _, s := range selected {
				if err := ctrl.ToggleSpecies(s); err != nil {
					return err
				}
			}

			ticket, ctx := ctrl.Begin(cmd.Context())
			res := usecase.NewSearchCustomers(ws.searcher, logger.L()).Execute(ctx, ticket)
			ctrl.Complete(res)

			st := ctrl.State()
			if st.Status == domain.FetchError {
				return errors.New(st.Message)
			}
			return printCustomers(cmd.OutOrStdout(), st.Customers, format)
		},
	}

	c.Flags().StringVarP(&text, "query", "q", "", "Free text matched against ID, name, email or phone")
	c.Flags().StringVarP(&species, "species", "s", "", "Comma-separated species filter (e.g. dog,cat)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func checkFormat(format string) error {
	switch format {
	case "pretty", "json", "":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printCustomers(w io.Writer, customers []domain.Customer, format string) error {
	switch format {
	case "json":
		if customers == nil {
			customers = []domain.Customer{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{"customers": customers})
	case "pretty", "":
		printPrettyCustomers(w, customers)
		return nil
	default:
		return checkFormat(format)
	}
}

func printPrettyCustomers(w io.Writer, customers []domain.Customer) {
	if len(customers) == 0 {
		fmt.Fprintln(w, "No customers found.")
		return
	}

	for i, c := range customers {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, c.Name)
		fmt.Fprintf(w, "  %s\n", c.ContactLine())

		if len(c.Pets) > 0 {
			tags := make([]string, len(c.Pets))
			for j, p := range c.Pets {
				tags[j] = "[" + p.Tag() + "]"
			}
			fmt.Fprintf(w, "  %s\n", strings.Join(tags, " "))
		}
	}
}
