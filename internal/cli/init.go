package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/pawsearch/internal/infra/fsworkspace"
	"github.com/aalvaropc/pawsearch/internal/infra/workspacefinder"
	"github.com/aalvaropc/pawsearch/internal/usecase"
)

func initCmd(g *globalFlags) *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create pawsearch.yaml and the .pawsearch directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := initRoot(path, g.workspace)
			if err != nil {
				return err
			}

			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer())
			if err := uc.Execute(root, force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Initialized pawsearch workspace at %s\n", root)
			fmt.Fprintf(cmd.OutOrStdout(), "Edit %s to point at your customer API.\n", workspacefinder.ConfigFile)
			return nil
		},
	}

	c.Flags().StringVar(&path, "path", "", "Directory to initialize (default: current directory)")
	c.Flags().BoolVar(&force, "force", false, "Overwrite an existing pawsearch.yaml")
	return c
}

func initRoot(path, workspaceFlag string) (string, error) {
	p := strings.TrimSpace(path)
	if p == "" {
		p = strings.TrimSpace(workspaceFlag)
	}
	if p == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}
	return abs, nil
}
