package main

import (
	"fmt"

	"github.com/aretw0/decisiontree/internal/cli"
	"github.com/aretw0/decisiontree/internal/validator"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [paths...]",
	Short: "Check tree definitions for consistency",
	Long: `Compiles every definition and reports build errors, unreachable nodes,
questions without answers and branches that never reach an outcome.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, opts, err := loadFromFlags(cmd)
		if err != nil {
			return err
		}
		reg, err := cli.LoadRegistry(definitionPaths(args), opts...)
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}

		out := cmd.OutOrStdout()
		var found int
		for _, name := range reg.Names() {
			tree, err := reg.Lookup(name)
			if err != nil {
				return err
			}
			for _, issue := range validator.ValidateTree(tree) {
				fmt.Fprintf(out, "%s: %s\n", name, issue)
				found++
			}
		}
		if found > 0 {
			return fmt.Errorf("validation failed: %d issue(s)", found)
		}
		fmt.Fprintln(out, "Trees are valid! ✅")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
