package main

import (
	"fmt"

	"github.com/aretw0/decisiontree/internal/cli"
	"github.com/aretw0/decisiontree/internal/presentation/graph"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph [paths...]",
	Short: "Export the tree as a Mermaid diagram",
	Long:  `Loads a tree definition and outputs a Mermaid flowchart (graph TD) of its nodes and answers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, opts, err := loadFromFlags(cmd)
		if err != nil {
			return err
		}
		reg, err := cli.LoadRegistry(definitionPaths(args), opts...)
		if err != nil {
			return err
		}
		ref, _ := cmd.Flags().GetString("tree")
		tree, err := cli.PickTree(reg, ref)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(tree, nil))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().StringP("tree", "t", "", "Tree name or slug (required when several trees are loaded)")
}
