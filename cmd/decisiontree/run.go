package main

import (
	"github.com/aretw0/decisiontree/internal/cli"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [paths...]",
	Short: "Walk a decision tree interactively",
	Long: `Loads the tree definitions under the given files or directories and walks one
of them on stdin/stdout. With --session the cursor is saved and resumed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, opts, err := loadFromFlags(cmd)
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

		headless, _ := cmd.Flags().GetBool("headless")
		plain, _ := cmd.Flags().GetBool("plain")
		sessionID, _ := cmd.Flags().GetString("session")
		stateDir, _ := cmd.Flags().GetString("state-dir")
		key, err := stateKey(cmd)
		if err != nil {
			return err
		}

		return cli.RunSession(cmd.Context(), tree, cli.RunOptions{
			Headless:  headless,
			Plain:     plain,
			SessionID: sessionID,
			StateDir:  stateDir,
			StateKey:  key,
			Input:     cmd.InOrStdin(),
			Output:    cmd.OutOrStdout(),
			Logger:    logger,
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("tree", "t", "", "Tree name or slug (required when several trees are loaded)")
	runCmd.Flags().Bool("headless", false, "Run in headless mode (no banner, no answer list)")
	runCmd.Flags().Bool("plain", false, "Disable markdown rendering and colors")
	runCmd.Flags().StringP("session", "s", "", "Session ID to resume and persist")
	runCmd.Flags().String("state-dir", "", "Directory for persisted sessions (default .decisiontree/sessions)")
}
