package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/turbolytics/scrivener/internal/cmd/fixtures"
	"github.com/turbolytics/scrivener/internal/cmd/intake"
)

func NewRootCommand() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "scrivener",
		Short: "Validates, normalizes and preserves delimited files",
		Long:  ``,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Welcome to scrivener!")
		},
	}

	cmd.AddCommand(intake.NewCommand())
	cmd.AddCommand(fixtures.NewCommand())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
