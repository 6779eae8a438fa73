package intake

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewCommand() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "intake",
		Short: "Manages the intake of delimited files",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("welcome to scrivener intake!")
			return nil
		},
	}
	cmd.AddCommand(newRunCommand())
	cmd.AddCommand(newServeCommand())
	return cmd
}
