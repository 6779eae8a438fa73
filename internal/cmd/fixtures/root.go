package fixtures

import (
	"github.com/spf13/cobra"
)

func NewCommand() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "fixtures",
		Short: "Manages test fixtures",
	}
	cmd.AddCommand(newGenerateCommand())
	return cmd
}
