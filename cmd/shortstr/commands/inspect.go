package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/shortstr/internal/app"
)

func (c *CLI) newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [text...]",
		Short: "Show how each argument is stored",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			format, err := formatFlag(cmd)
			if err != nil {
				return err
			}
			return c.app.Inspect(cmd.Context(), args, app.InspectOptions{Format: format})
		},
	}
	cmd.Flags().StringP("format", "o", "", "Output format: text, yaml, json or cbor")
	return cmd
}
