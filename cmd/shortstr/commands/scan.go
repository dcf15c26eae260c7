package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/shortstr/internal/app"
	"go.trai.ch/shortstr/internal/core/domain"
)

func (c *CLI) newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [paths...]",
		Short: "Tokenize files and report how many tokens stay inline",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}
			format, err := formatFlag(cmd)
			if err != nil {
				return err
			}
			var split domain.SplitMode
			if s, _ := cmd.Flags().GetString("split"); s != "" {
				if split, err = domain.ParseSplitMode(s); err != nil {
					return err
				}
			}
			configPath, _ := cmd.Flags().GetString("config")
			workers, _ := cmd.Flags().GetInt("workers")
			noCache, _ := cmd.Flags().GetBool("no-cache")
			return c.app.Scan(cmd.Context(), args, app.ScanOptions{
				ConfigPath: configPath,
				Split:      split,
				Workers:    workers,
				Format:     format,
				NoCache:    noCache,
			})
		},
	}
	cmd.Flags().StringP("format", "o", "", "Output format: text, yaml, json or cbor")
	cmd.Flags().StringP("split", "s", "", "Token split mode: lines or words")
	cmd.Flags().IntP("workers", "w", 0, "Number of files scanned in parallel")
	cmd.Flags().BoolP("no-cache", "n", false, "Ignore cached results and rescan every file")
	return cmd
}

// formatFlag returns the validated --format value, or "" when it is unset.
func formatFlag(cmd *cobra.Command) (domain.Format, error) {
	s, _ := cmd.Flags().GetString("format")
	if s == "" {
		return "", nil
	}
	return domain.ParseFormat(s)
}
