package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"archive-listing/internal/models"
	"archive-listing/internal/parser"
)

func newInfoCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info [listing file|-]",
		Short: "Print the archive information of a captured listing",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := readListing(cmd, args)
			if err != nil {
				return err
			}

			info, err := models.NewInfo(p)
			if err != nil {
				return fmt.Errorf("failed to decode archive info: %w", err)
			}
			tool := parser.ToolVersion(p.ParseInfo())
			o.logger.Debug("decoded archive info",
				o.logger.Args("path", info.Path(), "type", info.Type(), "tool", tool))

			return renderInfo(cmd.OutOrStdout(), o.cfg.Format, info, tool)
		},
	}
}
