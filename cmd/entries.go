package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"archive-listing/internal/models"
	"archive-listing/internal/parser"
)

func newEntriesCmd(o *options) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "entries [listing file|-]",
		Short: "Print the entries of a captured \"7z l -slt\" listing",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := readListing(cmd, args)
			if err != nil {
				return err
			}

			limit := o.cfg.Limit
			if path != "" {
				limit = parser.NoLimit
			}
			listing, err := models.NewListing(p, limit)
			if err != nil {
				return fmt.Errorf("failed to decode listing: %w", err)
			}
			o.logger.Debug("decoded listing",
				o.logger.Args("lines", len(p.Lines()), "entries", len(listing.Entries()), "limit", limit))

			entries := listing.Entries()
			if path != "" {
				e, ok := listing.Lookup(path)
				if !ok {
					return fmt.Errorf("entry %q not found", path)
				}
				entries = []*models.Entry{e}
			}
			return renderEntries(cmd.OutOrStdout(), o.cfg.Format, entries)
		},
	}

	cmd.Flags().IntVarP(&o.limit, "limit", "n", parser.NoLimit, "Stop after this many entries (-1 for all)")
	cmd.Flags().StringVarP(&path, "path", "p", "", "Only print the entry with this path")
	return cmd
}
