package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"archive-listing/internal/archiver"
)

func newNativeCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "native <archive>",
		Short: "Print a \"7z l -slt\" style listing produced without 7-Zip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := archiver.List(args[0])
			if err != nil {
				return err
			}
			o.logger.Debug("listed archive", o.logger.Args("archive", args[0], "lines", len(lines)))

			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(lines, "\n"))
			return err
		},
	}
}
