package cmd

import (
	"fmt"
	"runtime"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"archive-listing/internal/config"
	"archive-listing/internal/inventory"
)

func newScanCmd(o *options) *cobra.Command {
	var jobs int

	cmd := &cobra.Command{
		Use:   "scan <root directory>",
		Short: "List every archive under a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := inventory.ProcessArchives(cmd.Context(), args[0], inventory.Options{
				Jobs:     jobs,
				Progress: cmd.ErrOrStderr(),
				Logger:   o.logger,
			})
			if err != nil {
				return err
			}
			return renderScan(cmd, o.cfg.Format, results)
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "Archives listed in parallel")
	return cmd
}

func renderScan(cmd *cobra.Command, format string, results []inventory.Result) error {
	w := cmd.OutOrStdout()
	if format == config.FormatJSON {
		return writeJSON(w, results)
	}

	fmt.Fprint(w, pterm.DefaultHeader.
		WithFullWidth().
		WithBackgroundStyle(pterm.NewStyle(pterm.BgDarkGray)).
		WithTextStyle(pterm.NewStyle(pterm.FgLightWhite)).
		Sprintln("Archive Listing"))

	data := pterm.TableData{{"Archive", "Type", "Entries", "Files", "Dirs", "Size", "Physical", "Error"}}
	for _, r := range results {
		data = append(data, []string{
			r.Archive,
			r.Type,
			strconv.Itoa(r.Entries),
			strconv.Itoa(r.Files),
			strconv.Itoa(r.Dirs),
			humanize.IBytes(r.Size),
			humanize.IBytes(uint64(r.PhysicalSize)),
			r.Error,
		})
	}
	return writeTable(w, data)
}
