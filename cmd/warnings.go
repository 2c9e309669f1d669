package cmd

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"archive-listing/internal/config"
	"archive-listing/internal/parser"
)

type testView struct {
	OK       bool     `json:"ok"`
	Warnings []string `json:"warnings"`
}

func newWarningsCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "warnings [test output file|-]",
		Short: "Print the warnings of a captured \"7z t\" run",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer in.Close()

			raw, err := io.ReadAll(in)
			if err != nil {
				return fmt.Errorf("failed to read test output: %w", err)
			}
			out := string(raw)

			v := testView{OK: parser.TestPassed(out), Warnings: parser.ParseWarnings(out)}
			if v.Warnings == nil {
				v.Warnings = []string{}
			}
			o.logger.Debug("parsed test output", o.logger.Args("ok", v.OK, "warnings", len(v.Warnings)))

			w := cmd.OutOrStdout()
			if o.cfg.Format == config.FormatJSON {
				return writeJSON(w, v)
			}

			if len(v.Warnings) > 0 {
				data := pterm.TableData{{"Warning"}}
				for _, warning := range v.Warnings {
					data = append(data, []string{warning})
				}
				if err := writeTable(w, data); err != nil {
					return err
				}
			}
			status := "Everything is Ok"
			if !v.OK {
				status = "Test did not pass"
			}
			_, err = fmt.Fprintln(w, status)
			return err
		},
	}
}
