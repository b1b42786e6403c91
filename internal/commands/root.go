package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/pf2fa/internal/buildinfo"
	"github.com/cleared-dev/pf2fa/internal/importer"
	"github.com/cleared-dev/pf2fa/internal/ledger"
)

// NewRootCommand creates the pf2fa command. It takes a single PostFinance
// export path and writes the FreeAgent CSV to the command's output.
func NewRootCommand(log zerolog.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "pf2fa <export.csv>",
		Short:   "Convert PostFinance statement exports to FreeAgent bank import CSV",
		Version: buildinfo.String(),
		Args:    cobra.MaximumNArgs(1),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) > 0 {
				path = args[0]
			}
			return Convert(cmd.OutOrStdout(), path, importer.DefaultRegistry(), log)
		},
	}

	return rootCmd
}

// Convert reads the export at path, detects its format against reg and
// writes the converted rows to w. Nothing is written unless every row
// parses.
func Convert(w io.Writer, path string, reg *importer.Registry, log zerolog.Logger) error {
	if strings.TrimSpace(path) == "" {
		return ErrMissingArgument
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnreadableFile, err)
	}

	lines := importer.SplitLines(data)
	det, err := importer.Detect(reg, lines)
	if err != nil {
		return err
	}
	log.Debug().
		Str("format", det.Descriptor.Kind.String()).
		Int("header_line", det.HeaderIndex+1).
		Msg("detected format")

	recs, err := importer.Collect(importer.NewParser(log).Rows(det, lines))
	if err != nil {
		return err
	}
	log.Debug().Int("records", len(recs)).Msg("parsed records")

	if err := ledger.WriteRecords(w, recs); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
