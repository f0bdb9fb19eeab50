package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/coopcast/flocktree/pkg/errors"
	"github.com/coopcast/flocktree/pkg/pipeline"
	"github.com/coopcast/flocktree/pkg/validate"
)

// validateCommand creates the validate command. It exits non-zero when the
// file cannot be read or has unresolved references.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file.ged>",
		Short: "Check the cross-references of a GEDCOM file",
		Long: `Validate decodes a GEDCOM file and reports every family or individual
reference that does not resolve, followed by flock statistics.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(args[0])
		},
	}
}

func (c *CLI) runValidate(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		printError("File not found: %s", path)
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "source %s", path)
	}

	printBanner(path)

	recs, err := pipeline.LoadFile(path)
	if err != nil {
		printError("GEDCOM parsing failed: %v", err)
		printDetail("The file may not be a valid GEDCOM file or may be corrupted.")
		return err
	}

	res := validate.Validate(recs)
	printReport(validate.FormatReport(res, filepath.Base(path)))
	c.Logger.Debug("validated", "path", path, "errors", len(res.Errors))

	if !res.IsValid {
		return errors.New(errors.ErrCodeValidationFailed, "%s has %d reference error(s)", path, len(res.Errors))
	}
	return nil
}
