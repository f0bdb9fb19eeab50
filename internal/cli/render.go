package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coopcast/flocktree/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string   // output file path (or base path for multiple outputs)
	vizTypes []string // visualization types: "tree", "nodelink"
	formats  []string // output formats: "svg", "json"
	viewport int      // viewport width in pixels, 0 for the desktop card size
	detailed bool     // include dates and breed in nodelink labels
	title    string   // SVG document title
	noStyle  bool     // omit the embedded stylesheet
	noCache  bool     // bypass the render cache
	refresh  bool     // recompute and overwrite cached entries
}

// renderCommand creates the render command for generating charts.
// Unset flags fall back to the configuration file.
func (c *CLI) renderCommand() *cobra.Command {
	var vizTypesStr, formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <file.ged>",
		Short: "Render a GEDCOM file to SVG or JSON charts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("type") && c.cfg.VizType != "" {
				vizTypesStr = c.cfg.VizType
			}
			if !flags.Changed("format") && len(c.cfg.Formats) > 0 {
				formatsStr = strings.Join(c.cfg.Formats, ",")
			}
			if !flags.Changed("viewport") {
				opts.viewport = c.cfg.Viewport
			}

			opts.vizTypes = parseVizTypes(vizTypesStr)
			opts.formats = parseFormats(formatsStr)
			for _, v := range opts.vizTypes {
				if err := pipeline.ValidateVizType(v); err != nil {
					return err
				}
			}
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			if err := pipeline.ValidateViewport(opts.viewport); err != nil {
				return err
			}
			return c.runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single type/format) or base path (multiple)")
	cmd.Flags().StringVarP(&vizTypesStr, "type", "t", "", "visualization type(s): tree (default), nodelink (comma-separated)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json (comma-separated)")
	cmd.Flags().IntVar(&opts.viewport, "viewport", 0, "viewport width in pixels (0: desktop)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show dates and breed in nodelink labels")
	cmd.Flags().StringVar(&opts.title, "title", "", "SVG document title")
	cmd.Flags().BoolVar(&opts.noStyle, "no-style", false, "omit the embedded stylesheet")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached results")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input string, opts renderOpts) error {
	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	multi := len(opts.vizTypes)*len(opts.formats) > 1
	base := outputBase(input, opts.output)
	written := 0

	for _, vizType := range opts.vizTypes {
		res, err := runner.Execute(cmd.Context(), pipeline.Options{
			Source:   input,
			Refresh:  opts.refresh,
			VizType:  vizType,
			Viewport: opts.viewport,
			Detailed: opts.detailed,
			Formats:  opts.formats,
			Title:    opts.title,
			NoStyle:  opts.noStyle,
			Logger:   c.Logger,
		})
		if err != nil {
			return err
		}

		printSuccess("Rendered %s chart", vizType)
		printStats(res.Stats.Individuals, res.Stats.Families, res.CacheInfo.LayoutHit)
		if !res.Validation.IsValid {
			printDetail("%d reference error(s), run validate for details", len(res.Validation.Errors))
		}

		formats := make([]string, 0, len(res.Artifacts))
		for f := range res.Artifacts {
			formats = append(formats, f)
		}
		sort.Strings(formats)
		for _, format := range formats {
			path := outputPath(base, opts.output, vizType, format, multi)
			if err := os.WriteFile(path, res.Artifacts[format], 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			printFile(path)
			written++
		}
	}

	prog.done(fmt.Sprintf("Wrote %d file(s)", written))
	printNextStep("Serve it", fmt.Sprintf("%s serve %s", appName, input))
	return nil
}

// outputBase returns the path prefix for generated files: the --output
// value without extension, or the input file name without extension.
func outputBase(input, output string) string {
	if output != "" {
		return strings.TrimSuffix(output, filepath.Ext(output))
	}
	return strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
}

// outputPath names one artifact. A single artifact uses --output as given;
// several artifacts get the type and format appended to the base.
func outputPath(base, output, vizType, format string, multi bool) string {
	if !multi {
		if output != "" {
			return output
		}
		return base + "." + format
	}
	return fmt.Sprintf("%s_%s.%s", base, vizType, format)
}
