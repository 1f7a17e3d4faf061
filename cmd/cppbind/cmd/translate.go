package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/binderd/cppbind/internal/config"
	"github.com/binderd/cppbind/internal/pipeline"
	"github.com/binderd/cppbind/internal/printer"
)

var (
	configFiles []string
	outputDir   string
	clangArgs   []string
	reportPath  string
)

var translateCmd = &cobra.Command{
	Use:   "translate [header...]",
	Short: "Translate C++ header declarations into D binding source",
	Long: `translate walks the declarations reachable from one or more C++
headers, applies the given configuration files in order, resolves each
declaration's translation strategy, and writes one D source file per
output module under the output directory (§6.4).

Examples:
  cppbind translate include/widget.h -c config.json -o gen/
  cppbind translate a.h b.h -c base.json -c overrides.json -o gen/`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringArrayVarP(&configFiles, "config-file", "c", nil, "configuration file (repeatable)")
	translateCmd.Flags().StringVarP(&outputDir, "output", "o", ".", "output directory")
	translateCmd.Flags().StringArrayVar(&clangArgs, "clang-arg", nil, "extra argument passed through to the AST adapter (repeatable)")
	translateCmd.Flags().StringVar(&reportPath, "report", "", "write a YAML run summary to this path")
}

func runTranslate(_ *cobra.Command, args []string) error {
	if len(configFiles) == 0 {
		fmt.Fprintln(os.Stderr, "warning: no configuration file given; every declaration keeps its default binding")
	}

	var loaded []*config.File
	for _, path := range configFiles {
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading configuration %s: %w", path, err)
		}
		f, err := config.Load(path, raw)
		if err != nil {
			return err
		}
		clangArgs = append(clangArgs, f.ClangArgs...)
		loaded = append(loaded, f)
	}

	tu, err := ParseHeaders(args, clangArgs)
	if err != nil {
		return err
	}

	ctx := pipeline.New()
	root, err := ctx.Run(tu, args, loaded)
	if err != nil {
		return err
	}

	for _, it := range ctx.Diags.Items() {
		fmt.Fprintln(os.Stderr, it.Format(true))
	}

	for _, f := range printer.RenderTree(root) {
		outPath := filepath.Join(outputDir, filepath.FromSlash(f.RelPath))
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return fmt.Errorf("creating output directory for %s: %w", outPath, err)
		}
		if err := os.WriteFile(outPath, []byte(f.Source), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "wrote %s\n", outPath)
		}
	}

	if reportPath != "" {
		out, err := ctx.BuildReport().ToYAML()
		if err != nil {
			return fmt.Errorf("rendering report: %w", err)
		}
		if err := os.WriteFile(reportPath, out, 0o644); err != nil {
			return fmt.Errorf("writing report %s: %w", reportPath, err)
		}
	}

	return nil
}
