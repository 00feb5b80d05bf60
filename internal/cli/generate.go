package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/phobologic/codewiki/internal/analyze"
	"github.com/phobologic/codewiki/internal/config"
	"github.com/phobologic/codewiki/internal/llm"
	"github.com/phobologic/codewiki/internal/logging"
	"github.com/phobologic/codewiki/internal/summary"
	"github.com/phobologic/codewiki/internal/wiki"
)

var (
	outputFile string
	modelName  string
	detail     bool
	noLLM      bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <folder>",
	Short: "Analyze a code folder and generate wiki documentation",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&outputFile, "output", "o", "code_wiki.md", "output markdown file")
	generateCmd.Flags().StringVarP(&modelName, "model", "m", "", "override the configured model")
	generateCmd.Flags().BoolVar(&detail, "detail", false, "append per-file detail sections to the wiki")
	generateCmd.Flags().BoolVar(&noLLM, "no-llm", false, "skip generation and write the analysis digest only")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	root := args[0]

	// Validate the root here; the analyzer assumes an existing directory.
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("folder %q: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", root)
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	logging.Init(cfg.Logging)
	if modelName != "" {
		cfg.Ollama.Model = modelName
	}

	progress := newProgress(quiet, cmd.ErrOrStderr())
	analyzer, err := analyze.New(analyze.Options{
		IgnorePatterns: cfg.Analysis.Ignore,
		MaxFileSize:    cfg.Analysis.MaxFileSize,
		Logger:         logrus.StandardLogger(),
		Progress:       progress.update,
	})
	if err != nil {
		return err
	}

	analysis, err := analyzer.AnalyzeDirectory(root)
	if errors.Is(err, analyze.ErrNoSourceFiles) {
		return fmt.Errorf("no code files found in %q", root)
	}
	if err != nil {
		return err
	}
	progress.finish()

	logrus.Infof("found %d files, %d functions, %d classes",
		analysis.TotalFiles, analysis.TotalFunctions, analysis.TotalClasses)
	logrus.Infof("languages: %s", strings.Join(analysis.Languages, ", "))

	digest := summary.DigestWith(analysis, summary.Options{
		MaxFiles:     cfg.Analysis.MaxSummaryFiles,
		MaxFunctions: cfg.Analysis.MaxSummaryFunctions,
	})
	if g := summary.ImportGraph(analysis); g != "" {
		digest += "\n\nInternal dependencies:\n" + g
	}

	var doc string
	if noLLM {
		doc = "```\n" + digest + "\n```"
	} else {
		client, err := llm.NewClient(cfg.Ollama, cfg.Analysis.MaxPromptLength)
		if err != nil {
			return err
		}
		logrus.Infof("generating documentation with %s...", client.Model())
		doc, err = client.GenerateDocumentation(digest, wiki.ReadExisting(outputFile))
		if err != nil {
			return fmt.Errorf("generating documentation: %w", err)
		}
	}

	section := wiki.Render(doc, analysis, time.Now(), detail)
	if err := wiki.Write(outputFile, section); err != nil {
		return err
	}

	logrus.Infof("wiki written to %s", outputFile)
	return nil
}
