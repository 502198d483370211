package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tsawler/structura"
	"github.com/tsawler/structura/layout"
	"github.com/tsawler/structura/ocr"
)

var (
	cfgFile   string
	inputPath string
	outPath   string
)

var rootCmd = &cobra.Command{
	Use:   "structura",
	Short: "Extract structured JSON from PDF documents",
	Long: `Structura converts a PDF into hierarchical JSON: paragraphs, tables,
and charts, each stamped with the section and sub-section headings in
effect where it appears.

Headings are detected from font size and text shape, paragraphs are
segmented and length-limited, tables are recovered from word alignment
with a text-rule fallback, and embedded images large enough to be
charts are measured and optionally persisted and OCRed.`,
	Version:      version,
	SilenceUsage: true,
	RunE:         runExtract,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./structura.yaml)",
	)

	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "input PDF file (required)")
	rootCmd.Flags().StringVarP(&outPath, "output", "o", "", "output JSON file (required)")
	rootCmd.Flags().Bool("ocr", false, "OCR chart images (requires a build with -tags ocr)")
	rootCmd.Flags().String("ocr-lang", "", "OCR language, e.g. deu (default: eng)")
	rootCmd.Flags().String("image-out", "", "directory to persist extracted chart images")
	rootCmd.Flags().Int("max-paragraph", 0, "maximum paragraph length in bytes (default 500)")
	rootCmd.Flags().BoolP("verbose", "v", false, "enable debug logging")

	rootCmd.MarkFlagRequired("input")
	rootCmd.MarkFlagRequired("output")

	for _, name := range []string{"ocr", "ocr-lang", "image-out", "max-paragraph", "verbose"} {
		viper.BindPFlag(name, rootCmd.Flags().Lookup(name))
	}

	rootCmd.AddCommand(versionCmd)

	cobra.OnInitialize(initConfig)
}

// initConfig reads in the config file, if one exists. Flags take
// precedence over config file values.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("structura")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("STRUCTURA")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && cfgFile != "" {
			fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
			os.Exit(1)
		}
	}
}

func runExtract(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if _, err := os.Stat(inputPath); err != nil {
		return fmt.Errorf("input file: %w", err)
	}

	if viper.GetBool("ocr") && !ocr.Available() {
		return errors.New("OCR requested but this binary was built without -tags ocr")
	}

	e := structura.Open(inputPath).Logger(logger)
	if viper.GetBool("ocr") {
		e = e.WithOCR()
	}
	if lang := viper.GetString("ocr-lang"); lang != "" {
		e = e.OCRLanguage(lang)
	}
	if dir := viper.GetString("image-out"); dir != "" {
		e = e.ImageDir(dir)
	}
	if n := viper.GetInt("max-paragraph"); n > 0 {
		e = e.MaxParagraphLength(n)
	}
	if viper.IsSet("heading") {
		e = e.HeadingConfig(headingConfigFromViper())
	}

	warnings, err := e.ExtractToFile(cmd.Context(), outPath)
	for _, w := range warnings {
		logger.Warn("extraction warning", "page", w.Page, "op", w.Op, "error", w.Err)
	}
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	logger.Info("wrote structured document", "input", inputPath, "output", outPath,
		"warnings", len(warnings))
	return nil
}

// headingConfigFromViper overlays any heading thresholds from the
// config file onto the defaults. Unset or non-positive values keep the
// default.
func headingConfigFromViper() layout.HeadingConfig {
	hc := layout.DefaultHeadingConfig()
	if v := viper.GetFloat64("heading.line_tolerance"); v > 0 {
		hc.LineTolerance = v
	}
	if v := viper.GetFloat64("heading.large_font_ratio"); v > 0 {
		hc.LargeFontRatio = v
	}
	if v := viper.GetInt("heading.max_title_len"); v > 0 {
		hc.MaxTitleLen = v
	}
	if v := viper.GetInt("heading.min_all_caps_len"); v > 0 {
		hc.MinAllCapsLen = v
	}
	return hc
}
