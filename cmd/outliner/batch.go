package main

import (
	"github.com/spf13/cobra"

	"outliner/internal/batch"
	"outliner/internal/config"
	"outliner/internal/pipeline"
)

var (
	batchInput  string
	batchOutput string
	batchMode   string
	batchWatch  bool
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Process a folder of documents into outline JSON files",
	Long: `Process every supported document in the input folder and write one
<stem>_outline.json per file to the output folder. With --watch, keep
running and process new files as they appear.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		cfg := config.Load()

		if batchInput == "" {
			batchInput = cfg.InputDir
		}
		if batchOutput == "" {
			batchOutput = cfg.OutputDir
		}
		if batchMode == "" {
			batchMode = cfg.Mode
		}

		mode, err := pipeline.ParseMode(batchMode)
		if err != nil {
			log.Error("invalid mode", "error", err)
			return err
		}

		opts := batch.Options{
			InputDir:  batchInput,
			OutputDir: batchOutput,
			Mode:      mode,
			Workers:   cfg.WorkerCount,
			Extractor: extractorConfig(cfg, log),
			Log:       log,
		}

		if batchWatch {
			return batch.Watch(cmd.Context(), opts)
		}
		return batch.Run(cmd.Context(), opts)
	},
}

func init() {
	batchCmd.Flags().StringVarP(&batchInput, "input", "i", "", "input folder (default: INPUT_DIR or ./input)")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "output folder (default: OUTPUT_DIR or ./output)")
	batchCmd.Flags().StringVarP(&batchMode, "mode", "m", "", "extraction mode: auto, layout, or ocr")
	batchCmd.Flags().BoolVarP(&batchWatch, "watch", "w", false, "keep watching the input folder for new files")
}
