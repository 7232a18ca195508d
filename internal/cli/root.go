package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/HKCyber20/whisper/config"
	"github.com/HKCyber20/whisper/internal/app"
	"github.com/HKCyber20/whisper/internal/domain/transcript"
	"github.com/HKCyber20/whisper/internal/domain/transcript/usecases"
	"github.com/HKCyber20/whisper/internal/output"
	"github.com/HKCyber20/whisper/internal/version"
)

type Dependencies struct {
	App    *app.App
	Config *config.Config
}

func NewRootCmd(deps *Dependencies) *cobra.Command {
	var outputDir string

	rootCmd := &cobra.Command{
		Use:   "whisper-md <audio-file-or-dir>...",
		Short: "Batch-transcribe audio files into Markdown",
		Long: "Transcribe audio files with a local whisper.cpp model and write one\n" +
			"Markdown document per file: timestamped segments plus a plain-text copy.\n" +
			"Arguments may be audio files or directories to scan.",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatchCmd(cmd.Context(), deps, args, outputDir)
		},
	}

	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory for the generated .md files (default: beside each source)")

	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(version.Full() + "\n")

	rootCmd.AddCommand(NewDoctorCmd(deps))

	return rootCmd
}

func runBatchCmd(ctx context.Context, deps *Dependencies, args []string, outputDir string) error {
	formatter := output.NewFormatter(os.Stdout)

	files, skipped, err := deps.App.Resolve.Execute(args)
	if err != nil {
		return err
	}
	for _, p := range skipped {
		formatter.Warning(fmt.Sprintf("path does not exist, skipping: %s", p))
	}
	if len(files) == 0 {
		return fmt.Errorf("no audio files found")
	}
	formatter.FilesFound(len(files))

	if outputDir != "" {
		deps.App.Render.OutputDir = outputDir
	}
	if dir := deps.App.Render.OutputDir; dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	formatter.LoadingModel(deps.Config.ModelPath)
	eng, err := deps.App.OpenEngine()
	if err != nil {
		return err
	}
	defer eng.Close()
	formatter.ModelLoaded()

	tx := &usecases.Transcribe{Engine: eng}
	runBatch(ctx, files, tx, deps.App.Render, formatter)
	return nil
}

// runBatch processes the files strictly in order. A failing file is logged
// and skipped; it never aborts the rest of the batch.
func runBatch(ctx context.Context, files []transcript.AudioFile, tx *usecases.Transcribe, render *usecases.RenderMarkdown, formatter *output.Formatter) (ok, failed int) {
	for _, file := range files {
		formatter.Transcribing(file.Name())

		tr, err := tx.Execute(ctx, file)
		if err != nil {
			formatter.TranscribeFailed(file.Name(), err)
			failed++
			continue
		}

		path, err := render.Execute(tr, file)
		if err != nil {
			formatter.TranscribeFailed(file.Name(), err)
			failed++
			continue
		}

		formatter.DocumentSaved(path)
		ok++
	}

	formatter.BatchComplete(ok, failed)
	return ok, failed
}
