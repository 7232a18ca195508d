package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/HKCyber20/whisper/config"
	"github.com/HKCyber20/whisper/internal/media"
	"github.com/HKCyber20/whisper/internal/output"
)

func NewDoctorCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check prerequisites",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := output.NewFormatter(os.Stdout)
			ok := true

			if err := media.CheckFFmpeg(); err != nil {
				f.SetupCheck("ffmpeg", false, err.Error())
				ok = false
			} else {
				f.SetupCheck("ffmpeg", true, "installed")
			}

			if info, err := os.Stat(deps.Config.ModelPath); err != nil {
				f.SetupCheck("Whisper model", false, deps.Config.ModelPath+" not found. Download from https://huggingface.co/ggerganov/whisper.cpp")
				ok = false
			} else {
				f.SetupCheck("Whisper model", true, fmt.Sprintf("%s (%d MB)", deps.Config.ModelPath, info.Size()/(1<<20)))
			}

			if path := config.FilePath(); path != "" {
				f.SetupCheck("Config file", true, path)
			} else {
				f.SetupCheck("Config file", true, "none (using defaults)")
			}

			f.SetupCheck("Language", true, deps.Config.Language)

			if deps.Config.OutputDir != "" {
				f.SetupCheck("Output directory", true, deps.Config.OutputDir)
			} else {
				f.SetupCheck("Output directory", true, "beside each source file")
			}

			if ok {
				f.Success("\nAll prerequisites met. Ready to transcribe!")
			} else {
				f.Warning("\nSome prerequisites are missing.")
			}
			return nil
		},
	}
}
