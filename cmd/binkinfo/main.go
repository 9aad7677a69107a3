// Command binkinfo inspects Bink container files and smoke-tests the
// decoder against them.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eosengine/bink"
	"github.com/eosengine/bink/internal/container"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "binkinfo",
		Short: "Inspect and decode Bink (.bik) video files",
	}
	root.AddCommand(infoCmd(), decodeOneCmd())
	return root
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file.bik>",
		Short: "Print the container header and frame index summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			dec, err := bink.Open(data, bink.NewSystemClock())
			if err != nil {
				return err
			}

			h := dec.Header()
			fmt.Printf("fourcc:       %s\n", container.FourCCString(h.FourCC))
			fmt.Printf("dimensions:   %dx%d\n", h.Width, h.Height)
			fmt.Printf("frame rate:   %d/%d\n", h.FPSNum, h.FPSDen)
			fmt.Printf("frame count:  %d\n", h.FrameCount)
			fmt.Printf("alpha plane:  %v\n", h.HasAlpha())
			fmt.Printf("audio tracks: %d\n", len(h.AudioTracks))
			for i, t := range h.AudioTracks {
				fmt.Printf("  track %d: %d Hz\n", i, t.SampleRate)
			}

			keyframes := 0
			for _, f := range h.Frames {
				if f.Keyframe {
					keyframes++
				}
			}
			fmt.Printf("keyframes:    %d\n", keyframes)
			return nil
		},
	}
}

func decodeOneCmd() *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "decode-one <file.bik>",
		Short: "Decode every frame once, reporting progress, to smoke-test the decoder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			dec, err := bink.Open(data, &fastClock{})
			if err != nil {
				return err
			}
			return decodeAll(dec, quiet)
		},
	}
	cmd.Flags().BoolVar(&quiet, "quiet", false, "suppress the progress bar")
	return cmd
}
