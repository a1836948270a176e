package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"batchrename/internal/infra/ffprobe"
)

// newDumpCommand prints the full ffprobe output for one file followed by the
// fields the renamer would read from it.
func newDumpCommand(stdout io.Writer) *cobra.Command {
	var binary string

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print everything ffprobe reports for a single file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if binary == "" {
				binary = os.Getenv("BATCHRENAME_FFPROBE")
			}
			prober := ffprobe.Prober{Binary: binary}

			raw, err := prober.Dump(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			var pretty bytes.Buffer
			if err := json.Indent(&pretty, raw, "", "  "); err != nil {
				pretty.Reset()
				pretty.Write(raw)
			}
			fmt.Fprintln(stdout, pretty.String())

			result, err := ffprobe.ParseJSON(raw)
			if err != nil || !result.HasMetadata() {
				fmt.Fprintln(stdout, "Failed to extract metadata.")
				return nil
			}
			fmt.Fprintln(stdout)
			for _, field := range result.Metadata.Fields() {
				fmt.Fprintf(stdout, "%s: %s\n", field[0], field[1])
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&binary, "ffprobe", "", "Path to the ffprobe binary")
	return cmd
}
