package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"batchrename/internal/config"
	appErrors "batchrename/internal/errors"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runCommand(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// runCommand reports a fatal error as a single message on stderr and
// returns it; the process still exits normally afterwards.
func runCommand(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd := newRootCommand(stdin, stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(stderr, appErrors.UserMessage(err))
	}
	return err
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var cfg config.Config

	cmd := &cobra.Command{
		Use:           "batchrename",
		Short:         "Rename video files based on their metadata",
		Long:          "batchrename renames video files to {date}_{project}_{shot}_{time}_{seq} using the creation time and lens focal length reported by ffprobe.",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg, stdin, stdout, stderr)
		},
	}
	config.BindFlags(cmd.Flags(), &cfg)
	cmd.AddCommand(newDumpCommand(stdout))
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}
