// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"fadedup/internal/cli"
	"fadedup/internal/cmdutil"
	"fadedup/internal/dedup"
	"fadedup/internal/fasta"
	"fadedup/internal/report"
	"fadedup/internal/version"
	"fadedup/internal/writers"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitIO       = 3
	ExitCanceled = 130
)

const longHelp = `fadedup removes near-duplicate records from FASTA files.

Records are compared with a banded alignment; any pair at or above the
identity threshold is joined, and each class of joined records is reduced
to its longest member. Survivors are written verbatim, in input order.
Multiple inputs are read as one corpus.`

func newCommand(opts *cli.Options, run func(cmd *cobra.Command, args []string)) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "fadedup [flags] FASTA...",
		Short:         "Remove near-duplicate FASTA records",
		Long:          longHelp,
		Version:       version.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run:           run,
	}
	cmd.SetVersionTemplate("fadedup version {{.Version}}\n")
	cmd.Flags().SortFlags = false
	cli.Register(cmd.Flags(), opts)
	return cmd
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	var opts cli.Options
	code := ExitOK
	cmd := newCommand(&opts, func(cmd *cobra.Command, args []string) {
		warns, err := cli.AfterParse(cmd.Flags(), &opts, args)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, "error:", err)
			code = ExitUsage
			return
		}
		code = execute(cmd.Context(), opts, warns, stdout, stderr)
	})
	if argv == nil {
		argv = []string{} // cobra falls back to os.Args on nil
	}
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(parent); err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		_, _ = fmt.Fprint(stderr, cmd.UsageString())
		return ExitUsage
	}
	return code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func execute(ctx context.Context, opts cli.Options, warns []string, stdout, stderr io.Writer) int {
	log := cmdutil.NewLogger(stderr, opts.Quiet)
	for _, w := range warns {
		log.Warnf("%s", w)
	}
	start := time.Now()

	var lines []string
	for _, in := range opts.Inputs {
		ls, err := fasta.ReadLines(ctx, in)
		if err != nil {
			return fail(log, err)
		}
		lines = append(lines, ls...)
	}
	log.Infof("read %s lines from %d input(s)", humanize.Comma(int64(len(lines))), len(opts.Inputs))

	if opts.Progress && !opts.Quiet {
		bar := pb.New(0).SetWriter(stderr)
		bar.Start()
		opts.Dedup.Progress = func(done, total int) {
			bar.SetTotal(int64(total)).SetCurrent(int64(done))
		}
		defer bar.Finish()
	}

	res, err := dedup.Run(ctx, lines, opts.Dedup)
	if err != nil {
		return fail(log, err)
	}

	w, err := writers.Create(opts.Output, stdout)
	if err != nil {
		return fail(log, err)
	}
	werr := writers.WriteLines(w, res.Lines)
	if cerr := w.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		if writers.IsBrokenPipe(werr) {
			return ExitOK
		}
		return fail(log, werr)
	}

	if !opts.Quiet {
		sum := report.Summary{
			Before:  fasta.Count(lines),
			After:   fasta.Count(res.Lines),
			Elapsed: time.Since(start),
			Stats:   res.Stats,
		}
		_ = sum.Write(stderr)
	}
	return ExitOK
}

// fail logs err and maps it to an exit code.
func fail(log *cmdutil.Logger, err error) int {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ExitCanceled
	case errors.Is(err, dedup.ErrInvalidParameter), errors.Is(err, dedup.ErrMalformedInput):
		log.Errorf("%v", err)
		return ExitUsage
	default:
		log.Errorf("%v", err)
		return ExitIO
	}
}
