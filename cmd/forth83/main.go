// Command forth83 is the interactive driver for the forth83 interpreter
// core: a REPL over stdin/stdout, plus a run subcommand that batch-feeds a
// source file's lines through Interpret. Flag and subcommand plumbing
// replaces the teacher's bare flag package with cobra, and an optional TOML
// file can pre-set a handful of launch settings.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	forth83 "github.com/go-forth/forth83"
	"github.com/go-forth/forth83/internal/config"
	"github.com/go-forth/forth83/internal/flushio"
	"github.com/go-forth/forth83/internal/logio"
)

var (
	configPath  string
	traceFlag   bool
	echoLogFlag bool
	log         logio.Logger
)

// stdoutSink buffers the VM's write-sink output through a flushio.WriteFlusher
// and flushes after each Interpret call, so a long REPL session doesn't pay a
// syscall per EMIT. When --echo-log is set it also tees everything written
// through the trace logger, using flushio.WriteFlushers to fan out to both
// destinations with one Flush call.
type stdoutSink struct{ wf flushio.WriteFlusher }

func newStdoutSink() *stdoutSink {
	wf := flushio.NewWriteFlusher(os.Stdout)
	if echoLogFlag {
		wf = flushio.WriteFlushers(wf, flushio.NewWriteFlusher(&logio.Writer{Logf: log.Leveledf("OUT")}))
	}
	return &stdoutSink{wf: wf}
}

func (s *stdoutSink) write(str string) { io.WriteString(s.wf, str) } //nolint:errcheck

func (s *stdoutSink) flush() { s.wf.Flush() } //nolint:errcheck

func main() {
	log.SetOutput(os.Stderr)
	defer os.Exit(log.ExitCode())

	root := &cobra.Command{
		Use:   "forth83",
		Short: "a small Forth-83/94-style interpreter",
		RunE:  runREPL,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML launch config")
	root.PersistentFlags().BoolVar(&traceFlag, "trace", false, "enable trace logging to stderr")
	root.PersistentFlags().BoolVar(&echoLogFlag, "echo-log", false, "also tee interpreter output through the trace logger")

	runCmd := &cobra.Command{
		Use:   "run <file>",
		Short: "feed a source file's lines through the interpreter and exit",
		Args:  cobra.ExactArgs(1),
		RunE:  runFile,
	}
	root.AddCommand(runCmd)

	log.ErrorIf(root.Execute())
}

func newVM(cfg *config.Config, sink *stdoutSink) (*forth83.VM, error) {
	opts := []forth83.Option{
		forth83.WithWriteFunc(sink.write),
	}
	if cfg.Trace || traceFlag {
		opts = append(opts, forth83.WithLogf(log.Leveledf("TRACE")))
	}
	vm, err := forth83.New(opts...)
	if err != nil {
		return nil, err
	}
	for _, path := range cfg.Preload {
		src, err := os.ReadFile(path) // #nosec G304 -- operator-specified preload path
		if err != nil {
			return nil, fmt.Errorf("preload %s: %w", path, err)
		}
		if err := vm.Interpret(string(src)); err != nil {
			return nil, fmt.Errorf("preload %s: %w", path, err)
		}
		sink.flush()
	}
	return vm, nil
}

func runFile(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	sink := newStdoutSink()
	defer sink.flush()
	vm, err := newVM(cfg, sink)
	if err != nil {
		return err
	}
	src, err := os.ReadFile(args[0]) // #nosec G304 -- user-specified script path
	if err != nil {
		return err
	}
	return vm.Interpret(string(src))
}

// runREPL drives an interactive session: raw-mode line editing when stdin
// is a terminal (grounded on the IntuitionEngine terminal host's use of
// golang.org/x/term), falling back to plain buffered stdin otherwise.
func runREPL(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	sink := newStdoutSink()
	defer sink.flush()
	vm, err := newVM(cfg, sink)
	if err != nil {
		return err
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if err := vm.Interpret(scanner.Text() + "\n"); err != nil {
				return err
			}
			sink.flush()
		}
		return scanner.Err()
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	defer term.Restore(fd, oldState) //nolint:errcheck

	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}, "")
	for {
		line, err := t.ReadLine()
		if err != nil {
			return nil
		}
		if ierr := vm.Interpret(line + "\n"); ierr != nil {
			return ierr
		}
		sink.flush()
	}
}
