// Package app implements the application layer for zoomgrab.
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/zoomgrab/zoomgrab/internal/adapters/detector"
	"github.com/zoomgrab/zoomgrab/internal/adapters/input"
	"github.com/zoomgrab/zoomgrab/internal/adapters/ledger"
	"github.com/zoomgrab/zoomgrab/internal/adapters/media"
	"github.com/zoomgrab/zoomgrab/internal/adapters/menu"
	"github.com/zoomgrab/zoomgrab/internal/adapters/progress"
	"github.com/zoomgrab/zoomgrab/internal/adapters/watcher"
	"github.com/zoomgrab/zoomgrab/internal/adapters/ytdlp"
	"github.com/zoomgrab/zoomgrab/internal/core/domain"
	"github.com/zoomgrab/zoomgrab/internal/core/ports"
	"github.com/zoomgrab/zoomgrab/internal/engine/backoff"
	"github.com/zoomgrab/zoomgrab/internal/engine/batch"
	"github.com/zoomgrab/zoomgrab/internal/ui/style"
	"go.trai.ch/zerr"
)

// debounceWindow coalesces file system events in watch mode.
const debounceWindow = 500 * time.Millisecond

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	parser       *input.Parser
	runner       ports.CommandRunner
	tools        ports.ToolManager
	logger       ports.Logger

	stdin  io.Reader
	stdout io.Writer

	// interactive overrides TTY detection for the confirmation prompt.
	interactive func() bool
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	parser *input.Parser,
	runner ports.CommandRunner,
	tools ports.ToolManager,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		parser:       parser,
		runner:       runner,
		tools:        tools,
		logger:       log,
		stdin:        os.Stdin,
		stdout:       os.Stdout,
		interactive:  detector.Interactive,
	}
}

// WithStdio redirects the prompt input and report output.
// This is primarily used for testing.
func (a *App) WithStdio(in io.Reader, out io.Writer) *App {
	a.stdin = in
	a.stdout = out
	return a
}

// WithInteractive overrides TTY detection. Used for testing the prompt.
func (a *App) WithInteractive(f func() bool) *App {
	a.interactive = f
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	ConfigPath string
	OutputMode string
	Verbose    bool
	NoConfirm  bool
	// RetryFailed overrides the configured retry sweep setting when non-nil.
	RetryFailed *bool
	// WatchDir overrides the watched directory; empty means input/.
	WatchDir string
}

// Run executes the batch download for the given input file and kind.
func (a *App) Run(ctx context.Context, inputPath string, kind domain.DownloadKind, opts RunOptions) error {
	cfg, err := a.setup(ctx, opts, kind)
	if err != nil {
		return err
	}

	tasks, err := a.parser.ParseFile(inputPath)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		return zerr.With(domain.ErrNoValidTasks, "file", inputPath)
	}

	if !opts.NoConfirm && a.interactive() {
		if !a.confirm(tasks, kind) {
			return domain.ErrRunAborted
		}
	}

	summary, err := a.execute(ctx, cfg, tasks, kind, opts)
	a.report(summary)
	return err
}

// RunTasks executes an already-parsed task set. Watch mode and the menu use
// this to skip the prompt and reparse.
func (a *App) RunTasks(ctx context.Context, tasks []domain.Task, kind domain.DownloadKind, opts RunOptions) error {
	cfg, err := a.setup(ctx, opts, kind)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		return domain.ErrNoValidTasks
	}

	summary, err := a.execute(ctx, cfg, tasks, kind, opts)
	a.report(summary)
	return err
}

// setup loads configuration, prepares logging and the directory layout, and
// checks for the external tools the chosen kind needs.
func (a *App) setup(ctx context.Context, opts RunOptions, kind domain.DownloadKind) (domain.Config, error) {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return cfg, err
	}

	a.configureLogging(cfg, opts)

	if err := ensureLayout(cfg); err != nil {
		return cfg, err
	}

	if err := a.tools.Ensure(ctx, ports.ToolYtDlp); err != nil {
		return cfg, err
	}

	// ffmpeg is only a post-step; a run without it still downloads.
	if needsFFmpeg(cfg, kind) {
		if err := a.tools.Ensure(ctx, ports.ToolFFmpeg); err != nil {
			a.logger.Warn(fmt.Sprintf("ffmpeg unavailable, audio extraction will be skipped: %v", err))
		}
	}

	return cfg, nil
}

func needsFFmpeg(cfg domain.Config, kind domain.DownloadKind) bool {
	switch kind {
	case domain.KindAudio:
		return true
	case domain.KindAll:
		return cfg.Video.ConvertAudio
	}
	return false
}

func (a *App) configureLogging(cfg domain.Config, opts RunOptions) {
	a.logger.SetVerbose(opts.Verbose)
	a.logger.SetJSON(cfg.Logging.JSON)

	if cfg.Logging.File == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Logging.File), domain.DirPerm); err != nil {
		return
	}
	f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, domain.FilePerm)
	if err != nil {
		a.logger.Warn(fmt.Sprintf("cannot open log file %s: %v", cfg.Logging.File, err))
		return
	}
	a.logger.SetOutput(io.MultiWriter(os.Stderr, f))
}

// execute wires the per-run collaborators and drives the orchestrator.
func (a *App) execute(ctx context.Context, cfg domain.Config, tasks []domain.Task, kind domain.DownloadKind, opts RunOptions) (domain.Summary, error) {
	converter := media.NewConverter(a.runner, a.logger, cfg.Video.AudioQuality)
	factory := ytdlp.NewFactory(a.runner, converter, a.logger, cfg, nil)
	store := ledger.NewStore(cfg.LedgerPath(), a.logger)
	executor := backoff.NewExecutor(a.logger)

	mode := detector.ResolveMode(detector.DetectEnvironment(), opts.OutputMode)
	var reporter ports.ProgressReporter
	if mode == detector.ModeBar {
		reporter = progress.NewBar(a.stdout)
	} else {
		reporter = progress.NewPlain(a.stdout)
	}

	retryFailed := cfg.Retry.RetryFailed
	if opts.RetryFailed != nil {
		retryFailed = *opts.RetryFailed
	}

	orch := batch.NewOrchestrator(
		executor, factory, store, reporter, a.logger,
		cfg.BackoffPolicy(), retryFailed,
	)

	return orch.Run(ctx, tasks, kind)
}

// confirm shows the parsed task list and asks before starting.
func (a *App) confirm(tasks []domain.Task, kind domain.DownloadKind) bool {
	fmt.Fprintf(a.stdout, "About to download %d recordings (%s):\n", len(tasks), kind)
	for _, task := range tasks {
		fmt.Fprintf(a.stdout, "  %s %s\n", style.Dot, task.Name)
	}
	fmt.Fprint(a.stdout, "Proceed? [y/N] ")

	scanner := bufio.NewScanner(a.stdin)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}

func (a *App) report(summary domain.Summary) {
	if summary.Total == 0 {
		return
	}

	fmt.Fprintf(a.stdout, "\n%s %d succeeded, %d failed (of %d)\n",
		style.Check, summary.Succeeded, summary.Failed, summary.Total)

	for _, task := range summary.FailedTasks {
		fmt.Fprintf(a.stdout, "  %s %s (%s)\n", style.Cross, task.Name, task.Source)
	}
}

// ensureLayout creates the input directory and the artifact directories.
func ensureLayout(cfg domain.Config) error {
	dirs := []string{domain.InputDirName}
	for _, dir := range cfg.ArtifactDirs() {
		dirs = append(dirs, dir)
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
			return zerr.With(
				zerr.Wrap(err, domain.ErrDirectoryCreateFailed.Error()),
				"dir", dir,
			)
		}
	}
	return nil
}

// Status prints artifact counts and sizes per kind and the recorded
// download history.
func (a *App) Status(opts RunOptions) error {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	for _, spec := range []struct {
		label string
		dir   string
		globs []string
	}{
		{"videos", filepath.Join(cfg.Downloads.BaseDir, cfg.Downloads.VideoDir), []string{"*.mp4"}},
		{"audio files", filepath.Join(cfg.Downloads.BaseDir, cfg.Downloads.AudioDir), []string{"*." + cfg.Video.AudioFormat}},
		{"transcripts", filepath.Join(cfg.Downloads.BaseDir, cfg.Downloads.TranscriptDir), []string{"*.srt", "*.vtt"}},
	} {
		count := 0
		var size int64
		for _, g := range spec.globs {
			matches, _ := filepath.Glob(filepath.Join(spec.dir, g))
			count += len(matches)
			for _, m := range matches {
				if info, err := os.Stat(m); err == nil {
					size += info.Size()
				}
			}
		}
		fmt.Fprintf(a.stdout, "%-12s %d (%s)\n", spec.label+":", count, humanSize(size))
	}

	store := ledger.NewStore(cfg.LedgerPath(), a.logger)
	entries, err := store.Load()
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "%-12s %d\n", "recorded:", len(entries))

	for _, e := range entries {
		fmt.Fprintf(a.stdout, "  %s %s (%s) at %s\n",
			style.Check, e.Name, e.Kind, e.CompletedAt.Format(time.RFC3339))
	}
	return nil
}

// humanSize renders a byte count the way the status listing wants it.
func humanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGT"[exp])
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	ConfigPath string
	// Ledger also removes the download history.
	Ledger bool
}

// Clean removes leftover partial download files from the artifact
// directories. Finished artifacts stay; the ledger goes only on request.
func (a *App) Clean(opts CleanOptions) error {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	removed := 0
	for _, dir := range cfg.ArtifactDirs() {
		for _, pattern := range []string{"*.part", "*.ytdl"} {
			matches, _ := filepath.Glob(filepath.Join(dir, pattern))
			for _, m := range matches {
				if err := os.Remove(m); err != nil {
					return zerr.With(zerr.Wrap(err, "failed to remove partial file"), "file", m)
				}
				removed++
			}
		}
	}
	fmt.Fprintf(a.stdout, "removed %d partial files\n", removed)

	if opts.Ledger {
		if err := os.Remove(cfg.LedgerPath()); err != nil && !os.IsNotExist(err) {
			return zerr.Wrap(err, "failed to remove ledger")
		}
		fmt.Fprintln(a.stdout, "removed ledger")
	}

	return ensureLayout(cfg)
}

// Watch monitors the input directory and re-runs the batch whenever a list
// file's content actually changes. It blocks until the context ends.
func (a *App) Watch(ctx context.Context, kind domain.DownloadKind, opts RunOptions) error {
	// Watch mode cannot prompt per change.
	opts.NoConfirm = true

	if _, err := a.setup(ctx, opts, kind); err != nil {
		return err
	}

	dir := opts.WatchDir
	if dir == "" {
		dir = domain.InputDirName
	}

	w, err := watcher.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, "failed to create watcher")
	}
	defer func() { _ = w.Stop() }()

	if err := w.Start(ctx, dir); err != nil {
		return zerr.Wrap(err, "failed to watch input directory")
	}

	filter := watcher.NewChangeFilter()
	debouncer := watcher.NewDebouncer(debounceWindow, func(paths []string) {
		for _, path := range paths {
			if !filter.Changed(path) {
				continue
			}
			a.runList(ctx, path, kind, opts)
		}
	})

	a.logger.Info(fmt.Sprintf("watching %s for list changes", dir))

	for event := range w.Events() {
		debouncer.Add(event.Path)
	}
	debouncer.Flush()

	if ctx.Err() != nil && !errors.Is(ctx.Err(), context.Canceled) {
		return ctx.Err()
	}
	return nil
}

// Menu runs the interactive picker over input/ and then the chosen batch.
func (a *App) Menu(ctx context.Context, opts RunOptions) error {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	if err := ensureLayout(cfg); err != nil {
		return err
	}

	files, err := menu.ListFiles(domain.InputDirName)
	if err != nil {
		return err
	}

	selection, err := menu.Show(ctx, a.stdin, a.stdout, files)
	if err != nil {
		return err
	}
	if !selection.Confirmed {
		return domain.ErrRunAborted
	}

	// The picker already confirmed the choice.
	opts.NoConfirm = true
	return a.Run(ctx, selection.File, selection.Kind, opts)
}

func (a *App) runList(ctx context.Context, path string, kind domain.DownloadKind, opts RunOptions) {
	tasks, err := a.parser.ParseFile(path)
	if err != nil {
		a.logger.Error(err)
		return
	}
	if len(tasks) == 0 {
		a.logger.Warn(fmt.Sprintf("%s contains no valid recording URLs", path))
		return
	}

	if err := a.RunTasks(ctx, tasks, kind, opts); err != nil {
		a.logger.Error(err)
	}
}
