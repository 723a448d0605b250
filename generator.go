package entrygen

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// cancelCheckEvery is how many entries are written between context checks.
const cancelCheckEvery = 4096

// Generator produces an output file of repeated entries.
type Generator interface {
	Generate(ctx context.Context, opts ...RunOption) (Result, error)
}

// Result summarizes a completed generation run.
type Result struct {
	Path     string        `json:"path"`
	Entries  int           `json:"entries"`
	Bytes    int64         `json:"bytes"`
	Duration time.Duration `json:"duration"`
}

// NewGenerator constructs a file generator for the given config.
func NewGenerator(cfg Config) (*FileGenerator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &FileGenerator{cfg: cfg}, nil
}

// FileGenerator writes entries to the configured output path,
// truncating any existing file.
type FileGenerator struct {
	cfg Config
}

// Config returns the config the generator was built with.
func (g *FileGenerator) Config() Config {
	return g.cfg
}

func (g *FileGenerator) Generate(ctx context.Context, opts ...RunOption) (Result, error) {
	runOpts, err := resolveRunOptions(opts)
	if err != nil {
		return Result{}, fmt.Errorf("resolve options: %w", err)
	}

	log := runOpts.logger.With().Str("path", g.cfg.OutputPath).Logger()

	dir := filepath.Dir(g.cfg.OutputPath)
	if info, err := os.Stat(dir); err != nil {
		return Result{}, fmt.Errorf("%w: %s: %v", ErrMissingOutputDir, dir, err)
	} else if !info.IsDir() {
		return Result{}, fmt.Errorf("%w: %s is not a directory", ErrMissingOutputDir, dir)
	}

	log.Debug().
		Int("entries", g.cfg.EntryCount).
		Bool("atomic", g.cfg.Atomic).
		Msg("generating")

	start := time.Now()

	var n int64
	if g.cfg.Atomic {
		n, err = g.writeAtomic(ctx, runOpts)
	} else {
		n, err = g.writeInPlace(ctx, runOpts)
	}

	if err != nil {
		log.Error().Err(err).Msg("generation failed")

		return Result{}, err
	}

	res := Result{
		Path:     g.cfg.OutputPath,
		Entries:  g.cfg.EntryCount,
		Bytes:    n,
		Duration: time.Since(start),
	}

	log.Info().
		Int("entries", res.Entries).
		Int64("bytes", res.Bytes).
		Dur("duration", res.Duration).
		Msg("generated")

	return res, nil
}

func (g *FileGenerator) writeInPlace(ctx context.Context, runOpts RunOptions) (n int64, err error) {
	path := g.cfg.OutputPath

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, outputFilePerm)
	if err != nil {
		return 0, writeErr(path, err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = writeErr(path, cerr)
		}
	}()

	n, err = g.writeTo(ctx, f, runOpts)
	if err != nil {
		return n, writeErr(path, err)
	}

	return n, nil
}

// writeAtomic stages output in a temp file next to the target and renames
// it into place, so a failed run leaves any previous file untouched.
func (g *FileGenerator) writeAtomic(ctx context.Context, runOpts RunOptions) (int64, error) {
	path := g.cfg.OutputPath
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	f, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return 0, writeErr(path, err)
	}

	tmp := f.Name()
	committed := false

	defer func() {
		if !committed {
			_ = os.Remove(tmp)
		}
	}()

	n, err := g.writeTo(ctx, f, runOpts)
	if err != nil {
		_ = f.Close()

		return n, writeErr(path, err)
	}

	if err := f.Sync(); err != nil {
		_ = f.Close()

		return n, writeErr(path, err)
	}

	if err := f.Close(); err != nil {
		return n, writeErr(path, err)
	}

	if err := os.Chmod(tmp, outputFilePerm); err != nil {
		return n, writeErr(path, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return n, writeErr(path, err)
	}

	committed = true

	return n, nil
}

func (g *FileGenerator) writeTo(ctx context.Context, w io.Writer, runOpts RunOptions) (int64, error) {
	entry := Entry{Alpha: g.cfg.EntryValue}

	return writeEntries(ctx, w, g.cfg.EntryCount, entry, g.cfg.CanonicalEmpty, runOpts)
}

// WriteEntries writes a JSON array of n copies of entry to w.
//
// Entries are separated by ",\n", the array opens with "[\n" and closes
// with "\n]". With n == 0 this yields "[\n\n]", which is not valid JSON;
// canonicalEmpty switches that case to "[]".
func WriteEntries(ctx context.Context, w io.Writer, n int, entry Entry, canonicalEmpty bool, opts ...RunOption) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}

	runOpts, err := resolveRunOptions(opts)
	if err != nil {
		return 0, fmt.Errorf("resolve options: %w", err)
	}

	return writeEntries(ctx, w, n, entry, canonicalEmpty, runOpts)
}

func writeEntries(
	ctx context.Context,
	w io.Writer,
	n int,
	entry Entry,
	canonicalEmpty bool,
	runOpts RunOptions,
) (int64, error) {
	literal, err := entry.Literal()
	if err != nil {
		return 0, err
	}

	bw := bufio.NewWriterSize(w, runOpts.bufferSize)
	ew := &entryWriter{w: bw}

	if n == 0 && canonicalEmpty {
		ew.write(arrayEmpty)

		return ew.flush()
	}

	ew.write(arrayOpen)

	for i := 0; i < n && ew.err == nil; i++ {
		if i%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return ew.n, err
			}
		}

		ew.write(literal)

		if i < n-1 {
			ew.write(entrySeparator)
		}

		logProgress(runOpts.logger, runOpts.progressEvery, i+1, n)
	}

	ew.write(arrayClose)

	return ew.flush()
}

func logProgress(log zerolog.Logger, every, done, total int) {
	if every <= 0 || done%every != 0 {
		return
	}

	log.Debug().Int("written", done).Int("total", total).Msg("progress")
}

// entryWriter keeps the first write error so the loop stays linear.
type entryWriter struct {
	w   *bufio.Writer
	n   int64
	err error
}

func (ew *entryWriter) write(s string) {
	if ew.err != nil {
		return
	}

	written, err := ew.w.WriteString(s)
	ew.n += int64(written)
	ew.err = err
}

func (ew *entryWriter) flush() (int64, error) {
	if ew.err != nil {
		return ew.n, ew.err
	}

	if err := ew.w.Flush(); err != nil {
		return ew.n, fmt.Errorf("flush: %w", err)
	}

	return ew.n, nil
}

func writeErr(path string, err error) error {
	return fmt.Errorf("write %s: %w", path, errors.Join(ErrWrite, err))
}
