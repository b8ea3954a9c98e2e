// Package flightrecorder captures runtime traces of slow requests. The
// recorder keeps a rolling in-memory trace buffer and dumps it to disk the
// moment a request times out, so the trace covers the work leading up to
// the stall.
package flightrecorder

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/trace"
	"sync/atomic"
	"time"

	"github.com/jsalmi/liftline/internal/errors"
)

const (
	defaultMinAge   = 5 * time.Minute
	defaultMaxBytes = 64 * 1024 * 1024

	// captureCooldown throttles dumps so a storm of timeouts cannot fill the disk.
	captureCooldown = 30 * time.Minute
)

// Service owns the rolling trace buffer and writes timeout captures to disk.
type Service struct {
	logger      *slog.Logger
	recorder    *trace.FlightRecorder
	tracesDir   string
	lastCapture atomic.Int64
}

// Config configures the flight recorder service. MinAge and MaxBytes fall
// back to sensible defaults when zero.
type Config struct {
	Logger          *slog.Logger
	MinAge          time.Duration
	MaxBytes        uint64
	TracesDirectory string
}

// New creates the service and ensures the traces directory exists.
func New(cfg Config) (*Service, error) {
	if cfg.Logger == nil {
		return nil, errors.New("logger is required")
	}
	if cfg.TracesDirectory == "" {
		return nil, errors.New("traces directory is required")
	}

	if stat, err := os.Stat(cfg.TracesDirectory); err != nil {
		if err = os.MkdirAll(cfg.TracesDirectory, 0o700); err != nil {
			return nil, errors.Wrap(err, "create traces directory")
		}
	} else if !stat.IsDir() {
		return nil, fmt.Errorf("traces path is not a directory: %s", cfg.TracesDirectory)
	}

	minAge := cfg.MinAge
	if minAge == 0 {
		minAge = defaultMinAge
	}
	maxBytes := cfg.MaxBytes
	if maxBytes == 0 {
		maxBytes = defaultMaxBytes
	}

	recorder := trace.NewFlightRecorder(trace.FlightRecorderConfig{
		MinAge:   minAge,
		MaxBytes: maxBytes,
	})
	if recorder == nil {
		return nil, errors.New("create flight recorder")
	}

	return &Service{
		logger:    cfg.Logger,
		recorder:  recorder,
		tracesDir: cfg.TracesDirectory,
	}, nil
}

// Start begins buffering trace events.
func (s *Service) Start(ctx context.Context) error {
	if err := s.recorder.Start(); err != nil {
		return errors.Wrap(err, "start flight recorder")
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "flight recorder started",
		slog.String("traces_dir", s.tracesDir))
	return nil
}

// Stop ends trace buffering.
func (s *Service) Stop(ctx context.Context) {
	s.recorder.Stop()
	s.logger.LogAttrs(ctx, slog.LevelInfo, "flight recorder stopped")
}

// CaptureTimeoutTrace dumps the trace buffer to a timestamped file. Calls
// inside the cooldown window are dropped.
func (s *Service) CaptureTimeoutTrace(ctx context.Context) {
	now := time.Now().Unix()
	last := s.lastCapture.Load()
	if last > 0 && time.Duration(now-last)*time.Second < captureCooldown {
		s.logger.LogAttrs(ctx, slog.LevelDebug, "trace capture skipped during cooldown",
			slog.Time("last_capture", time.Unix(last, 0)))
		return
	}
	if !s.lastCapture.CompareAndSwap(last, now) {
		// Lost the race to a concurrent capture.
		return
	}

	name := fmt.Sprintf("timeout-%s.trace", time.Unix(now, 0).UTC().Format("20060102-150405"))
	path := filepath.Join(s.tracesDir, name)

	file, err := os.Create(path)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelError, "create trace file",
			slog.String("file", path), errors.SlogError(err))
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			s.logger.LogAttrs(ctx, slog.LevelError, "close trace file",
				slog.String("file", path), errors.SlogError(closeErr))
		}
	}()

	written, err := s.recorder.WriteTo(file)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelError, "write trace file",
			slog.String("file", path), errors.SlogError(err))
		return
	}

	s.logger.LogAttrs(ctx, slog.LevelWarn, "captured timeout trace",
		slog.String("file", path), slog.Int64("bytes", written))
}
