package service

import (
	"context"
	"errors"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/singleflight"

	"github.com/subtran/vtt-translate/internal/config"
	"github.com/subtran/vtt-translate/internal/library"
	"github.com/subtran/vtt-translate/pkg/log"
)

// WatchService periodically scans configured directories for English
// WebVTT files that have no Korean counterpart yet and translates them.
type WatchService struct {
	cfg      config.Config
	cron     *cron.Cron
	pipeline *Pipeline
}

// NewWatchService creates a watch service driving the given pipeline
func NewWatchService(
	cfg config.Config,
	cron *cron.Cron,
	pipeline *Pipeline,
) WatchService {
	return WatchService{
		cfg:      cfg,
		cron:     cron,
		pipeline: pipeline,
	}
}

var singleflightGroup singleflight.Group

// Schedule registers the scan on the service's cron expression.
// Overlapping triggers collapse into a single run.
func (s WatchService) Schedule(
	ctx context.Context,
) error {
	log.Info("Scheduling watch runs: %s", s.cfg.Watch.CronExpr)

	runFunc := func() {
		_, _, _ = singleflightGroup.Do("run", func() (any, error) {
			s.RunOnce(ctx)
			return nil, nil
		})
	}
	_, err := s.cron.AddFunc(s.cfg.Watch.CronExpr, runFunc)
	return err
}

// RunOnce scans every configured directory once. Per-file failures are
// logged and do not stop the scan.
func (s WatchService) RunOnce(ctx context.Context) {
	for _, dir := range s.cfg.Watch.Dirs {
		log.Info("Scanning %s", dir)
		if err := s.run(ctx, dir); err != nil {
			log.Error("Failed to scan dir %s: %v", dir, err)
		}
	}
}

func (s WatchService) run(
	ctx context.Context,
	dir string,
) error {
	pending, err := library.FindUntranslated(dir)
	if err != nil {
		return err
	}
	log.Info("Found %d untranslated files in %s", len(pending), dir)

	for _, path := range pending {
		result, err := s.pipeline.Run(ctx, path)
		if errors.Is(err, ErrNoCues) {
			log.Warn("Skipping %s: no subtitles found", path)
			continue
		}
		if err != nil {
			log.Error("Failed to translate %s: %v", path, err)
			continue
		}
		log.Info("Translated %s: %d cues, %d failed batches",
			path, result.CueCount, result.FailedBatches())
	}

	return nil
}
