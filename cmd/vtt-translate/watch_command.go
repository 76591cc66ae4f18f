package main

import (
	"fmt"
	"io"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/subtran/vtt-translate/internal/config"
	"github.com/subtran/vtt-translate/internal/gemini"
	"github.com/subtran/vtt-translate/internal/service"
	"github.com/subtran/vtt-translate/internal/translator"
	"github.com/subtran/vtt-translate/pkg/icron"
	"github.com/subtran/vtt-translate/pkg/log"
)

func newWatchCommand() *cobra.Command {
	var cronExpr string
	var once bool

	cmd := &cobra.Command{
		Use:   "watch [dir...]",
		Short: "Scan directories on a schedule and translate new English VTT files",
		Long: "Watch periodically scans the given directories (or WATCH_DIRS) for\n" +
			"*-en.vtt files without a -ko.vtt counterpart and translates them.",
		RunE: func(cmd *cobra.Command, args []string) error {
			config.LoadUserEnv()
			cfg, err := config.NewFromEnv()
			if err != nil {
				return err
			}
			if len(args) > 0 {
				cfg.Watch.Dirs = args
			}
			if cronExpr != "" {
				cfg.Watch.CronExpr = cronExpr
			}
			if len(cfg.Watch.Dirs) == 0 {
				return fmt.Errorf("no directories to watch; pass them as arguments or set WATCH_DIRS")
			}

			log.InitLogger(log.ParseLevel(cfg.LogLevel))

			client, err := gemini.NewClient(&cfg.Gemini)
			if err != nil {
				return err
			}

			// Non-interactive mode: batch progress goes to the log, not
			// a spinner.
			pipeline := service.NewPipeline(client.GenerateContent,
				service.WithBatchSize(cfg.Translate.BatchSize),
				service.WithProgress(translator.NoProgress),
				service.WithOutput(io.Discard),
			)

			c := cron.New()
			svc := service.NewWatchService(*cfg, c, pipeline)

			if once {
				svc.RunOnce(cmd.Context())
				return nil
			}

			info, err := icron.GetTriggerInfo(cfg.Watch.CronExpr, time.Now())
			if err != nil {
				return err
			}
			log.Info("Watching %d directories; next run at %s (in %s)",
				len(cfg.Watch.Dirs),
				info.Next.Format(time.RFC3339),
				info.TimeUntilNext.Round(time.Second))

			if err := svc.Schedule(cmd.Context()); err != nil {
				return err
			}
			c.Run()
			return nil
		},
	}

	cmd.Flags().StringVar(&cronExpr, "cron", "", "Cron expression for scan schedule (default: WATCH_CRON or @hourly)")
	cmd.Flags().BoolVar(&once, "once", false, "Scan once and exit instead of running on a schedule")

	return cmd
}
