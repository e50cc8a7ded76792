package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/rhyrak/exam-registry/internal/config"
	"github.com/rhyrak/exam-registry/internal/console"
	"github.com/rhyrak/exam-registry/internal/csvio"
	"github.com/rhyrak/exam-registry/internal/logger"
	"github.com/rhyrak/exam-registry/internal/registry"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run drives one session and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("examreg", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "", "path to a config file (yaml, json or toml)")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "load config: %v\n", err)
		return 1
	}

	log, err := logger.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(stderr, "init logger: %v\n", err)
		return 1
	}
	defer log.Sync()

	store := registry.NewStore(log.Named("registry"))
	ctl := console.NewController(store, stdin, stdout, log.Named("console"))
	code := 0
	if err := ctl.Run(); err != nil {
		log.Error("console stopped", zap.Error(err))
		code = 1
	}

	if cfg.Export.File == "" {
		return code
	}
	outPath, err := csvio.ExportReservations(cfg.Export.File, store.All(), cfg.Export.Comma())
	if err != nil {
		log.Error("export failed", zap.String("path", cfg.Export.File), zap.Error(err))
		return 1
	}
	log.Info("reservations exported", zap.String("path", outPath), zap.Int("count", store.Len()))
	return code
}
