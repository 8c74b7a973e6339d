package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/jessevdk/go-flags"

	"polyscope/internal/config"
	"polyscope/internal/logging"
)

type GlobalOptions struct {
	Config string `short:"c" long:"config" description:"Config file path (default: polyscope.yaml in . or ./configs)"`
}

var globalOpts = GlobalOptions{}
var parser = flags.NewParser(&globalOpts, flags.HelpFlag|flags.PassDoubleDash)

func main() {
	if err := run(); err != nil {
		log.Fatal(err.Error())
	}
}

func run() error {
	_, err := parser.Parse()
	var fe *flags.Error
	if errors.As(err, &fe) && fe.Type == flags.ErrHelp {
		parser.WriteHelp(os.Stdout)
		return nil
	}
	return err
}

// Setup loads the configuration, then points the default
// logger at log.file, or at fallback when no file is configured.
func (g *GlobalOptions) Setup(fallback io.Writer) (*config.Config, *slog.Logger, func() error, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, nil, nil, err
	}
	w, closeLog, err := logging.Open(cfg.Log.File, fallback)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open log: %w", err)
	}
	logger := logging.Setup(cfg.Log.Level, cfg.Log.Format, w)
	return cfg, logger, closeLog, nil
}
