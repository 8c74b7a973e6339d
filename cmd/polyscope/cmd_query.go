package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"polyscope/internal/geom"
	"polyscope/internal/query"
)

type CmdQuery struct {
	global *GlobalOptions

	File string `short:"f" long:"file" description:"Polygon file (.txt .poly .wkt .geojson .json .csv .kml)" required:"true"`
}

func init() {
	_, err := parser.AddCommand("query",
		"Run commands against a polygon file",
		"Load polygons from a file, then execute one command per stdin line\n\n"+
			"Commands: AREA, MAX, MIN, COUNT, RMECHO, INFRAME",
		&CmdQuery{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdQuery) Usage() string {
	return "-f file < commands"
}

func (cmd CmdQuery) Execute(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("unexpected arguments, usage: %s", cmd.Usage())
	}

	cfg, logger, closeLog, err := cmd.global.Setup(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	// An empty file is a valid, empty set for the command loop.
	d, err := geom.Load(cmd.File)
	if err != nil && !errors.Is(err, geom.ErrNoPolygons) {
		return err
	}
	logger.Info("polygons loaded", "path", cmd.File, "polygons", len(d.Polygons), "skipped", d.Skipped)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	p := query.New(d.Polygons, query.WithPrecision(cfg.Query.Precision), query.WithLogger(logger))
	return p.Run(ctx, os.Stdin, os.Stdout)
}
