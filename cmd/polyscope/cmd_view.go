package main

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"polyscope/internal/tui"
)

type CmdView struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("view",
		"Open the interactive viewer",
		"Open the interactive polygon viewer\n\nLoads path when given, otherwise starts with the file sidebar.",
		&CmdView{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdView) Usage() string {
	return "[path]"
}

func (cmd CmdView) Execute(args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("too many arguments, usage: %s", cmd.Usage())
	}

	// The screen belongs to the viewer, so logs without a file are dropped.
	cfg, logger, closeLog, err := cmd.global.Setup(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	opts := tui.Options{
		ZoomStep:     cfg.View.ZoomStep,
		SidebarWidth: cfg.View.SidebarWidth,
		Sort:         cfg.View.Sort,
		Precision:    cfg.Query.Precision,
		Log:          logger,
	}
	var m tea.Model
	if len(args) == 1 {
		m = tui.NewWithPath(args[0], opts)
	} else {
		m = tui.New(opts)
	}
	logger.Info("viewer started", "args", args)
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	return nil
}
