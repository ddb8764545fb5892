package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/pixterm/config"
	"github.com/lixenwraith/pixterm/terminal"
)

// app carries flag values and the resolved configuration to subcommands
type app struct {
	cfgFile string
	color   string
	debug   bool

	cfg     *config.Config
	logFile *os.File
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:               "pixterm",
		Short:             "Terminal rendering and input engine demos",
		Version:           version,
		SilenceUsage:      true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: a.load,
	}
	bindFlags(root.PersistentFlags(), a)

	root.AddCommand(
		newDemoCmd(a),
		newPaletteCmd(a),
		newPromptCmd(a),
		newVersionCmd(),
	)
	return root
}

func bindFlags(fs *pflag.FlagSet, a *app) {
	fs.StringVarP(&a.cfgFile, "config", "c", "", "configuration file (yaml)")
	fs.StringVar(&a.color, "color", config.ColorAuto, "color mode: auto, truecolor, 256")
	fs.BoolVar(&a.debug, "debug", false, "write a debug log under the log directory")
}

// load resolves defaults < file < env < flags and starts logging
func (a *app) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}

	fs := cmd.Root().PersistentFlags()
	if fs.Changed("color") {
		cfg.ColorMode = a.color
	}
	if fs.Changed("debug") {
		cfg.Debug = a.debug
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	logDir = cfg.LogDir
	a.logFile = setupLogging(cfg.Debug)
	log.Printf("pixterm %s starting (color=%s fps=%d)", version, cfg.ColorMode, cfg.FPS)
	return nil
}

func (a *app) close() {
	if a.logFile != nil {
		a.logFile.Close()
		a.logFile = nil
	}
}

// consoleOptions maps the configuration onto terminal options
func (a *app) consoleOptions() []terminal.Option {
	return []terminal.Option{
		terminal.WithColorMode(a.cfg.TerminalColorMode()),
		terminal.WithMouse(a.cfg.Mouse),
		terminal.WithSignals(a.cfg.Signals),
		terminal.WithLogger(log.Default()),
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pixterm %s\n", version)
		},
	}
}
