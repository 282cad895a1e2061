// Command tilewm is a dynamic tiling window manager for X11: a master/
// stack layout engine with four selectable modes, desktop-scoped client
// lists, and a compile-time key/button binding table.
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tilewm/tilewm/internal/config"
	"github.com/tilewm/tilewm/internal/wm"
	"github.com/tilewm/tilewm/internal/xdisplay"
)

const version = "1.0.0"

func main() {
	logger := log.New()
	logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	rootCmd := &cobra.Command{
		Use:     "tilewm",
		Short:   "A dynamic tiling window manager",
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(logger)
		},
	}
	rootCmd.SetVersionTemplate(fmt.Sprintf("tilewm version %s\n", version))

	if err := rootCmd.Execute(); err != nil {
		logger.WithError(err).Fatal("tilewm exited")
	}
}

func run(logger *log.Logger) error {
	x, err := xdisplay.Open()
	if err != nil {
		return err
	}
	defer x.Close()
	x.SetColors(config.FocusColor, config.UnfocusColor)

	wm.StartReaper(logger)

	engine := wm.New(x, logger)
	code := engine.Run()
	os.Exit(code)
	return nil
}
