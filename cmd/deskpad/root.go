// Package main runs the DeskPad server, agent and settings tools.
package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const version = "dev"

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	var debug bool
	root := &cobra.Command{
		Use:   "deskpad",
		Short: "Use a phone as a touchpad for a desktop",
		Long:  `DeskPad turns touch, gesture and gyroscope input from a phone into pointer commands for this or another machine.`,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			configureLogging(debug)
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose debug logging")

	root.AddCommand(newServeCmd(), newAgentCmd(), newSettingsCmd())
	return root
}

// configureLogging sets the logrus level and format.
func configureLogging(debug bool) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if debug {
		log.SetLevel(log.DebugLevel)
		log.Debug("debug: enabled")
		return
	}
	log.SetLevel(log.InfoLevel)
}
