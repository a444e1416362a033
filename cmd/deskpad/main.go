// Package main runs the DeskPad server, agent and settings tools.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// main is the entrypoint for the deskpad command.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Errorf("fatal: %v", err)
		os.Exit(1)
	}
}
