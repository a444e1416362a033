// Package main runs the DeskPad server, agent and settings tools.
package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/frudas24/deskpad/internal/config"
	"github.com/frudas24/deskpad/internal/remote"
	"github.com/frudas24/deskpad/internal/wininput"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// agentPath is where the agent accepts relay connections.
const agentPath = "/agent"

// newAgentCmd builds the agent command.
func newAgentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "agent",
		Short: "Apply pointer commands relayed from a deskpad server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAgent(cmd.Context())
		},
	}
}

// runAgent serves the relay endpoint on AGENT_ADDR.
func runAgent(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	injector, err := wininput.NewInjector()
	if err != nil {
		return fmt.Errorf("agent needs a local injector: %w", err)
	}

	token := cfg.UIPassword
	if cfg.PasswordMode == config.PasswordNone {
		token = ""
	}
	mux := http.NewServeMux()
	mux.Handle(agentPath, remote.NewAgent(remote.NewInjectorSink(injector), token))
	log.Printf("agent listening on ws://%s%s", cfg.AgentAddr, agentPath)
	return listenUntilDone(ctx, &http.Server{Addr: cfg.AgentAddr, Handler: mux})
}
