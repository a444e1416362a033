// Package main runs the DeskPad server, agent and settings tools.
package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/frudas24/deskpad/internal/config"
	"github.com/frudas24/deskpad/internal/prefs"
	"github.com/frudas24/deskpad/internal/settings"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// newSettingsCmd builds the settings command group.
func newSettingsCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect or change the pipeline settings file",
	}
	cmd.PersistentFlags().StringVar(&path, "file", "", "settings file (defaults to SETTINGS_PATH)")

	show := &cobra.Command{
		Use:   "show",
		Short: "Print stored settings and the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openSettings(path)
			if err != nil {
				return err
			}
			return printSettings(cmd.OutOrStdout(), store)
		},
	}

	set := &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Store one setting; an empty VALUE removes it",
		Long:  "Store one setting; an empty VALUE removes it. Values of known keys are checked before anything is written.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := prefs.Validate(args[0], args[1]); err != nil {
				return err
			}
			if !slices.Contains(prefs.Keys(), args[0]) {
				log.Warnf("settings: %q is not a known key", args[0])
			}
			store, err := openSettings(path)
			if err != nil {
				return err
			}
			if err := store.Set(args[0], args[1]); err != nil {
				return err
			}
			return printSettings(cmd.OutOrStdout(), store)
		},
	}

	cmd.AddCommand(show, set)
	return cmd
}

// openSettings opens path, or SETTINGS_PATH from the environment when empty.
func openSettings(path string) (*settings.Store, error) {
	if path == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		path = cfg.SettingsPath
	}
	return settings.Open(path)
}

// printSettings writes the stored values followed by the effective configuration.
func printSettings(w io.Writer, store *settings.Store) error {
	snap := store.Snapshot()
	if _, err := fmt.Fprintf(w, "# %s\n", store.Path()); err != nil {
		return err
	}
	for _, key := range snap.Keys() {
		value, _ := snap.Lookup(key)
		if _, err := fmt.Fprintf(w, "%s = %s\n", key, value); err != nil {
			return err
		}
	}
	cfg := prefs.Build(snap)
	_, err := fmt.Fprintf(w, "\nsensitivity=%s (%.1f) profile=%s scroll=%d%% inverted=%t gyro=%t@%d%% taps=%s/%s/%s buttons=%t\n",
		cfg.SensitivityName, cfg.Sensitivity, cfg.AccelerationProfile, cfg.ScrollSensitivity, cfg.ScrollInverted,
		cfg.GyroEnabled, cfg.GyroSensitivity, cfg.SingleTap, cfg.DoubleTap, cfg.TripleTap, cfg.MouseButtons)
	return err
}
