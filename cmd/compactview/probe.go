package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Dicklesworthstone/compactview/pkg/viewport"
)

// report is the JSON shape printed by probe and watch.
type report struct {
	Compact     bool   `json:"compact"`
	HasViewport bool   `json:"has_viewport"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Threshold   int    `json:"threshold"`
	Mode        string `json:"mode"`
}

func newReport(c *viewport.Classifier) report {
	s, ok := c.Snapshot()
	return report{
		Compact:     c.Compact(),
		HasViewport: ok,
		Width:       s.Width,
		Height:      s.Height,
		Threshold:   c.Threshold(),
		Mode:        c.Mode().String(),
	}
}

func (r report) text() string {
	if !r.HasViewport {
		return fmt.Sprintf("compact=%t viewport=none", r.Compact)
	}
	return fmt.Sprintf("compact=%t width=%d height=%d", r.Compact, r.Width, r.Height)
}

func newProbeCmd(e env, opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Print the current classification and exit",
		Long: `Print "true" when the terminal is compact and "false" otherwise. Without a
terminal (output piped or redirected) the answer is "false".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			logger, err := newLogger(cfg.LogLevel, e.errOut)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			c := viewport.New(e.host(), append(cfg.Options(), viewport.WithLogger(logger))...)
			defer c.Close()

			if asJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(newReport(c))
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), c.Compact())
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print a JSON report")
	return cmd
}
