/*
 * root.go, part of gosymm.
 *
 * Copyright 2024 The gosymm authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

/*Package cli implements the gosymm command line: reading a geometry, getting its
principal axes and searching its point group, or examining single axes.*/
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bskinn/opan-sub001/internal/config"
	"github.com/bskinn/opan-sub001/internal/logging"
)

//Version is set at build time with -ldflags.
var Version = "dev"

type cliContextKey struct{}

//RootOptions holds the global flags.
type RootOptions struct {
	ConfigPath   string
	LogLevel     string
	LogFormat    string
	OutputFormat string
}

//CLIContext carries what every subcommand needs. It is built once, before the
//subcommand runs.
type CLIContext struct {
	Config       *config.Config
	Logger       logging.Logger
	OutputFormat string
}

//NewRootCommand returns the gosymm command with all its subcommands.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	cmd := &cobra.Command{
		Use:   "gosymm",
		Short: "Molecular point group symmetry",
		Long: "gosymm reads XYZ geometries, finds their principal axes of inertia and\n" +
			"searches their point group by comparing the geometry with its images under\n" +
			"trial rotations and reflections.",
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return persistentPreRun(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "YAML configuration file (default: defaults plus GOSYMM_* variables)")
	pf.StringVar(&opts.LogLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	pf.StringVar(&opts.LogFormat, "log-format", config.DefaultLogFormat, "log format (console, json)")
	pf.StringVarP(&opts.OutputFormat, "output", "o", "text", "output format (text, json)")

	cmd.AddCommand(newGroupCmd(), newAxisCmd(), newPrincipalsCmd(), newScanCmd())
	return cmd
}

func persistentPreRun(cmd *cobra.Command, opts *RootOptions) error {
	cfg, err := initConfig(opts)
	if err != nil {
		return err
	}
	//Flags given explicitly win over the file and the environment.
	if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
		cfg.Log.Level = opts.LogLevel
	}
	if f := cmd.Flags().Lookup("log-format"); f != nil && f.Changed {
		cfg.Log.Format = opts.LogFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	switch strings.ToLower(opts.OutputFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("unknown output format %q, use text or json", opts.OutputFormat)
	}
	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	cctx := &CLIContext{
		Config:       cfg,
		Logger:       logger.Named("gosymm"),
		OutputFormat: strings.ToLower(opts.OutputFormat),
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, cliContextKey{}, cctx))
	return nil
}

func initConfig(opts *RootOptions) (*config.Config, error) {
	if opts.ConfigPath != "" {
		return config.Load(opts.ConfigPath)
	}
	return config.LoadFromEnv()
}

//GetCLIContext returns the context set up for cmd before it ran.
func GetCLIContext(cmd *cobra.Command) (*CLIContext, error) {
	ctx := cmd.Context()
	if ctx == nil {
		return nil, fmt.Errorf("command %s has no context", cmd.Name())
	}
	cctx, ok := ctx.Value(cliContextKey{}).(*CLIContext)
	if !ok || cctx == nil {
		return nil, fmt.Errorf("command %s was not initialized", cmd.Name())
	}
	return cctx, nil
}

//textResult is implemented by every result the commands print.
type textResult interface {
	Text() string
}

//printResult writes res to the command's output in the selected format.
func printResult(cmd *cobra.Command, cctx *CLIContext, res textResult) error {
	if cctx.OutputFormat == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	_, err := fmt.Fprint(cmd.OutOrStdout(), res.Text())
	return err
}

//Execute runs the gosymm command with the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}
