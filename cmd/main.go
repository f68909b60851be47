// Package main implements the typedpath CLI.
package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/adrg/xdg"
	typedpath "github.com/chipsenkbeil/typed-path"
	pathtool "github.com/chipsenkbeil/typed-path/internal"
	"github.com/chipsenkbeil/typed-path/internal/except"
	"github.com/spf13/cobra"
)

func init() {
	var errs []error

	fp, ok := os.LookupEnv("LOGS_DIRECTORY")
	if !ok {
		var err error
		fp, err = xdg.StateFile("typedpath/log")
		if err != nil {
			errs = append(errs, err)
			fp = "typedpath.log"
		}
	}

	var writer io.Writer
	if file, err := os.OpenFile(fp, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
		writer = file
	} else {
		errs = append(errs, err)
		writer = os.Stdout
	}

	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: slog.LevelDebug})
	slog.SetDefault(slog.New(handler))
	if len(errs) > 0 {
		slog.Error("Log setup failed.", except.LogErrAttr(errors.Join(errs...)))
	}
}

var (
	configPath string
	encoding   string
)

func main() {
	ctx := context.Background()

	componentsCmd := &cobra.Command{
		Use:   "components PATH",
		Short: "List the components of a path",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			tool, err := newTool()
			if err != nil {
				return err
			}
			return tool.Components(args[0])
		},
	}

	infoCmd := &cobra.Command{
		Use:   "info PATH",
		Short: "Show the properties of a path",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			tool, err := newTool()
			if err != nil {
				return err
			}
			return tool.Info(args[0])
		},
	}

	normalizeCmd := &cobra.Command{
		Use:   "normalize PATH",
		Short: "Resolve . and .. components lexically",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			tool, err := newTool()
			if err != nil {
				return err
			}
			return tool.Normalize(args[0])
		},
	}

	var unchecked bool
	joinCmd := &cobra.Command{
		Use:   "join BASE FRAGMENT...",
		Short: "Append fragments to a base path",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			tool, err := newTool()
			if err != nil {
				return err
			}
			return tool.Join(args[0], args[1:], unchecked)
		},
	}
	joinCmd.Flags().BoolVar(&unchecked, "unchecked", false, "allow fragments to replace or escape the base")

	var cwd string
	absolutizeCmd := &cobra.Command{
		Use:   "absolutize PATH",
		Short: "Resolve a path against a current directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			tool, err := newTool()
			if err != nil {
				return err
			}
			return tool.Absolutize(args[0], cwd)
		},
	}
	absolutizeCmd.Flags().StringVar(&cwd, "cwd", "", "current directory, defaults to the working directory")

	var to string
	var checked bool
	convertCmd := &cobra.Command{
		Use:   "convert PATH",
		Short: "Convert a path to another encoding",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			kind, err := typedpath.EncodingKindString(to)
			if err != nil {
				return err
			}
			tool, err := newTool()
			if err != nil {
				return err
			}
			return tool.Convert(args[0], kind, checked)
		},
	}
	convertCmd.Flags().StringVar(&to, "to", "", "target encoding (unix or windows)")
	convertCmd.Flags().BoolVar(&checked, "checked", false, "fail on components invalid in the target encoding")
	except.Require(convertCmd.MarkFlagRequired("to"))

	var skip []string
	auditCmd := &cobra.Command{
		Use:   "audit BASE",
		Short: "Check entry names read from stdin against a base directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tool, err := newTool()
			if err != nil {
				return err
			}
			return tool.Audit(args[0], cmd.InOrStdin(), skip)
		},
	}
	auditCmd.Flags().StringArrayVar(&skip, "skip", nil, "glob pattern of entry names to ignore")

	rootCmd := &cobra.Command{Use: "typedpath", SilenceUsage: true}
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to configuration")
	rootCmd.PersistentFlags().StringVarP(&encoding, "encoding", "e", "", "path encoding, overrides the configuration")
	rootCmd.AddCommand(componentsCmd, infoCmd, normalizeCmd, joinCmd, absolutizeCmd, convertCmd, auditCmd)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newTool() (*pathtool.Tool, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if encoding != "" {
		cfg.Encoding = encoding
	}
	return pathtool.NewTool(cfg, os.Stdout)
}

func loadConfig() (*pathtool.Config, error) {
	if configPath != "" {
		return pathtool.ReadConfig(configPath)
	}
	return pathtool.FindConfig(".")
}
