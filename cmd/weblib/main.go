package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/weblib-dev/weblib/internal/config"
	"github.com/weblib-dev/weblib/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// flagKeys maps configuration keys to the flags that override them.
var flagKeys = map[string]string{
	"addr":             "addr",
	"framework":        "framework",
	"lang":             "lang",
	"log.level":        "log-level",
	"log.format":       "log-format",
	"export.dir":       "out",
	"export.s3.bucket": "s3-bucket",
	"export.s3.prefix": "s3-prefix",
	"export.s3.region": "s3-region",
}

// cli is the state shared by all commands.
type cli struct {
	v       *viper.Viper
	cfgPath string
	cfg     *config.Config
	logger  *slog.Logger
	stdout  io.Writer
	stderr  io.Writer
}

func main() {
	c := &cli{stdout: os.Stdout, stderr: os.Stderr}
	if err := c.rootCmd().Execute(); err != nil {
		errors.PrintError(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "weblib",
		Short: "Server-rendered HTML with typed components",
		Long: `weblib builds HTML pages from element trees and components.

It serves the demo shop, exports it as static files to a directory
or an S3 bucket, and renders single pages for inspection.

Configuration is read from weblib.yaml, WEBLIB_* environment
variables and flags, in increasing order of precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.load(cmd)
		},
	}
	root.SetOut(c.stdout)
	root.SetErr(c.stderr)

	pf := root.PersistentFlags()
	pf.StringVarP(&c.cfgPath, "config", "c", "", "config file (default ./weblib.yaml when present)")
	pf.String("log-level", "", "log level: debug, info, warn or error")
	pf.String("log-format", "", "log format: text or json")
	pf.String("framework", "", "CSS framework: bootstrap, bulma or tailwind")
	pf.String("lang", "", "document language")

	root.AddCommand(
		c.serveCmd(),
		c.exportCmd(),
		c.renderCmd(),
		c.componentsCmd(),
		c.configCmd(),
		c.versionCmd(),
	)
	return root
}

// load resolves the configuration for cmd and installs the logger.
func (c *cli) load(cmd *cobra.Command) error {
	if cmd.Annotations["skipConfig"] == "true" {
		c.cfg = config.Default()
		c.logger = newLogger(c.stderr, c.cfg)
		return nil
	}

	c.v = config.NewViper()
	if err := config.BindFlags(c.v, cmd.Flags(), flagKeys); err != nil {
		return errors.FromError(err, "W103")
	}
	cfg, err := config.Load(c.v, c.cfgPath)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.logger = newLogger(c.stderr, cfg)
	slog.SetDefault(c.logger)
	if path := cfg.Path(); path != "" {
		c.logger.Debug("config loaded", "file", path)
	}
	return nil
}

// newLogger returns a colourised handler on terminals and JSON when
// log.format is json.
func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	level, err := cfg.SlogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	if cfg.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    !isTerminal(w),
	}))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func exitCode(err error) int {
	var ce *errors.CLIError
	if stderrors.As(err, &ce) {
		return ce.ExitCode()
	}
	return 1
}

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
)

// success prints a success message.
func (c *cli) success(format string, args ...any) {
	fmt.Fprintf(c.stdout, "%s %s\n", green("✓"), fmt.Sprintf(format, args...))
}

// info prints an indented info line.
func (c *cli) info(format string, args ...any) {
	fmt.Fprintf(c.stdout, "  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func (c *cli) warn(format string, args ...any) {
	fmt.Fprintf(c.stderr, "%s %s\n", yellow("⚠"), fmt.Sprintf(format, args...))
}
