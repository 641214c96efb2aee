package cli

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/viper"

	"go-toolfx/internal/core/command"
	"go-toolfx/internal/core/config"
	"go-toolfx/internal/core/utils"
	fynegui "go-toolfx/internal/fyne-gui"
	"go-toolfx/internal/fyne-gui/desktop"
)

const envPrefix = "TOOLFX"

//go:embed tool.properties
var toolProperties []byte

// Execute runs the inspector tool with the process arguments and exits
// non-zero on failure.
func Execute() {
	if err := Run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !utils.IsReported(err) {
			color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// Run parses args and, unless help or version was requested, opens the
// inspector window on the native desktop driver.
func Run(args []string, out, errOut io.Writer) error {
	return run(args, out, errOut, desktop.Driver)
}

func run(args []string, out, errOut io.Writer, driver fynegui.Driver) error {
	v := viper.New()
	cfg, err := initConfig(v)
	if err != nil {
		return err
	}

	logger := utils.NewLoggerTo(errOut, cfg.Logging.Level, cfg.Logging.Format).WithTool("toolfx-inspect")
	if configFile := v.ConfigFileUsed(); configFile != "" {
		logger.Debug("Using config file", "path", configFile)
	}

	base := command.NewToolExecutor(
		command.WithLogger(logger),
		command.WithOutput(out, errOut),
		command.WithMetadata(command.EmbeddedMetadata(toolProperties)),
	)

	opts := []fynegui.LauncherOption{fynegui.WithLauncherLogger(logger)}
	if cfg.Launch.Spinner {
		opts = append(opts, fynegui.WithProgress(func(message string) (fynegui.Progress, error) {
			spinner, err := utils.NewSpinnerTo(errOut, message)
			if err != nil {
				return nil, err
			}
			return spinner, nil
		}))
	}

	launcher := fynegui.NewLauncher(driver, cfg.Launch, opts...)
	return fynegui.NewExecutor(base, launcher).InvokeAsFyne(NewInspectApplication, NewInspectCommand, args)
}

// initConfig reads defaults, the optional config file and TOOLFX_* variables.
// The file is $TOOLFX_CONFIG when set, else config.yaml in ~/.go-toolfx or
// the working directory.
func initConfig(v *viper.Viper) (*config.Config, error) {
	config.SetDefaults(v)

	cfgFile := os.Getenv(envPrefix + "_CONFIG")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home + "/.go-toolfx")
		}
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read configuration: %w", err)
		}
	}

	cfg, err := config.Load(v)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
