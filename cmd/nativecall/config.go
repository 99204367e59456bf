package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"
	"unicode"

	"github.com/ethereum/go-ethereum/log"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/naoina/toml"
	"github.com/urfave/cli/v2"

	"github.com/templatechain/nativecall/core/vm"
	"github.com/templatechain/nativecall/ledger"
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		var link string
		if unicode.IsUpper(rune(rt.Name()[0])) && rt.PkgPath() != "main" {
			link = fmt.Sprintf(", see https://pkg.go.dev/%s#%s for available fields", rt.PkgPath(), rt.Name())
		}
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

type logConfig struct {
	Verbosity int
	JSON      bool
}

type nativecallConfig struct {
	Precompile vm.Config
	Ledger     ledger.Config
	Log        logConfig
}

func defaultConfig() nativecallConfig {
	return nativecallConfig{
		Precompile: vm.DefaultConfig,
		Ledger:     ledger.DefaultConfig,
		Log:        logConfig{Verbosity: 3},
	}
}

func loadConfig(file string, cfg *nativecallConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// makeConfig loads the configuration file, if any, and applies command line
// flags on top of it.
func makeConfig(ctx *cli.Context) (nativecallConfig, error) {
	cfg := defaultConfig()
	if file := ctx.String(configFileFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			return cfg, err
		}
	}
	if ctx.IsSet(verbosityFlag.Name) {
		cfg.Log.Verbosity = ctx.Int(verbosityFlag.Name)
	}
	if ctx.IsSet(logJSONFlag.Name) {
		cfg.Log.JSON = ctx.Bool(logJSONFlag.Name)
	}
	if ctx.IsSet(strictPaddingFlag.Name) {
		cfg.Precompile.StrictPadding = ctx.Bool(strictPaddingFlag.Name)
	}
	if ctx.IsSet(ss58PrefixFlag.Name) {
		prefix := ctx.Uint(ss58PrefixFlag.Name)
		if prefix > uint(ledger.MaxSS58Prefix) {
			return cfg, fmt.Errorf("%w: %d", ledger.ErrSS58PrefixRange, prefix)
		}
		cfg.Ledger.SS58Prefix = uint16(prefix)
	}
	if err := cfg.Ledger.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

const configMetadataKey = "nativecall.config"

// appConfig returns the configuration assembled by the app's Before hook.
func appConfig(ctx *cli.Context) (nativecallConfig, error) {
	for _, c := range ctx.Lineage() {
		if c.App == nil {
			continue
		}
		if cfg, ok := c.App.Metadata[configMetadataKey].(nativecallConfig); ok {
			return cfg, nil
		}
	}
	return makeConfig(ctx)
}

// setupLogging installs the default logger according to cfg.
func setupLogging(cfg logConfig, output *os.File) {
	var (
		handler slog.Handler
		level   = log.FromLegacyLevel(cfg.Verbosity)
	)
	if cfg.JSON {
		handler = log.JSONHandlerWithLevel(output, level)
	} else {
		useColor := (isatty.IsTerminal(output.Fd()) || isatty.IsCygwinTerminal(output.Fd())) && os.Getenv("TERM") != "dumb"
		var w io.Writer = output
		if useColor {
			w = colorable.NewColorable(output)
		}
		handler = log.NewTerminalHandlerWithLevel(w, level, useColor)
	}
	log.SetDefault(log.NewLogger(handler))
}

func dumpConfig(ctx *cli.Context) error {
	cfg, err := appConfig(ctx)
	if err != nil {
		return err
	}
	out, err := tomlSettings.Marshal(&cfg)
	if err != nil {
		return err
	}
	_, err = ctx.App.Writer.Write(out)
	return err
}
