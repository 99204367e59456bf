// nativecall is a utility to inspect and exercise the native-call
// precompiles against an in-memory ledger.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

var (
	configFileFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	verbosityFlag = &cli.IntFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity: 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=detail",
		Value: 3,
	}
	logJSONFlag = &cli.BoolFlag{
		Name:  "log.json",
		Usage: "Format logs with JSON",
	}
	strictPaddingFlag = &cli.BoolFlag{
		Name:  "strict-padding",
		Usage: "Reject integer arguments with non-zero high-order padding",
	}
	ss58PrefixFlag = &cli.UintFlag{
		Name:  "ss58-prefix",
		Usage: "Network prefix used to render ledger accounts",
		Value: 42,
	}
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "nativecall",
		Usage: "inspect and run native-call precompiles",
		Flags: []cli.Flag{
			configFileFlag,
			verbosityFlag,
			logJSONFlag,
			strictPaddingFlag,
			ss58PrefixFlag,
		},
		Before: func(ctx *cli.Context) error {
			cfg, err := makeConfig(ctx)
			if err != nil {
				return err
			}
			setupLogging(cfg.Log, os.Stderr)
			if ctx.App.Metadata == nil {
				ctx.App.Metadata = make(map[string]interface{})
			}
			ctx.App.Metadata[configMetadataKey] = cfg
			return nil
		},
		Commands: []*cli.Command{
			selectorCommand,
			encodeCommand,
			accountCommand,
			precompilesCommand,
			callCommand,
			{
				Name:   "dumpconfig",
				Usage:  "Show configuration values",
				Action: dumpConfig,
			},
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
