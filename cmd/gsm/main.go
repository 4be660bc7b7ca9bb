package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/guilt/gsm/pkg/common"
	_ "github.com/guilt/gsm/pkg/hashers" // Blank import to trigger init()
	"github.com/guilt/gsm/pkg/lifecycle"
	"github.com/guilt/gsm/pkg/log"
)

// logger is the package-level logger for debug and error messages.
var logger = log.NewLogger()

// VERSION is populated via build flags when packaging official binaries.
var VERSION = "SELFBUILD"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Error("gsm failed", "err", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "gsm"
	app.Usage = "SM3 digests and SM4 block encryption"
	app.Version = VERSION
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "debug",
			Usage: "enable debug logging (same as DEBUG=1)",
		},
	}
	app.Before = func(c *cli.Context) error {
		if c.GlobalBool("debug") {
			log.EnableDebug()
		}
		return nil
	}
	app.Commands = []cli.Command{
		digestCommand(),
		cipherCommand("encrypt", "encrypt one 16-byte block", true),
		cipherCommand("decrypt", "decrypt one 16-byte block", false),
		demoCommand(),
		benchCommand(),
	}
	return app
}

// progressFunc picks progress bars or the no-op lifecycle.
func progressFunc(enabled bool, bars common.ProgressFunc) common.ProgressFunc {
	if enabled {
		return bars
	}
	return lifecycle.MakeDefaultLifecycle
}
