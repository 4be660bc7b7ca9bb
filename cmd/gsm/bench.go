package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/urfave/cli"

	"github.com/guilt/gsm/pkg/bench"
	"github.com/guilt/gsm/pkg/lifecycle"
)

func benchCommand() cli.Command {
	def := bench.DefaultConfig()
	return cli.Command{
		Name:  "bench",
		Usage: "measure throughput of digests and block ciphers",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "c",
				Usage: "config from json file; flags given on the command line override it",
			},
			cli.StringSliceFlag{
				Name:  "algo, a",
				Usage: "algorithm to benchmark, repeatable (default: sm3, sm3-lanes, sm3-gmsm, sm4, sm4-gmsm)",
			},
			cli.IntFlag{
				Name:  "iterations, n",
				Value: def.Iterations,
				Usage: "operations per algorithm",
			},
			cli.IntFlag{
				Name:  "size",
				Value: def.Size,
				Usage: "message size in bytes for digests",
			},
			cli.IntFlag{
				Name:  "workers",
				Value: def.Workers,
				Usage: "number of concurrent workers",
			},
			cli.BoolFlag{
				Name:  "progress",
				Usage: "show progress bar per algorithm",
			},
		},
		Action: benchAction,
	}
}

func benchAction(c *cli.Context) error {
	cfg := bench.DefaultConfig()
	if path := c.String("c"); path != "" {
		if err := bench.ParseJSONConfig(&cfg, path); err != nil {
			return err
		}
	}
	// flags given on the command line win over the file
	if c.IsSet("algo") {
		cfg.Algorithms = c.StringSlice("algo")
	}
	if c.IsSet("iterations") {
		cfg.Iterations = c.Int("iterations")
	}
	if c.IsSet("size") {
		cfg.Size = c.Int("size")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	logger.Debug("bench config", "algorithms", cfg.Algorithms, "iterations", cfg.Iterations, "size", cfg.Size, "workers", cfg.Workers)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := bench.Run(ctx, cfg, progressFunc(c.Bool("progress"), lifecycle.MakeCountProgressBars))
	for _, r := range results {
		fmt.Fprintln(c.App.Writer, r.String())
	}
	return err
}
