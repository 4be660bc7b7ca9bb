package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/guilt/gsm/pkg/common"
	"github.com/guilt/gsm/pkg/file"
	"github.com/guilt/gsm/pkg/lifecycle"
)

func digestCommand() cli.Command {
	return cli.Command{
		Name:      "digest",
		Usage:     "hash files or byte ranges of files",
		ArgsUsage: "file[#start-end] ...",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "algo, a",
				Value: common.GetDefaultHashAlgorithm(),
				Usage: "hash algorithm (" + strings.Join(common.GetAllHasherNames(), ", ") + ")",
			},
			cli.BoolFlag{
				Name:  "lanes",
				Usage: "use the lane-parallel SM3 message expansion",
			},
			cli.StringFlag{
				Name:  "verify",
				Usage: "expected hex digest of the single input",
			},
			cli.BoolFlag{
				Name:  "progress",
				Usage: "show progress bar while reading input",
			},
		},
		Action: digestAction,
	}
}

func digestAction(c *cli.Context) error {
	algo := c.String("algo")
	if c.Bool("lanes") {
		algo = "sm3-lanes"
	}
	hasher, err := common.GetHasher(algo)
	if err != nil {
		return errors.Wrapf(err, "supported: %s", strings.Join(common.GetAllHasherNames(), ", "))
	}
	if c.NArg() == 0 {
		return errors.New("no input files provided")
	}

	verify := strings.TrimSpace(c.String("verify"))
	if verify != "" {
		if c.NArg() != 1 {
			return errors.Errorf("-verify takes exactly one input, got %d", c.NArg())
		}
		if len(verify) != hasher.OutputLen {
			return errors.Errorf("invalid hash value length: expected=%d, got=%d", hasher.OutputLen, len(verify))
		}
	}

	progress := progressFunc(c.Bool("progress"), lifecycle.MakeProgressBars)
	for _, arg := range c.Args() {
		rs, err := file.ParseFilePath(arg)
		if err != nil {
			return errors.Wrapf(err, "parse %s", arg)
		}
		data, err := file.ReadRange(rs, progress)
		if err != nil {
			return errors.Wrapf(err, "read %s", rs.String())
		}
		hashValue := hex.EncodeToString(hasher.Sum(data))
		logger.Debug("digest", "algo", hasher.Name, "input", rs.String(), "bytes", len(data))

		if verify != "" {
			if !strings.EqualFold(verify, hashValue) {
				return errors.Errorf("hash mismatch: file=%s, expected=%s, got=%s", rs.String(), verify, hashValue)
			}
			fmt.Fprintln(c.App.Writer, "Hash verification successful")
			continue
		}
		fmt.Fprintf(c.App.Writer, "%s %d %s\n", hashValue, len(data), rs.String())
	}
	return nil
}
