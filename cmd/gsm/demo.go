package main

import (
	"crypto/rand"

	"github.com/urfave/cli"

	"github.com/guilt/gsm/pkg/demo"
)

func demoCommand() cli.Command {
	return cli.Command{
		Name:  "demo",
		Usage: "encrypt, decrypt and hash a random block, with timings",
		Action: func(c *cli.Context) error {
			r, err := demo.Run(rand.Reader)
			if err != nil {
				return err
			}
			return r.Print(c.App.Writer)
		},
	}
}
