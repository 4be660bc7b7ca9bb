package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/guilt/gsm/pkg/common"
)

func cipherCommand(name, usage string, encrypt bool) cli.Command {
	return cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "<hex block>",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:   "key, k",
				Usage:  "hex-encoded 16-byte key",
				EnvVar: "GSM_KEY",
			},
			cli.StringFlag{
				Name:  "cipher",
				Value: common.GetDefaultCipher(),
				Usage: "block cipher (" + strings.Join(common.GetAllCipherNames(), ", ") + ")",
			},
		},
		Action: func(c *cli.Context) error {
			return cipherAction(c, encrypt)
		},
	}
}

func cipherAction(c *cli.Context, encrypt bool) error {
	ciph, err := common.GetCipher(c.String("cipher"))
	if err != nil {
		return err
	}
	if c.NArg() != 1 {
		return errors.Errorf("expected one hex block, got %d arguments", c.NArg())
	}
	key, err := common.ParseHex(c.String("key"), ciph.KeySize)
	if err != nil {
		return errors.Wrap(err, "key")
	}
	src, err := common.ParseHex(c.Args().First(), ciph.BlockSize)
	if err != nil {
		return errors.Wrap(err, "block")
	}

	block, err := ciph.NewBlock(key)
	if err != nil {
		return errors.Wrap(err, ciph.Name)
	}
	dst := make([]byte, ciph.BlockSize)
	if encrypt {
		block.Encrypt(dst, src)
	} else {
		block.Decrypt(dst, src)
	}
	logger.Debug("block", "cipher", ciph.Name, "encrypt", encrypt)
	fmt.Fprintln(c.App.Writer, hex.EncodeToString(dst))
	return nil
}
