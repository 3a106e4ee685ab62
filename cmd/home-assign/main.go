// Copyright 2023 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "home-assign",
		Usage: "Assign home buyers to neighborhoods by score and preference",
		Commands: []*cli.Command{
			runCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Println("Error: ", err)
		os.Exit(1)
	}
}

var runCmd = &cli.Command{
	Name:    "run",
	Usage:   "Run the allocation on an input file",
	Aliases: []string{"r"},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "input",
			Usage: "specify the input text file",
		},
		&cli.StringFlag{
			Name:  "output",
			Usage: "specify the output file (default stdout)",
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "specify a config file supplying flag defaults",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "log every allocation round",
		},
	},
	Action: func(ctx *cli.Context) error {
		cfg, err := loadConfig(ctx.String("config"))
		if err != nil {
			return err
		}
		if ctx.IsSet("input") {
			cfg.Input = ctx.String("input")
		}
		if ctx.IsSet("output") {
			cfg.Output = ctx.String("output")
		}
		if ctx.IsSet("verbose") {
			cfg.Verbose = ctx.Bool("verbose")
		}
		if cfg.Input == "" {
			return errors.New("missing input file")
		}
		return doRun(cfg)
	},
}
