package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

var dataFlag = &cli.StringFlag{
	Name:     "data",
	Aliases:  []string{"d"},
	Required: true,
	Usage:    "Path to the puzzle examples .bin file",
}

func main() {
	app := &cli.App{
		Name:    "tsumegoctl",
		Usage:   "puzzle example file inspection CLI",
		Version: "0.1.0",
		Commands: []*cli.Command{
			infoCommand(),
			histogramCommand(),
			showCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func infoCommand() *cli.Command {
	return &cli.Command{
		Name:   "info",
		Usage:  "Summarize a puzzle example file",
		Flags:  []cli.Flag{dataFlag},
		Action: infoAction,
	}
}

func histogramCommand() *cli.Command {
	return &cli.Command{
		Name:   "histogram",
		Usage:  "Print the label frequency histogram",
		Flags:  []cli.Flag{dataFlag},
		Action: histogramAction,
	}
}

func showCommand() *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Render one record's board as text",
		Flags: []cli.Flag{
			dataFlag,
			&cli.IntFlag{
				Name:    "index",
				Aliases: []string{"i"},
				Value:   0,
				Usage:   "Record index to render",
			},
		},
		Action: showAction,
	}
}
