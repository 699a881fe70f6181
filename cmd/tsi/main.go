package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	cli "github.com/urfave/cli/v2"
)

const cliToolVersion = "tsi 0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	app := newApp(stdin, stdout, stderr)
	if err := app.Run(append([]string{"tsi"}, args...)); err != nil {
		color.New(color.FgRed).Fprintf(stderr, "%v\n", err)
		return 1
	}
	return 0
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "tsi",
		Usage:     "interpret a small TypeScript subset",
		UsageText: "tsi [global options] [file]\n   tsi [global options] command [arguments...]",
		Version:   cliToolVersion,
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "trace each statement and the variable table to stderr",
			},
			&cli.BoolFlag{
				Name:    "keep-going",
				Aliases: []string{"k"},
				Usage:   "report evaluation errors and continue with the next statement",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a tsi.yml (default: search upwards from the working directory)",
			},
			&cli.StringFlag{
				Name:  "color",
				Usage: "colorize output: auto, always or never",
			},
		},
		// A bare file argument runs it; no argument starts the REPL.
		Action: func(c *cli.Context) error {
			switch c.NArg() {
			case 0:
				return replAction(c)
			case 1:
				return runAction(c)
			default:
				return unexpectedArgs(c.Args().Slice()[1:])
			}
		},
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "execute a source file and print its last value",
				ArgsUsage: "<file.ts>",
				Action:    runAction,
			},
			{
				Name:      "eval",
				Usage:     "execute source text given on the command line",
				ArgsUsage: "<source>",
				Action:    evalAction,
			},
			{
				Name:   "repl",
				Usage:  "start an interactive session",
				Action: replAction,
			},
			{
				Name:      "tokens",
				Usage:     "print the token stream of a source file",
				ArgsUsage: "<file.ts>",
				Action:    tokensAction,
			},
			{
				Name:      "ast",
				Usage:     "print the syntax tree of a source file as JSON",
				ArgsUsage: "<file.ts>",
				Action:    astAction,
			},
		},
	}
}
