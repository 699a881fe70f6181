package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	cli "github.com/urfave/cli/v2"

	"tsi/interpreter-go/pkg/ast"
	"tsi/interpreter-go/pkg/driver"
	"tsi/interpreter-go/pkg/lexer"
	"tsi/interpreter-go/pkg/parser"
	"tsi/interpreter-go/pkg/runtime"
)

var resultColor = color.New(color.FgGreen)

// loadConfig resolves tsi.yml and applies command-line overrides.
func loadConfig(c *cli.Context) (*driver.Config, error) {
	var (
		cfg *driver.Config
		err error
	)
	if path := strings.TrimSpace(c.String("config")); path != "" {
		cfg, err = driver.LoadConfig(path)
	} else {
		cwd, wdErr := os.Getwd()
		if wdErr != nil {
			return nil, fmt.Errorf("resolve working directory: %w", wdErr)
		}
		cfg, err = driver.LoadConfigFrom(cwd)
	}
	if err != nil {
		return nil, err
	}
	if c.IsSet("debug") {
		cfg.Debug = c.Bool("debug")
	}
	if c.IsSet("keep-going") {
		cfg.KeepGoing = c.Bool("keep-going")
	}
	if c.IsSet("color") {
		mode := driver.ColorMode(strings.ToLower(c.String("color")))
		if !mode.IsValid() {
			return nil, fmt.Errorf("invalid --color value %q (want auto, always or never)", c.String("color"))
		}
		cfg.Color = mode
	}
	cfg.Color.Apply()
	return cfg, nil
}

func sessionOptions(c *cli.Context, cfg *driver.Config) driver.Options {
	opts := cfg.Options()
	opts.LogWriter = driver.LogWriter(c.App.ErrWriter)
	return opts
}

func singleArg(c *cli.Context, what string) (string, error) {
	switch c.NArg() {
	case 0:
		return "", fmt.Errorf("%s requires %s", commandName(c), what)
	case 1:
		return strings.TrimSpace(c.Args().First()), nil
	default:
		return "", unexpectedArgs(c.Args().Slice()[1:])
	}
}

func commandName(c *cli.Context) string {
	if c.Command != nil && c.Command.Name != "" {
		return "tsi " + c.Command.Name
	}
	return "tsi"
}

func unexpectedArgs(extra []string) error {
	return fmt.Errorf("unexpected arguments: %s", strings.Join(extra, " "))
}

func runAction(c *cli.Context) error {
	path, err := singleArg(c, "a source file")
	if err != nil {
		return err
	}
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	_, result, err := driver.RunFile(path, sessionOptions(c, cfg))
	if err != nil {
		return err
	}
	printLast(c, result)
	return nil
}

func evalAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("tsi eval requires source text")
	}
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	session := driver.NewSession(sessionOptions(c, cfg))
	result, err := session.Run(strings.Join(c.Args().Slice(), " "))
	if err != nil {
		return err
	}
	printLast(c, result)
	return nil
}

func replAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	return driver.NewREPL(c.App.Reader, c.App.Writer, c.App.ErrWriter, cfg).Run()
}

func tokensAction(c *cli.Context) error {
	src, err := readSource(c)
	if err != nil {
		return err
	}
	for _, tok := range lexer.Tokenize(src) {
		fmt.Fprintf(c.App.Writer, "%-10s %s\n", tok.Kind, tok)
	}
	return nil
}

func astAction(c *cli.Context) error {
	src, err := readSource(c)
	if err != nil {
		return err
	}
	stmts, err := parser.New(src).ParseProgram()
	if err != nil {
		return fmt.Errorf("statement %d: parse error: %w", len(stmts)+1, err)
	}
	if stmts == nil {
		stmts = []ast.Statement{}
	}
	encoder := json.NewEncoder(c.App.Writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(stmts)
}

func readSource(c *cli.Context) (string, error) {
	path, err := singleArg(c, "a source file")
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("source file %s does not exist", path)
		}
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

func printLast(c *cli.Context, result *driver.Result) {
	if result == nil || !result.HasLast {
		return
	}
	resultColor.Fprintln(c.App.Writer, runtime.Format(result.Last))
}
