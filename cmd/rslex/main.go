package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/jessevdk/go-flags"
	"github.com/mattn/go-isatty"
	"golang.org/x/sync/errgroup"

	"github.com/alvesmarcos/rslex/internal/regexp"
	"github.com/alvesmarcos/rslex/internal/rules"
	"github.com/alvesmarcos/rslex/internal/server"
)

type Option struct {
	Files  []string `short:"f" long:"file" description:"[OPTIONAL] Lexer definition file(s) (.lex, .yaml or .json)" required:"false"`
	Expr   string   `short:"e" long:"expr" description:"[OPTIONAL] Parse a single regular expression and print its tree" required:"false"`
	Listen string   `short:"l" long:"listen" description:"[OPTIONAL] Listen host and port to serve the rules API" required:"false"`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var opt Option
	parser := flags.NewParser(&opt, flags.Default)
	_, err := parser.ParseArgs(args)
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return 0
		} else {
			parser.WriteHelp(os.Stdout)
			return 1
		}
	}

	if opt.Expr != "" {
		if len(opt.Files) != 0 || opt.Listen != "" {
			parser.WriteHelp(os.Stdout)
			return 1
		}
		node, err := regexp.Parse(opt.Expr)
		if err != nil {
			log.Printf("failed to parse expression: %v", err)
			return 1
		}
		if err = dumpJSON(os.Stdout, node); err != nil {
			log.Printf("failed to dump syntax tree: %v", err)
			return 1
		}
		return 0
	}

	if len(opt.Files) == 0 {
		parser.WriteHelp(os.Stdout)
		return 1
	}

	// server mode
	if opt.Listen != "" {
		if len(opt.Files) != 1 {
			parser.WriteHelp(os.Stdout)
			return 1
		}
		err = serveRules(opt.Listen, func() (*rules.RuleSet, error) {
			return loadRules(opt.Files[0])
		})
		if err != nil {
			log.Printf("failed to serve rules: %v", err)
			return 1
		}
		return 0
	}

	ruleSets := make([]*rules.RuleSet, len(opt.Files))
	eg := errgroup.Group{}
	for i, file := range opt.Files {
		i, file := i, file
		eg.Go(func() error {
			rs, err := loadRules(file)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			ruleSets[i] = rs
			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		log.Printf("failed to load rules: %v", err)
		return 1
	}

	for _, rs := range ruleSets {
		if err = dumpJSON(os.Stdout, rs); err != nil {
			log.Printf("failed to dump rules: %v", err)
			return 1
		}
	}
	return 0
}

func loadRules(filePath string) (*rules.RuleSet, error) {
	var parseRules func(io.Reader) (*rules.RuleSet, error)
	switch filepath.Ext(filePath) {
	case ".json":
		parseRules = rules.ParseRulesJSON
	case ".yaml", ".yml":
		parseRules = rules.ParseRulesYAML
	default:
		parseRules = rules.ParseRules
	}

	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("os.Open(%q): %w", filePath, err)
	}
	defer f.Close()

	rs, err := parseRules(f)
	if err != nil {
		return nil, fmt.Errorf("rules.ParseRules: %w", err)
	}
	return rs, nil
}

func serveRules(listen string, loader func() (*rules.RuleSet, error)) error {
	handler, err := server.NewHTTPHandler(loader)
	if err != nil {
		return err
	}

	srv := http.Server{
		Handler: handler,
		Addr:    listen,
	}

	log.Printf("Listen HTTP on %s", listen)
	if err := srv.ListenAndServe(); errors.Is(err, http.ErrServerClosed) {
		return nil
	} else if err != nil {
		return err
	}
	return nil
}

func dumpJSON(w io.Writer, v any) error {
	opts := []json.EncodeOptionFunc{json.DisableHTMLEscape()}
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		if isatty.IsTerminal(f.Fd()) {
			opts = append(opts, json.Colorize(json.DefaultColorScheme))
		}
	}

	b, err := json.MarshalIndentWithOption(v, "", "\t", opts...)
	if err != nil {
		return fmt.Errorf("json.MarshalIndentWithOption: %w", err)
	}

	if _, err = w.Write(b); err != nil {
		return fmt.Errorf("w.Write: %w", err)
	}
	if _, err = io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("io.WriteString: %w", err)
	}
	return nil
}
