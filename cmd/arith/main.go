package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/arithlang/arith"
)

const historyFile = ".arith_history"

func main() {
	log.SetFlags(0)
	verbose := flag.Bool("verbose", false, "print tokens and syntax tree for each expression")
	flag.Parse()

	if flag.NArg() > 0 {
		code := 0
		for _, src := range flag.Args() {
			if err := run(src, *verbose); err != nil {
				fmt.Fprintln(os.Stderr, err)
				code = 1
			}
		}
		os.Exit(code)
	}
	repl(*verbose)
}

func run(src string, verbose bool) error {
	d, err := arith.InterpretDetails(src)
	if err != nil {
		return err
	}
	if verbose {
		printDetails(d)
	}
	fmt.Println(arith.FormatResult(d.Result))
	return nil
}

func printDetails(d *arith.Details) {
	fmt.Println("tokens:")
	for i, tok := range d.Tokens {
		fmt.Printf("  [%d] %v\n", i, tok)
	}
	fmt.Println("ast:", d.AST)
}

func repl(verbose bool) {
	fmt.Println("arith REPL. Type quit to exit, verbose to toggle verbose mode.")

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	home, _ := os.UserHomeDir()
	hist := filepath.Join(home, historyFile)
	if f, err := os.Open(hist); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(hist); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt("> ")
		if errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return
		}
		if err != nil {
			log.Fatal(err)
		}
		src := strings.TrimSpace(line)
		if src == "" {
			continue
		}
		switch strings.ToLower(src) {
		case "quit", "exit":
			return
		case "verbose":
			verbose = !verbose
			if verbose {
				fmt.Println("verbose mode on")
			} else {
				fmt.Println("verbose mode off")
			}
			continue
		}
		if err := run(src, verbose); err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		ln.AppendHistory(src)
	}
}
