// Command csdsh is an interactive shell for poking at libcsd containers.
//
// It keeps one list of strings and one map of variables; the map can be
// saved to and loaded from YAML documents. When stdin is not a terminal the
// commands are read line by line without prompting.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/term"
)

const historyFile = ".csdsh_history"

func main() {
	dir := flag.String("dir", ".", "directory holding saved documents")
	verbose := flag.Bool("v", false, "log store operations to stderr")
	flag.Parse()

	var logger *log.Logger
	if *verbose {
		logger = log.New(os.Stderr, "csdsh: ", log.LstdFlags)
	}

	sh, err := newShell(os.Stdout, *dir, logger)
	if err != nil {
		log.Fatalf("csdsh: %v", err)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		if err := runScript(sh, os.Stdin, os.Stderr); err != nil {
			log.Fatalf("csdsh: %v", err)
		}
		return
	}
	runInteractive(sh)
}

// runScript executes every line of r, reporting command errors to errOut
// and carrying on.
func runScript(sh *shell, r io.Reader, errOut io.Writer) error {
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() && !sh.quit {
		n++
		if err := sh.exec(sc.Text()); err != nil {
			fmt.Fprintf(errOut, "line %d: %v\n", n, err)
		}
	}
	return sc.Err()
}

func runInteractive(sh *shell) {
	fmt.Println("csdsh, type help for commands")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(func(line string) []string {
		if strings.ContainsRune(line, ' ') {
			return nil
		}
		return sh.names(line)
	})

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for !sh.quit {
		line, err := ln.Prompt("csd> ")
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			return
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			return
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		if err := sh.exec(line); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
	}
}
