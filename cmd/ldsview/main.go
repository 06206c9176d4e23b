// ldsview extracts Neato Botvac LDS scans from a CLI transcript and shows
// them as navigable polar plots in the terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ldstools/ldsview/internal/config"
	"github.com/ldstools/ldsview/internal/navigator"
	"github.com/ldstools/ldsview/internal/parser"
	"github.com/ldstools/ldsview/internal/tui"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s <transcript>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read transcript: %v", err)
	}

	scans := parser.ParseLog(string(data))
	nav, err := navigator.New(scans)
	if err != nil {
		fmt.Fprintf(os.Stderr, "no scans found in %s\n", path)
		os.Exit(1)
	}

	p := tea.NewProgram(tui.New(cfg, nav, path), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
