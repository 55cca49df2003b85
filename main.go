package main

import (
	"fmt"
	"os"

	"github.com/gerunddev/cellbridge/internal/commands"
	"github.com/gerunddev/cellbridge/internal/config"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "convert":
		commands.Convert(os.Args[2:])
	case "check":
		commands.Check(os.Args[2:])
	case "info":
		commands.Info(os.Args[2:])
	case "version", "-v", "--version":
		fmt.Printf("cellbridge v%s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	usage := fmt.Sprintf(`cellbridge - Convert between Jupyter notebooks and percent-format scripts

Usage:
  cellbridge <command> [options]

Commands:
  convert     Convert a .ipynb to a .py percent script, or back
  check       Verify a file survives a round trip through the other format
  info        Show a per-cell summary of a notebook or script
  version     Show version information
  help        Show this help message

Examples:
  cellbridge convert analysis.ipynb
  cellbridge convert analysis.py notebooks/analysis.ipynb
  cellbridge convert --force analysis.ipynb
  cellbridge check analysis.py
  cellbridge info analysis.ipynb

The convert output path defaults to the input path with its extension
swapped (.ipynb ↔ .py).

Configuration:
  Config file: %s
`, config.ConfigPath())
	fmt.Print(usage)
}
