// icongen renders the application's microphone icon and exports the
// tray PNG, the primary PNG and a multi-resolution ICO.
// Usage: icongen [output-dir]
package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/wisprlocal/icongen/internal/export"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	outDir, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Run 'icongen help' for usage.\n")
		os.Exit(1)
	}
	if outDir == "" {
		return // help or version already printed
	}

	written, err := export.Export(outDir)
	for _, p := range written {
		if strings.HasSuffix(p, ".ico") {
			fmt.Printf("Saved %s with sizes %v\n", p, export.Sizes)
		} else {
			fmt.Printf("Saved %s\n", p)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseArgs returns the output directory to export into, or "" when a
// help/version request was handled. At most one positional argument is
// accepted; it overrides the default directory.
func parseArgs(args []string) (string, error) {
	outDir := export.DefaultDir
	seen := false
	for _, a := range args {
		switch a {
		case "help", "-h", "--help":
			printUsage()
			return "", nil
		case "version", "-V", "--version":
			printVersion()
			return "", nil
		default:
			if strings.HasPrefix(a, "-") {
				return "", fmt.Errorf("unknown option %q", a)
			}
			if seen {
				return "", fmt.Errorf("expected at most one output directory, got %q", a)
			}
			outDir = a
			seen = true
		}
	}
	return outDir, nil
}

func printVersion() {
	fmt.Printf("icongen %s (%s) %s/%s\n", version, buildDate, runtime.GOOS, runtime.GOARCH)
}

func printUsage() {
	fmt.Printf("icongen %s - Generate the microphone icon set\n", version)
	fmt.Printf(`
Usage:
  icongen [output-dir]

Writes into the output directory (default %s):
  32x32.png   32x32 tray icon, transparent background
  icon.png    256x256 primary icon
  icon.ico    multi-resolution icon (%v)

Options:
  version, -V, --version   Show version and build date
  help, -h, --help         Show this help message
`, export.DefaultDir, export.Sizes)
}
