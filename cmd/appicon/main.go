// Command appicon renders the TongueTied app icon to a PNG file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tonguetied/appicon"
)

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("appicon failed", "err", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("appicon", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		output  = fs.String("o", "AppIcon.png", "output file (.png, .bmp or .tiff)")
		verbose = fs.Bool("v", false, "log pipeline stages to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if *verbose {
		appicon.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		defer appicon.SetLogger(nil)
	}

	img, err := appicon.Generate(*output)
	if err != nil {
		return err
	}

	b := img.Bounds()
	_, err = fmt.Fprintf(stdout, "Saved %dx%d icon to %s\n", b.Dx(), b.Dy(), *output)
	return err
}
