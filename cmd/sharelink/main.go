// Command sharelink generates a shareable link for a media URL from the terminal.
//
//	sharelink [-origin URL] [-copy] <media-url>
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/vadimbarashkov/media-link/internal/adapter/clipboard"
	"github.com/vadimbarashkov/media-link/internal/config"
	"github.com/vadimbarashkov/media-link/internal/notify"
	"github.com/vadimbarashkov/media-link/internal/ui"
	"github.com/vadimbarashkov/media-link/internal/usecase"
)

const copyTimeout = 5 * time.Second

func main() {
	if err := run(os.Args[1:]); err != nil && !errors.Is(err, flag.ErrHelp) {
		os.Exit(1)
	}
}

func run(args []string) error {
	fset := flag.NewFlagSet("sharelink", flag.ContinueOnError)
	origin := fset.String("origin", "", "origin of the media link service (default: link.public_origin or http://localhost:<port>)")
	doCopy := fset.Bool("copy", false, "copy the link to the system clipboard")
	showPreview := fset.Bool("preview", false, "print the preview descriptor as JSON")
	fset.Usage = func() {
		fmt.Fprintln(fset.Output(), "Usage: sharelink [-origin URL] [-copy] [-preview] <media-url>")
		fset.PrintDefaults()
	}

	if err := fset.Parse(args); err != nil {
		return err
	}
	if fset.NArg() != 1 {
		fset.Usage()
		return errors.New("media url required")
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	if *origin == "" {
		*origin = cfg.Link.PublicOrigin
	}
	if *origin == "" {
		*origin = "http://localhost" + cfg.HTTPServer.Addr()
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	notifier := notify.New(
		notify.WithTimeout(cfg.UI.StatusTimeout),
		notify.WithOnChange(func(st notify.Status) {
			if st.Visible {
				fmt.Fprintln(os.Stderr, st.Message)
			}
		}),
	)

	c := ui.New(
		*origin,
		usecase.New(cfg.Link.BasePath, nil),
		clipboard.NewSystem(),
		notifier,
		ui.WithCopyRevert(cfg.UI.CopyRevert),
		ui.WithLogger(logger),
	)

	input := fset.Arg(0)

	// A local file is the terminal's version of a dropped file.
	if fi, err := os.Stat(input); err == nil && !fi.IsDir() {
		return c.RejectUpload()
	}

	link, err := c.Generate(input)
	if err != nil {
		return err
	}

	fmt.Println(link.Link)

	if *showPreview {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(link.Preview); err != nil {
			return err
		}
	}

	if *doCopy {
		ctx, cancel := context.WithTimeout(context.Background(), copyTimeout)
		defer cancel()

		if _, err := c.Copy(ctx); err != nil {
			return err
		}
	}

	return nil
}
