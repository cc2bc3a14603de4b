// Command fetchcubiomes downloads the cubiomes C sources that the native
// engine backend links against.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	getter "github.com/hashicorp/go-getter"
)

func main() {
	var (
		base = flag.String("base", "https://github.com/Cubitect/cubiomes.git", "repository url")
		ref  = flag.String("ref", "", "tag, branch or commit to check out (default branch if empty)")
		out  = flag.String("o", "./third_party/cubiomes", "output dir path")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *out == "" || *base == "" {
		log.Error("base url and output dir are required")
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := fetch(ctx, *base, *ref, *out, log); err != nil {
		log.Error("fetch cubiomes", "error", err)
		os.Exit(1)
	}
}

func sourceURL(base, ref string) string {
	url := "git::" + base
	if ref != "" {
		url += "?ref=" + ref
	}
	return url
}

func fetch(ctx context.Context, base, ref, out string, log *slog.Logger) error {
	if err := os.RemoveAll(out); err != nil {
		return fmt.Errorf("clear %s: %w", out, err)
	}

	url := sourceURL(base, ref)
	log.Info("start downloading", "url", url, "dst", out)

	client := &getter.Client{
		Ctx:  ctx,
		Src:  url,
		Dst:  out,
		Mode: getter.ClientModeDir,
	}
	if err := client.Get(); err != nil {
		return fmt.Errorf("get %s: %w", url, err)
	}

	log.Info("done downloading", "dst", out, "next", "make -C "+out+" libcubiomes")
	return nil
}
