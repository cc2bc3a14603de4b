// Command cubiomes queries biomes, finds structures and hunts seeds.
//
// Usage:
//
//	cubiomes <command> [flags]
//
// Commands are biome, area, structures, hunt, strongholds and versions. Run
// a command with -h for its flags.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/OCharnyshevich/cubiomes-go/pkg/engine"
	_ "github.com/OCharnyshevich/cubiomes-go/pkg/engine/cubiomes"
	_ "github.com/OCharnyshevich/cubiomes-go/pkg/engine/synth"
)

type command struct {
	name  string
	usage string
	run   func(ctx context.Context, env *env) error
}

var commands = []command{
	{"biome", "print the biome at -x -y -z", runBiome},
	{"area", "fill an area and print its biome ids", runArea},
	{"structures", "list structures in the region rectangle -rx0 -rz0 -rx1 -rz1", runStructures},
	{"hunt", "search a seed with -structure inside -min-x -min-z -max-x -max-z", runHunt},
	{"strongholds", "list the stronghold chain of -seed", runStrongholds},
	{"versions", "list supported versions and engines", runVersions},
}

// env is what a command runs with.
type env struct {
	opts *options
	eng  engine.Engine
	log  *slog.Logger
	out  io.Writer
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}
	var cmd *command
	for i := range commands {
		if commands[i].name == args[0] {
			cmd = &commands[i]
		}
	}
	if cmd == nil {
		fmt.Fprintf(stderr, "unknown command %q\n", args[0])
		usage(stderr)
		return 2
	}

	fs := flag.NewFlagSet(cmd.name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	opts, err := parseFlags(fs, args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: opts.cfg.SlogLevel()}))

	eng, err := engine.Open(opts.cfg.Engine)
	if err != nil {
		log.Error("open engine", "error", err)
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := cmd.run(ctx, &env{opts: opts, eng: eng, log: log, out: stdout}); err != nil {
		log.Error(cmd.name+" failed", "error", err)
		return 1
	}
	return 0
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: cubiomes <command> [flags]")
	fmt.Fprintln(w)
	for _, c := range commands {
		fmt.Fprintf(w, "  %-12s %s\n", c.name, c.usage)
	}
}
