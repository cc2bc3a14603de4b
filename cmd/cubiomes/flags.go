package main

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/OCharnyshevich/cubiomes-go/internal/config"
)

type int32Value struct{ p *int32 }

func (v int32Value) String() string {
	if v.p == nil {
		return "0"
	}
	return strconv.FormatInt(int64(*v.p), 10)
}

func (v int32Value) Set(s string) error {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return err
	}
	*v.p = int32(n)
	return nil
}

type uint32Value struct{ p *uint32 }

func (v uint32Value) String() string {
	if v.p == nil {
		return "0"
	}
	return strconv.FormatUint(uint64(*v.p), 10)
}

func (v uint32Value) Set(s string) error {
	n, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return err
	}
	*v.p = uint32(n)
	return nil
}

// options is the parsed command line of one subcommand.
type options struct {
	cfg        *config.Config
	configPath string
	export     bool

	rx0, rz0, rx1, rz1 int32
}

// parseFlags binds every option to fs, parses args and merges the job file
// named by -config. Flags given on the command line win over the file.
func parseFlags(fs *flag.FlagSet, args []string) (*options, error) {
	o := &options{cfg: config.DefaultConfig()}
	cfg := o.cfg

	fs.StringVar(&o.configPath, "config", "", "YAML job file")
	fs.StringVar(&cfg.Engine, "engine", cfg.Engine, "engine backend (synthetic, cubiomes)")
	fs.StringVar(&cfg.Version, "version", cfg.Version, "game version, e.g. 1.21 or 1.16.5")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "world seed")
	fs.StringVar(&cfg.Dimension, "dimension", cfg.Dimension, "overworld, nether or end")
	fs.Var(uint32Value{&cfg.Flags}, "flags", "generator flags (1 large biomes, 2 no beta ocean, 4 force ocean variants)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")

	fs.StringVar(&cfg.Structure, "structure", cfg.Structure, "structure type, e.g. village or igloo")
	fs.Var(int32Value{&cfg.Area.MinX}, "min-x", "hunt area minimum block x")
	fs.Var(int32Value{&cfg.Area.MinZ}, "min-z", "hunt area minimum block z")
	fs.Var(int32Value{&cfg.Area.MaxX}, "max-x", "hunt area maximum block x (exclusive)")
	fs.Var(int32Value{&cfg.Area.MaxZ}, "max-z", "hunt area maximum block z (exclusive)")
	fs.Int64Var(&cfg.MaxTrials, "max-trials", cfg.MaxTrials, "phase one trial budget (0 = unbounded)")

	fs.Var(int32Value{&cfg.Range.Scale}, "scale", "coordinate scale (1, 4, 16, 64, 256)")
	fs.Var(int32Value{&cfg.Range.X}, "x", "x coordinate in scale units")
	fs.Var(int32Value{&cfg.Range.Z}, "z", "z coordinate in scale units")
	fs.Var(int32Value{&cfg.Range.Y}, "y", "y coordinate")
	fs.Var(uint32Value{&cfg.Range.SizeX}, "size-x", "area width in scale units")
	fs.Var(uint32Value{&cfg.Range.SizeZ}, "size-z", "area depth in scale units")
	fs.Var(uint32Value{&cfg.Range.SizeY}, "size-y", "area height (0 = one plane)")
	fs.BoolVar(&o.export, "export", false, "save the filled area as a tile under -data-dir")

	fs.Var(int32Value{&o.rx0}, "rx0", "first region x")
	fs.Var(int32Value{&o.rz0}, "rz0", "first region z")
	fs.Var(int32Value{&o.rx1}, "rx1", "last region x")
	fs.Var(int32Value{&o.rz1}, "rz1", "last region z")

	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite index to record results in")
	fs.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "directory for exported tiles")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if o.configPath != "" {
		explicit := make(map[string]bool)
		fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		fromFile, err := config.Load(o.configPath)
		if err != nil {
			return nil, fmt.Errorf("load job: %w", err)
		}
		config.Merge(cfg, fromFile, explicit)
	}
	return o, nil
}
