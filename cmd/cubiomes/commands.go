package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/OCharnyshevich/cubiomes-go/internal/storage"
	"github.com/OCharnyshevich/cubiomes-go/internal/store"
	"github.com/OCharnyshevich/cubiomes-go/pkg/engine"
	"github.com/OCharnyshevich/cubiomes-go/pkg/generator"
	"github.com/OCharnyshevich/cubiomes-go/pkg/hunt"
	"github.com/OCharnyshevich/cubiomes-go/pkg/mc"
)

func (e *env) version() (mc.Version, error) {
	return mc.ParseVersion(e.opts.cfg.Version)
}

func (e *env) structure() (mc.Structure, error) {
	return mc.ParseStructure(e.opts.cfg.Structure)
}

func (e *env) generator() (*generator.Generator, error) {
	cfg := e.opts.cfg
	v, err := e.version()
	if err != nil {
		return nil, err
	}
	dim, err := mc.ParseDimension(cfg.Dimension)
	if err != nil {
		return nil, err
	}
	g, err := generator.New(e.eng, v, cfg.Seed, dim, engine.Flags(cfg.Flags))
	if err != nil {
		return nil, fmt.Errorf("create generator: %w", err)
	}
	e.log.Debug("generator ready", "engine", e.eng.Name(), "version", v, "seed", cfg.Seed, "dimension", dim)
	return g, nil
}

func (e *env) openStore() (*store.Store, error) {
	if e.opts.cfg.DBPath == "" {
		return nil, nil
	}
	return store.Open(e.opts.cfg.DBPath, e.log)
}

func runBiome(_ context.Context, e *env) error {
	g, err := e.generator()
	if err != nil {
		return err
	}
	defer g.Close()

	r := e.opts.cfg.Range
	b, err := g.BiomeAtScale(generator.Scale(r.Scale), r.X, r.Y, r.Z)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.out, "%s (%d)\n", b.Name(g.Version()), int32(b))
	return nil
}

func runArea(_ context.Context, e *env) error {
	g, err := e.generator()
	if err != nil {
		return err
	}
	defer g.Close()

	cr := e.opts.cfg.Range
	r, err := generator.NewRange(generator.Scale(cr.Scale), cr.X, cr.Z, cr.SizeX, cr.SizeZ, cr.Y, cr.SizeY)
	if err != nil {
		return err
	}
	c, err := g.NewCache(r)
	if err != nil {
		return err
	}
	defer c.Close()
	if err := c.Fill(); err != nil {
		return err
	}

	fmt.Fprint(e.out, c.String())
	counts := map[mc.Biome]int{}
	for _, b := range c.Biomes() {
		counts[b]++
	}
	biomes := make([]mc.Biome, 0, len(counts))
	for b := range counts {
		biomes = append(biomes, b)
	}
	sort.Slice(biomes, func(i, j int) bool {
		if counts[biomes[i]] != counts[biomes[j]] {
			return counts[biomes[i]] > counts[biomes[j]]
		}
		return biomes[i] < biomes[j]
	})
	fmt.Fprintln(e.out)
	for _, b := range biomes {
		fmt.Fprintf(e.out, "%4d %-28s %d\n", int32(b), b.Name(g.Version()), counts[b])
	}

	if e.opts.export {
		st, err := storage.New(e.opts.cfg.DataDir, e.log)
		if err != nil {
			return err
		}
		if _, err := st.SaveTile(storage.TileFromCache(g, c)); err != nil {
			return err
		}
	}
	return nil
}

func runStructures(_ context.Context, e *env) error {
	s, err := e.structure()
	if err != nil {
		return err
	}
	g, err := e.generator()
	if err != nil {
		return err
	}
	defer g.Close()

	o := e.opts
	found, err := hunt.StructuresInArea(g, s, o.rx0, o.rz0, o.rx1, o.rz1)
	if err != nil {
		return err
	}
	for _, pos := range found {
		fmt.Fprintf(e.out, "%s %d %d\n", s, pos.X, pos.Z)
	}
	e.log.Info("structures listed", "structure", s, "count", len(found))
	return nil
}

func runHunt(ctx context.Context, e *env) error {
	cfg := e.opts.cfg
	v, err := e.version()
	if err != nil {
		return err
	}
	s, err := e.structure()
	if err != nil {
		return err
	}

	searcher := &hunt.Searcher{
		Engine:    e.eng,
		Version:   v,
		Structure: s,
		Flags:     engine.Flags(cfg.Flags),
		MaxTrials: cfg.MaxTrials,
		Log:       e.log,
	}
	area := hunt.Area{MinX: cfg.Area.MinX, MinZ: cfg.Area.MinZ, MaxX: cfg.Area.MaxX, MaxZ: cfg.Area.MaxZ}
	w, err := searcher.Hunt(ctx, area)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.out, "%d\t%s at %d %d\n", w.Seed, s, w.Position.X, w.Position.Z)

	db, err := e.openStore()
	if err != nil || db == nil {
		return err
	}
	defer db.Close()
	return db.RecordWitness(ctx, store.Witness{
		Engine:    e.eng.Name(),
		Version:   v.String(),
		Structure: s.String(),
		Seed:      w.Seed,
		Lower48:   w.Lower48,
		Upper16:   w.Upper16,
		X:         w.Position.X,
		Z:         w.Position.Z,
		RegionX:   w.RegionX,
		RegionZ:   w.RegionZ,
		Trials:    w.Trials,
	})
}

func runStrongholds(ctx context.Context, e *env) error {
	g, err := e.generator()
	if err != nil {
		return err
	}
	defer g.Close()

	seq, err := g.Strongholds()
	if err != nil {
		return err
	}
	defer seq.Close()

	var chain []store.Stronghold
	for pos := range seq.All() {
		fmt.Fprintf(e.out, "%d %d\n", pos.X, pos.Z)
		chain = append(chain, store.Stronghold{Index: len(chain), X: pos.X, Z: pos.Z})
	}

	db, err := e.openStore()
	if err != nil || db == nil {
		return err
	}
	defer db.Close()
	return db.RecordStrongholds(ctx, e.eng.Name(), g.Version().String(), g.Seed(), chain)
}

func runVersions(_ context.Context, e *env) error {
	names := make([]string, 0, len(mc.Versions()))
	for _, v := range mc.Versions() {
		names = append(names, v.String())
	}
	fmt.Fprintf(e.out, "versions: %s\n", strings.Join(names, ", "))
	fmt.Fprintf(e.out, "engines: %s\n", strings.Join(engine.Registered(), ", "))
	return nil
}
