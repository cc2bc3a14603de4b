package storage

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/OCharnyshevich/cubiomes-go/pkg/generator"
)

// TileFormat is the version written into every tile header.
const TileFormat = 1

const tileExt = ".tile.zst"

// ErrCorruptTile is returned when a tile's payload does not match its header.
var ErrCorruptTile = errors.New("corrupt tile")

// Storage handles file-based persistence of filled biome caches.
type Storage struct {
	dir string
	log *slog.Logger
}

// New creates a new Storage rooted at dir, creating subdirectories as needed.
func New(dir string, log *slog.Logger) (*Storage, error) {
	dirs := []string{
		dir,
		filepath.Join(dir, "tiles"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return nil, fmt.Errorf("create directory %s: %w", d, err)
		}
	}
	return &Storage{dir: dir, log: log}, nil
}

// TileHeader identifies what a tile holds and how it was generated.
type TileHeader struct {
	Format    int    `json:"format"`
	Engine    string `json:"engine"`
	Version   string `json:"version"`
	Seed      int64  `json:"seed"`
	Dimension string `json:"dimension"`
	Flags     uint32 `json:"flags"`

	Scale int32  `json:"scale"`
	X     int32  `json:"x"`
	Z     int32  `json:"z"`
	SizeX uint32 `json:"size_x"`
	SizeZ uint32 `json:"size_z"`
	Y     int32  `json:"y"`
	SizeY uint32 `json:"size_y"`
}

// Range returns the range the tile covers.
func (h TileHeader) Range() generator.Range {
	return generator.Range{
		Scale: generator.Scale(h.Scale),
		X:     h.X,
		Z:     h.Z,
		SizeX: h.SizeX,
		SizeZ: h.SizeZ,
		Y:     h.Y,
		SizeY: h.SizeY,
	}
}

// Tile is one filled cache: raw biome ids in cache index order.
type Tile struct {
	Header TileHeader
	Biomes []int32
}

// TileFromCache captures the filled cells of c, generated by g.
func TileFromCache(g *generator.Generator, c *generator.Cache) Tile {
	r := c.Range()
	raw := c.Raw()
	biomes := make([]int32, len(raw))
	copy(biomes, raw)
	return Tile{
		Header: TileHeader{
			Format:    TileFormat,
			Engine:    g.Engine().Name(),
			Version:   g.Version().String(),
			Seed:      g.Seed(),
			Dimension: g.Dimension().String(),
			Flags:     uint32(g.Flags()),
			Scale:     int32(r.Scale),
			X:         r.X,
			Z:         r.Z,
			SizeX:     r.SizeX,
			SizeZ:     r.SizeZ,
			Y:         r.Y,
			SizeY:     r.SizeY,
		},
		Biomes: biomes,
	}
}

// TilePath is where a tile with header h is stored.
func (s *Storage) TilePath(h TileHeader) string {
	name := fmt.Sprintf("s%d_x%d_z%d_y%d_%dx%dx%d%s", h.Scale, h.X, h.Z, h.Y, h.SizeX, h.SizeZ, max(h.SizeY, 1), tileExt)
	return filepath.Join(s.dir, "tiles", h.Engine, h.Version, fmt.Sprint(h.Seed), h.Dimension, name)
}

// SaveTile writes t atomically and returns its path.
func (s *Storage) SaveTile(t Tile) (string, error) {
	if want := t.Header.Range().Cells(); uint64(len(t.Biomes)) != want {
		return "", fmt.Errorf("tile holds %d cells, header says %d: %w", len(t.Biomes), want, ErrCorruptTile)
	}
	t.Header.Format = TileFormat

	path := s.TilePath(t.Header)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create tile directory: %w", err)
	}
	err := s.atomicWrite(path, func(w io.Writer) error {
		return writeTile(w, t)
	})
	if err != nil {
		return "", err
	}
	s.log.Info("saved tile", "path", path, "cells", len(t.Biomes))
	return path, nil
}

// LoadTile reads the tile at path.
func (s *Storage) LoadTile(path string) (Tile, error) {
	f, err := os.Open(path)
	if err != nil {
		return Tile{}, fmt.Errorf("open tile: %w", err)
	}
	defer f.Close()

	t, err := readTile(f)
	if err != nil {
		return Tile{}, fmt.Errorf("read tile %s: %w", path, err)
	}
	return t, nil
}

// ListTiles returns the paths of all stored tiles, sorted.
func (s *Storage) ListTiles() ([]string, error) {
	var paths []string
	root := filepath.Join(s.dir, "tiles")
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, tileExt) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list tiles: %w", err)
	}
	sort.Strings(paths)
	return paths, nil
}

// A tile is a zstd stream holding one JSON header line followed by the
// biome ids as little-endian int32.
func writeTile(w io.Writer, t Tile) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("create encoder: %w", err)
	}
	bw := bufio.NewWriter(enc)

	hb, err := json.Marshal(t.Header)
	if err != nil {
		enc.Close()
		return fmt.Errorf("marshal header: %w", err)
	}
	bw.Write(hb)
	bw.WriteByte('\n')
	if err := binary.Write(bw, binary.LittleEndian, t.Biomes); err != nil {
		enc.Close()
		return fmt.Errorf("write biomes: %w", err)
	}
	if err := bw.Flush(); err != nil {
		enc.Close()
		return fmt.Errorf("flush tile: %w", err)
	}
	return enc.Close()
}

func readTile(r io.Reader) (Tile, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return Tile{}, fmt.Errorf("create decoder: %w", err)
	}
	defer dec.Close()
	br := bufio.NewReader(dec)

	line, err := br.ReadBytes('\n')
	if err != nil {
		return Tile{}, fmt.Errorf("read header: %w", err)
	}
	var t Tile
	if err := json.Unmarshal(line, &t.Header); err != nil {
		return Tile{}, fmt.Errorf("parse header: %w", err)
	}
	if t.Header.Format != TileFormat {
		return Tile{}, fmt.Errorf("tile format %d: %w", t.Header.Format, ErrCorruptTile)
	}
	if err := t.Header.Range().Validate(); err != nil {
		return Tile{}, fmt.Errorf("tile range: %w", err)
	}

	t.Biomes = make([]int32, t.Header.Range().Cells())
	if err := binary.Read(br, binary.LittleEndian, t.Biomes); err != nil {
		return Tile{}, fmt.Errorf("read biomes: %w: %w", ErrCorruptTile, err)
	}
	if _, err := br.ReadByte(); err != io.EOF {
		return Tile{}, fmt.Errorf("trailing data: %w", ErrCorruptTile)
	}
	return t, nil
}

// atomicWrite writes a file through write using a temp file + rename.
func (s *Storage) atomicWrite(path string, write func(io.Writer) error) error {
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
