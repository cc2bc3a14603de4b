package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of one CLI run. Job files set the same fields.
type Config struct {
	Engine    string `yaml:"engine" json:"engine"` // "synthetic" or "cubiomes"
	Version   string `yaml:"version" json:"version"`
	Seed      int64  `yaml:"seed" json:"seed"`
	Dimension string `yaml:"dimension" json:"dimension"`
	Flags     uint32 `yaml:"flags" json:"flags"`

	Structure string `yaml:"structure" json:"structure"`
	Area      Area   `yaml:"area" json:"area"`
	MaxTrials int64  `yaml:"max_trials" json:"max_trials"` // 0 = unbounded

	Range Range `yaml:"range" json:"range"`

	DBPath   string `yaml:"db_path" json:"db_path"`
	DataDir  string `yaml:"data_dir" json:"data_dir"`
	LogLevel string `yaml:"log_level" json:"log_level"`
}

// Area is the block rectangle a hunt targets, max exclusive.
type Area struct {
	MinX int32 `yaml:"min_x" json:"min_x"`
	MinZ int32 `yaml:"min_z" json:"min_z"`
	MaxX int32 `yaml:"max_x" json:"max_x"`
	MaxZ int32 `yaml:"max_z" json:"max_z"`
}

// Range is the cuboid an area query fills.
type Range struct {
	Scale int32  `yaml:"scale" json:"scale"`
	X     int32  `yaml:"x" json:"x"`
	Z     int32  `yaml:"z" json:"z"`
	SizeX uint32 `yaml:"size_x" json:"size_x"`
	SizeZ uint32 `yaml:"size_z" json:"size_z"`
	Y     int32  `yaml:"y" json:"y"`
	SizeY uint32 `yaml:"size_y" json:"size_y"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Engine:    "synthetic",
		Version:   "1.21",
		Dimension: "overworld",
		Structure: "village",
		MaxTrials: 1 << 24,
		Range: Range{
			Scale: 1,
			SizeX: 16,
			SizeZ: 16,
			Y:     64,
		},
		DataDir:  "data",
		LogLevel: "info",
	}
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["engine"] && fromFile.Engine != "" {
		cfg.Engine = fromFile.Engine
	}
	if !explicitFlags["version"] && fromFile.Version != "" {
		cfg.Version = fromFile.Version
	}
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["dimension"] && fromFile.Dimension != "" {
		cfg.Dimension = fromFile.Dimension
	}
	if !explicitFlags["flags"] {
		cfg.Flags = fromFile.Flags
	}
	if !explicitFlags["structure"] && fromFile.Structure != "" {
		cfg.Structure = fromFile.Structure
	}
	if !explicitFlags["min-x"] {
		cfg.Area.MinX = fromFile.Area.MinX
	}
	if !explicitFlags["min-z"] {
		cfg.Area.MinZ = fromFile.Area.MinZ
	}
	if !explicitFlags["max-x"] {
		cfg.Area.MaxX = fromFile.Area.MaxX
	}
	if !explicitFlags["max-z"] {
		cfg.Area.MaxZ = fromFile.Area.MaxZ
	}
	// fromFile starts from DefaultConfig, so zero here is an explicit "unbounded".
	if !explicitFlags["max-trials"] {
		cfg.MaxTrials = fromFile.MaxTrials
	}
	if !explicitFlags["scale"] && fromFile.Range.Scale != 0 {
		cfg.Range.Scale = fromFile.Range.Scale
	}
	if !explicitFlags["x"] {
		cfg.Range.X = fromFile.Range.X
	}
	if !explicitFlags["z"] {
		cfg.Range.Z = fromFile.Range.Z
	}
	if !explicitFlags["size-x"] && fromFile.Range.SizeX != 0 {
		cfg.Range.SizeX = fromFile.Range.SizeX
	}
	if !explicitFlags["size-z"] && fromFile.Range.SizeZ != 0 {
		cfg.Range.SizeZ = fromFile.Range.SizeZ
	}
	if !explicitFlags["y"] {
		cfg.Range.Y = fromFile.Range.Y
	}
	if !explicitFlags["size-y"] {
		cfg.Range.SizeY = fromFile.Range.SizeY
	}
	if !explicitFlags["db"] && fromFile.DBPath != "" {
		cfg.DBPath = fromFile.DBPath
	}
	if !explicitFlags["data-dir"] && fromFile.DataDir != "" {
		cfg.DataDir = fromFile.DataDir
	}
	if !explicitFlags["log-level"] && fromFile.LogLevel != "" {
		cfg.LogLevel = fromFile.LogLevel
	}
}

//go:embed job.schema.json
var jobSchemaJSON string

var (
	schemaOnce sync.Once
	jobSchema  *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource("job.schema.json", strings.NewReader(jobSchemaJSON)); err != nil {
			schemaErr = fmt.Errorf("add job schema: %w", err)
			return
		}
		jobSchema, schemaErr = c.Compile("job.schema.json")
	})
	return jobSchema, schemaErr
}

// Validate checks a decoded job document against the job schema.
func Validate(doc any) error {
	s, err := compiledSchema()
	if err != nil {
		return err
	}
	if err := s.Validate(doc); err != nil {
		return fmt.Errorf("validate job: %w", err)
	}
	return nil
}

// Parse decodes a YAML job document over DefaultConfig. The document is checked
// against the job schema first, so unknown keys and wrong types are errors.
func Parse(data []byte) (*Config, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse job: %w", err)
	}
	if raw == nil {
		raw = map[string]any{}
	}

	// The schema validator works on JSON values; round-trip through JSON so
	// YAML integers and maps take their JSON shapes.
	js, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("convert job: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(js))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("convert job: %w", err)
	}
	if err := Validate(doc); err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse job: %w", err)
	}
	return cfg, nil
}

// Load reads and parses the job file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read job: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
