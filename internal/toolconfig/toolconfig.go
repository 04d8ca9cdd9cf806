package toolconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ConfigPath is the path to the tool config file, relative to the process
// working directory.
const ConfigPath = "config/meshgen.json"

// Config holds the run configuration: which primitive definition to build,
// where to write the STL file, and whether to open the preview window.
// There are no CLI flags or environment variables; defaults are fixed at
// build time.
type Config struct {
	Output    string `json:"output"`
	Primitive string `json:"primitive"`
	Preview   bool   `json:"preview"`
}

// Default returns the build-time defaults: the reference cube written to
// test.stl, preview off.
func Default() Config {
	return Config{
		Output:    "test.stl",
		Primitive: "assets/primitives/cube.yaml",
		Preview:   false,
	}
}

// Load reads the config from config/meshgen.json. If the file is missing or
// invalid, returns Default() and does not create a file.
func Load() (Config, error) {
	data, err := os.ReadFile(ConfigPath)
	if err != nil {
		return Default(), nil
	}
	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return Default(), nil
	}
	if c.Output == "" {
		c.Output = Default().Output
	}
	if c.Primitive == "" {
		c.Primitive = Default().Primitive
	}
	return c, nil
}

// Save writes the config to config/meshgen.json, creating the config
// directory if needed.
func Save(c Config) error {
	dir := filepath.Dir(ConfigPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(ConfigPath, data, 0644)
}
