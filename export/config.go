package export

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Route maps a column name to the database table that should receive any
// reconstructed table carrying that column.
type Route struct {
	Column string `yaml:"column"`
	Table  string `yaml:"table"`
}

// Config configures the SQL exporter.
type Config struct {
	// Database is the SQLite database path.
	Database string `yaml:"database"`

	// DefaultTable receives tables no route matches.
	DefaultTable string `yaml:"default_table"`

	// Routes are checked in order; the first whose column is present wins.
	Routes []Route `yaml:"routes"`

	// RowIDs adds a uuid column with a fresh identifier per row.
	RowIDs bool `yaml:"row_ids"`
}

func (c *Config) defaults() {
	if c.Database == "" {
		c.Database = "phone_data.sqlite"
	}
	if c.DefaultTable == "" {
		c.DefaultTable = "phone_data"
	}
	if c.Routes == nil {
		c.Routes = []Route{
			{Column: "Skill", Table: "skill_data"},
			{Column: "VDN", Table: "vdn_data"},
		}
	}
}

// LoadConfig reads a YAML exporter config and applies defaults for anything
// left unset. LoadConfig("") returns the pure defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}
	cfg.defaults()
	return cfg, nil
}
