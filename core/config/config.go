package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config locates the fixture corpus and names the files each validation
// category covers. The fixtures directory is always threaded explicitly;
// there is no computed-at-import default path.
type Config struct {
	FixturesDir          string   `yaml:"fixtures_dir"`
	OutputDir            string   `yaml:"output_dir"`
	TicketFixtures       []string `yaml:"ticket_fixtures"`
	MergeRequestFixtures []string `yaml:"merge_request_fixtures"`
}

// Default returns the conventional repository layout.
func Default() Config {
	return Config{
		FixturesDir: "fixtures",
		OutputDir:   "out",
		TicketFixtures: []string{
			"jira-backend-ticket.json",
			"jira-frontend-ticket.json",
			"jira-infrastructure-ticket.json",
			"jira-bug-ticket.json",
		},
		MergeRequestFixtures: []string{
			"gitlab-mr-passed.json",
			"gitlab-mr-failed.json",
			"gitlab-mr-running.json",
		},
	}
}

// Load reads a YAML config file, expanding ${ENV} references before parsing.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	expanded := os.ExpandEnv(string(raw))
	expanded = strings.ReplaceAll(expanded, "\r\n", "\n")

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.FixturesDir == "" {
		return fmt.Errorf("fixtures_dir is required")
	}
	if len(c.TicketFixtures)+len(c.MergeRequestFixtures) == 0 {
		return fmt.Errorf("at least one fixture file must be configured")
	}
	return nil
}
