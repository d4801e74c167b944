package config_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/0xalexb/hjarta-traverse/bag"
	"github.com/0xalexb/hjarta-traverse/config"
	yamlparser "github.com/0xalexb/hjarta-traverse/config/parser/yaml"
)

// AppConfig represents application configuration.
type AppConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// SetDefaults sets default values for the configuration.
func (c *AppConfig) SetDefaults() bool {
	changed := false

	if c.Host == "" {
		c.Host = "localhost"
		changed = true
	}

	if c.Port == 0 {
		c.Port = 8080
		changed = true
	}

	return changed
}

// Validate validates the configuration.
func (c *AppConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}

// StaticDataFetcher implements config.DataFetcher with static data.
// Useful for unit tests that don't need file I/O.
type StaticDataFetcher struct {
	Data []byte
}

// Fetch returns the static data.
func (f *StaticDataFetcher) Fetch() ([]byte, error) {
	return f.Data, nil
}

func ExampleProvider() {
	cfg := &AppConfig{}

	// An empty path decodes the entire document.
	provider := config.Provider(cfg, "")

	parser := yamlparser.NewParser()
	fetcher := &StaticDataFetcher{
		Data: []byte("host: example.com\n"),
	}

	result, err := provider(parser, fetcher)
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	fmt.Printf("Host: %s, Port: %d\n", result.Host, result.Port)
	// Output: Host: example.com, Port: 8080
}

func ExampleProvider_pathNavigation() {
	yamlData := []byte(`
api:
  host: api.example.com
  port: 3000
admin:
  host: admin.example.com
  port: 8080
`)

	cfg := &AppConfig{}

	// Select the "api" section.
	provider := config.Provider(cfg, "api")

	result, err := provider(yamlparser.NewParser(), &StaticDataFetcher{Data: yamlData})
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	fmt.Printf("API Config - Host: %s, Port: %d\n", result.Host, result.Port)
	// Output: API Config - Host: api.example.com, Port: 3000
}

func ExampleTreeProvider() {
	provider := config.TreeProvider("services")

	loaded, err := provider(yamlparser.NewParser(), &StaticDataFetcher{
		Data: []byte("services:\n  web:\n    replicas: 3\n  worker:\n    replicas: 1\n"),
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	replicas, err := bag.Lookup[int](loaded, "web.replicas")
	fmt.Println(replicas, err)
	// Output: 3 <nil>
}

func ExampleLoad() {
	dir, err := os.MkdirTemp("", "traverse-example")
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}
	defer os.RemoveAll(dir)

	base := filepath.Join(dir, "config.yaml")
	_ = os.WriteFile(base, []byte("server:\n  host: example.com\n"), 0o600)

	loaded, err := config.Load(
		config.WithDefaults(map[string]any{"server.port": 8080}),
		config.WithFile(base),
		config.WithOptionalFile(filepath.Join(dir, "config.local.json")),
		config.WithRules(config.Required("server.host")),
	)
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	out, _ := json.Marshal(loaded)
	fmt.Println(string(out))
	// Output: {"server":{"port":8080,"host":"example.com"}}
}
