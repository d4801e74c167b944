// Package config loads trees from configuration sources.
//
// The package uses an interface-based design with four extension points:
//   - Parser: parses raw data into an ordered *tree.Mapping
//   - DataFetcher: retrieves raw data (file, memory, etc.)
//   - Validator: validates a decoded config struct
//   - Defaulter: applies default values to a decoded config struct
//
// # Layering
//
// Load reads its sources in order and merges each into the tree, so later
// sources override earlier ones key by key while nested sections are merged:
//
//	b, err := config.Load(
//	    config.WithDefaults(map[string]any{"server.port": 8080}),
//	    config.WithFile("config.yaml"),
//	    config.WithOptionalFile("config.local.yaml"),
//	    config.WithRules(config.Required("server.host")),
//	)
//
// # Path Selection
//
// A path selects part of the loaded tree. Paths use "." as the separator
// unless WithDelimiter says otherwise:
//
//	"api.permissions"           -> tree["api"]["permissions"]
//	""                          -> entire document
//
// # Structs
//
// Provider decodes the selected tree into a struct using its yaml tags:
//
//	type APIConfig struct {
//	    Timeout int    `yaml:"timeout"`
//	    BaseURL string `yaml:"base_url"`
//	}
//
//	provider := config.Provider(&APIConfig{}, "services.api")
//	cfg, err := provider(yamlparser.NewParser(), fetcher)
package config
