package traverse_test

import (
	"errors"
	"fmt"

	traverse "github.com/0xalexb/hjarta-traverse"
	"github.com/0xalexb/hjarta-traverse/bag"
	"github.com/0xalexb/hjarta-traverse/config"
	filefetcher "github.com/0xalexb/hjarta-traverse/config/fetcher/file"
	yamlparser "github.com/0xalexb/hjarta-traverse/config/parser/yaml"

	"go.uber.org/fx"
)

// ServerConfig represents application server configuration.
// It implements both Defaulter and Validator interfaces from the config package.
type ServerConfig struct {
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
	Timeout int    `yaml:"timeout"`
}

// SetDefaults sets default values for the configuration.
func (c *ServerConfig) SetDefaults() bool {
	changed := false

	if c.Host == "" {
		c.Host = "localhost"
		changed = true
	}

	if c.Port == 0 {
		c.Port = 8080
		changed = true
	}

	if c.Timeout == 0 {
		c.Timeout = 30
		changed = true
	}

	return changed
}

// Validate validates the configuration.
func (c *ServerConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	if c.Timeout < 1 {
		return errors.New("timeout must be positive")
	}

	return nil
}

// ServerService is a service that depends on config.
type ServerService struct {
	Config *ServerConfig
}

// Address returns the server address from config.
func (s *ServerService) Address() string {
	return fmt.Sprintf("%s:%d", s.Config.Host, s.Config.Port)
}

// Example_appWithConfigIntegration demonstrates how to use App, Options, and Config together.
// It shows the complete workflow from defining configuration to dependency injection.
func Example_appWithConfigIntegration() {
	// yamlparser.NewParser and filefetcher.NewFetcher are Fx-friendly constructors.
	// fx.Annotate with fx.As casts concrete types to their interfaces for config.Provider.
	configModule := fx.Module("config",
		fx.Provide(
			fx.Annotate(
				yamlparser.NewParser,
				fx.As(new(config.Parser)),
			),
		),
		fx.Provide(
			fx.Annotate(
				filefetcher.NewFetcher("testdata/config.yaml"),
				fx.As(new(config.DataFetcher)),
			),
		),
		fx.Provide(config.Provider(new(ServerConfig), "server")),
	)

	serviceModule := fx.Module("service",
		fx.Provide(func(cfg *ServerConfig) *ServerService {
			return &ServerService{
				Config: cfg,
			}
		}),
	)

	var service *ServerService

	invokeModule := fx.Module("invoke",
		fx.Invoke(func(s *ServerService) {
			service = s
		}),
	)

	app := traverse.NewApp(
		traverse.WithLogLevel("error"),
		traverse.WithModules(configModule, serviceModule, invokeModule),
	)

	err := app.Start()
	if err != nil {
		fmt.Printf("Error starting app: %v\n", err)

		return
	}

	defer func() { _ = app.Stop() }()

	fmt.Printf("Server address: %s\n", service.Address())
	fmt.Printf("Timeout: %d\n", service.Config.Timeout)
	// Output:
	// Server address: api.example.com:9000
	// Timeout: 30
}

// Example_namedTree loads a file into a named tree and reads it by path.
func Example_namedTree() {
	var settings *bag.Bag

	app := traverse.NewApp(
		traverse.WithLogLevel("error"),
		traverse.WithTree("settings",
			config.WithDefaults(map[string]any{"server.timeout": 30}),
			config.WithFile("testdata/config.yaml"),
			config.WithRules(config.Required("server.host", "server.port")),
		),
		traverse.WithModules(fx.Invoke(fx.Annotate(func(b *bag.Bag) {
			settings = b
		}, fx.ParamTags(`name:"settings"`)))),
	)

	err := app.Start()
	if err != nil {
		fmt.Printf("Error starting app: %v\n", err)

		return
	}

	defer func() { _ = app.Stop() }()

	host, _ := settings.Get("server.host", nil)
	timeout, _ := settings.Get("server.timeout", nil)
	level, _ := settings.Get([]string{"log", "level"}, "info")
	fmt.Println(host, timeout, level)
	// Output: api.example.com 30 error
}
