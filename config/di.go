package config

import (
	"fmt"
	"log/slog"

	"github.com/0xalexb/hjarta-traverse/bag"

	"go.uber.org/fx"
)

// NewModule creates an Fx module providing a named *bag.Bag loaded from opts.
// The name is used as both the module name and the DI named tag of the tree.
// Sources are read when the tree is first requested.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	return fx.Module(name,
		fx.Provide(
			fx.Annotate(
				func() (*bag.Bag, error) {
					loaded, err := Load(opts...)
					if err != nil {
						return nil, fmt.Errorf("loading tree %q: %w", name, err)
					}

					slog.Debug("tree loaded", slog.String("name", name))

					return loaded, nil
				},
				fx.ResultTags(fmt.Sprintf(`name:"%s"`, name)),
			),
		),
	)
}
