package compat

import (
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/gitworkflows/DEV-AiEXEC/internal/adapters/loader/gosource"
	"github.com/gitworkflows/DEV-AiEXEC/internal/adapters/loader/memory"
	"github.com/gitworkflows/DEV-AiEXEC/internal/app/canonical"
	"github.com/gitworkflows/DEV-AiEXEC/internal/core/namespace"
	"github.com/gitworkflows/DEV-AiEXEC/internal/core/registry"
)

// Runtime bundles the registry and loader the compatibility layer runs
// on. The process-wide instance is built once by Setup; tests construct
// their own with NewRuntime.
type Runtime struct {
	Registry *registry.Registry
	Loader   *memory.Loader
}

// Option configures a Runtime.
type Option func(*config)

type config struct {
	logger       *zap.Logger
	overridesDir string
}

// WithLogger sets the setup logger; the default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *config) { c.logger = log }
}

// WithOverridesDir points physical overrides at a different source root.
func WithOverridesDir(dir string) Option {
	return func(c *config) { c.overridesDir = dir }
}

// NewRuntime builds a fresh compatibility runtime: canonical tree,
// registry, redirect table, and physical overrides, in that order.
// Registration is best effort throughout; a partial canonical tree or a
// missing override file reduces coverage but never fails.
func NewRuntime(opts ...Option) *Runtime {
	cfg := &config{
		logger:       zap.NewNop(),
		overridesDir: "overrides",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	loader := memory.NewLoader().WithFileLoader(gosource.NewFileLoader())
	canonical.Install(loader)

	reg := registry.New(loader, registry.WithLogger(cfg.logger))

	// The legacy root is a real in-process namespace, not a redirect:
	// children link onto it as attributes.
	reg.RegisterLocal(namespace.New("aiexec"))

	for _, m := range Mappings {
		reg.RegisterRedirect(m.Shadow, m.Canonical)
	}
	for _, o := range Overrides {
		reg.RegisterPhysical(o.Shadow, filepath.Join(cfg.overridesDir, o.Path))
	}

	return &Runtime{Registry: reg, Loader: loader}
}

var (
	setupOnce sync.Once
	process   *Runtime
)

// Setup builds the process-wide compatibility runtime exactly once and
// returns it. Later calls, concurrent or not, get the same instance, so
// redirect nodes are never double-created.
func Setup(opts ...Option) *Runtime {
	setupOnce.Do(func() {
		process = NewRuntime(opts...)
	})
	return process
}
