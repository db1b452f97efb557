// Package gosource loads standalone Go source files as namespace units
// using the Yaegi interpreter. Exported package-level symbols of the file
// become the attributes of the resulting namespace.
package gosource

import (
	"fmt"
	"os"
	"strings"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"github.com/gitworkflows/DEV-AiEXEC/internal/core/namespace"
)

// FileLoader interprets Go source files on demand. Each load runs in a
// fresh interpreter so units cannot observe each other's state.
type FileLoader struct{}

// NewFileLoader creates a file loader.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// LoadFile reads, interprets, and exports path as a namespace bound to
// dotted. A missing file surfaces the os.Stat error so callers can apply
// their best-effort policy.
func (l *FileLoader) LoadFile(dotted, path string) (*namespace.Namespace, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("loading interpreter stdlib: %w", err)
	}
	if _, err := i.Eval(string(src)); err != nil {
		return nil, fmt.Errorf("evaluating %s: %w", path, err)
	}

	pkg := packageName(string(src))
	if pkg == "" {
		return nil, fmt.Errorf("no package clause in %s", path)
	}

	ns := namespace.New(dotted)
	// The interpreter keys evaluated packages differently depending on
	// how they were brought in; probe the known layouts.
	for _, key := range []string{pkg, pkg + "/" + pkg, "main"} {
		for _, symbols := range i.Symbols(key) {
			for name, value := range symbols {
				if !value.IsValid() || !value.CanInterface() {
					continue
				}
				ns.SetAttr(name, value.Interface())
			}
		}
		if ns.Len() > 0 {
			break
		}
	}
	if ns.Len() == 0 {
		return nil, fmt.Errorf("no exported symbols in %s", path)
	}
	return ns, nil
}

// packageName scans source text for the package clause.
func packageName(src string) string {
	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(line, "package "); ok {
			return strings.TrimSpace(strings.SplitN(rest, "//", 2)[0])
		}
	}
	return ""
}
