// Package main provides the AiEXEC compatibility-layer CLI
package main

import (
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"

	"github.com/gitworkflows/DEV-AiEXEC/internal/infrastructure/settings"
	"github.com/gitworkflows/DEV-AiEXEC/pkg/aiexec"
)

// Version information set during build
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("AiEXEC %s (commit: %s, built: %s)\n", Version, Commit, BuildTime)
		return
	}

	if len(os.Args) > 1 && os.Args[1] == "namespaces" {
		rt := aiexec.Setup(setupOptions()...)
		names := rt.Names()
		sort.Strings(names)
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	fmt.Println("AiEXEC - Legacy namespace compatibility layer")
	fmt.Println("Commands: version, namespaces")
}

// setupOptions enables debug logging in development mode.
func setupOptions() []aiexec.Option {
	if !settings.Dev() {
		return nil
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil
	}
	return []aiexec.Option{aiexec.WithLogger(logger)}
}
