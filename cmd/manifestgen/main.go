// Command manifestgen regenerates the committed tool manifest
// (tools.manifest.json) from the static capability catalogs. It is run as a
// build step; the out-of-process test harness reads the artifact to register
// equivalent simulated tools without a live host document. Any configuration
// error in the catalogs fails the build.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"goa.design/clue/log"
	"gopkg.in/yaml.v3"

	officetools "goa.design/officetools"
	"goa.design/officetools/manifest"
)

// config is the optional YAML configuration for the generator.
type config struct {
	// Version overrides the manifest schema version.
	Version string `yaml:"version"`
	// Output is the manifest file path.
	Output string `yaml:"output"`
}

func main() {
	var (
		configPath = flag.String("config", "", "optional YAML config file")
		output     = flag.String("o", "tools.manifest.json", "output file path")
		version    = flag.String("version", "", "manifest schema version override")
	)
	flag.Parse()

	ctx := log.Context(context.Background(), log.WithFormat(log.FormatText))

	cfg := config{Output: *output, Version: *version}
	if *configPath != "" {
		raw, err := os.ReadFile(*configPath)
		if err != nil {
			log.Fatal(ctx, err, log.KV{K: "msg", V: "read config"})
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			log.Fatal(ctx, err, log.KV{K: "msg", V: "parse config"})
		}
		if cfg.Output == "" {
			cfg.Output = *output
		}
	}

	m, err := manifest.Generate(cfg.Version, officetools.CatalogBases()...)
	if err != nil {
		log.Fatal(ctx, err, log.KV{K: "msg", V: "manifest generation failed"})
	}
	if err := m.WriteFile(cfg.Output); err != nil {
		log.Fatal(ctx, err, log.KV{K: "msg", V: "write manifest"})
	}
	log.Info(ctx,
		log.KV{K: "msg", V: "manifest written"},
		log.KV{K: "path", V: cfg.Output},
		log.KV{K: "version", V: m.Version},
		log.KV{K: "tools", V: fmt.Sprintf("%d", len(m.Tools))},
	)
}
