// Command foort traces null geodesics through a configured spacetime
// and writes per-pixel diagnostic output to file. Grounded on spec.md
// §6's CLI surface: a single positional argument naming the config
// file, with a missing argument treated as a non-error shutdown.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/drmayerson/FOORT-sub000/internal/config"
	"github.com/drmayerson/FOORT-sub000/internal/engine"
	"github.com/drmayerson/FOORT-sub000/internal/foortlog"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: foort <config-file>")
		os.Exit(0)
	}

	log := foortlog.New("foort", foortlog.LevelProcedure)

	reader := config.NewReader(log)
	cfg, err := reader.Load(os.Args[1])
	if err != nil {
		log.Warn("msg", "failed to load config, using documented defaults", "err", err)
		cfg = config.Default()
	}

	eng, err := engine.Build(cfg, log)
	if err != nil {
		log.Log(foortlog.LevelWarning, "msg", "failed to build engine", "err", err)
		os.Exit(0)
	}

	if err := eng.Run(context.Background()); err != nil {
		log.Log(foortlog.LevelWarning, "msg", "engine run ended with error", "err", err)
	}
}
