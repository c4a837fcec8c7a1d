//go:build cgo
// +build cgo

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/appengine-ltd/pondside/internal/gui"
)

// version, commit, date are injected at build time (see .goreleaser.yaml).
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		seed        int64
		profilePath string
		tuningPath  string
		noCatchLog  bool
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Int64Var(&seed, "seed", 0, "deterministic run seed (0 = time-based)")
	flag.StringVar(&profilePath, "profile", gui.DefaultProfileFile, "path to the profile save file")
	flag.StringVar(&tuningPath, "tuning", "", "optional YAML tuning override file")
	flag.BoolVar(&noCatchLog, "no-log", false, "disable the SQLite catch log")
	flag.Parse()

	if showVersion {
		fmt.Printf("Pondside %s (%s) %s\n", version, commit, date)
		return
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	app := gui.NewApp(gui.AppConfig{
		Version:     version,
		Commit:      commit,
		BuildDate:   date,
		Seed:        seed,
		ProfilePath: profilePath,
		TuningPath:  tuningPath,
		CatchLogOff: noCatchLog,
	})

	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
