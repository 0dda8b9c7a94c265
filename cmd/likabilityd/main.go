package main

import (
	"flag"
	"fmt"
	"os"

	"likability/internal/di"
	"likability/internal/structures"
)

func main() {
	flags := &structures.CliFlags{}
	flag.StringVar(&flags.ConfigPath, "config", "config.yaml", "path to the config file")
	flag.BoolVar(&flags.DebugMode, "debug", false, "log to stderr as well")
	flag.Parse()

	app, err := di.InitApp(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start: %s\n", err)
		os.Exit(1)
	}

	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "shutdown error: %s\n", err)
		os.Exit(1)
	}
}
