package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sghaida/rootdi/config"
	"github.com/sghaida/rootdi/di"
	"github.com/sghaida/rootdi/logger"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "rootdi-demo:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("rootdi-demo", flag.ContinueOnError)
	configFile := fs.String("config", "", "path to a YAML config file")
	envFile := fs.String("env", "", "path to a .env file")
	dump := fs.Bool("dump", false, "print registrations as YAML")
	name := fs.String("name", "world", "who to greet")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Step 1: config + logging
	var opts []config.LoaderOption
	if *configFile != "" {
		opts = append(opts, config.WithConfigFile(*configFile))
	}
	if *envFile != "" {
		opts = append(opts, config.WithEnvFile(*envFile))
	}
	cfg, err := config.Load(opts...)
	if err != nil {
		return err
	}
	logger.Init(cfg.Logging)
	log := logger.WithComponent("demo").WithFields(logger.Fields("app", cfg.App.Name, "env", cfg.App.Env))

	// Step 2: composition root
	infraModules(cfg).Build()
	featureModules().Build()

	if cfg.Container.WarmOnStart {
		if err := di.Root().Warm(); err != nil {
			return fmt.Errorf("warm root: %w", err)
		}
	}

	// Step 3: use the accessors
	for i := 0; i < 2; i++ {
		msg, err := greet(*name)
		if err != nil {
			return err
		}
		fmt.Println(msg)
	}
	log.Info("greeted", logger.Fields(logger.FieldName, *name))

	if *dump || cfg.Container.DumpRegistrations {
		return dumpRegistrations(os.Stdout, di.Root())
	}
	return nil
}
