package main

import (
	"github.com/sghaida/rootdi/config"
	"github.com/sghaida/rootdi/di"
)

// infraModules are the process-wide services.
func infraModules(cfg config.Config) *di.Resolver {
	return di.NewModules().
		Add(di.NewModule(func() Clock { return systemClock{} }, di.AsSingleton())).
		Add(di.NewModule(func() *MemoryStore { return &MemoryStore{} }, di.AsSingleton())).
		Add(di.Provide(cfg.App.Env, di.Named("app.env"))).
		Resolver()
}

// featureModules are built separately to show root merging.
func featureModules() *di.Resolver {
	return di.NewResolver(
		di.NewModule(func() *Greeter { return &Greeter{Prefix: "Hello"} }),
	)
}
