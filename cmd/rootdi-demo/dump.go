package main

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/sghaida/rootdi/di"
)

type registrationDump struct {
	Modules []di.Registration `yaml:"modules"`
}

func dumpRegistrations(w io.Writer, r *di.Resolver) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(registrationDump{Modules: r.Registrations()}); err != nil {
		return err
	}
	return enc.Close()
}
