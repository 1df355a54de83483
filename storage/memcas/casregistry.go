package memcas

import (
	"flag"

	"xdao.co/cid/storage"
	"xdao.co/cid/storage/casregistry"
)

func init() {
	casregistry.MustRegister(casregistry.Backend{
		Name:          "memcas",
		Description:   "In-memory CAS (objects live for the process lifetime)",
		Usage:         casregistry.UsageCLI | casregistry.UsageDaemon,
		RegisterFlags: func(fs *flag.FlagSet) {},
		Open: func() (storage.CAS, func() error, error) {
			return New(), nil, nil
		},
	})
}
