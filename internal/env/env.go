// Package env writes environment variables to the OS-native persistent
// store. Callers depend on the Writer interface so the real store can be
// swapped out in tests.
package env

import (
	"os"

	"github.com/badgerodon/penv"
	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"
)

// Writer persists an environment variable beyond the current process.
type Writer interface {
	SetPersistent(name, value string) error
}

// SystemWriter persists through penv (user registry on Windows, a managed
// shell profile section elsewhere) and mirrors the value into the current
// process so children spawned by this run see it too. Already-open
// terminals keep their inherited value.
type SystemWriter struct{}

func (SystemWriter) SetPersistent(name, value string) error {
	log.Debug().Str("name", name).Int("len", len(value)).Msg("persisting environment variable")

	if err := penv.SetEnv(name, value); err != nil {
		return errors.Wrapf(err, "persisting %s", name)
	}
	if err := os.Setenv(name, value); err != nil {
		return errors.Wrapf(err, "updating session %s", name)
	}
	return nil
}
