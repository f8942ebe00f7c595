// SPDX-License-Identifier: Unlicense OR MIT

package env

import "github.com/hashicorp/go-multierror"

// Plugin batches a cohesive feature (theme, localizer, service bundle)
// into a pair of hooks, per §4.B. Because Env is persistent rather
// than mutated in place, Install/Uninstall return the new environment
// instead of taking "&mut Env".
type Plugin struct {
	Install   func(Env) (Env, error)
	Uninstall func(Env) (Env, error)
}

// Install applies p to e, returning the resulting environment.
func (e Env) Install(p Plugin) (Env, error) {
	if p.Install == nil {
		return e, nil
	}
	return p.Install(e)
}

// Uninstall reverses p against e.
func (e Env) Uninstall(p Plugin) (Env, error) {
	if p.Uninstall == nil {
		return e, nil
	}
	return p.Uninstall(e)
}

// InstallAll applies every plugin in order, collecting every failure
// with go-multierror rather than stopping at the first one, so a
// partially-applied feature bundle reports every key that failed to
// install.
func InstallAll(e Env, plugins ...Plugin) (Env, error) {
	var errs error
	for _, p := range plugins {
		next, err := e.Install(p)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		e = next
	}
	return e, errs
}

// UninstallAll reverses every plugin in order, collecting failures the
// same way InstallAll does.
func UninstallAll(e Env, plugins ...Plugin) (Env, error) {
	var errs error
	for _, p := range plugins {
		next, err := e.Uninstall(p)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		e = next
	}
	return e, errs
}
