// Package config carries the adapter's construction options (message id
// override, protocol dialect, output format, the three auto_* toggles) plus
// the ambient knobs (observer, buffer size) a production deployment needs,
// and loads them from the environment or a YAML file.
package config
