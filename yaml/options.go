// Package yaml loads extraction options from YAML files.
package yaml

import (
	"errors"
	"io"
	"os"

	"github.com/fwojciec/readable"
	"gopkg.in/yaml.v3"
)

// LoadOptions reads options from the YAML file at path. Keys missing from
// the file keep their default values.
func LoadOptions(path string) (readable.Options, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return readable.Options{}, readable.Errorf(readable.ENOTFOUND, "config file not found: %s", path)
		}
		return readable.Options{}, err
	}
	defer f.Close()

	return DecodeOptions(f)
}

// DecodeOptions decodes YAML options from r on top of the defaults and
// validates the result. Unknown keys are rejected.
func DecodeOptions(r io.Reader) (readable.Options, error) {
	opts := readable.DefaultOptions()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return readable.Options{}, readable.Errorf(readable.EINVALID, "parse config: %v", err)
	}

	if err := opts.Validate(); err != nil {
		return readable.Options{}, err
	}
	return opts, nil
}
