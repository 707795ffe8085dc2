// Package util is a grab bag for file handling shared by the demo and the host.
package util

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// OpenLog opens path for appending, falling back to discard.
func OpenLog(path string, mode os.FileMode) (file io.Writer) {

	var err error
	file, err = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: logging discarded: %s\n", err.Error())
		file = io.Discard
	}

	return
}

func CloseLog(file io.Writer) {

	if closer, ok := file.(io.Closer); ok {
		closer.Close()
	}
}

// LoadConfig unmarshals yaml from path into cfg.
func LoadConfig(cfg any, path string) (err error) {

	data, err := os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read from %s", path)
		return
	}

	err = yaml.Unmarshal(data, cfg)
	err = errors.Wrapf(err, "failed to unmarshal %s", path)
	return
}

// WriteConfig marshals cfg to yaml at path.
func WriteConfig(cfg any, path string, mode os.FileMode) (err error) {

	data, err := yaml.Marshal(cfg)
	if err != nil {
		err = errors.Wrapf(err, "failed to marshal")
		return
	}

	err = os.WriteFile(path, data, mode)
	err = errors.Wrapf(err, "failed to write to %s", path)
	return
}

// SampleConfig writes data to path unless something is already there.
func SampleConfig(data []byte, path string, mode os.FileMode) (wrote bool, err error) {

	_, err = os.Stat(path)
	if err == nil {
		return
	}
	if !os.IsNotExist(err) {
		err = errors.Wrapf(err, "failed to stat %s", path)
		return
	}

	err = os.WriteFile(path, data, mode)
	if err != nil {
		err = errors.Wrapf(err, "failed to write to %s", path)
		return
	}

	wrote = true
	return
}
