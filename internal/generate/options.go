package generate

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Option keys accepted in plugin parameters and config files.
const (
	KeyOutDir         = "out"
	KeyGoPackage      = "go_package"
	KeySplitHeaders   = "split_headers"
	KeyOutputListFile = "output_list_file"
)

var optionKeys = []string{KeyOutDir, KeyGoPackage, KeySplitHeaders, KeyOutputListFile}

// UnknownOptionError is returned for an option key the generator does not understand.
type UnknownOptionError struct {
	Key string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option %q (known: %s)", e.Key, strings.Join(optionKeys, ", "))
}

// Set assigns one option from its textual form.
func (o *Options) Set(key, value string) error {
	switch key {
	case KeyOutDir:
		o.OutDir = value
	case KeyGoPackage:
		o.GoPackage = value
	case KeySplitHeaders:
		// A bare key enables the flag.
		if value == "" {
			o.SplitHeaders = true
			return nil
		}
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("option %s: %w", key, err)
		}
		o.SplitHeaders = v
	case KeyOutputListFile:
		o.OutputListFile = value
	default:
		return &UnknownOptionError{Key: key}
	}
	return nil
}

// ParseParameter parses a plugin parameter string of comma separated key=value pairs.
func ParseParameter(param string) (Options, error) {
	var o Options
	if err := o.ApplyParameter(param); err != nil {
		return Options{}, err
	}
	return o, nil
}

// ApplyParameter sets each key=value pair of param on o. Keys absent from param keep their
// current value.
func (o *Options) ApplyParameter(param string) error {
	for _, item := range strings.Split(param, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		key, value, _ := strings.Cut(item, "=")
		if err := o.Set(strings.TrimSpace(key), strings.TrimSpace(value)); err != nil {
			return err
		}
	}
	return nil
}

type optionsFile struct {
	OutDir         string `yaml:"out"`
	GoPackage      string `yaml:"go_package"`
	SplitHeaders   bool   `yaml:"split_headers"`
	OutputListFile string `yaml:"output_list_file"`
}

// LoadOptionsFile reads options from a YAML file. Unknown keys are rejected.
func LoadOptionsFile(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("read config %s: %w", path, err)
	}
	o, err := DecodeOptions(data)
	if err != nil {
		return Options{}, fmt.Errorf("config %s: %w", path, err)
	}
	return o, nil
}

// DecodeOptions decodes a YAML options document.
func DecodeOptions(data []byte) (Options, error) {
	var keys map[string]yaml.Node
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return Options{}, err
	}
	sorted := make([]string, 0, len(keys))
	for k := range keys {
		sorted = append(sorted, k)
	}
	slices.Sort(sorted)
	for _, k := range sorted {
		if !slices.Contains(optionKeys, k) {
			return Options{}, &UnknownOptionError{Key: k}
		}
	}

	var f optionsFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, err
	}
	return Options{
		OutDir:         f.OutDir,
		GoPackage:      f.GoPackage,
		SplitHeaders:   f.SplitHeaders,
		OutputListFile: f.OutputListFile,
	}, nil
}
