// This file is part of Gopherscope.
//
// Gopherscope is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherscope is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherscope.  If not, see <https://www.gnu.org/licenses/>.

package bench

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/gopherscope/notifications"
	"github.com/jetsetilly/gopherscope/paths"
	"gopkg.in/yaml.v3"
)

// BenchFile is the name of the bench file in the resource directory that is
// read by Load().
const BenchFile = "bench.yaml"

// Config is the content of a bench file.
type Config struct {
	// the experiment to start from
	Experiment string `yaml:"experiment"`

	// control settings applied after the experiment has been set up. values
	// can be numbers, booleans or strings
	Controls map[string]any `yaml:"controls,omitempty"`

	// wires added after the experiment has been set up. the key is the
	// output connector and the value is the input connector
	Wires map[string]string `yaml:"wires,omitempty"`

	// inputs that should be disconnected
	Disconnect []string `yaml:"disconnect,omitempty"`

	// control assignments in the command line format. applied last
	Set string `yaml:"set,omitempty"`
}

// Default returns the configuration for the general experiment with no
// changes.
func Default() *Config {
	return &Config{
		Experiment: experiments[0].Name,
	}
}

// Load returns the configuration in the bench file of the resource directory.
// If there is no bench file the default configuration is returned.
func Load() (*Config, error) {
	pth, err := paths.ResourcePath("", BenchFile)
	if err != nil {
		return nil, fmt.Errorf("bench: %w", err)
	}
	if _, err := os.Stat(pth); err != nil {
		return Default(), nil
	}
	return LoadFromFile(pth)
}

// LoadFromFile reads the configuration from a YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading bench file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing bench file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("bench file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that the experiment exists and that connector names are
// well formed. Whether the connectors exist is only known when the bench is
// built.
func (cfg *Config) Validate() error {
	if _, err := Lookup(cfg.Experiment); err != nil {
		return err
	}
	for from, to := range cfg.Wires {
		if _, _, err := splitConnector(from); err != nil {
			return err
		}
		if _, _, err := splitConnector(to); err != nil {
			return err
		}
	}
	for _, to := range cfg.Disconnect {
		if _, _, err := splitConnector(to); err != nil {
			return err
		}
	}
	return nil
}

// Marshal returns the YAML encoding of the configuration.
func (cfg *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Build a bench from the configuration. Changes are applied in the order:
// experiment, disconnections, wires, controls, command line assignments.
func (cfg *Config) Build(notify notifications.Notify) (*Bench, error) {
	e, err := Lookup(cfg.Experiment)
	if err != nil {
		return nil, err
	}

	b, err := e.Build(notify)
	if err != nil {
		return nil, err
	}

	if err := cfg.apply(b); err != nil {
		b.Close()
		return nil, err
	}

	return b, nil
}

func (cfg *Config) apply(b *Bench) error {
	for _, to := range cfg.Disconnect {
		if err := b.Disconnect(to); err != nil {
			return err
		}
	}

	for _, from := range sortedStrings(cfg.Wires) {
		if err := b.Connect(from, cfg.Wires[from]); err != nil {
			return err
		}
	}

	names := make([]string, 0, len(cfg.Controls))
	for n := range cfg.Controls {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		if err := b.Registry().Set(n, cfg.Controls[n]); err != nil {
			return fmt.Errorf("control %s: %w", n, err)
		}
	}

	if strings.TrimSpace(cfg.Set) != "" {
		if err := b.Registry().Apply(cfg.Set); err != nil {
			return err
		}
	}

	return nil
}

func sortedStrings(m map[string]string) []string {
	k := make([]string, 0, len(m))
	for n := range m {
		k = append(k, n)
	}
	sort.Strings(k)
	return k
}
