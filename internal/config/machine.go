package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/osse101/slotengine/internal/domain"
	"github.com/osse101/slotengine/internal/slots"
)

//go:embed defaults/classic.yaml
var embeddedClassic []byte

// MachineFile is the on-disk YAML form of a machine.
type MachineFile struct {
	ID                   string `yaml:"id"`
	Name                 string `yaml:"name"`
	domain.MachineConfig `yaml:",inline"`
}

// Machine converts the file into a domain machine at version 1.
func (f MachineFile) Machine() domain.Machine {
	return domain.Machine{
		ID:      f.ID,
		Name:    f.Name,
		Version: 1,
		Config:  f.MachineConfig,
	}
}

// Source labels where a machine definition was read from.
type Source string

const (
	SourceExplicit Source = "explicit"
	SourceDir      Source = "configs"
	SourceEmbedded Source = "embedded"
)

// LoadMachine resolves a machine definition. Search order: the explicit path
// (if non-empty), configs/machines/<id>.yaml, then the embedded classic machine
// when id is the default. The result is validated before it is returned.
func LoadMachine(path, id string) (domain.Machine, Source, error) {
	if path != "" {
		m, err := LoadMachineFile(path)
		return m, SourceExplicit, err
	}

	candidate := filepath.Join(ConfigPathMachinesDir, id+MachineFileExt)
	m, err := LoadMachineFile(candidate)
	if err == nil {
		return m, SourceDir, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return domain.Machine{}, SourceDir, err
	}

	if id == DefaultMachineID {
		m, err := ParseMachine(embeddedClassic)
		return m, SourceEmbedded, err
	}
	return domain.Machine{}, "", fmt.Errorf("%w: no definition for %q", domain.ErrMachineNotFound, id)
}

// LoadMachineFile reads and validates one YAML machine file.
func LoadMachineFile(path string) (domain.Machine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Machine{}, fmt.Errorf("failed to read machine config %s: %w", path, err)
	}
	m, err := ParseMachine(data)
	if err != nil {
		return domain.Machine{}, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ParseMachine decodes YAML and validates the machine configuration.
func ParseMachine(data []byte) (domain.Machine, error) {
	var f MachineFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return domain.Machine{}, fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	if f.ID == "" {
		return domain.Machine{}, fmt.Errorf("%w: machine id is required", domain.ErrInvalidConfig)
	}
	if f.Name == "" {
		f.Name = f.ID
	}
	if err := slots.ValidateConfig(f.MachineConfig); err != nil {
		return domain.Machine{}, err
	}
	return f.Machine(), nil
}

// MarshalMachine renders a machine back to YAML.
func MarshalMachine(m domain.Machine) ([]byte, error) {
	return yaml.Marshal(MachineFile{ID: m.ID, Name: m.Name, MachineConfig: m.Config})
}
