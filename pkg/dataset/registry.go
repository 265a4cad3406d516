package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/travigo/stopfinder/pkg/util"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

type registryDocument struct {
	Datasets []Dataset `yaml:"datasets"`
}

type Registry struct {
	datasets []Dataset
}

func NewRegistry(datasets ...Dataset) (*Registry, error) {
	registry := &Registry{}

	v := validator.New()
	for _, dataset := range datasets {
		if err := v.Struct(dataset); err != nil {
			return nil, fmt.Errorf("dataset %q: %w", dataset.Identifier, err)
		}

		if _, exists := registry.Get(dataset.Identifier); exists {
			return nil, fmt.Errorf("dataset %q registered twice", dataset.Identifier)
		}

		registry.datasets = append(registry.datasets, dataset)
	}

	return registry, nil
}

// LoadRegistry reads one or more YAML documents each holding a datasets list
func LoadRegistry(path string) (*Registry, error) {
	registryYaml, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseRegistry(registryYaml)
}

func ParseRegistry(registryYaml []byte) (*Registry, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(registryYaml))

	var datasets []Dataset
	for {
		var document registryDocument
		err := decoder.Decode(&document)
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, fmt.Errorf("decoding dataset registry: %w", err)
		}

		datasets = append(datasets, document.Datasets...)
	}

	if len(datasets) == 0 {
		return nil, errors.New("dataset registry contains no datasets")
	}

	log.Debug().Int("datasets", len(datasets)).Msg("Loaded dataset registry")

	return NewRegistry(datasets...)
}

func (r *Registry) Get(identifier string) (Dataset, bool) {
	index := slices.IndexFunc(r.datasets, func(d Dataset) bool {
		return d.Identifier == identifier
	})
	if index < 0 {
		return Dataset{}, false
	}

	return r.datasets[index], true
}

func (r *Registry) Defaults() []Dataset {
	var defaults []Dataset
	for _, dataset := range r.datasets {
		if dataset.Default {
			defaults = append(defaults, dataset)
		}
	}

	if len(defaults) == 0 && len(r.datasets) > 0 {
		defaults = append(defaults, r.datasets[0])
	}

	return defaults
}

func (r *Registry) Datasets() []Dataset {
	return slices.Clone(r.datasets)
}

// Select returns the named datasets. With no names it returns the datasets
// marked default, or the first registered one when none are.
func (r *Registry) Select(identifiers []string) ([]Dataset, error) {
	if len(identifiers) == 0 {
		return r.Defaults(), nil
	}

	var selected []Dataset
	for _, identifier := range util.UniqueIdentifiers(identifiers) {
		dataset, exists := r.Get(identifier)
		if !exists {
			return nil, fmt.Errorf("unknown dataset %q", identifier)
		}

		selected = append(selected, dataset)
	}

	return selected, nil
}
