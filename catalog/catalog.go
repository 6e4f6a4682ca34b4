// Package catalog serves the display labels of the booking enums and the
// supplemental requirement catalog. The data is embedded at build time.
package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogData []byte

type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

type Options []Option

// Label returns the label of value, or value itself when it has none.
func (o Options) Label(value string) string {
	for _, opt := range o {
		if opt.Value == value {
			return opt.Label
		}
	}

	return value
}

func (o Options) Values() []string {
	values := make([]string, 0, len(o))
	for _, opt := range o {
		values = append(values, opt.Value)
	}

	return values
}

type Catalog struct {
	BookingStatuses      Options `json:"bookingStatuses"      yaml:"bookingStatuses"`
	ProgressSteps        Options `json:"progressSteps"        yaml:"progressSteps"`
	JobStatuses          Options `json:"jobStatuses"          yaml:"jobStatuses"`
	JobTypes             Options `json:"jobTypes"             yaml:"jobTypes"`
	TransshipmentMethods Options `json:"transshipmentMethods" yaml:"transshipmentMethods"`
	CargoModes           Options `json:"cargoModes"           yaml:"cargoModes"`
	Fleets               Options `json:"fleets"               yaml:"fleets"`
	Requirements         Options `json:"requirements"         yaml:"requirements"`
}

var (
	loaded   *Catalog
	loadOnce sync.Once
)

// Parse decodes a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog

	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	return &c, nil
}

// Get returns the embedded catalog.
func Get() *Catalog {
	loadOnce.Do(func() {
		c, err := Parse(catalogData)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to decode embedded catalog")
		}

		log.Debug().Int("requirements", len(c.Requirements)).Msg("Loaded embedded catalog")

		loaded = c
	})

	return loaded
}
