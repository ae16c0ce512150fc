// Package yaml loads scribe configuration from YAML files.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/scribe"
	"gopkg.in/yaml.v3"
)

// configDTO is the on-disk configuration. Pointer fields distinguish an
// absent key from a zero value so absent keys keep their defaults.
type configDTO struct {
	Sender    *string   `yaml:"sender"`
	StatusRow *int      `yaml:"status_row"`
	Banner    *string   `yaml:"banner"`
	Farewell  *string   `yaml:"farewell"`
	Theme     *themeDTO `yaml:"theme"`
}

type themeDTO struct {
	Sender   *int `yaml:"sender"`
	BannerFg *int `yaml:"banner_fg"`
	BannerBg *int `yaml:"banner_bg"`
	Input    *int `yaml:"input"`
}

// Parse decodes data over scribe.DefaultConfig and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (scribe.Config, error) {
	var dto configDTO
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&dto); err != nil && !errors.Is(err, io.EOF) {
		return scribe.Config{}, fmt.Errorf("decode config: %w", err)
	}

	cfg := scribe.DefaultConfig()
	dto.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return scribe.Config{}, err
	}
	return cfg, nil
}

// Load reads a configuration file. A missing file yields the defaults.
func Load(path string) (scribe.Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return scribe.DefaultConfig(), nil
	}
	if err != nil {
		return scribe.Config{}, fmt.Errorf("read file: %w", err)
	}
	return Parse(data)
}

// Marshal encodes cfg with every field present.
func Marshal(cfg scribe.Config) ([]byte, error) {
	dto := configDTO{
		Sender:    &cfg.Sender,
		StatusRow: &cfg.StatusRow,
		Banner:    &cfg.Banner,
		Farewell:  &cfg.Farewell,
		Theme: &themeDTO{
			Sender:   &cfg.Theme.Sender,
			BannerFg: &cfg.Theme.BannerFg,
			BannerBg: &cfg.Theme.BannerBg,
			Input:    &cfg.Theme.Input,
		},
	}
	return yaml.Marshal(dto)
}

func (d configDTO) apply(cfg *scribe.Config) {
	setString(&cfg.Sender, d.Sender)
	setInt(&cfg.StatusRow, d.StatusRow)
	setString(&cfg.Banner, d.Banner)
	setString(&cfg.Farewell, d.Farewell)
	if d.Theme != nil {
		setInt(&cfg.Theme.Sender, d.Theme.Sender)
		setInt(&cfg.Theme.BannerFg, d.Theme.BannerFg)
		setInt(&cfg.Theme.BannerBg, d.Theme.BannerBg)
		setInt(&cfg.Theme.Input, d.Theme.Input)
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}
