// Mangamatch Core
// Copyright (c) 2026 The Mangamatch Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Mangamatch Core.
//
// Mangamatch Core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Mangamatch Core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Mangamatch Core.  If not, see <http://www.gnu.org/licenses/>.

// Package config loads similarity tuning overrides from a TOML file. Fields
// absent from the file keep their defaults, so a config file only needs the
// values it actually changes.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"

	"github.com/mangamatch/core/pkg/similarity"
)

// Values is the on-disk shape of a tuning file.
type Values struct {
	Similarity Similarity `toml:"similarity,omitempty"`
}

// Similarity mirrors similarity.Config with pointer fields so "absent" and
// "explicitly zero" are distinguishable during the overlay.
type Similarity struct {
	ExactWeight          *float64 `toml:"exact_weight,omitempty"           validate:"omitempty,gte=0"`
	SubstringWeight      *float64 `toml:"substring_weight,omitempty"       validate:"omitempty,gte=0"`
	WordOrderWeight      *float64 `toml:"word_order_weight,omitempty"      validate:"omitempty,gte=0"`
	CharacterWeight      *float64 `toml:"character_weight,omitempty"       validate:"omitempty,gte=0"`
	SemanticWeight       *float64 `toml:"semantic_weight,omitempty"        validate:"omitempty,gte=0"`
	JaroWinklerWeight    *float64 `toml:"jaro_winkler_weight,omitempty"    validate:"omitempty,gte=0"`
	NGramWeight          *float64 `toml:"ngram_weight,omitempty"           validate:"omitempty,gte=0"`
	LengthRatioThreshold *float64 `toml:"length_ratio_threshold,omitempty" validate:"omitempty,gt=0,lte=1"`
	Debug                *bool    `toml:"debug,omitempty"`
}

var validate = validator.New()

// Load reads a tuning file and overlays it on similarity.DefaultConfig.
// The merged config is validated: weights must be non-negative, at least one
// weight must be positive, and the length threshold must sit in (0,1].
func Load(path string) (similarity.Config, error) {
	cfg := similarity.DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // config path comes from the caller
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	var values Values
	if err := toml.Unmarshal(data, &values); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := validate.Struct(&values); err != nil {
		return cfg, fmt.Errorf("invalid config values: %w", err)
	}

	overlay(&cfg, values.Similarity)
	if weightSum(cfg) <= 0 {
		return similarity.DefaultConfig(),
			errors.New("similarity weights sum to zero; at least one weight must be positive")
	}

	log.Debug().Str("path", path).Str("config", cfg.Key()).Msg("loaded similarity tuning")
	return cfg, nil
}

// Save writes the fully merged config, so a saved file round-trips to the
// identical configuration regardless of future default changes.
func Save(path string, cfg similarity.Config) error {
	values := Values{Similarity: Similarity{
		ExactWeight:          &cfg.ExactWeight,
		SubstringWeight:      &cfg.SubstringWeight,
		WordOrderWeight:      &cfg.WordOrderWeight,
		CharacterWeight:      &cfg.CharacterWeight,
		SemanticWeight:       &cfg.SemanticWeight,
		JaroWinklerWeight:    &cfg.JaroWinklerWeight,
		NGramWeight:          &cfg.NGramWeight,
		LengthRatioThreshold: &cfg.LengthRatioThreshold,
		Debug:                &cfg.Debug,
	}}

	data, err := toml.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func overlay(cfg *similarity.Config, s Similarity) {
	setFloat := func(dst, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	setFloat(&cfg.ExactWeight, s.ExactWeight)
	setFloat(&cfg.SubstringWeight, s.SubstringWeight)
	setFloat(&cfg.WordOrderWeight, s.WordOrderWeight)
	setFloat(&cfg.CharacterWeight, s.CharacterWeight)
	setFloat(&cfg.SemanticWeight, s.SemanticWeight)
	setFloat(&cfg.JaroWinklerWeight, s.JaroWinklerWeight)
	setFloat(&cfg.NGramWeight, s.NGramWeight)
	setFloat(&cfg.LengthRatioThreshold, s.LengthRatioThreshold)
	if s.Debug != nil {
		cfg.Debug = *s.Debug
	}
}

func weightSum(cfg similarity.Config) float64 {
	return cfg.ExactWeight + cfg.SubstringWeight + cfg.WordOrderWeight +
		cfg.CharacterWeight + cfg.SemanticWeight + cfg.JaroWinklerWeight +
		cfg.NGramWeight
}
