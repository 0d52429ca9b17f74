package service

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"prakriti-api/internal/domain"
)

var ErrInvalidDoshaTables = errors.New("invalid dosha tables")

type doshaTablesFile struct {
	Vectors         map[domain.AnswerKey]domain.DoshaVector `yaml:"vectors"`
	Characteristics map[domain.Dosha][]string               `yaml:"characteristics"`
	Recommendations map[domain.Dosha][]string               `yaml:"recommendations"`
	FeedingHabits   map[domain.Dosha][]string               `yaml:"feeding_habits"`
}

// LoadDoshaTables lee tablas alternativas en YAML. Requiere al menos un vector
// y, para vata, pitta y kapha, listas no vacias en los tres textos.
func LoadDoshaTables(r io.Reader) (DoshaTables, error) {
	var file doshaTablesFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return DoshaTables{}, fmt.Errorf("%w: empty document", ErrInvalidDoshaTables)
		}
		return DoshaTables{}, fmt.Errorf("decode dosha tables: %w", err)
	}
	if len(file.Vectors) == 0 {
		return DoshaTables{}, fmt.Errorf("%w: no answer vectors", ErrInvalidDoshaTables)
	}
	for _, section := range []struct {
		name  string
		texts map[domain.Dosha][]string
	}{
		{"characteristics", file.Characteristics},
		{"recommendations", file.Recommendations},
		{"feeding_habits", file.FeedingHabits},
	} {
		for d := range section.texts {
			if !isKnownDosha(d) {
				return DoshaTables{}, fmt.Errorf("%w: unknown dosha %q in %s", ErrInvalidDoshaTables, d, section.name)
			}
		}
		for _, d := range domain.AllDoshas {
			if len(section.texts[d]) == 0 {
				return DoshaTables{}, fmt.Errorf("%w: %s has no %s", ErrInvalidDoshaTables, d, section.name)
			}
		}
	}
	return DoshaTables{
		Vectors:         file.Vectors,
		Characteristics: file.Characteristics,
		Recommendations: file.Recommendations,
		FeedingHabits:   file.FeedingHabits,
	}, nil
}

// LoadDoshaTablesFile abre path y delega en LoadDoshaTables.
func LoadDoshaTablesFile(path string) (DoshaTables, error) {
	f, err := os.Open(path)
	if err != nil {
		return DoshaTables{}, fmt.Errorf("open dosha tables: %w", err)
	}
	defer f.Close()
	return LoadDoshaTables(f)
}

func isKnownDosha(d domain.Dosha) bool {
	for _, known := range domain.AllDoshas {
		if d == known {
			return true
		}
	}
	return false
}
