package service

import (
	"errors"
	"math"
	"sort"
	"strings"

	"prakriti-api/internal/domain"
)

// ErrInvalidInput indica un cuestionario vacio o sin ninguna respuesta reconocida.
var ErrInvalidInput = errors.New("invalid input")

// DoshaClassifier transforma un cuestionario completo en una clasificacion
// constitucional. No tiene estado mutable: es seguro usarlo desde varias goroutines.
type DoshaClassifier struct {
	tables DoshaTables
}

func NewDoshaClassifier(tables DoshaTables) DoshaClassifier {
	return DoshaClassifier{tables: tables}
}

// Classify acumula el vector de cada respuesta, normaliza a porcentajes y
// elige dosha primario y secundario. Las respuestas desconocidas no votan
// y quedan listadas en Ignored.
func (c DoshaClassifier) Classify(answers map[string]string) (domain.ClassificationResult, error) {
	if len(answers) == 0 {
		return domain.ClassificationResult{}, ErrInvalidInput
	}

	var acc domain.DoshaVector
	var ignored []string
	for dimension, answer := range answers {
		vec, ok := c.tables.Vectors[domain.AnswerKey(strings.TrimSpace(answer))]
		if !ok {
			ignored = append(ignored, dimension)
			continue
		}
		acc = acc.Add(vec)
	}
	sort.Strings(ignored)

	total := acc.Total()
	if total <= 0 {
		return domain.ClassificationResult{}, ErrInvalidInput
	}

	scores := domain.DoshaScore{
		Vata:  percentOf(acc.Vata, total),
		Pitta: percentOf(acc.Pitta, total),
		Kapha: percentOf(acc.Kapha, total),
	}
	primary, secondary := rankDoshas(scores)

	return domain.ClassificationResult{
		PrimaryDosha:    primary,
		SecondaryDosha:  secondary,
		Scores:          scores,
		Characteristics: cloneStrings(c.tables.Characteristics[primary]),
		Recommendations: cloneStrings(c.tables.Recommendations[primary]),
		FeedingHabits:   cloneStrings(c.tables.FeedingHabits[primary]),
		Ignored:         ignored,
	}, nil
}

// percentOf redondea con math.Round (mitades hacia arriba para valores positivos)
// y acota a 0-100 por si la tabla trae pesos negativos.
func percentOf(value, total int) int {
	p := int(math.Round(float64(value) / float64(total) * 100))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// rankDoshas ordena por puntaje descendente; en empate gana el orden de AllDoshas.
func rankDoshas(scores domain.DoshaScore) (domain.Dosha, domain.Dosha) {
	ranked := make([]domain.Dosha, len(domain.AllDoshas))
	copy(ranked, domain.AllDoshas)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores.Get(ranked[i]) > scores.Get(ranked[j])
	})
	return ranked[0], ranked[1]
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
