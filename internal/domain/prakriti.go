package domain

import "time"

// ClassificationResult es la salida del clasificador para un cuestionario.
type ClassificationResult struct {
	PrimaryDosha    Dosha      `json:"primary_dosha"`
	SecondaryDosha  Dosha      `json:"secondary_dosha"`
	Scores          DoshaScore `json:"scores"`
	Characteristics []string   `json:"characteristics"`
	Recommendations []string   `json:"recommendations"`
	FeedingHabits   []string   `json:"feeding_habits"`
	// Ignored lista las dimensiones cuya respuesta no coincide con ninguna clave conocida.
	Ignored []string `json:"ignored,omitempty"`
}

// PrakritiResult es una clasificacion persistida para un usuario.
type PrakritiResult struct {
	ID      string            `json:"id"`
	UserID  string            `json:"user_id"`
	Answers map[string]string `json:"answers"`
	ClassificationResult
	CreatedAt time.Time `json:"created_at"`
}

// Question describe una dimension del cuestionario de prakriti.
type Question struct {
	Dimension string   `json:"dimension"`
	Label     string   `json:"label"`
	Options   []Option `json:"options"`
}

type Option struct {
	Key   AnswerKey `json:"key"`
	Label string    `json:"label"`
}
