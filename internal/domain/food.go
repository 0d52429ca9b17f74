package domain

import "time"

type FoodEntry struct {
	ID          string      `json:"id"`
	UserID      string      `json:"user_id"`
	Name        string      `json:"name"`
	Calories    int         `json:"calories"`
	DoshaImpact DoshaVector `json:"dosha_impact"` // Efecto agravante (+) o calmante (-) por eje
	ConsumedAt  time.Time   `json:"consumed_at"`
	CreatedAt   time.Time   `json:"created_at"`
}

// DailyBalance resume el impacto dosha de lo comido en un dia UTC.
type DailyBalance struct {
	UserID        string     `json:"user_id"`
	Date          string     `json:"date"`
	Entries       int        `json:"entries"`
	TotalCalories int        `json:"total_calories"`
	Balance       DoshaScore `json:"balance"`
}
