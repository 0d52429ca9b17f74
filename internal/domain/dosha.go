package domain

// Dosha identifica uno de los tres ejes constitucionales.
type Dosha string

const (
	DoshaVata  Dosha = "vata"
	DoshaPitta Dosha = "pitta"
	DoshaKapha Dosha = "kapha"
)

// AllDoshas respeta el orden de prioridad usado para desempatar: vata > pitta > kapha.
var AllDoshas = []Dosha{DoshaVata, DoshaPitta, DoshaKapha}

// AnswerKey es el identificador canonico de una opcion del cuestionario.
type AnswerKey string

// DoshaVector es el aporte (con signo) de una respuesta a cada eje.
type DoshaVector struct {
	Vata  int `json:"vata"`
	Pitta int `json:"pitta"`
	Kapha int `json:"kapha"`
}

func (v DoshaVector) Add(o DoshaVector) DoshaVector {
	return DoshaVector{
		Vata:  v.Vata + o.Vata,
		Pitta: v.Pitta + o.Pitta,
		Kapha: v.Kapha + o.Kapha,
	}
}

func (v DoshaVector) Total() int {
	return v.Vata + v.Pitta + v.Kapha
}

func (v DoshaVector) Get(d Dosha) int {
	switch d {
	case DoshaVata:
		return v.Vata
	case DoshaPitta:
		return v.Pitta
	case DoshaKapha:
		return v.Kapha
	}
	return 0
}

// DoshaScore guarda porcentajes por eje. En una clasificacion cada eje esta
// en 0-100 y se redondea por separado, asi que la suma puede diferir de 100
// en una o dos unidades. En el balance de comidas un eje puede ser negativo.
type DoshaScore struct {
	Vata  int `json:"vata"`
	Pitta int `json:"pitta"`
	Kapha int `json:"kapha"`
}

func (s DoshaScore) Get(d Dosha) int {
	switch d {
	case DoshaVata:
		return s.Vata
	case DoshaPitta:
		return s.Pitta
	case DoshaKapha:
		return s.Kapha
	}
	return 0
}

func (s DoshaScore) Sum() int {
	return s.Vata + s.Pitta + s.Kapha
}
