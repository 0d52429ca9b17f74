package service

import "prakriti-api/internal/domain"

// DoshaTables agrupa las tablas estaticas que usa el clasificador.
// Se construyen una vez y nunca se modifican.
type DoshaTables struct {
	Vectors         map[domain.AnswerKey]domain.DoshaVector
	Characteristics map[domain.Dosha][]string
	Recommendations map[domain.Dosha][]string
	FeedingHabits   map[domain.Dosha][]string
}

var defaultDoshaTables = DoshaTables{
	Vectors: map[domain.AnswerKey]domain.DoshaVector{
		// body_frame
		"lightSlim":       {Vata: 3},
		"mediumMusclular": {Pitta: 3},
		"heavyRobust":     {Kapha: 3},

		// skin_type
		"drySensitive": {Vata: 2, Pitta: 1},
		"fairReddish":  {Pitta: 3},
		"paleWhitish":  {Kapha: 2},

		// hair_type
		"thinDryWiry":      {Vata: 3},
		"fairFineStraight": {Pitta: 3},
		"thickCurlyOily":   {Kapha: 3},

		// appetite
		"variableIrregular": {Vata: 3},
		"sharpIncreased":    {Pitta: 3},
		"lowOozing":         {Kapha: 3},

		// digestion
		"delicateIrregular": {Vata: 3},
		"efficient":         {Pitta: 3},
		"slowGravy":         {Kapha: 3},

		// sleep_quality
		"lightRestless":     {Vata: 3},
		"fitfulInterrupted": {Pitta: 3},
		"heavyHeavy":        {Kapha: 3},

		// body_build
		"poorlyDefined":    {Vata: 3},
		"mediumDefined":    {Pitta: 3},
		"largeWellDefined": {Kapha: 3},

		// mind
		"quickChanging":  {Vata: 3},
		"focusedIntense": {Pitta: 3},
		"calm":           {Kapha: 3},

		// emotions
		"anxiousNervous":     {Vata: 3},
		"irritableImpatient": {Pitta: 3},
		"stable":             {Kapha: 3},

		// weather_preference
		"coldWind": {Vata: 3},
		"hotSun":   {Pitta: 3},
		"coldDamp": {Kapha: 3},

		// physical_activity
		"irregularsporadic": {Vata: 3},
		"moderate":          {Pitta: 3},
		"minimalsedentary":  {Kapha: 3},

		// flexibility
		"looseflexible": {Vata: 3},
		"moderate_flex": {Pitta: 3},
		"stiffrigid":    {Kapha: 3},
	},
	Characteristics: map[domain.Dosha][]string{
		domain.DoshaVata: {
			"Creative and imaginative",
			"Quick thinking and learning",
			"Tendency toward anxiety",
			"Active and energetic",
			"Enjoys variety and change",
			"Prone to dry skin and hair",
			"Light sleeper",
			"Irregular eating patterns",
			"Quick to react",
			"Excellent at communication",
		},
		domain.DoshaPitta: {
			"Sharp intellect and focus",
			"Strong digestion and metabolism",
			"Leadership qualities",
			"Perfectionistic tendencies",
			"Tendency toward irritability",
			"Ambitious and driven",
			"Good complexion",
			"Sensitive to heat",
			"Strong willpower",
			"Enjoys challenges",
		},
		domain.DoshaKapha: {
			"Calm and stable nature",
			"Strong immune system",
			"Good memory",
			"Loving and compassionate",
			"Slow to anger",
			"Tendency toward heaviness",
			"Oily and smooth skin",
			"Sound sleeper",
			"Strong physical frame",
			"Steady and reliable",
		},
	},
	Recommendations: map[domain.Dosha][]string{
		domain.DoshaVata: {
			"Establish regular meal times",
			"Eat warm, nourishing foods",
			"Include more healthy fats and oils",
			"Avoid excessive raw foods",
			"Practice grounding activities like yoga and meditation",
			"Ensure adequate rest and sleep",
			"Stay warm during cold seasons",
		},
		domain.DoshaPitta: {
			"Cool foods and drinks recommended",
			"Avoid very spicy foods",
			"Include bitter and sweet tastes",
			"Practice calming activities",
			"Take breaks from intense activities",
			"Avoid excessive heat exposure",
			"Balance work with relaxation",
		},
		domain.DoshaKapha: {
			"Stimulating and warming foods",
			"Regular physical exercise",
			"Avoid heavy and oily foods",
			"Eat lighter portions",
			"Vary your routine regularly",
			"Include spices in meals",
			"Stay mentally stimulated",
		},
	},
	FeedingHabits: map[domain.Dosha][]string{
		domain.DoshaVata: {
			"Eat at regular times to balance irregular digestion",
			"Warm liquids improve nutrient absorption",
			"Sesame oil and ghee are beneficial",
			"Slow, mindful eating promotes better digestion",
			"Avoid eating on the run or standing",
		},
		domain.DoshaPitta: {
			"Eat moderate portions at moderate temperatures",
			"Cooling herbs like cilantro and mint are beneficial",
			"Coconut oil supports digestion",
			"Avoid excessive salt and fried foods",
			"Take breaks between intense activities and meals",
		},
		domain.DoshaKapha: {
			"Lighter meals and smaller portions recommended",
			"Stimulating spices aid digestion",
			"Mustard oil and other warming oils beneficial",
			"Regular exercise improves digestion",
			"Variety in foods prevents boredom and stagnation",
		},
	},
}

// DefaultDoshaTables devuelve las tablas del cuestionario estandar.
// Los mapas son compartidos y de solo lectura.
func DefaultDoshaTables() DoshaTables {
	return defaultDoshaTables
}
