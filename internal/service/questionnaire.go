package service

import "prakriti-api/internal/domain"

// Questionnaire devuelve el cuestionario estatico de prakriti. Las opciones
// de cada dimension van en orden vata, pitta, kapha.
func Questionnaire() []domain.Question {
	return []domain.Question{
		question("body_frame", "Body Frame",
			opt("lightSlim", "Light and slim"),
			opt("mediumMusclular", "Medium and muscular"),
			opt("heavyRobust", "Heavy and robust")),
		question("skin_type", "Skin Type",
			opt("drySensitive", "Dry and sensitive"),
			opt("fairReddish", "Fair or reddish"),
			opt("paleWhitish", "Pale or whitish")),
		question("hair_type", "Hair Type",
			opt("thinDryWiry", "Thin, dry and wiry"),
			opt("fairFineStraight", "Fair, fine and straight"),
			opt("thickCurlyOily", "Thick, curly and oily")),
		question("appetite", "Appetite",
			opt("variableIrregular", "Variable and irregular"),
			opt("sharpIncreased", "Sharp and increased"),
			opt("lowOozing", "Low but steady")),
		question("digestion", "Digestion",
			opt("delicateIrregular", "Delicate and irregular"),
			opt("efficient", "Quick and efficient"),
			opt("slowGravy", "Slow and heavy")),
		question("sleep_quality", "Sleep Quality",
			opt("lightRestless", "Light and restless"),
			opt("fitfulInterrupted", "Fitful, sometimes interrupted"),
			opt("heavyHeavy", "Deep and heavy")),
		question("body_build", "Body Build",
			opt("poorlyDefined", "Poorly defined muscles"),
			opt("mediumDefined", "Medium, well defined muscles"),
			opt("largeWellDefined", "Large, solid build")),
		question("mind", "Mind",
			opt("quickChanging", "Quick and changing"),
			opt("focusedIntense", "Focused and intense"),
			opt("calm", "Calm and steady")),
		question("emotions", "Emotions Under Stress",
			opt("anxiousNervous", "Anxious or nervous"),
			opt("irritableImpatient", "Irritable or impatient"),
			opt("stable", "Stable, withdrawn")),
		question("weather_preference", "Weather You Dislike",
			opt("coldWind", "Cold and windy"),
			opt("hotSun", "Hot and sunny"),
			opt("coldDamp", "Cold and damp")),
		question("physical_activity", "Physical Activity",
			opt("irregularsporadic", "Irregular, in bursts"),
			opt("moderate", "Moderate and competitive"),
			opt("minimalsedentary", "Minimal, mostly sedentary")),
		question("flexibility", "Flexibility",
			opt("looseflexible", "Loose and flexible"),
			opt("moderate_flex", "Moderately flexible"),
			opt("stiffrigid", "Stiff or rigid")),
	}
}

func question(dimension, label string, options ...domain.Option) domain.Question {
	return domain.Question{Dimension: dimension, Label: label, Options: options}
}

func opt(key, label string) domain.Option {
	return domain.Option{Key: domain.AnswerKey(key), Label: label}
}
