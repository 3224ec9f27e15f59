package catalog

type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Options lists the labelled choices the planning wizard offers for each
// preference family.
type Options struct {
	Climate        []Option `json:"climate"`
	Activities     []Option `json:"activities"`
	Accommodations []Option `json:"accommodations"`
	Pace           []Option `json:"pace"`
}

func WizardOptions() Options {
	return Options{
		Climate: []Option{
			{"Tropical & Humid", string(ClimateTropical)},
			{"Mild & Temperate", string(ClimateTemperate)},
			{"Cool & Wintry", string(ClimateCold)},
			{"Dry & Arid", string(ClimateDry)},
		},
		Activities: []Option{
			{"Culture & History", string(ActivityCulture)},
			{"Culinary Experiences", string(ActivityFood)},
			{"Adventure & Thrills", string(ActivityAdventure)},
			{"Relaxation & Wellness", string(ActivityRelaxation)},
			{"Nature & Wildlife", string(ActivityNature)},
			{"Nightlife & Entertainment", string(ActivityNightlife)},
		},
		Accommodations: []Option{
			{"Boutique Hotels", string(StyleBoutique)},
			{"Luxury Resorts", string(StyleResort)},
			{"Eco Lodges", string(StyleEco)},
			{"Design Hotels", string(StyleHotel)},
			{"Private Villas", string(StyleVilla)},
		},
		Pace: []Option{
			{"Relaxed", "relaxed"},
			{"Balanced", "balanced"},
			{"Fast-paced", "fast-paced"},
		},
	}
}
