package catalog

// Builtin returns the bundled destination catalog in its canonical order.
// A fresh copy is built on every call so callers cannot mutate shared data.
func Builtin() *Catalog {
	return New(builtinDestinations())
}

func builtinDestinations() []Destination {
	return []Destination{
		{
			ID:                 "bali",
			Name:               "Bali",
			Country:            "Indonesia",
			Description:        "A tropical escape blending lush rice terraces, serene temples, and surf-ready beaches.",
			IdealSeasons:       []string{"April", "May", "June", "September"},
			Climate:            []Climate{ClimateTropical},
			ActivityHighlights: []Activity{ActivityRelaxation, ActivityAdventure, ActivityCulture, ActivityFood},
			BudgetLevel:        TierModerate,
			DurationIdeal:      DurationRange{MinDays: 6, MaxDays: 12},
			Accommodations: []Accommodation{
				{Name: "Ayana Resort & Spa", Style: StyleResort, NightlyRate: 320, Blurb: "Cliff-top ocean views, full-service spa, and private beach club."},
				{Name: "Desa Seni Village Resort", Style: StyleEco, NightlyRate: 210, Blurb: "Restored Javanese homes, yoga shala, and organic farm-to-table dining."},
			},
			Experiences: []Experience{
				{Name: "Sunrise Trek up Mount Batur", Category: ActivityAdventure, Summary: "Guided volcano hike with breakfast overlooking volcanic caldera."},
				{Name: "Private Balinese Cooking Workshop", Category: ActivityFood, Summary: "Explore local markets and cook traditional dishes with a local chef."},
				{Name: "Ubud Temple and Waterfall Circuit", Category: ActivityCulture, Summary: "Day tour to Tirta Empul temple, Tegallalang terraces, and hidden waterfalls."},
			},
			TravelTips: []string{
				"Arrange for a private driver to navigate the island efficiently.",
				"Plan spa treatments and surf lessons in advance during peak season.",
			},
		},
		{
			ID:                 "lisbon",
			Name:               "Lisbon",
			Country:            "Portugal",
			Description:        "Sun-soaked coastal capital with historic neighborhoods, vibrant food, and easy day trips.",
			IdealSeasons:       []string{"March", "April", "May", "September", "October"},
			Climate:            []Climate{ClimateTemperate},
			ActivityHighlights: []Activity{ActivityCulture, ActivityFood, ActivityNightlife},
			BudgetLevel:        TierModerate,
			DurationIdeal:      DurationRange{MinDays: 4, MaxDays: 8},
			Accommodations: []Accommodation{
				{Name: "The Lumiares Hotel & Spa", Style: StyleBoutique, NightlyRate: 260, Blurb: "Design-forward suites in Bairro Alto with rooftop views over the Tagus."},
				{Name: "LX Boutique Hotel", Style: StyleHotel, NightlyRate: 180, Blurb: "Eclectic hotel footsteps from Time Out Market and the riverfront promenade."},
			},
			Experiences: []Experience{
				{Name: "Pastéis de Nata Baking Class", Category: ActivityFood, Summary: "Hands-on class mastering Lisbon's iconic custard tarts."},
				{Name: "Sintra Palaces & Coast Tour", Category: ActivityCulture, Summary: "Private guide to Pena Palace, Quinta da Regaleira, and sunset at Cabo da Roca."},
				{Name: "Fado Night in Alfama", Category: ActivityNightlife, Summary: "Dinner and live traditional Fado performance in a historic tavern."},
			},
			TravelTips: []string{
				"Purchase a Viva Viagem card for trams, ferries, and metro rides.",
				"Schedule Sintra excursion on a weekday to avoid crowds.",
			},
		},
		{
			ID:                 "banff",
			Name:               "Banff National Park",
			Country:            "Canada",
			Description:        "Dramatic alpine landscapes, glacier-fed lakes, and year-round outdoor adventures.",
			IdealSeasons:       []string{"June", "July", "August", "September", "February"},
			Climate:            []Climate{ClimateTemperate, ClimateCold},
			ActivityHighlights: []Activity{ActivityAdventure, ActivityNature},
			BudgetLevel:        TierModerate,
			DurationIdeal:      DurationRange{MinDays: 5, MaxDays: 9},
			Accommodations: []Accommodation{
				{Name: "Fairmont Banff Springs", Style: StyleHotel, NightlyRate: 390, Blurb: "Iconic castle hotel with mountain views and on-site spa and dining."},
				{Name: "Moose Hotel & Suites", Style: StyleHotel, NightlyRate: 240, Blurb: "Cozy suites with rooftop hot pools just steps from downtown Banff."},
			},
			Experiences: []Experience{
				{Name: "Sunrise Canoe on Moraine Lake", Category: ActivityNature, Summary: "Private canoe rental to beat the crowds on the turquoise lake."},
				{Name: "Icefields Parkway Scenic Transfer", Category: ActivityAdventure, Summary: "Full-day guided drive with glacier walks and wildlife spotting."},
				{Name: "Snowshoe Under the Stars", Category: ActivityAdventure, Summary: "Nighttime snowshoe excursion with a naturalist guide and campfire."},
			},
			TravelTips: []string{
				"Book Parks Canada shuttle for Lake Louise access during summer months.",
				"Pack layers; temperatures swing drastically between day and night.",
			},
		},
		{
			ID:                 "kyoto",
			Name:               "Kyoto",
			Country:            "Japan",
			Description:        "Historic temples, tranquil gardens, and culinary craftsmanship in Japan's cultural capital.",
			IdealSeasons:       []string{"March", "April", "October", "November"},
			Climate:            []Climate{ClimateTemperate},
			ActivityHighlights: []Activity{ActivityCulture, ActivityFood, ActivityRelaxation},
			BudgetLevel:        TierLuxury,
			DurationIdeal:      DurationRange{MinDays: 5, MaxDays: 10},
			Accommodations: []Accommodation{
				{Name: "Hoshinoya Kyoto", Style: StyleBoutique, NightlyRate: 620, Blurb: "Riverside ryokan accessible by boat with kaiseki dining and tea ceremony."},
				{Name: "Hotel The Celestine Kyoto Gion", Style: StyleHotel, NightlyRate: 280, Blurb: "Elegant property steps from Yasaka Shrine with onsen-style baths."},
			},
			Experiences: []Experience{
				{Name: "Private Tea Ceremony in Gion", Category: ActivityCulture, Summary: "Intimate encounter with a tea master explaining ritual and history."},
				{Name: "Kaiseki Tasting with Chef's Counter", Category: ActivityFood, Summary: "Seasonal multi-course dinner showcasing Kyoto's delicate cuisine."},
				{Name: "Arashiyama Bamboo Grove Sunrise Walk", Category: ActivityRelaxation, Summary: "Beat the crowds with a dawn stroll capped with riverside breakfast."},
			},
			TravelTips: []string{
				"Reserve limited-entry temple visits such as Saiho-ji moss garden weeks in advance.",
				"Rent pocket Wi-Fi for easy navigation and translation.",
			},
		},
		{
			ID:                 "costa-rica",
			Name:               "Osa Peninsula",
			Country:            "Costa Rica",
			Description:        "Remote rainforests teeming with wildlife, pristine beaches, and eco-forward lodges.",
			IdealSeasons:       []string{"January", "February", "March", "April"},
			Climate:            []Climate{ClimateTropical, ClimateDry},
			ActivityHighlights: []Activity{ActivityNature, ActivityAdventure, ActivityRelaxation},
			BudgetLevel:        TierLuxury,
			DurationIdeal:      DurationRange{MinDays: 6, MaxDays: 10},
			Accommodations: []Accommodation{
				{Name: "Lapa Rios Lodge", Style: StyleEco, NightlyRate: 540, Blurb: "Sustainably built rainforest bungalows with guided wildlife safaris."},
				{Name: "El Remanso Rainforest Wildness Lodge", Style: StyleEco, NightlyRate: 410, Blurb: "Waterfall rappelling, canopy bridges, and Pacific-view infinity pool."},
			},
			Experiences: []Experience{
				{Name: "Golfo Dulce Mangrove Kayaking", Category: ActivityNature, Summary: "Spot dolphins and scarlet macaws in secluded mangrove channels."},
				{Name: "Corcovado National Park Expedition", Category: ActivityAdventure, Summary: "Full-day ranger-led trek through one of the planet's most biodiverse parks."},
				{Name: "Sunset Bio Bay Cruise", Category: ActivityRelaxation, Summary: "Bioluminescent waters and stargazing aboard a private catamaran."},
			},
			TravelTips: []string{
				"Fly into Puerto Jiménez to avoid lengthy overland transfers.",
				"Pack reef-safe sunscreen and lightweight rain gear.",
			},
		},
		{
			ID:                 "iceland",
			Name:               "South Coast Iceland",
			Country:            "Iceland",
			Description:        "Waterfalls, glaciers, black-sand beaches, and geothermal lagoons under midnight sun or aurora skies.",
			IdealSeasons:       []string{"February", "March", "September", "October"},
			Climate:            []Climate{ClimateCold, ClimateTemperate},
			ActivityHighlights: []Activity{ActivityAdventure, ActivityNature},
			BudgetLevel:        TierLuxury,
			DurationIdeal:      DurationRange{MinDays: 4, MaxDays: 7},
			Accommodations: []Accommodation{
				{Name: "Hotel Rangá", Style: StyleBoutique, NightlyRate: 480, Blurb: "Aurora wake-up calls, observatory, and themed suites along the Rangá River."},
				{Name: "ION Adventure Hotel", Style: StyleEco, NightlyRate: 520, Blurb: "Minimalist design perched near Thingvellir with spa and lava views."},
			},
			Experiences: []Experience{
				{Name: "Glacier Hike & Ice Cave Exploration", Category: ActivityAdventure, Summary: "Certified guide leads onto Sólheimajökull with all gear included."},
				{Name: "Super Jeep Northern Lights Hunt", Category: ActivityNature, Summary: "Evening chase with expert photographer to capture aurora away from light pollution."},
				{Name: "Blue Lagoon Retreat Spa", Category: ActivityRelaxation, Summary: "Exclusive access to the Retreat Lagoon, subterranean spa, and gourmet dining."},
			},
			TravelTips: []string{
				"Pre-book guided glacier activities; permits and weather windows are limited.",
				"Rent a 4x4 vehicle in winter for safer driving on icy roads.",
			},
		},
	}
}
