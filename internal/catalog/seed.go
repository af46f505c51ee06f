package catalog

import "sporthub/internal/domain"

func strp(s string) *string { return &s }

// seedVenues is the compiled-in default dataset: 8 venues for each of
// the 5 categories, all in Naples. IDs are assigned from load order.
func seedVenues() []domain.Venue {
	return []domain.Venue{
		// --- soccer ---
		{
			Name: "Arturo Collana Stadium", Category: domain.CategorySoccer,
			Lat: 40.8465, Lon: 14.2270,
			Address:     strp("4 Francesco Rossellini Street, 80128 Naples"),
			ImageName:   "stadio arturo collana",
			Description: "The historical heart of sports in Vomero. Originally built in the 1920s, this stadium offers a professional-grade synthetic turf and grandstands that echo with the passion of local tournaments. It's the closest you can get to a pro experience in the city center.",
		},
		{
			Name: "San Gennaro dei Poveri Pitch", Category: domain.CategorySoccer,
			Lat: 40.8601, Lon: 14.2485,
			Address:     strp("25 San Gennaro dei Poveri Lane, 80136 Naples"),
			ImageName:   "san-gennaro-gallery1",
			Description: "Hidden within the vibrant Rione Sanità, this pitch is more than just a sports field; it's a social hub. The recently renovated surface is perfect for fast-paced 5-a-side games, surrounded by the unique architecture of the historic district.",
		},
		{
			Name: "San Domenico Soccer Field", Category: domain.CategorySoccer,
			Lat: 40.8480, Lon: 14.2550,
			Address:     strp("148 San Domenico Street, 80126 Naples"),
			ImageName:   "San Domenico",
			Description: "Located on the hills, this facility offers fresh air and well-maintained locker rooms. It is a favorite among local amateur leagues due to its spacious field and excellent night lighting system.",
		},
		{
			Name: "Santa Maria della Libera Field", Category: domain.CategorySoccer,
			Lat: 40.8405, Lon: 14.2215,
			Address:     strp("113 Belvedere Street, 80127 Naples"),
			ImageName:   "Santa Maria della Libera Field.peg",
			Description: "A compact but intense arena for technical players. Nestled in a residential area, this pitch is known for its high-quality synthetic grass that mimics natural turf, reducing injuries and improving ball control.",
		},
		{
			Name: "Materdei Soccer Playground", Category: domain.CategorySoccer,
			Lat: 40.8530, Lon: 14.2410,
			Address:     strp("3 San Gennaro Square, 80136 Naples"),
			ImageName:   "Materdei Soccer Playground",
			Description: "A legendary spot for street soccer enthusiasts. This playground captures the raw essence of Neapolitan football, where skill and grit matter more than equipment. Great for casual pick-up games.",
		},
		{
			Name: "San Luigi Youth Center Pitch", Category: domain.CategorySoccer,
			Lat: 40.8245, Lon: 14.2110,
			Address:     strp("115 Francesco Petrarca Street, 80123 Naples"),
			ImageName:   "San Luigi Youth Center Pitch",
			Description: "With a stunning view over the gulf, playing here feels like a privilege. The San Luigi center offers top-tier facilities, clean showers, and a pitch that is meticulously cared for by the Jesuit community.",
		},
		{
			Name: "San Gioacchino Soccer Field", Category: domain.CategorySoccer,
			Lat: 40.8280, Lon: 14.2185,
			Address:     strp("139 Orazio Street, 80122 Naples"),
			ImageName:   "San gioacchino",
			Description: "Located in the Posillipo area, this field is an exclusive spot for organized matches. The atmosphere is quiet and focused, perfect for teams who take their weekly tactical training seriously.",
		},
		{
			Name: "Denza Sports Center", Category: domain.CategorySoccer,
			Lat: 40.8160, Lon: 14.1850,
			Address:     strp("9 Coroglio Descent, 80123 Naples"),
			ImageName:   "Denza Sports Cente",
			Description: "Surrounded by greenery near the coastline, Denza is one of the most complete sports complexes in Naples. The soccer pitches are wide, professional, and often host regional youth championships.",
		},

		// --- volleyball ---
		{
			Name: "Collana Stadium Gym", Category: domain.CategoryVolleyball,
			Lat: 40.8468, Lon: 14.2272,
			Address:     strp("4 Francesco Rossellini Street, 80128 Naples"),
			ImageName:   "Collana Stadium Gym",
			Description: "Part of the historic Collana complex, this indoor gym features a high ceiling and a professional parquet floor. It is the home ground for many local teams and offers excellent acoustics for match days.",
		},
		{
			Name: "Dante Square Sports Center", Category: domain.CategoryVolleyball,
			Lat: 40.8495, Lon: 14.2505,
			Address:     strp("Dante Square, 80135 Naples"),
			ImageName:   "Dante Square Sports Center",
			Description: "Right in the city center, this gym is an urban gem. Despite the busy location, inside it offers a focused environment with modern net systems and shock-absorbing flooring ideal for jumps.",
		},
		{
			Name: "Soccavo Multi-purpose Center", Category: domain.CategoryVolleyball,
			Lat: 40.8385, Lon: 14.1910,
			Address:     strp("Adriano Avenue, 80126 Naples"),
			ImageName:   "Soccavo Multi-purpose Center",
			Description: "A massive facility designed for large tournaments. The Soccavo center offers multiple courts, ample parking, and bleachers for spectators, making it the best choice for league finals.",
		},
		{
			Name: "Partenope Volleyball Gym", Category: domain.CategoryVolleyball,
			Lat: 40.8345, Lon: 14.2395,
			Address:     strp("40 Medina Street, 80133 Naples"),
			ImageName:   "Partenope Volleyball Gym",
			Description: "Steeped in history, this gym belongs to one of the oldest sports societies in Naples. The vintage feel combines with updated equipment to offer a unique, traditional training atmosphere.",
		},
		{
			Name: "Sannazaro Sports Club", Category: domain.CategoryVolleyball,
			Lat: 40.8410, Lon: 14.2510,
			Address:     strp("12 Giacomo Puccini Street, 80127 Naples"),
			ImageName:   "annazaro Sports Club",
			Description: "Located near the vibrant Chiaia district, this club is exclusive and well-kept. It focuses on youth development and technical training courses, with highly qualified instructors.",
		},
		{
			Name: "Nazionale Square Gym", Category: domain.CategoryVolleyball,
			Lat: 40.8540, Lon: 14.2740,
			Address:     strp("34 Foggia Street, 80143 Naples"),
			ImageName:   "Nazionale Square Gym",
			Description: "A key spot for the industrial area, this gym is practical, rugged, and always open. It's the go-to place for after-work matches and intense physical preparation sessions.",
		},
		{
			Name: "Nestore Athletics Gym", Category: domain.CategoryVolleyball,
			Lat: 40.8650, Lon: 14.2200,
			Address:     strp("Nestore Street, 80145 Naples"),
			ImageName:   "Nestore Street,",
			Description: "Known for its rigorous training programs, Nestore is where champions are made. The facility focuses on athletics and volleyball, providing specific equipment for vertical jump training.",
		},
		{
			Name: "Galizia Sports Hall", Category: domain.CategoryVolleyball,
			Lat: 40.8430, Lon: 14.2530,
			Address:     strp("Mercato Square, 80133 Naples"),
			ImageName:   "Galizia Sports Hall",
			Description: "A newly renovated hall that brings sports to the heart of the Mercato district. Bright, clean, and colorful, it aims to engage the local community in team sports.",
		},

		// --- basketball ---
		{
			Name: "Spanish Quarters Court", Category: domain.CategoryBasketball,
			Lat: 40.8395, Lon: 14.2440,
			Address:     strp("Fornelli Avenue, 80132 Naples"),
			ImageName:   "spanish quarters",
			Description: "An iconic streetball court hidden in the maze of the Quartieri Spagnoli. The vibrant graffiti art and the energy of the neighborhood make every game here feel like an urban movie scene.",
		},
		{
			Name: "Kodokan Naples", Category: domain.CategoryBasketball,
			Lat: 40.8630, Lon: 14.2640,
			Address:     strp("1 Carlo III Square, 80137 Naples"),
			ImageName:   "kodokan",
			Description: "Housed in the majestic Albergo dei Poveri, Kodokan is a temple of sports. The basketball court is indoors, immense, and breathes history, offering a unique silence and focus for players.",
		},
		{
			Name: "Viviani Park Court", Category: domain.CategoryBasketball,
			Lat: 40.8435, Lon: 14.2385,
			Address:     strp("14 Girolamo Santacroce Street, 80129 Naples"),
			ImageName:   "viviani park",
			Description: "A playground with a view. Located in a panoramic park, this court allows you to shoot hoops while overlooking the city. It's popular for sunset games and chill 1v1 sessions.",
		},
		{
			Name: "San Pasquale Playground", Category: domain.CategoryBasketball,
			Lat: 40.8345, Lon: 14.2375,
			Address:     strp("San Pasquale Street, 80121 Naples"),
			ImageName:   "San Pasquale Playgrund",
			Description: "The meeting point for the Chiaia basketball community. It's a small, intense concrete court where local legends and newcomers clash every afternoon. Bring your A-game.",
		},
		{
			Name: "Medaglie d'Oro Square Court", Category: domain.CategoryBasketball,
			Lat: 40.8490, Lon: 14.2305,
			Address:     strp("Medaglie d'Oro Square, 80128 Naples"),
			ImageName:   "medaglie d'oro",
			Description: "Right in the middle of a busy roundabout, this fenced court is an urban cage. It's perfect for fast, aggressive 3v3 games where the noise of the city fades into the background.",
		},
		{
			Name: "Molosiglio Waterfront Court", Category: domain.CategoryBasketball,
			Lat: 40.8350, Lon: 14.2515,
			Address:     strp("35 Acton Admiral Street, 80133 Naples"),
			ImageName:   "molosiglio.peg",
			Description: "Play right next to the sea. The Molosiglio court offers a refreshing sea breeze and a view of Vesuvius. It's one of the most scenic spots to play basketball in Italy.",
		},
		{
			Name: "Robinson Park Playground", Category: domain.CategoryBasketball,
			Lat: 40.8250, Lon: 14.1890,
			Address:     strp("54 J.F. Kennedy Avenue, 80125 Naples"),
			ImageName:   "robinson park",
			Description: "Located inside the Mostra d'Oltremare area, this court is surrounded by pine trees. It offers plenty of shade, making it the best choice for playing during hot summer days.",
		},
		{
			Name: "Caravaggio Basketball Gym", Category: domain.CategoryBasketball,
			Lat: 40.8251, Lon: 14.1855,
			Address:     strp("382 Terracina Street, 80125 Naples"),
			ImageName:   "caravaggio",
			Description: "A professional indoor facility used by local league teams. The hardwood floor is top-notch, and the electronic scoreboard makes it ideal for organized tournaments and serious practice.",
		},

		// --- tennis ---
		{
			Name: "Naples Tennis Club", Category: domain.CategoryTennis,
			Lat: 40.8322, Lon: 14.2345,
			Address:     strp("Anton Dohrn Avenue, 80122 Naples"),
			ImageName:   "napoli tennis club",
			Description: "Founded in 1905, this is the most prestigious club in the city. Hosting international tournaments, its red clay courts are legendary. Playing here is a dive into the aristocracy of tennis.",
		},
		{
			Name: "Vomero Tennis Academy", Category: domain.CategoryTennis,
			Lat: 40.8420, Lon: 14.2250,
			Address:     strp("6 Gioacchino Rossini Street, 80128 Naples"),
			ImageName:   "tennis academy vomero",
			Description: "A modern academy focused on performance. It features both clay and hard courts, with video analysis technology available for students who want to perfect their swing.",
		},
		{
			Name: "Villa Comunale Tennis Center", Category: domain.CategoryTennis,
			Lat: 40.8315, Lon: 14.2330,
			Address:     strp("Anton Dohrn Avenue, 80121 Naples"),
			ImageName:   "villa comunale tennis center",
			Description: "Nestled within the historic Villa Comunale park, these courts offer a unique mix of nature and sport. It's a relaxing place to play a friendly match just steps away from the seafront.",
		},
		{
			Name: "Petrarca Tennis Club", Category: domain.CategoryTennis,
			Lat: 40.8210, Lon: 14.2155,
			Address:     strp("147 Petrarca Street, 80123 Naples"),
			ImageName:   "petrarca tennis club",
			Description: "Panoramic courts overlooking the Bay of Naples. This club is famous for its social events and its exclusive atmosphere. The perfect spot for a sunset match followed by an aperitif.",
		},
		{
			Name: "Orientale Tennis Club", Category: domain.CategoryTennis,
			Lat: 40.8445, Lon: 14.2720,
			Address:     strp("Marina Street, 80133 Naples"),
			ImageName:   "orientale tennis club",
			Description: "Conveniently located near the university area, this club is popular among students and young professionals. It offers affordable rates and a vibrant, energetic community.",
		},
		{
			Name: "Belvedere Tennis Courts", Category: domain.CategoryTennis,
			Lat: 40.8425, Lon: 14.2220,
			Address:     strp("102 Belvedere Street, 80127 Naples"),
			ImageName:   "belvedere tennis court",
			Description: "Hidden in a quiet courtyard in Vomero, Belvedere offers privacy and silence. The courts are meticulously cared for, ensuring a perfect bounce for clay lovers.",
		},
		{
			Name: "Via Manzoni Tennis Club", Category: domain.CategoryTennis,
			Lat: 40.8260, Lon: 14.2050,
			Address:     strp("142 Alessandro Manzoni Street, 80123 Naples"),
			ImageName:   "via manzoni tennis club",
			Description: "An elegant club on the Posillipo hill. It features a swimming pool for post-match relaxation and high-quality coaching staff for all levels, from beginners to pros.",
		},
		{
			Name: "Le Terrazze Tennis Club", Category: domain.CategoryTennis,
			Lat: 40.8390, Lon: 14.2180,
			Address:     strp("54 Aniello Falcone Street, 80127 Naples"),
			ImageName:   "le terrazze tennis club",
			Description: "As the name suggests, this club is built on terraces that offer stunning views. It combines sport with a trendy location, often hosting social mixers and amateur tournaments.",
		},

		// --- running ---
		{
			Name: "Caracciolo Waterfront", Category: domain.CategoryRunning,
			Lat: 40.8306, Lon: 14.2468,
			Address:     strp("Francesco Caracciolo Street, 80122 Naples"),
			ImageName:   "carracciolo",
			Description: "The most famous running route in Naples. A flat, wide sidewalk right next to the sea, stretching from Mergellina to Castel dell'Ovo. Ideal for long-distance training with no traffic interruptions.",
		},
		{
			Name: "Villa Comunale Park", Category: domain.CategoryRunning,
			Lat: 40.8300, Lon: 14.2369,
			Address:     strp("Anton Dohrn Avenue, 80121 Naples"),
			ImageName:   "villa comunale",
			Description: "Run under the shade of centuries-old trees. This park offers a soft dirt path that is kind to your joints, making it perfect for recovery runs or interval training away from the sun.",
		},
		{
			Name: "Floridiana Park", Category: domain.CategoryRunning,
			Lat: 40.8410, Lon: 14.2290,
			Address:     strp("77 Domenico Cimarosa Street, 80127 Naples"),
			ImageName:   "floridiana",
			Description: "A green lung in the Vomero district. The paths here are winding and offer elevation changes, providing a good cardio challenge. The view from the Belvedere terrace is a great reward.",
		},
		{
			Name: "Vittorio Emanuele Route", Category: domain.CategoryRunning,
			Lat: 40.8400, Lon: 14.2350,
			Address:     strp("Vittorio Emanuele Avenue, 80135 Naples"),
			ImageName:   "vittorio emanuele route",
			Description: "A panoramic road that cuts through the city hills. This route is for endurance runners who love urban landscapes. It offers a continuous gentle slope, great for building stamina.",
		},
		{
			Name: "San Martino Historical Steps", Category: domain.CategoryRunning,
			Lat: 40.8445, Lon: 14.2415,
			Address:     strp("20 San Martino Square, 80129 Naples"),
			ImageName:   "san martino",
			Description: "The ultimate challenge for your legs. This route consists of the Pedamentina stairs, connecting the hilltop castle to the city center. Perfect for high-intensity interval training (HIIT).",
		},
		{
			Name: "Petraio Steps Route", Category: domain.CategoryRunning,
			Lat: 40.8425, Lon: 14.2380,
			Address:     strp("Petraio Street, 80127 Naples"),
			ImageName:   "petraio",
			Description: "A scenic, vertical run through one of Naples' oldest paths. The Petraio offers a mix of stairs and flat stretches, winding through colorful houses and quiet gardens. Tough but rewarding.",
		},
		{
			Name: "Via Petrarca Scenic Route", Category: domain.CategoryRunning,
			Lat: 40.8230, Lon: 14.2140,
			Address:     strp("Petrarca Street, 80123 Naples"),
			ImageName:   "via petrarca",
			Description: "Known as the 'postcard route'. Running here gives you the classic view of the Gulf of Naples with Vesuvius in the background. The sidewalk is wide and popular among morning joggers.",
		},
		{
			Name: "Botanical Garden Perimeter", Category: domain.CategoryRunning,
			Lat: 40.8615, Lon: 14.2630,
			Address:     strp("223 Foria Street, 80139 Naples"),
			ImageName:   "orto botanico",
			Description: "A quiet loop around the Real Orto Botanico walls. It's a flat, measured route often used by locals to track their lap times. The area is peaceful, especially in the early morning.",
		},
	}
}
