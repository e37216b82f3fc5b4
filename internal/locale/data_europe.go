package locale

import "regexp"

var franceTable = &Table{
	Country:  FR,
	Name:     "France",
	Locale:   "fr-FR",
	Currency: "EUR",
	GivenNames: map[Gender][]string{
		Male: {
			"Lucas", "Hugo", "Louis", "Gabriel", "Arthur", "Jules", "Adam", "Raphaël",
			"Léo", "Nathan", "Thomas", "Antoine", "Maxime", "Nicolas", "Julien", "Pierre",
			"Mathieu", "Alexandre", "Guillaume", "François", "Étienne", "Baptiste", "Théo", "Paul",
		},
		Female: {
			"Emma", "Jade", "Louise", "Alice", "Chloé", "Léa", "Manon", "Camille",
			"Inès", "Sarah", "Juliette", "Lina", "Zoé", "Clara", "Margaux", "Élise",
			"Charlotte", "Pauline", "Mathilde", "Anaïs", "Amélie", "Céline", "Sophie", "Marion",
		},
	},
	FamilyNames: []string{
		"Martin", "Bernard", "Dubois", "Thomas", "Robert", "Richard", "Petit", "Durand",
		"Leroy", "Moreau", "Simon", "Laurent", "Lefebvre", "Michel", "Garcia", "David",
		"Bertrand", "Roux", "Vincent", "Fournier", "Morel", "Girard", "André", "Lefèvre",
		"Mercier", "Dupont", "Lambert", "Bonnet", "François", "Martinez", "Legrand", "Garnier",
	},
	NameOrder: GivenFamily,
	Titles:    map[Gender]string{Male: "M.", Female: "Mme"},
	Streets: []string{
		"rue de la République", "rue Victor Hugo", "avenue Jean Jaurès", "boulevard Gambetta",
		"rue de la Paix", "rue du Moulin", "place de l'Église", "rue des Lilas",
		"avenue de la Gare", "rue Pasteur", "chemin des Vignes", "rue Jules Ferry",
		"allée des Tilleuls", "rue Émile Zola", "impasse des Roses", "quai de la Loire",
	},
	StreetLayout:    NumberFirst,
	MaxStreetNumber: 199,
	Cities: []string{
		"Paris", "Marseille", "Lyon", "Toulouse", "Nice", "Nantes", "Strasbourg", "Montpellier",
		"Bordeaux", "Lille", "Rennes", "Reims", "Le Havre", "Saint-Étienne", "Toulon", "Grenoble",
		"Dijon", "Angers", "Nîmes", "Clermont-Ferrand",
	},
	Regions: []string{
		"Île-de-France", "Auvergne-Rhône-Alpes", "Provence-Alpes-Côte d'Azur", "Occitanie",
		"Nouvelle-Aquitaine", "Hauts-de-France", "Grand Est", "Bretagne", "Normandie",
		"Pays de la Loire", "Centre-Val de Loire", "Bourgogne-Franche-Comté",
	},
	PostalCode: "%####",
	Phone: Phone{
		CallingCode: "+33",
		Length:      9,
		Prefixes:    []string{"6", "7"},
		Mask:        "# ## ## ## ##",
	},
	NationalID: NationalID{
		Name:   "NIR",
		Scheme: SchemeNIR,
		Format: regexp.MustCompile(`^[12] \d{2} (0[1-9]|1[0-2]) \d{2} \d{3} \d{3} \d{2}$`),
	},
	EmailDomain: "exemple.fr",
	Brands:      []Brand{Visa, Visa, Mastercard},
}

var belgiumTable = &Table{
	Country:  BE,
	Name:     "Belgique",
	Locale:   "fr-BE",
	Currency: "EUR",
	GivenNames: map[Gender][]string{
		Male: {
			"Noah", "Arthur", "Louis", "Jules", "Adam", "Liam", "Victor", "Lucas",
			"Mohamed", "Gabriel", "Théo", "Nathan", "Maxime", "Thomas", "Wout", "Lars",
			"Jan", "Pieter", "Bram", "Arnaud",
		},
		Female: {
			"Olivia", "Emma", "Louise", "Mila", "Alice", "Juliette", "Elena", "Nora",
			"Camille", "Lina", "Marie", "Julie", "Lotte", "Fien", "Sofie", "Chloé",
			"Manon", "Léa", "Anke", "Elise",
		},
	},
	FamilyNames: []string{
		"Peeters", "Janssens", "Maes", "Jacobs", "Mertens", "Willems", "Claes", "Goossens",
		"Wouters", "De Smet", "Dubois", "Lambert", "Dupont", "Martin", "Simon", "Leclercq",
		"Hermans", "Van den Broeck", "Vermeulen", "Lemaire", "Renard", "Michiels",
	},
	NameOrder: GivenFamily,
	Titles:    map[Gender]string{Male: "M.", Female: "Mme"},
	Streets: []string{
		"Rue Neuve", "Avenue Louise", "Rue de la Loi", "Boulevard Anspach", "Chaussée de Wavre",
		"Rue du Midi", "Meir", "Kerkstraat", "Stationsstraat", "Rue Haute", "Rue Royale",
		"Avenue des Arts", "Veldstraat", "Grote Markt",
	},
	StreetLayout:    NameFirst,
	MaxStreetNumber: 250,
	Cities: []string{
		"Bruxelles", "Anvers", "Gand", "Charleroi", "Liège", "Bruges", "Namur", "Louvain",
		"Mons", "Malines", "Hasselt", "Courtrai", "Ostende", "Tournai", "Wavre",
	},
	Regions:    []string{"Bruxelles-Capitale", "Wallonie", "Flandre"},
	PostalCode: "%###",
	Phone: Phone{
		CallingCode: "+32",
		Length:      9,
		Prefixes:    []string{"470", "471", "472", "473", "475", "476", "477", "478", "479", "484", "485", "486", "487", "488", "489", "490", "491", "492", "493", "494", "495", "496", "497", "498", "499"},
		Mask:        "### ## ## ##",
	},
	NationalID: NationalID{
		Name:   "Numéro de registre national",
		Scheme: SchemeBelgianRegister,
		Format: regexp.MustCompile(`^\d{2}\.(0[1-9]|1[0-2])\.\d{2}-\d{3}\.\d{2}$`),
	},
	EmailDomain: "exemple.be",
	Brands:      []Brand{Visa, Mastercard},
}

var switzerlandTable = &Table{
	Country:  CH,
	Name:     "Suisse",
	Locale:   "fr-CH",
	Currency: "CHF",
	GivenNames: map[Gender][]string{
		Male: {
			"Noah", "Liam", "Luca", "Gabriel", "Leon", "Matteo", "David", "Elias",
			"Samuel", "Julian", "Nico", "Jan", "Lukas", "Daniel", "Marco", "Thomas",
			"Stefan", "Christian", "Beat", "Urs",
		},
		Female: {
			"Mia", "Emma", "Sofia", "Lina", "Mila", "Lea", "Elena", "Laura",
			"Anna", "Sara", "Julia", "Lena", "Nina", "Chiara", "Céline", "Sandra",
			"Nicole", "Andrea", "Monika", "Ursula",
		},
	},
	FamilyNames: []string{
		"Müller", "Meier", "Schmid", "Keller", "Weber", "Huber", "Schneider", "Meyer",
		"Steiner", "Fischer", "Gerber", "Brunner", "Baumann", "Frei", "Zimmermann", "Moser",
		"Favre", "Rochat", "Bonvin", "Rossi", "Bernasconi", "Gasser",
	},
	NameOrder: GivenFamily,
	Titles:    map[Gender]string{Male: "M.", Female: "Mme"},
	Streets: []string{
		"Bahnhofstrasse", "Hauptstrasse", "Dorfstrasse", "Rue du Rhône", "Rue de Lausanne",
		"Kirchgasse", "Seestrasse", "Avenue de la Gare", "Via Nassa", "Bergstrasse",
		"Schulhausstrasse", "Rue du Marché", "Gartenstrasse", "Chemin des Vignes",
	},
	StreetLayout:    NameFirst,
	MaxStreetNumber: 120,
	Cities: []string{
		"Zurich", "Genève", "Bâle", "Lausanne", "Berne", "Winterthour", "Lucerne", "Saint-Gall",
		"Lugano", "Bienne", "Thoune", "Fribourg", "Neuchâtel", "Sion", "Coire",
	},
	Regions: []string{
		"ZH", "GE", "BS", "VD", "BE", "LU", "SG", "TI", "FR", "NE", "VS", "GR", "AG", "TG",
	},
	PostalCode: "%###",
	Phone: Phone{
		CallingCode: "+41",
		Length:      9,
		Prefixes:    []string{"75", "76", "77", "78", "79"},
		Mask:        "## ### ## ##",
	},
	NationalID: NationalID{
		Name:   "AVS",
		Scheme: SchemeAHV,
		Format: regexp.MustCompile(`^756\.\d{4}\.\d{4}\.\d{2}$`),
	},
	EmailDomain: "exemple.ch",
	Brands:      []Brand{Visa, Mastercard, Amex},
}

var unitedKingdomTable = &Table{
	Country:  GB,
	Name:     "United Kingdom",
	Locale:   "en-GB",
	Currency: "GBP",
	GivenNames: map[Gender][]string{
		Male: {
			"Oliver", "George", "Harry", "Noah", "Jack", "Leo", "Arthur", "Muhammad",
			"Oscar", "Charlie", "Jacob", "Thomas", "Henry", "William", "James", "Alfie",
			"Edward", "Freddie", "Archie", "Theo",
		},
		Female: {
			"Olivia", "Amelia", "Isla", "Ava", "Ivy", "Freya", "Lily", "Florence",
			"Mia", "Willow", "Rosie", "Sophia", "Isabella", "Grace", "Poppy", "Evie",
			"Charlotte", "Emily", "Jessica", "Harriet",
		},
	},
	FamilyNames: []string{
		"Smith", "Jones", "Taylor", "Brown", "Williams", "Wilson", "Johnson", "Davies",
		"Robinson", "Wright", "Thompson", "Evans", "Walker", "White", "Roberts", "Green",
		"Hall", "Wood", "Jackson", "Clarke", "Hughes", "Edwards", "Turner", "Cooper",
	},
	NameOrder: GivenFamily,
	Titles:    map[Gender]string{Male: "Mr", Female: "Ms"},
	Streets: []string{
		"High Street", "Station Road", "Main Street", "Park Road", "Church Road", "Church Street",
		"London Road", "Victoria Road", "Green Lane", "Manor Road", "Church Lane", "Park Avenue",
		"The Avenue", "Queens Road", "New Road", "Grange Road",
	},
	StreetLayout:    NumberFirst,
	MaxStreetNumber: 300,
	Cities: []string{
		"London", "Birmingham", "Manchester", "Leeds", "Glasgow", "Liverpool", "Bristol", "Sheffield",
		"Edinburgh", "Cardiff", "Leicester", "Nottingham", "Newcastle upon Tyne", "Brighton", "Oxford",
		"Cambridge", "York", "Belfast",
	},
	PostalCode: "@@%# %@@",
	Phone: Phone{
		CallingCode: "+44",
		Length:      10,
		Prefixes:    []string{"7400", "7500", "7700", "7800", "7900"},
		Mask:        "#### ######",
	},
	NationalID: NationalID{
		Name:   "National Insurance number",
		Scheme: SchemeNINO,
		Format: regexp.MustCompile(`^[A-CEGHJ-PR-TW-Z][A-CEGHJ-NPR-TW-Z] \d{2} \d{2} \d{2} [A-D]$`),
	},
	EmailDomain: "example.co.uk",
	Brands:      []Brand{Visa, Visa, Mastercard, Amex},
}

var germanyTable = &Table{
	Country:  DE,
	Name:     "Deutschland",
	Locale:   "de-DE",
	Currency: "EUR",
	GivenNames: map[Gender][]string{
		Male: {
			"Noah", "Matteo", "Elias", "Finn", "Leon", "Theo", "Paul", "Emil",
			"Henry", "Ben", "Felix", "Lukas", "Jonas", "Maximilian", "Tobias", "Stefan",
			"Andreas", "Michael", "Jürgen", "Klaus",
		},
		Female: {
			"Emilia", "Sophia", "Emma", "Hannah", "Mia", "Lina", "Mila", "Ella",
			"Clara", "Lea", "Anna", "Marie", "Laura", "Katharina", "Julia", "Sabine",
			"Petra", "Ursula", "Monika", "Jana",
		},
	},
	FamilyNames: []string{
		"Müller", "Schmidt", "Schneider", "Fischer", "Weber", "Meyer", "Wagner", "Becker",
		"Schulz", "Hoffmann", "Schäfer", "Koch", "Bauer", "Richter", "Klein", "Wolf",
		"Schröder", "Neumann", "Schwarz", "Zimmermann", "Braun", "Krüger", "Hofmann", "Hartmann",
	},
	NameOrder: GivenFamily,
	Titles:    map[Gender]string{Male: "Herr", Female: "Frau"},
	Streets: []string{
		"Hauptstraße", "Schulstraße", "Gartenstraße", "Bahnhofstraße", "Dorfstraße", "Bergstraße",
		"Lindenstraße", "Kirchstraße", "Waldstraße", "Ringstraße", "Goethestraße", "Schillerstraße",
		"Am Markt", "Mozartstraße", "Friedrichstraße", "Rosenweg",
	},
	StreetLayout:    NameFirst,
	MaxStreetNumber: 150,
	Cities: []string{
		"Berlin", "Hamburg", "München", "Köln", "Frankfurt am Main", "Stuttgart", "Düsseldorf",
		"Leipzig", "Dortmund", "Essen", "Bremen", "Dresden", "Hannover", "Nürnberg", "Duisburg",
		"Bochum", "Wuppertal", "Bonn",
	},
	Regions: []string{
		"Baden-Württemberg", "Bayern", "Berlin", "Brandenburg", "Bremen", "Hamburg", "Hessen",
		"Mecklenburg-Vorpommern", "Niedersachsen", "Nordrhein-Westfalen", "Rheinland-Pfalz",
		"Saarland", "Sachsen", "Sachsen-Anhalt", "Schleswig-Holstein", "Thüringen",
	},
	PostalCode: "%####",
	Phone: Phone{
		CallingCode: "+49",
		Length:      11,
		Prefixes:    []string{"151", "152", "157", "160", "162", "170", "171", "172", "173", "175", "176", "177", "178", "179"},
		Mask:        "### ########",
	},
	NationalID: NationalID{
		Name:   "Steuer-ID",
		Scheme: SchemeSteuerID,
		Format: regexp.MustCompile(`^[1-9]\d{10}$`),
	},
	EmailDomain: "beispiel.de",
	Brands:      []Brand{Visa, Mastercard, Mastercard},
}

var spainTable = &Table{
	Country:  ES,
	Name:     "España",
	Locale:   "es-ES",
	Currency: "EUR",
	GivenNames: map[Gender][]string{
		Male: {
			"Hugo", "Mateo", "Martín", "Lucas", "Leo", "Daniel", "Alejandro", "Manuel",
			"Pablo", "Álvaro", "Adrián", "Javier", "David", "José", "Antonio", "Francisco",
			"Sergio", "Carlos", "Jorge", "Diego",
		},
		Female: {
			"Lucía", "Sofía", "Martina", "María", "Julia", "Paula", "Valeria", "Emma",
			"Daniela", "Carla", "Alba", "Noa", "Carmen", "Ana", "Laura", "Isabel",
			"Cristina", "Marta", "Elena", "Pilar",
		},
	},
	FamilyNames: []string{
		"García", "Rodríguez", "González", "Fernández", "López", "Martínez", "Sánchez", "Pérez",
		"Gómez", "Martín", "Jiménez", "Ruiz", "Hernández", "Díaz", "Moreno", "Muñoz",
		"Álvarez", "Romero", "Alonso", "Gutiérrez", "Navarro", "Torres", "Domínguez", "Vázquez",
	},
	NameOrder: GivenFamily,
	Titles:    map[Gender]string{Male: "Sr.", Female: "Sra."},
	Streets: []string{
		"Calle Mayor", "Calle Real", "Avenida de la Constitución", "Calle del Sol", "Plaza de España",
		"Calle de Alcalá", "Gran Vía", "Calle Nueva", "Paseo de la Castellana", "Calle de la Iglesia",
		"Avenida de Andalucía", "Calle San José", "Rambla de Catalunya", "Calle Larios",
	},
	StreetLayout:    NameCommaNumber,
	MaxStreetNumber: 180,
	Cities: []string{
		"Madrid", "Barcelona", "Valencia", "Sevilla", "Zaragoza", "Málaga", "Murcia", "Palma",
		"Las Palmas", "Bilbao", "Alicante", "Córdoba", "Valladolid", "Vigo", "Gijón", "Granada",
	},
	Regions: []string{
		"Andalucía", "Aragón", "Asturias", "Islas Baleares", "Canarias", "Cantabria",
		"Castilla-La Mancha", "Castilla y León", "Cataluña", "Comunidad Valenciana", "Extremadura",
		"Galicia", "Comunidad de Madrid", "Región de Murcia", "Navarra", "País Vasco", "La Rioja",
	},
	PostalCode: "%####",
	Phone: Phone{
		CallingCode: "+34",
		Length:      9,
		Prefixes:    []string{"6", "7"},
		Mask:        "### ## ## ##",
	},
	NationalID: NationalID{
		Name:   "DNI",
		Scheme: SchemeDNI,
		Format: regexp.MustCompile(`^\d{8}[TRWAGMYFPDXBNJZSQVHLCKE]$`),
	},
	EmailDomain: "ejemplo.es",
	Brands:      []Brand{Visa, Mastercard},
}

var italyTable = &Table{
	Country:  IT,
	Name:     "Italia",
	Locale:   "it-IT",
	Currency: "EUR",
	GivenNames: map[Gender][]string{
		Male: {
			"Leonardo", "Francesco", "Tommaso", "Edoardo", "Alessandro", "Lorenzo", "Mattia", "Gabriele",
			"Riccardo", "Andrea", "Diego", "Nicolò", "Matteo", "Giuseppe", "Antonio", "Giovanni",
			"Marco", "Luca", "Roberto", "Paolo",
		},
		Female: {
			"Sofia", "Aurora", "Giulia", "Ginevra", "Vittoria", "Beatrice", "Alice", "Ludovica",
			"Emma", "Matilde", "Anna", "Chiara", "Francesca", "Giorgia", "Martina", "Sara",
			"Valentina", "Elena", "Paola", "Federica",
		},
	},
	FamilyNames: []string{
		"Rossi", "Russo", "Ferrari", "Esposito", "Bianchi", "Romano", "Colombo", "Ricci",
		"Marino", "Greco", "Bruno", "Gallo", "Conti", "De Luca", "Mancini", "Costa",
		"Giordano", "Rizzo", "Lombardi", "Moretti", "Barbieri", "Fontana", "Santoro", "Mariani",
	},
	NameOrder: GivenFamily,
	Titles:    map[Gender]string{Male: "Sig.", Female: "Sig.ra"},
	Streets: []string{
		"Via Roma", "Via Garibaldi", "Via Mazzini", "Via Dante", "Corso Italia", "Via Verdi",
		"Via Cavour", "Piazza della Repubblica", "Via XX Settembre", "Via Vittorio Emanuele",
		"Via Marconi", "Via Matteotti", "Viale Europa", "Via Manzoni",
	},
	StreetLayout:    NameFirst,
	MaxStreetNumber: 200,
	Cities: []string{
		"Roma", "Milano", "Napoli", "Torino", "Palermo", "Genova", "Bologna", "Firenze",
		"Bari", "Catania", "Venezia", "Verona", "Messina", "Padova", "Trieste", "Parma",
	},
	Regions: []string{
		"RM", "MI", "NA", "TO", "PA", "GE", "BO", "FI", "BA", "CT", "VE", "VR", "ME", "PD", "TS", "PR",
	},
	PostalCode: "#####",
	Phone: Phone{
		CallingCode: "+39",
		Length:      10,
		Prefixes:    []string{"320", "324", "328", "329", "333", "338", "339", "340", "347", "348", "349", "366", "380", "393"},
		Mask:        "### ### ####",
	},
	NationalID: NationalID{
		Name:   "Codice fiscale",
		Scheme: SchemeCodiceFiscale,
		Format: regexp.MustCompile(`^[A-Z]{6}\d{2}[ABCDEHLMPRST]\d{2}[A-Z]\d{3}[A-Z]$`),
	},
	EmailDomain: "esempio.it",
	Brands:      []Brand{Visa, Mastercard},
}

var netherlandsTable = &Table{
	Country:  NL,
	Name:     "Nederland",
	Locale:   "nl-NL",
	Currency: "EUR",
	GivenNames: map[Gender][]string{
		Male: {
			"Noah", "Luca", "Sem", "Liam", "Lucas", "Daan", "Finn", "Levi",
			"Milan", "Bram", "Jesse", "Thijs", "Ruben", "Lars", "Sven", "Pieter",
			"Jeroen", "Maarten", "Willem", "Joost",
		},
		Female: {
			"Emma", "Julia", "Mila", "Tess", "Sophie", "Zoë", "Sara", "Nora",
			"Yara", "Eva", "Liv", "Anna", "Lotte", "Fleur", "Sanne", "Femke",
			"Anouk", "Ilse", "Marieke", "Lieke",
		},
	},
	FamilyNames: []string{
		"de Jong", "Jansen", "de Vries", "van den Berg", "van Dijk", "Bakker", "Janssen", "Visser",
		"Smit", "Meijer", "de Boer", "Mulder", "de Groot", "Bos", "Vos", "Peters",
		"Hendriks", "van Leeuwen", "Dekker", "Brouwer", "de Wit", "Dijkstra",
	},
	NameOrder: GivenFamily,
	Titles:    map[Gender]string{Male: "Dhr.", Female: "Mevr."},
	Streets: []string{
		"Kerkstraat", "Schoolstraat", "Molenstraat", "Dorpsstraat", "Stationsweg", "Julianastraat",
		"Wilhelminastraat", "Beatrixstraat", "Nieuwstraat", "Markt", "Prinsengracht", "Keizersgracht",
		"Lindelaan", "Eikenlaan",
	},
	StreetLayout:    NameFirst,
	MaxStreetNumber: 250,
	Cities: []string{
		"Amsterdam", "Rotterdam", "Den Haag", "Utrecht", "Eindhoven", "Groningen", "Tilburg", "Almere",
		"Breda", "Nijmegen", "Apeldoorn", "Haarlem", "Arnhem", "Enschede", "Leiden", "Maastricht",
	},
	PostalCode: "%### @@",
	Phone: Phone{
		CallingCode: "+31",
		Length:      9,
		Prefixes:    []string{"6"},
		Mask:        "# ########",
	},
	NationalID: NationalID{
		Name:   "BSN",
		Scheme: SchemeBSN,
		Format: regexp.MustCompile(`^\d{9}$`),
	},
	EmailDomain: "voorbeeld.nl",
	Brands:      []Brand{Visa, Mastercard},
}
