package locale

import "regexp"

var moroccoTable = &Table{
	Country:  MA,
	Name:     "Maroc",
	Locale:   "fr-MA",
	Currency: "MAD",
	GivenNames: map[Gender][]string{
		Male: {
			"Mohamed", "Youssef", "Ahmed", "Omar", "Adam", "Ayoub", "Hamza", "Mehdi",
			"Amine", "Karim", "Rachid", "Said", "Hassan", "Anas", "Ilyas", "Othmane",
			"Yassine", "Khalid", "Nabil", "Reda",
		},
		Female: {
			"Fatima", "Khadija", "Aicha", "Meryem", "Salma", "Imane", "Sara", "Hiba",
			"Nour", "Yasmine", "Zineb", "Houda", "Asmae", "Hajar", "Malak", "Rania",
			"Ghita", "Kenza", "Leila", "Souad",
		},
	},
	FamilyNames: []string{
		"Alaoui", "Benali", "El Amrani", "Bennani", "Tazi", "El Idrissi", "Berrada", "Chraibi",
		"Fassi", "Lahlou", "Benjelloun", "El Mansouri", "Ouazzani", "Kettani", "Sqalli", "Amrani",
		"Bouzid", "Haddad", "Ziani", "Naciri",
	},
	NameOrder: GivenFamily,
	Titles:    map[Gender]string{Male: "M.", Female: "Mme"},
	Streets: []string{
		"Avenue Mohammed V", "Boulevard Hassan II", "Rue de la Liberté", "Avenue des FAR",
		"Boulevard Zerktouni", "Rue Ibn Battouta", "Avenue Allal El Fassi", "Rue Tarik Ibn Ziad",
		"Boulevard Anfa", "Avenue Mohammed VI", "Rue Oued Fès", "Derb Sidi Bouloukat",
	},
	StreetLayout:    NumberFirst,
	MaxStreetNumber: 400,
	Cities: []string{
		"Casablanca", "Rabat", "Fès", "Marrakech", "Tanger", "Agadir", "Meknès", "Oujda",
		"Kénitra", "Tétouan", "Salé", "Nador", "El Jadida", "Essaouira",
	},
	Regions: []string{
		"Casablanca-Settat", "Rabat-Salé-Kénitra", "Fès-Meknès", "Marrakech-Safi",
		"Tanger-Tétouan-Al Hoceïma", "Souss-Massa", "Oriental", "Béni Mellal-Khénifra",
	},
	PostalCode: "%####",
	Phone: Phone{
		CallingCode: "+212",
		Length:      9,
		Prefixes:    []string{"6", "7"},
		Mask:        "###-######",
	},
	NationalID: NationalID{
		Name:   "CIN",
		Scheme: SchemeCIN,
		Format: regexp.MustCompile(`^[A-Z]{1,2}\d{6}$`),
	},
	EmailDomain: "exemple.ma",
	Brands:      []Brand{Visa, Mastercard},
}

var senegalTable = &Table{
	Country:  SN,
	Name:     "Sénégal",
	Locale:   "fr-SN",
	Currency: "XOF",
	GivenNames: map[Gender][]string{
		Male: {
			"Mamadou", "Moussa", "Abdoulaye", "Ibrahima", "Ousmane", "Cheikh", "Modou", "Amadou",
			"Serigne", "Babacar", "Aliou", "Pape", "Lamine", "Omar", "Souleymane", "Malick",
			"Idrissa", "Saliou", "Boubacar", "Assane",
		},
		Female: {
			"Fatou", "Aminata", "Awa", "Mariama", "Khady", "Aissatou", "Ndeye", "Coumba",
			"Adama", "Sokhna", "Astou", "Binta", "Rokhaya", "Dieynaba", "Oumou", "Yacine",
			"Seynabou", "Nafissatou", "Penda", "Marème",
		},
	},
	FamilyNames: []string{
		"Diop", "Ndiaye", "Fall", "Sow", "Diallo", "Gueye", "Faye", "Ba",
		"Sy", "Mbaye", "Sarr", "Cissé", "Diouf", "Thiam", "Kane", "Niang",
		"Seck", "Camara", "Touré", "Sène",
	},
	NameOrder: GivenFamily,
	Titles:    map[Gender]string{Male: "M.", Female: "Mme"},
	Streets: []string{
		"Avenue Cheikh Anta Diop", "Rue Carnot", "Avenue Léopold Sédar Senghor", "Boulevard de la République",
		"Rue Félix Faure", "Avenue Blaise Diagne", "Route de la Corniche", "Rue Mohamed V",
		"Avenue Lamine Guèye", "Rue Jules Ferry", "Avenue Bourguiba", "Route de Ouakam",
	},
	StreetLayout:    NumberFirst,
	MaxStreetNumber: 150,
	Cities: []string{
		"Dakar", "Touba", "Thiès", "Rufisque", "Kaolack", "Mbour", "Saint-Louis", "Ziguinchor",
		"Diourbel", "Louga", "Tambacounda", "Kolda",
	},
	Regions: []string{
		"Dakar", "Thiès", "Diourbel", "Kaolack", "Saint-Louis", "Ziguinchor", "Louga",
		"Tambacounda", "Kolda", "Fatick",
	},
	PostalCode: "%####",
	Phone: Phone{
		CallingCode: "+221",
		Length:      9,
		Prefixes:    []string{"70", "75", "76", "77", "78"},
		Mask:        "## ### ## ##",
	},
	NationalID: NationalID{
		Name:   "CNI",
		Scheme: SchemeCNI,
		Format: regexp.MustCompile(`^[12]\d{12}$`),
	},
	EmailDomain: "exemple.sn",
	Brands:      []Brand{Visa, Mastercard},
}

var japanTable = &Table{
	Country:  JP,
	Name:     "Japan",
	Locale:   "ja-JP",
	Currency: "JPY",
	GivenNames: map[Gender][]string{
		Male: {
			"Haruto", "Minato", "Sota", "Yuto", "Riku", "Hinata", "Ren", "Sora",
			"Takumi", "Daiki", "Kenta", "Shota", "Hiroshi", "Takeshi", "Kazuki", "Naoki",
			"Yuki", "Kenji", "Ryo", "Kaito",
		},
		Female: {
			"Himari", "Mei", "Yui", "Sakura", "Aoi", "Rin", "Hina", "Yuna",
			"Akari", "Mio", "Saki", "Haruka", "Ayaka", "Misaki", "Nanami", "Yuka",
			"Emi", "Keiko", "Naomi", "Yoko",
		},
	},
	FamilyNames: []string{
		"Sato", "Suzuki", "Takahashi", "Tanaka", "Watanabe", "Ito", "Yamamoto", "Nakamura",
		"Kobayashi", "Kato", "Yoshida", "Yamada", "Sasaki", "Yamaguchi", "Matsumoto", "Inoue",
		"Kimura", "Hayashi", "Shimizu", "Yamazaki", "Mori", "Abe",
	},
	NameOrder: FamilyGiven,
	Titles:    map[Gender]string{Male: "Mr.", Female: "Ms."},
	Streets: []string{
		"Ginza", "Shibuya", "Shinjuku", "Roppongi", "Akasaka", "Ueno", "Asakusa", "Ebisu",
		"Nishi-Shinjuku", "Minami-Aoyama", "Umeda", "Namba", "Sakae", "Tenjin",
	},
	StreetLayout:    NameFirst,
	MaxStreetNumber: 30,
	Cities: []string{
		"Tokyo", "Yokohama", "Osaka", "Nagoya", "Sapporo", "Fukuoka", "Kobe", "Kawasaki",
		"Kyoto", "Saitama", "Hiroshima", "Sendai", "Chiba", "Kitakyushu",
	},
	Regions: []string{
		"Tokyo", "Kanagawa", "Osaka", "Aichi", "Hokkaido", "Fukuoka", "Hyogo", "Kyoto",
		"Saitama", "Hiroshima", "Miyagi", "Chiba",
	},
	PostalCode: "###-####",
	Phone: Phone{
		CallingCode: "+81",
		Length:      10,
		Prefixes:    []string{"70", "80", "90"},
		Mask:        "##-####-####",
	},
	NationalID: NationalID{
		Name:   "My Number",
		Scheme: SchemeMyNumber,
		Format: regexp.MustCompile(`^\d{4} \d{4} \d{4}$`),
	},
	EmailDomain: "example.jp",
	Brands:      []Brand{JCB, JCB, Visa, Mastercard},
}
