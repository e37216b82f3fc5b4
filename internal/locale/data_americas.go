package locale

import "regexp"

var unitedStatesTable = &Table{
	Country:  US,
	Name:     "United States",
	Locale:   "en-US",
	Currency: "USD",
	GivenNames: map[Gender][]string{
		Male: {
			"James", "Robert", "John", "Michael", "David", "William", "Richard", "Joseph",
			"Thomas", "Charles", "Christopher", "Daniel", "Matthew", "Anthony", "Mark", "Steven",
			"Andrew", "Joshua", "Kevin", "Brian", "Ryan", "Jacob", "Ethan", "Tyler",
		},
		Female: {
			"Mary", "Patricia", "Jennifer", "Linda", "Elizabeth", "Barbara", "Susan", "Jessica",
			"Sarah", "Karen", "Lisa", "Nancy", "Ashley", "Emily", "Michelle", "Amanda",
			"Melissa", "Stephanie", "Rebecca", "Laura", "Megan", "Hannah", "Madison", "Olivia",
		},
	},
	FamilyNames: []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
		"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas",
		"Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson", "White",
		"Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker", "Young",
	},
	NameOrder: GivenFamily,
	Titles:    map[Gender]string{Male: "Mr.", Female: "Ms."},
	Streets: []string{
		"Main St", "Oak Ave", "Maple Dr", "Cedar Ln", "Elm St", "Pine St", "Washington Blvd",
		"Lake Rd", "Hill St", "Park Ave", "Sunset Blvd", "Lincoln Way", "Jefferson Ave",
		"Madison Ct", "Franklin Pl", "Willow Cir", "Chestnut St", "Magnolia Dr",
	},
	StreetLayout:    NumberFirst,
	MaxStreetNumber: 9999,
	Cities: []string{
		"New York", "Los Angeles", "Chicago", "Houston", "Phoenix", "Philadelphia", "San Antonio",
		"San Diego", "Dallas", "San Jose", "Austin", "Jacksonville", "Columbus", "Charlotte",
		"Seattle", "Denver", "Boston", "Nashville", "Portland", "Atlanta",
	},
	Regions: []string{
		"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA",
		"HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD",
		"MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ",
		"NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI", "SC",
		"SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
	},
	PostalCode: "#####",
	Phone: Phone{
		CallingCode: "+1",
		Length:      10,
		Prefixes:    []string{"201555", "212555", "305555", "312555", "415555", "512555", "617555", "702555", "713555", "206555"},
		Mask:        "(###) ###-####",
	},
	NationalID: NationalID{
		Name:   "SSN",
		Scheme: SchemeSSN,
		Format: regexp.MustCompile(`^\d{3}-\d{2}-\d{4}$`),
	},
	EmailDomain: "example.com",
	Brands:      []Brand{Visa, Visa, Mastercard, Amex, Discover},
}

var canadaTable = &Table{
	Country:  CA,
	Name:     "Canada",
	Locale:   "fr-CA",
	Currency: "CAD",
	GivenNames: map[Gender][]string{
		Male: {
			"Liam", "Noah", "William", "Thomas", "Jacob", "Logan", "Benjamin", "Olivier",
			"Félix", "Samuel", "Nathan", "Lucas", "Alexis", "Gabriel", "Mathis", "Ethan",
			"Jean", "Marc", "Luc", "Éric",
		},
		Female: {
			"Olivia", "Emma", "Charlotte", "Alice", "Florence", "Léa", "Rosalie", "Zoé",
			"Béatrice", "Chloé", "Ava", "Amelia", "Sophie", "Juliette", "Camille", "Émilie",
			"Isabelle", "Geneviève", "Nathalie", "Sarah",
		},
	},
	FamilyNames: []string{
		"Tremblay", "Gagnon", "Roy", "Côté", "Bouchard", "Gauthier", "Morin", "Lavoie",
		"Fortin", "Gagné", "Ouellet", "Pelletier", "Bélanger", "Lévesque", "Bergeron", "Leblanc",
		"Smith", "Brown", "Martin", "Wilson", "Campbell", "MacDonald",
	},
	NameOrder: GivenFamily,
	Titles:    map[Gender]string{Male: "M.", Female: "Mme"},
	Streets: []string{
		"rue Sainte-Catherine", "rue Sherbrooke", "boulevard Saint-Laurent", "rue Principale",
		"Yonge Street", "King Street", "Queen Street", "Main Street", "rue Saint-Denis",
		"avenue du Parc", "chemin du Lac", "Maple Avenue", "boulevard René-Lévesque",
	},
	StreetLayout:    NumberFirst,
	MaxStreetNumber: 9999,
	Cities: []string{
		"Montréal", "Toronto", "Vancouver", "Québec", "Ottawa", "Calgary", "Edmonton", "Winnipeg",
		"Gatineau", "Laval", "Sherbrooke", "Halifax", "Victoria", "Trois-Rivières", "Saskatoon",
	},
	Regions:    []string{"QC", "ON", "BC", "AB", "MB", "SK", "NS", "NB", "NL", "PE"},
	PostalCode: "@#@ #@#",
	Phone: Phone{
		CallingCode: "+1",
		Length:      10,
		Prefixes:    []string{"416", "418", "438", "450", "514", "581", "604", "613", "647", "780", "819", "902"},
		Mask:        "(###) ###-####",
	},
	NationalID: NationalID{
		Name:   "NAS",
		Scheme: SchemeSIN,
		Format: regexp.MustCompile(`^[1-79]\d{2} \d{3} \d{3}$`),
	},
	EmailDomain: "exemple.ca",
	Brands:      []Brand{Visa, Mastercard, Amex},
}

var brazilTable = &Table{
	Country:  BR,
	Name:     "Brasil",
	Locale:   "pt-BR",
	Currency: "BRL",
	GivenNames: map[Gender][]string{
		Male: {
			"Miguel", "Arthur", "Gael", "Heitor", "Theo", "Davi", "Gabriel", "Bernardo",
			"Samuel", "João", "Pedro", "Lucas", "Matheus", "Rafael", "Gustavo", "Felipe",
			"Bruno", "Thiago", "Rodrigo", "Carlos",
		},
		Female: {
			"Helena", "Alice", "Laura", "Maria", "Valentina", "Heloísa", "Cecília", "Maitê",
			"Sophia", "Manuela", "Ana", "Beatriz", "Juliana", "Fernanda", "Camila", "Larissa",
			"Gabriela", "Mariana", "Luana", "Isabela",
		},
	},
	FamilyNames: []string{
		"Silva", "Santos", "Oliveira", "Souza", "Rodrigues", "Ferreira", "Alves", "Pereira",
		"Lima", "Gomes", "Costa", "Ribeiro", "Martins", "Carvalho", "Almeida", "Lopes",
		"Soares", "Fernandes", "Vieira", "Barbosa", "Rocha", "Dias",
	},
	NameOrder: GivenFamily,
	Titles:    map[Gender]string{Male: "Sr.", Female: "Sra."},
	Streets: []string{
		"Rua das Flores", "Avenida Paulista", "Rua São João", "Rua Sete de Setembro",
		"Avenida Brasil", "Rua XV de Novembro", "Rua da Consolação", "Avenida Atlântica",
		"Rua Tiradentes", "Rua Dom Pedro II", "Avenida Getúlio Vargas", "Rua Santos Dumont",
	},
	StreetLayout:    NameCommaNumber,
	MaxStreetNumber: 3000,
	Cities: []string{
		"São Paulo", "Rio de Janeiro", "Brasília", "Salvador", "Fortaleza", "Belo Horizonte",
		"Manaus", "Curitiba", "Recife", "Goiânia", "Belém", "Porto Alegre", "Campinas", "Florianópolis",
	},
	Regions: []string{
		"SP", "RJ", "DF", "BA", "CE", "MG", "AM", "PR", "PE", "GO", "PA", "RS", "SC", "ES",
	},
	PostalCode: "#####-###",
	Phone: Phone{
		CallingCode: "+55",
		Length:      11,
		Prefixes:    []string{"119", "219", "319", "419", "479", "519", "619", "719", "819", "859", "919"},
		Mask:        "(##) #####-####",
	},
	NationalID: NationalID{
		Name:   "CPF",
		Scheme: SchemeCPF,
		Format: regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`),
	},
	EmailDomain: "exemplo.com.br",
	Brands:      []Brand{Visa, Mastercard},
}
