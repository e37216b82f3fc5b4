package identity

// password character classes
const (
	lowerChars   = "abcdefghijklmnopqrstuvwxyz"
	upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars   = "0123456789"
	symbolChars  = "!@#$%^&*()-_=+[]{};:,.?"
	allPassChars = lowerChars + upperChars + digitChars + symbolChars

	defaultPasswordLen = 16
	defaultDomain      = "example.com"
)

// adjectives for the name-free email pattern
var adjectives = []string{
	"swift", "bold", "calm", "dark", "keen", "wild", "warm", "cool",
	"deep", "tall", "wide", "soft", "pure", "rare", "fair", "fine",
	"glad", "kind", "vast", "wise", "pale", "gold", "iron", "blue",
	"jade", "ruby", "sage", "teal", "mint", "dusk", "dawn", "snow",
}

// nouns for the name-free email pattern
var nouns = []string{
	"wolf", "hawk", "bear", "lynx", "fox", "owl", "crow", "pike",
	"wren", "dove", "lark", "swan", "moth", "frog", "crab", "orca",
	"seal", "hare", "newt", "ibis", "kite", "oak", "elm", "fir",
	"moss", "lily", "iris", "fern", "palm", "cliff", "ridge", "brook",
}

// municipality codes (codice catastale) for the codice fiscale
var italianMunicipalities = []string{
	"H501", // Roma
	"F205", // Milano
	"F839", // Napoli
	"L219", // Torino
	"G273", // Palermo
	"D969", // Genova
	"A944", // Bologna
	"D612", // Firenze
	"A662", // Bari
	"C351", // Catania
	"L736", // Venezia
	"L781", // Verona
}

// letter prefixes of Moroccan CIN numbers, by issuing region
var moroccanCINPrefixes = []string{
	"A", "B", "BE", "BH", "BJ", "BK", "C", "CD", "D", "E", "EE", "F", "G",
	"H", "I", "J", "JA", "JB", "K", "L", "M", "N", "P", "Q", "R", "S",
	"T", "U", "V", "W", "X", "Y", "Z",
}

// NINO prefix letters; D, F, I, Q, U and V never appear, O never second
const (
	ninoFirst  = "ABCEGHJKLMNOPRSTWXYZ"
	ninoSecond = "ABCEGHJKLMNPRSTWXYZ"
	ninoSuffix = "ABCD"
)

// prefixes HMRC never allocates
var ninoBlocked = map[string]bool{
	"BG": true, "GB": true, "KN": true, "NK": true, "NT": true, "TN": true, "ZZ": true,
}

const dniLetters = "TRWAGMYFPDXBNJZSQVHLCKE"

const codiceMonths = "ABCDEHLMPRST"

// codiceOdd maps A-Z (and 0-9 via the same index) to the value used at
// odd positions of the codice fiscale check computation.
var codiceOdd = [26]int{
	1, 0, 5, 7, 9, 13, 15, 17, 19, 21, 2, 4, 18,
	20, 11, 3, 6, 8, 12, 14, 16, 10, 22, 25, 24, 23,
}
