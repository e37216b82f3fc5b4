package identity

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/zarlcorp/zprofile/internal/locale"
)

// GenerateNationalID synthesizes the national identifier of c for p. Schemes
// that encode personal data (France, Belgium, Italy, Senegal) derive those
// parts from p; the rest are random but checksum-valid where the scheme
// defines a checksum.
func GenerateNationalID(r *rand.Rand, c locale.Country, p Person) (string, error) {
	tbl, err := locale.Lookup(c)
	if err != nil {
		return "", fmt.Errorf("generate national id: %w", err)
	}
	if p.Gender != locale.Male && p.Gender != locale.Female {
		return "", fmt.Errorf("generate national id: %w: gender %q", ErrInvalidParameter, p.Gender)
	}
	return nationalID(r, tbl, p)
}

func nationalID(r *rand.Rand, tbl *locale.Table, p Person) (string, error) {
	var id string
	switch tbl.NationalID.Scheme {
	case locale.SchemeNIR:
		id = nir(r, p)
	case locale.SchemeBelgianRegister:
		id = belgianRegister(r, p)
	case locale.SchemeAHV:
		id = ahv(r)
	case locale.SchemeSIN:
		id = sin(r)
	case locale.SchemeSSN:
		id = ssn(r)
	case locale.SchemeNINO:
		id = nino(r)
	case locale.SchemeSteuerID:
		id = steuerID(r)
	case locale.SchemeDNI:
		id = dni(r)
	case locale.SchemeCodiceFiscale:
		id = CodiceFiscale(p, pick(r, italianMunicipalities))
	case locale.SchemeBSN:
		id = bsn(r)
	case locale.SchemeCPF:
		id = cpf(r)
	case locale.SchemeMyNumber:
		id = myNumber(r)
	case locale.SchemeCIN:
		id = pick(r, moroccanCINPrefixes) + digits(r, 6)
	case locale.SchemeCNI:
		id = cni(r, p)
	default:
		return "", fmt.Errorf("%w: national id scheme %d for %s", ErrGenerationFailure, tbl.NationalID.Scheme, tbl.Country)
	}

	if !tbl.NationalID.Format.MatchString(id) {
		return "", fmt.Errorf("%w: %s %q", ErrGenerationFailure, tbl.NationalID.Name, id)
	}
	return id, nil
}

func sexDigit(g locale.Gender) int {
	if g == locale.Female {
		return 2
	}
	return 1
}

// nir renders "S YY MM DD CCC OOO KK": sex, birth year and month,
// department, commune, birth order and the mod 97 key.
func nir(r *rand.Rand, p Person) string {
	dept := 1 + r.Intn(94)
	if dept >= 20 {
		// Corsica uses 2A/2B
		dept++
	}
	commune := 1 + r.Intn(990)
	order := 1 + r.Intn(999)

	base := fmt.Sprintf("%d%02d%02d%02d%03d%03d",
		sexDigit(p.Gender), p.BirthDate.Year()%100, int(p.BirthDate.Month()), dept, commune, order)
	n, _ := strconv.ParseInt(base, 10, 64)
	key := NIRKey(n)

	return fmt.Sprintf("%s %s %s %s %s %s %02d", base[0:1], base[1:3], base[3:5], base[5:7], base[7:10], base[10:13], key)
}

// NIRKey returns the two-digit control key of a 13-digit NIR.
func NIRKey(n int64) int {
	return int(97 - n%97)
}

// belgianRegister renders "YY.MM.DD-SSS.CC". The sequence is odd for men
// and even for women; births from 2000 are checked with a leading 2.
func belgianRegister(r *rand.Rand, p Person) string {
	seq := 1 + 2*r.Intn(499)
	if p.Gender == locale.Female {
		seq = 2 + 2*r.Intn(498)
	}
	y, m, d := p.BirthDate.Date()
	n := int64((y%100)*10000000+int(m)*100000+d*1000) + int64(seq)
	check := BelgianCheck(n, y >= 2000)
	return fmt.Sprintf("%02d.%02d.%02d-%03d.%02d", y%100, int(m), d, seq, check)
}

// BelgianCheck returns the mod 97 check of the nine-digit register base.
func BelgianCheck(n int64, born2000 bool) int {
	if born2000 {
		n += 2_000_000_000
	}
	return int(97 - n%97)
}

// ahv renders "756.XXXX.XXXX.XC" with an EAN-13 check digit.
func ahv(r *rand.Rand) string {
	payload := "756" + digits(r, 9)
	s := payload + strconv.Itoa(EAN13Check(payload))
	return s[0:3] + "." + s[3:7] + "." + s[7:11] + "." + s[11:13]
}

// EAN13Check returns the check digit for a 12-digit payload, weighting
// digits 1 and 3 alternately from the left.
func EAN13Check(payload string) int {
	sum := 0
	for i := 0; i < len(payload); i++ {
		d := int(payload[i] - '0')
		if i%2 == 1 {
			d *= 3
		}
		sum += d
	}
	return (10 - sum%10) % 10
}

// sin renders a Luhn-valid "XXX XXX XXX". Leading 0 and 8 are not issued
// to individuals.
func sin(r *rand.Rand) string {
	first := pickByte(r, "12345679")
	s := CardNumber(r, string(first), 9)
	return s[0:3] + " " + s[3:6] + " " + s[6:9]
}

// ssn renders "AAA-GG-SSSS" avoiding the never-issued areas and zero
// groups and serials.
func ssn(r *rand.Rand) string {
	area := 1 + r.Intn(899)
	for area == 666 {
		area = 1 + r.Intn(899)
	}
	return fmt.Sprintf("%03d-%02d-%04d", area, 1+r.Intn(99), 1+r.Intn(9999))
}

// nino renders "AB 12 34 56 C".
func nino(r *rand.Rand) string {
	var prefix string
	for {
		prefix = string([]byte{pickByte(r, ninoFirst), pickByte(r, ninoSecond)})
		if !ninoBlocked[prefix] {
			break
		}
	}
	d := digits(r, 6)
	return fmt.Sprintf("%s %s %s %s %c", prefix, d[0:2], d[2:4], d[4:6], pickByte(r, ninoSuffix))
}

// steuerID renders the eleven-digit tax identifier.
func steuerID(r *rand.Rand) string {
	payload := string(pickByte(r, "123456789")) + digits(r, 9)
	return payload + strconv.Itoa(SteuerIDCheck(payload))
}

// SteuerIDCheck implements ISO 7064 MOD 11,10.
func SteuerIDCheck(payload string) int {
	product := 10
	for i := 0; i < len(payload); i++ {
		sum := (int(payload[i]-'0') + product) % 10
		if sum == 0 {
			sum = 10
		}
		product = (sum * 2) % 11
	}
	check := 11 - product
	if check == 10 {
		check = 0
	}
	return check
}

func dni(r *rand.Rand) string {
	n := r.Intn(100_000_000)
	return fmt.Sprintf("%08d%c", n, dniLetters[n%23])
}

// bsn draws nine digits that pass the eleven-test.
func bsn(r *rand.Rand) string {
	for {
		payload := string(pickByte(r, "123456789")) + digits(r, 7)
		if last := BSNCheck(payload); last < 10 {
			return payload + strconv.Itoa(last)
		}
	}
}

// BSNCheck returns the last digit for an eight-digit payload, or 10 when
// no digit completes the eleven-test.
func BSNCheck(payload string) int {
	sum := 0
	for i := 0; i < 8; i++ {
		sum += int(payload[i]-'0') * (9 - i)
	}
	return sum % 11
}

// BSNValid reports whether s passes the eleven-test.
func BSNValid(s string) bool {
	if len(s) != 9 {
		return false
	}
	sum := 0
	for i := 0; i < 9; i++ {
		d := int(s[i] - '0')
		if i == 8 {
			sum -= d
		} else {
			sum += d * (9 - i)
		}
	}
	return sum%11 == 0
}

// cpf renders "XXX.XXX.XXX-DD".
func cpf(r *rand.Rand) string {
	var base string
	for {
		base = digits(r, 9)
		if strings.Count(base, base[:1]) != 9 {
			break
		}
	}
	d1 := CPFDigit(base)
	d2 := CPFDigit(base + strconv.Itoa(d1))
	return fmt.Sprintf("%s.%s.%s-%d%d", base[0:3], base[3:6], base[6:9], d1, d2)
}

// CPFDigit returns the next mod 11 check digit for a 9 or 10 digit prefix.
func CPFDigit(prefix string) int {
	sum := 0
	w := len(prefix) + 1
	for i := 0; i < len(prefix); i++ {
		sum += int(prefix[i]-'0') * (w - i)
	}
	d := sum * 10 % 11
	if d == 10 {
		d = 0
	}
	return d
}

// myNumber renders the twelve-digit individual number as "XXXX XXXX XXXX".
func myNumber(r *rand.Rand) string {
	payload := digits(r, 11)
	s := payload + strconv.Itoa(MyNumberCheck(payload))
	return s[0:4] + " " + s[4:8] + " " + s[8:12]
}

// MyNumberCheck returns the check digit for an eleven-digit payload.
func MyNumberCheck(payload string) int {
	sum := 0
	for n := 1; n <= 11; n++ {
		p := int(payload[11-n] - '0')
		q := n + 1
		if n > 6 {
			q = n - 5
		}
		sum += p * q
	}
	rem := sum % 11
	if rem <= 1 {
		return 0
	}
	return 11 - rem
}

// cni renders the thirteen-digit Senegalese number; the first digit is
// the holder's sex.
func cni(r *rand.Rand, p Person) string {
	return strconv.Itoa(sexDigit(p.Gender)) + digits(r, 12)
}

// CodiceFiscale builds the sixteen-character Italian tax code of p, born
// in the municipality with the given cadastral code.
func CodiceFiscale(p Person, municipality string) string {
	var b strings.Builder
	b.WriteString(codiceSurname(p.Family))
	b.WriteString(codiceGiven(p.Given))

	y, m, d := p.BirthDate.Date()
	if p.Gender == locale.Female {
		d += 40
	}
	fmt.Fprintf(&b, "%02d%c%02d", y%100, codiceMonths[m-1], d)
	b.WriteString(municipality)

	s := b.String()
	return s + string(CodiceCheck(s))
}

// CodiceCheck returns the control character for the first fifteen
// characters of a codice fiscale.
func CodiceCheck(s string) byte {
	sum := 0
	for i := 0; i < len(s); i++ {
		v := codiceValue(s[i])
		if i%2 == 0 {
			sum += codiceOdd[v]
		} else {
			sum += v
		}
	}
	return byte('A' + sum%26)
}

// codiceValue maps A-Z and 0-9 to 0-25 and 0-9.
func codiceValue(c byte) int {
	if c >= '0' && c <= '9' {
		return int(c - '0')
	}
	return int(c - 'A')
}

func codiceSurname(s string) string {
	cons, vows := splitLetters(s)
	return padX(cons + vows)
}

func codiceGiven(s string) string {
	cons, vows := splitLetters(s)
	if len(cons) >= 4 {
		return cons[0:1] + cons[2:4]
	}
	return padX(cons + vows)
}

func splitLetters(s string) (cons, vows string) {
	var c, v strings.Builder
	for _, ch := range strings.ToUpper(foldName(s)) {
		if strings.ContainsRune("AEIOU", ch) {
			v.WriteRune(ch)
		} else {
			c.WriteRune(ch)
		}
	}
	return c.String(), v.String()
}

func padX(s string) string {
	s += "XXX"
	return s[:3]
}
