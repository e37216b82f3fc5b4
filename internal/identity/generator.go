package identity

import (
	"encoding/binary"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/zarlcorp/core/pkg/zcrypto"
	"github.com/zarlcorp/zprofile/internal/locale"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Generator produces profiles from a single random stream. It is safe for
// concurrent use; callers that want parallel generation without contention
// should give each goroutine its own Generator.
type Generator struct {
	mu    sync.Mutex
	rng   *rand.Rand
	faker *gofakeit.Faker
	now   func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed makes the generator deterministic.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r as the random stream. The generator takes ownership of r.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		g.rng = r
	}
}

// WithClock overrides the generation instant.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// New creates a generator. Without WithSeed or WithRand the stream is
// seeded from the OS entropy source.
func New(opts ...Option) *Generator {
	g := &Generator{now: time.Now}
	for _, o := range opts {
		o(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(NewSeed()))
	}
	// the faker shares the stream so seeded runs stay reproducible
	g.faker = gofakeit.NewCustom(g.rng)
	return g
}

// NewSeed returns a random seed from the OS entropy source.
func NewSeed() int64 {
	b, err := zcrypto.RandBytes(8)
	if err != nil {
		// entropy failure is unrecoverable
		panic("zcrypto: " + err.Error())
	}
	return int64(binary.LittleEndian.Uint64(b) >> 1)
}

// Generate builds a complete profile. Either every field is produced or
// the zero Profile is returned with the first error.
func (g *Generator) Generate(req Request) (Profile, error) {
	tbl, err := req.validate()
	if err != nil {
		return Profile{}, fmt.Errorf("generate profile: %w", err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	r := g.rng
	now := g.now()

	gender := resolveGender(r, req.Gender)
	first, last := name(r, tbl, gender)

	birth, err := birthDate(r, req.AgeRange, now)
	if err != nil {
		return Profile{}, fmt.Errorf("generate profile: %w", err)
	}

	addr, err := address(r, tbl)
	if err != nil {
		return Profile{}, fmt.Errorf("generate profile: %w", err)
	}

	phone, err := phoneNumber(r, tbl)
	if err != nil {
		return Profile{}, fmt.Errorf("generate profile: %w", err)
	}

	nid, err := nationalID(r, tbl, Person{
		Given:     first,
		Family:    last,
		Gender:    gender,
		BirthDate: birth,
	})
	if err != nil {
		return Profile{}, fmt.Errorf("generate profile: %w", err)
	}

	brand := tbl.Brands[r.Intn(len(tbl.Brands))]
	card, err := newCard(r, brand, now)
	if err != nil {
		return Profile{}, fmt.Errorf("generate profile: %w", err)
	}

	email := emailAddress(r, first, last, tbl.EmailDomain)
	username := strings.ToLower(g.faker.Username())
	password := passwordString(r, defaultPasswordLen)
	avatar := avatarURL(r, req.AvatarStyle, first, last)

	id, err := uuid.NewRandomFromReader(r)
	if err != nil {
		return Profile{}, fmt.Errorf("generate profile: %w: id: %v", ErrGenerationFailure, err)
	}

	return Profile{
		ID:             id.String(),
		Title:          tbl.Titles[gender],
		FirstName:      first,
		LastName:       last,
		FullName:       tbl.FullName(first, last),
		Gender:         gender,
		BirthDate:      birth,
		Age:            AgeAt(birth, now),
		Email:          email,
		Username:       username,
		Password:       password,
		Phone:          phone,
		Address:        addr,
		NationalID:     nid,
		NationalIDName: tbl.NationalID.Name,
		Card:           card,
		AvatarURL:      avatar,
		AvatarStyle:    req.AvatarStyle,
		Country:        tbl.Country,
		GeneratedAt:    now.UTC().Truncate(time.Second),
	}, nil
}

// Password generates a password of the given length containing at least
// one character from each class (lower, upper, digit, symbol).
func (g *Generator) Password(length int) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return passwordString(g.rng, length)
}

func (req Request) validate() (*locale.Table, error) {
	tbl, err := locale.Lookup(req.Country)
	if err != nil {
		return nil, err
	}
	if !req.Gender.Valid() {
		return nil, fmt.Errorf("%w: gender %q", ErrInvalidParameter, req.Gender)
	}
	if err := req.AgeRange.Validate(); err != nil {
		return nil, err
	}
	if !req.AvatarStyle.Valid() {
		return nil, fmt.Errorf("%w: avatar style %q", ErrInvalidParameter, req.AvatarStyle)
	}
	return tbl, nil
}

func resolveGender(r *rand.Rand, g locale.Gender) locale.Gender {
	if g != locale.Unspecified {
		return g
	}
	if r.Intn(2) == 0 {
		return locale.Male
	}
	return locale.Female
}

func passwordString(r *rand.Rand, length int) string {
	if length < 4 {
		length = 4
	}

	buf := make([]byte, length)

	// guarantee one from each class
	buf[0] = pickByte(r, lowerChars)
	buf[1] = pickByte(r, upperChars)
	buf[2] = pickByte(r, digitChars)
	buf[3] = pickByte(r, symbolChars)

	for i := 4; i < length; i++ {
		buf[i] = pickByte(r, allPassChars)
	}

	// shuffle using Fisher-Yates
	for i := length - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf)
}

// emailAddress picks one of eight local-part patterns, seven of which are
// built from the folded name. An empty domain falls back to example.com.
func emailAddress(r *rand.Rand, first, last, domain string) string {
	if domain == "" {
		domain = defaultDomain
	}
	f := foldName(first)
	l := foldName(last)
	if f == "" || l == "" {
		return wordEmail(r, domain)
	}

	var local string
	switch r.Intn(8) {
	case 0:
		local = f + "." + l
	case 1:
		local = f[:1] + l
	case 2:
		local = f + l
	case 3:
		local = fmt.Sprintf("%s.%s%02d", f, l, r.Intn(100))
	case 4:
		local = fmt.Sprintf("%s%s%02d", f[:1], l, r.Intn(100))
	case 5:
		local = f[:1] + "." + l
	case 6:
		local = l + "." + f
	default:
		return wordEmail(r, domain)
	}
	return local + "@" + strings.ToLower(domain)
}

func wordEmail(r *rand.Rand, domain string) string {
	return fmt.Sprintf("%s%s%04d@%s", pick(r, adjectives), pick(r, nouns), r.Intn(10000), strings.ToLower(domain))
}

// foldName lowercases s, strips diacritics and drops anything that is not
// an ASCII letter: "Lefèvre" -> "lefevre", "De Luca" -> "deluca".
func foldName(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	for _, c := range strings.ToLower(folded) {
		if c >= 'a' && c <= 'z' {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// pick returns a random element from a string slice.
func pick(r *rand.Rand, s []string) string {
	return s[r.Intn(len(s))]
}

// pickByte returns a random byte from a string.
func pickByte(r *rand.Rand, s string) byte {
	return s[r.Intn(len(s))]
}

// digits returns n random decimal digits.
func digits(r *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('0' + r.Intn(10))
	}
	return string(b)
}
