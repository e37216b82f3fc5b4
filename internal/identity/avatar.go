package identity

import (
	"fmt"
	"math/rand"
	"net/url"
	"strings"
)

// AvatarStyle selects the avatar scheme. It only affects AvatarURL.
type AvatarStyle string

const (
	AvatarDefault  AvatarStyle = "default"
	AvatarCartoon  AvatarStyle = "cartoon"
	AvatarPixel    AvatarStyle = "pixel"
	AvatarRobot    AvatarStyle = "robot"
	AvatarInitials AvatarStyle = "initials"
)

const avatarBase = "https://api.dicebear.com/9.x/"

// dicebear style slugs
var avatarSlugs = map[AvatarStyle]string{
	AvatarDefault:  "personas",
	AvatarCartoon:  "adventurer",
	AvatarPixel:    "pixel-art",
	AvatarRobot:    "bottts",
	AvatarInitials: "initials",
}

// AvatarStyles returns every style in display order.
func AvatarStyles() []AvatarStyle {
	return []AvatarStyle{AvatarDefault, AvatarCartoon, AvatarPixel, AvatarRobot, AvatarInitials}
}

// Valid reports whether s is a known style.
func (s AvatarStyle) Valid() bool {
	_, ok := avatarSlugs[s]
	return ok
}

// ParseAvatarStyle maps user input to a style; empty input is the default.
func ParseAvatarStyle(s string) (AvatarStyle, error) {
	st := AvatarStyle(strings.ToLower(strings.TrimSpace(s)))
	if st == "" {
		return AvatarDefault, nil
	}
	if !st.Valid() {
		return "", fmt.Errorf("%w: avatar style %q", ErrInvalidParameter, s)
	}
	return st, nil
}

// avatarURL builds a style-tagged URL. The initials style is seeded with
// the name so it renders the person's initials; the others get a random
// seed so two people with the same name look different.
func avatarURL(r *rand.Rand, style AvatarStyle, first, last string) string {
	seed := first + " " + last
	if style != AvatarInitials {
		seed = fmt.Sprintf("%s-%08x", foldName(first+last), r.Uint32())
	}
	return avatarBase + avatarSlugs[style] + "/svg?seed=" + url.QueryEscape(seed)
}
