package platform

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnsupported = errors.New("unsupported platform")

type Platform string

const (
	YouTube   Platform = "youtube"
	Instagram Platform = "instagram"
	Twitter   Platform = "twitter"
)

// domains maps each platform to the hostnames it is known to serve. The
// lists are necessarily incomplete, so URL matching stays advisory.
var domains = map[Platform][]string{
	YouTube:   {"youtube.com", "youtu.be"},
	Instagram: {"instagram.com"},
	Twitter:   {"twitter.com", "x.com"},
}

var aliases = map[string]Platform{
	"x": Twitter,
}

// Normalize resolves a user-supplied platform name, folding case and
// aliases ("x" resolves to twitter).
func Normalize(name string) (Platform, error) {
	lowered := strings.ToLower(strings.TrimSpace(name))
	if p, ok := aliases[lowered]; ok {
		return p, nil
	}
	p := Platform(lowered)
	if _, ok := domains[p]; !ok {
		return "", fmt.Errorf("%w: %q (supported: %s)", ErrUnsupported, name, strings.Join(Names(), ", "))
	}
	return p, nil
}

func (p Platform) String() string {
	return string(p)
}

// MatchesURL reports whether the URL mentions one of the platform's known
// domains. A miss is a heuristic signal, not proof of a wrong URL.
func (p Platform) MatchesURL(url string) bool {
	lowered := strings.ToLower(url)
	for _, domain := range domains[p] {
		if strings.Contains(lowered, domain) {
			return true
		}
	}
	return false
}

func Names() []string {
	return []string{YouTube.String(), Instagram.String(), Twitter.String()}
}
