package videoutil

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	vimeoIDRe = regexp.MustCompile(`^\d+$`)
	mediaRe   = regexp.MustCompile(`(?i)\.(mp4|webm|ogg)$`)
)

// EmbedURL rewrites a video link into a directly embeddable form.
// YouTube watch/short links become /embed/ URLs and Vimeo page links become
// player URLs. Anything else, including input that fails URL parsing, is
// returned unchanged so the caller can decide how to render it.
func EmbedURL(raw string) string {
	if raw == "" {
		return ""
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}

	if strings.Contains(u.Hostname(), "youtube.com") && u.Path == "/watch" {
		if v := u.Query().Get("v"); v != "" {
			return "https://www.youtube.com/embed/" + v
		}
	}

	if u.Hostname() == "youtu.be" {
		return "https://www.youtube.com/embed/" + strings.TrimPrefix(u.Path, "/")
	}

	if strings.Contains(u.Hostname(), "youtube.com") && strings.HasPrefix(u.Path, "/embed/") {
		return raw
	}

	if strings.Contains(u.Hostname(), "vimeo.com") {
		if id := strings.TrimPrefix(u.Path, "/"); vimeoIDRe.MatchString(id) {
			return "https://player.vimeo.com/video/" + id
		}
	}

	// Direct media files play in a native <video> element, no rewrite needed.
	if mediaRe.MatchString(u.Path) {
		return raw
	}

	return raw
}

// Kind tells the renderer which player a normalized URL needs.
type Kind int

const (
	// KindNone means no video URL was supplied.
	KindNone Kind = iota
	// KindYouTube and KindVimeo render as iframes.
	KindYouTube
	KindVimeo
	// KindFile renders as a native video element.
	KindFile
	// KindUnknown is a URL that matches no supported player.
	KindUnknown
)

// Player classifies a URL that has already been through EmbedURL.
func Player(embedURL string) Kind {
	switch {
	case embedURL == "":
		return KindNone
	case strings.Contains(embedURL, "youtube.com/embed"):
		return KindYouTube
	case strings.Contains(embedURL, "player.vimeo.com"):
		return KindVimeo
	case mediaPath(embedURL):
		return KindFile
	default:
		return KindUnknown
	}
}

func mediaPath(raw string) bool {
	if u, err := url.Parse(raw); err == nil && u.Host != "" {
		return mediaRe.MatchString(u.Path)
	}
	return mediaRe.MatchString(raw)
}
