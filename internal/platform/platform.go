// Package platform maps submitted URLs onto the fixed set of supported
// social-media platforms. Identification is host-based and pure: no
// network access, and malformed input yields "not recognized" rather
// than an error.
package platform

import (
	"net/url"
	"strings"

	"github.com/saveloop/saveloop/internal/models"
)

// Tag is the canonical short identifier of a supported platform.
type Tag string

const (
	YouTube     Tag = "youtube"
	Facebook    Tag = "facebook"
	Instagram   Tag = "instagram"
	Twitter     Tag = "twitter"
	TikTok      Tag = "tiktok"
	Vimeo       Tag = "vimeo"
	Dailymotion Tag = "dailymotion"
	Pinterest   Tag = "pinterest"
	LinkedIn    Tag = "linkedin"
)

type rule struct {
	tag   Tag
	name  string
	hosts []string
}

// The rule order is part of the contract: the first matching entry wins.
var rules = []rule{
	{YouTube, "YouTube", []string{"youtube.com", "youtu.be"}},
	{Facebook, "Facebook", []string{"facebook.com", "fb.com", "fb.watch"}},
	{Instagram, "Instagram", []string{"instagram.com"}},
	{Twitter, "Twitter / X", []string{"twitter.com", "x.com"}},
	{TikTok, "TikTok", []string{"tiktok.com"}},
	{Vimeo, "Vimeo", []string{"vimeo.com"}},
	{Dailymotion, "Dailymotion", []string{"dailymotion.com", "dai.ly"}},
	{Pinterest, "Pinterest", []string{"pinterest.com", "pin.it"}},
	{LinkedIn, "LinkedIn", []string{"linkedin.com"}},
}

// Identify resolves a raw URL to its platform tag. The second return
// value is false when the host matches no known platform, or when the
// input is empty or unparseable.
func Identify(raw string) (Tag, bool) {
	if raw == "" {
		return "", false
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	host := strings.ToLower(parsed.Host)
	if host == "" {
		return "", false
	}
	for _, r := range rules {
		for _, h := range r.hosts {
			if strings.Contains(host, h) {
				return r.tag, true
			}
		}
	}
	return "", false
}

// Name returns the display name for a tag, or the tag itself when unknown.
func Name(t Tag) string {
	for _, r := range rules {
		if r.tag == t {
			return r.name
		}
	}
	return string(t)
}

// All returns every supported tag in rule order.
func All() []Tag {
	tags := make([]Tag, 0, len(rules))
	for _, r := range rules {
		tags = append(tags, r.tag)
	}
	return tags
}

// ContentKind classifies what a URL will produce. Pinterest and
// Instagram links, and generic photo-style paths, count against the
// image quota; everything else counts as video.
func ContentKind(raw string) models.ContentType {
	lower := strings.ToLower(raw)
	for _, marker := range []string{"pinterest", "instagram", "/p/", "/photo/"} {
		if strings.Contains(lower, marker) {
			return models.ContentImage
		}
	}
	return models.ContentVideo
}
