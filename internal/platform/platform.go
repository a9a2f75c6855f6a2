// Package platform resolves client OS from the User-Agent header for
// app-store call-to-action links.
package platform

import (
	ua "github.com/mileusna/useragent"
)

// Platform is the coarse client OS classification the store CTAs care about.
type Platform int

const (
	Other Platform = iota
	IOS
	Android
)

// Detect classifies a User-Agent string.
func Detect(userAgent string) Platform {
	if userAgent == "" {
		return Other
	}
	parsed := ua.Parse(userAgent)
	switch {
	case parsed.IsIOS():
		return IOS
	case parsed.IsAndroid():
		return Android
	default:
		return Other
	}
}

// StoreURL picks the destination for a platform-gated CTA: the iOS URL for
// iOS-like clients, otherwise the Android URL, otherwise empty (the CTA
// performs no navigation).
func StoreURL(p Platform, iosURL, androidURL string) string {
	if p == IOS && iosURL != "" {
		return iosURL
	}
	if androidURL != "" {
		return androidURL
	}
	return ""
}
