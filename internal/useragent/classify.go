// Package useragent classifies raw user agent strings into the coarse
// device/browser/OS buckets stored on visitor rows.
package useragent

import "strings"

// Classification is the device/browser/OS triple for one user agent.
type Classification struct {
	DeviceType string
	Browser    string
	OS         string
}

// Classify applies the ordered classification rules to a user agent string.
// Rule order is part of the contract: a user agent carrying both "Chrome"
// and "Edg" resolves to edge, and "Linux" with "Android" resolves to
// android.
func Classify(userAgent string) Classification {
	return Classification{
		DeviceType: deviceType(userAgent),
		Browser:    browser(userAgent),
		OS:         operatingSystem(userAgent),
	}
}

func deviceType(ua string) string {
	switch {
	case strings.Contains(ua, "Mobile") || strings.Contains(ua, "Android"):
		return "mobile"
	case strings.Contains(ua, "Tablet") || strings.Contains(ua, "iPad"):
		return "tablet"
	default:
		return "desktop"
	}
}

func browser(ua string) string {
	switch {
	case strings.Contains(ua, "Chrome") && !strings.Contains(ua, "Edg"):
		return "chrome"
	case strings.Contains(ua, "Firefox"):
		return "firefox"
	case strings.Contains(ua, "Safari") && !strings.Contains(ua, "Chrome"):
		return "safari"
	case strings.Contains(ua, "Edg"):
		return "edge"
	case strings.Contains(ua, "Opera") || strings.Contains(ua, "OPR"):
		return "opera"
	default:
		return "other"
	}
}

func operatingSystem(ua string) string {
	switch {
	case strings.Contains(ua, "Windows"):
		return "windows"
	case strings.Contains(ua, "Mac OS"):
		return "macos"
	case strings.Contains(ua, "Linux") && !strings.Contains(ua, "Android"):
		return "linux"
	case strings.Contains(ua, "Android"):
		return "android"
	case strings.Contains(ua, "iPhone") || strings.Contains(ua, "iPad") || strings.Contains(ua, "iOS"):
		return "ios"
	default:
		return "other"
	}
}
