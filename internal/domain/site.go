package domain

import "sort"

var siteURLs = map[string]string{
	"whatsapp":  "https://web.whatsapp.com",
	"youtube":   "https://www.youtube.com/",
	"google":    "https://www.google.com",
	"facebook":  "https://www.facebook.com",
	"instagram": "https://www.instagram.com",
	"chrome":    "https://www.google.com",
}

func SiteURL(name string) (string, bool) {
	url, ok := siteURLs[name]
	return url, ok
}

func KnownSites() []string {
	names := make([]string, 0, len(siteURLs))
	for name := range siteURLs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
