package domain

import "strings"

type Intent string

const (
	IntentGreeting           Intent = "greeting"
	IntentTime               Intent = "time"
	IntentDate               Intent = "date"
	IntentWeather            Intent = "weather"
	IntentMenu               Intent = "menu"
	IntentImprove            Intent = "improve"
	IntentCode               Intent = "code"
	IntentOpenSite           Intent = "open_site"
	IntentSearch             Intent = "search"
	IntentRemindMe           Intent = "remind_me"
	IntentExit               Intent = "exit"
	IntentContextualFallback Intent = "contextual_fallback"
	IntentUnrecognized       Intent = "unrecognized"
)

type intentRule struct {
	intent   Intent
	keywords []string
}

// intentRules is evaluated top to bottom and the first rule with a keyword
// contained in the utterance wins. Keywords overlap ("search" inside a
// "remind me" request, "hi" inside "this"), so the order is the contract.
var intentRules = []intentRule{
	{intent: IntentGreeting, keywords: []string{"hi", "hello"}},
	{intent: IntentTime, keywords: []string{"time"}},
	{intent: IntentDate, keywords: []string{"date"}},
	{intent: IntentWeather, keywords: []string{"weather", "what about"}},
	{intent: IntentMenu, keywords: []string{"menu"}},
	{intent: IntentImprove, keywords: []string{"improve"}},
	{intent: IntentCode, keywords: []string{"code"}},
	{intent: IntentOpenSite, keywords: []string{"open"}},
	{intent: IntentSearch, keywords: []string{"search"}},
	{intent: IntentRemindMe, keywords: []string{"remind me"}},
	{intent: IntentExit, keywords: []string{"exit"}},
}

// Classify resolves a normalized utterance to the first matching keyword
// intent. It never returns IntentContextualFallback; that decision needs the
// memory ring and belongs to the router.
func Classify(utterance string) Intent {
	if utterance == "" {
		return IntentUnrecognized
	}

	for _, rule := range intentRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(utterance, keyword) {
				return rule.intent
			}
		}
	}

	return IntentUnrecognized
}

// TextAfter returns the trimmed remainder of utterance following the first
// occurrence of keyword, or "" when keyword is absent.
func TextAfter(utterance, keyword string) string {
	_, after, found := strings.Cut(utterance, keyword)
	if !found {
		return ""
	}
	return strings.TrimSpace(after)
}
