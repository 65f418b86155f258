// Package i18n holds the translated copy shown while the landing page hands off.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	keyLandingHeading  = "landing.heading"
	keyLandingStatus   = "landing.status"
	keyLandingWait     = "landing.wait"
	keyLandingFallback = "landing.fallback_link"
)

// Supported lists the landing languages in preference order; the first is the default
var Supported = []language.Tag{language.Korean, language.English}

var matcher = language.NewMatcher(Supported)

var english = map[string]string{
	keyLandingHeading:  "Logistics Control Tower v2.5",
	keyLandingStatus:   "Loading the maritime operations dashboard...",
	keyLandingWait:     "Please wait. You will be taken to the control tower shortly.",
	keyLandingFallback: "Open the control tower",
}

var korean = map[string]string{
	keyLandingHeading:  "물류 관제탑 v2.5",
	keyLandingStatus:   "해상 운영 대시보드를 로딩 중...",
	keyLandingWait:     "잠시만 기다려주세요. 곧 관제탑으로 이동합니다.",
	keyLandingFallback: "관제탑 열기",
}

func init() {
	for key, msg := range english {
		if err := message.SetString(language.English, key, msg); err != nil {
			panic(fmt.Sprintf("register %s: %v", key, err))
		}
	}
	for key, msg := range korean {
		if err := message.SetString(language.Korean, key, msg); err != nil {
			panic(fmt.Sprintf("register %s: %v", key, err))
		}
	}
}

// LandingCopy is the status text of the landing page in one language
type LandingCopy struct {
	Lang     language.Tag
	Heading  string
	Status   string
	Wait     string
	Fallback string
}

// Landing returns the landing copy for tag. Anything other than Korean gets English.
func Landing(tag language.Tag) LandingCopy {
	tag = normalizeTag(tag)
	loc := message.NewPrinter(tag)
	return LandingCopy{
		Lang:     tag,
		Heading:  localizeWithFallback(loc, keyLandingHeading),
		Status:   localizeWithFallback(loc, keyLandingStatus),
		Wait:     localizeWithFallback(loc, keyLandingWait),
		Fallback: localizeWithFallback(loc, keyLandingFallback),
	}
}

// LandingPair returns the copy in both supported languages, the one best
// matching acceptLanguage first. An empty or unparsable header keeps the default order.
func LandingPair(acceptLanguage string) (primary, secondary LandingCopy) {
	idx := Match(acceptLanguage)
	primary = Landing(Supported[idx])
	secondary = Landing(Supported[(idx+1)%len(Supported)])
	return primary, secondary
}

// Match returns the index in Supported that best fits an Accept-Language header
func Match(acceptLanguage string) int {
	if strings.TrimSpace(acceptLanguage) == "" {
		return 0
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return 0
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return 0
	}
	return idx
}

func normalizeTag(tag language.Tag) language.Tag {
	base, _ := tag.Base()
	koreanBase, _ := language.Korean.Base()
	if base == koreanBase {
		return language.Korean
	}
	return language.English
}

func localizeWithFallback(loc *message.Printer, key string) string {
	if loc != nil {
		value := strings.TrimSpace(loc.Sprintf(key))
		if value != "" && value != key {
			return value
		}
	}
	return english[key]
}
