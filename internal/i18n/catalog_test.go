package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestLandingReturnsKoreanCopy(t *testing.T) {
	t.Parallel()

	copy := Landing(language.Korean)
	if copy.Heading != "물류 관제탑 v2.5" {
		t.Fatalf("Heading = %q", copy.Heading)
	}
	if copy.Status != "해상 운영 대시보드를 로딩 중..." {
		t.Fatalf("Status = %q", copy.Status)
	}
	if copy.Wait != "잠시만 기다려주세요. 곧 관제탑으로 이동합니다." {
		t.Fatalf("Wait = %q", copy.Wait)
	}
}

func TestLandingFallsBackToEnglishForUnsupportedLanguage(t *testing.T) {
	t.Parallel()

	copy := Landing(language.German)
	if copy.Heading != "Logistics Control Tower v2.5" {
		t.Fatalf("Heading = %q", copy.Heading)
	}
	if copy.Fallback != "Open the control tower" {
		t.Fatalf("Fallback = %q", copy.Fallback)
	}
}

func TestMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "empty header defaults to korean", header: "", want: 0},
		{name: "korean", header: "ko-KR,ko;q=0.9", want: 0},
		{name: "english", header: "en-US,en;q=0.9", want: 1},
		{name: "english preferred over korean", header: "en;q=0.9,ko;q=0.5", want: 1},
		{name: "malformed header", header: ";;;q=abc", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Match(tt.header); got != tt.want {
				t.Errorf("Match(%q) = %d; want %d", tt.header, got, tt.want)
			}
		})
	}
}

func TestLandingPairAlwaysReturnsBothLanguages(t *testing.T) {
	t.Parallel()

	primary, secondary := LandingPair("en-US")
	if primary.Lang != language.English || secondary.Lang != language.Korean {
		t.Fatalf("LandingPair(en-US) = %v, %v", primary.Lang, secondary.Lang)
	}

	primary, secondary = LandingPair("")
	if primary.Lang != language.Korean || secondary.Lang != language.English {
		t.Fatalf("LandingPair(\"\") = %v, %v", primary.Lang, secondary.Lang)
	}
}
