package language

import (
	"testing"
)

func TestToISO2(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// 2-letter codes pass through
		{"en", "en"},
		{"EN", "en"},
		// 3-letter codes convert
		{"eng", "en"},
		{"fre", "fr"},
		{"ger", "de"},
		{"dut", "nl"},
		{"chi", "zh"},
		{"cze", "cs"},
		{"per", "fa"},
		// Word forms
		{"english", "en"},
		{"GERMAN", "de"},
		{"farsi", "fa"},
		// Unknown 2-letter passes through
		{"xy", "xy"},
		// Unknown 3-letter returns empty
		{"xyz", ""},
		{"", ""},
		{" ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ToISO2(tt.input); got != tt.expected {
				t.Errorf("ToISO2(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"en", "English"},
		{"fra", "French"},
		{"nl", "Dutch"},
		{"", "Unknown"},
		{"qqq", "QQQ"},
	}
	for _, tt := range tests {
		if got := DisplayName(tt.input); got != tt.expected {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestNormalizeList(t *testing.T) {
	got := NormalizeList([]string{"eng", "en", "French", "xyz", "", "de"})
	want := []string{"en", "fr", "de"}
	if len(got) != len(want) {
		t.Fatalf("NormalizeList = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("NormalizeList = %v, want %v", got, want)
		}
	}
	if NormalizeList(nil) != nil {
		t.Fatal("expected nil for empty input")
	}
}

func TestCatalogOrderAndUniqueness(t *testing.T) {
	entries := NewCatalog().SupportedLanguages()
	if len(entries) == 0 || entries[0].Code != "en" || entries[0].Name != "English" {
		t.Fatalf("unexpected first entry: %+v", entries)
	}
	codes := map[string]bool{}
	names := map[string]bool{}
	for _, e := range entries {
		if codes[e.Code] || names[e.Name] {
			t.Fatalf("duplicate catalog entry %+v", e)
		}
		codes[e.Code] = true
		names[e.Name] = true
	}

	entries[0].Name = "mutated"
	if NewCatalog().SupportedLanguages()[0].Name != "English" {
		t.Fatal("SupportedLanguages must return a copy")
	}
}

func TestUILanguageName(t *testing.T) {
	c := NewCatalog()
	tests := []struct {
		locale string
		want   string
	}{
		{"de_DE.UTF-8", "German"},
		{"fr_CA", "French"},
		{"pt_BR.UTF-8@euro", "Portuguese"},
		{"en_US.UTF-8", "English"},
		{"C", "English"},
		{"POSIX", "English"},
		{"", "English"},
		{"not a locale", "English"},
	}
	for _, tt := range tests {
		if got := c.UILanguageName(tt.locale); got != tt.want {
			t.Errorf("UILanguageName(%q) = %q, want %q", tt.locale, got, tt.want)
		}
	}
}
