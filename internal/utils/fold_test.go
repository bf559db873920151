package utils

import "testing"

func TestFold(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"CoWoS", "cowos"},
		{"ＣｏＷｏＳ", "cowos"},
		{"ＨＢＭ３Ｅ", "hbm3e"},
		{"矽光子", "矽光子"},
		{"", ""},
	}

	for _, test := range tests {
		if result := Fold(test.input); result != test.expected {
			t.Errorf("Fold(%q) = %q; expected %q", test.input, result, test.expected)
		}
	}
}

func TestContainsFolded(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   string
		expected bool
	}{
		{"exact", "台積電 CoWoS 擴產", "CoWoS", true},
		{"case insensitive", "台積電 cowos 擴產", "CoWoS", true},
		{"full width", "ＣｏＷｏＳ產能", "cowos", true},
		{"cjk", "矽光子▪CPO", "矽光子", true},
		{"absent", "液冷散熱", "CoWoS", false},
		{"empty needle", "anything", "  ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsFolded(tt.haystack, tt.needle); got != tt.expected {
				t.Errorf("ContainsFolded(%q, %q) = %v, want %v", tt.haystack, tt.needle, got, tt.expected)
			}
		})
	}
}
