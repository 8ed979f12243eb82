package menu

import "testing"

func TestParsePrice(t *testing.T) {
	cases := map[string]int64{
		"":                     0,
		"abc":                  0,
		"1500":                 1500,
		" 1500 ":               1500,
		"12abc":                12,
		"-5":                   0,
		"+7":                   7,
		"0012":                 12,
		"99999999999999999999": 0,
	}
	for raw, want := range cases {
		if got := ParsePrice(raw); got != want {
			t.Fatalf("ParsePrice(%q) = %d, want %d", raw, got, want)
		}
	}
}

func TestFormatPriceAddsCurrency(t *testing.T) {
	if got := FormatPrice(1500); got != "1500 so'm" {
		t.Fatalf("unexpected price label %q", got)
	}
}
