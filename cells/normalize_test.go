package cells

import "testing"

type richCell struct {
	text string
}

func (r richCell) Text() string { return r.text }

func TestNormalize_Nil(t *testing.T) {
	if got := Normalize(nil); got != "" {
		t.Errorf("Normalize(nil) = %q, want empty string", got)
	}
}

func TestNormalize_PlainString(t *testing.T) {
	if got := Normalize("  微積分  "); got != "微積分" {
		t.Errorf("Expected trimmed string, got %q", got)
	}
}

func TestNormalize_TextWrapper(t *testing.T) {
	if got := Normalize(richCell{text: " A  3 "}); got != "A 3" {
		t.Errorf("Expected wrapper text normalized, got %q", got)
	}
}

func TestNormalize_FallbackStringify(t *testing.T) {
	if got := Normalize(3); got != "3" {
		t.Errorf("Expected stringified int, got %q", got)
	}
	if got := Normalize(2.5); got != "2.5" {
		t.Errorf("Expected stringified float, got %q", got)
	}
}

func TestNormalize_WhitespaceVariants(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"111\n上", "111 上"},
		{"111　上", "111 上"},        // full-width space
		{"  A \t 3 ", "A 3"},
		{"\r\n", ""},
		{"學　分", "學 分"},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalize_FullWidthDigits(t *testing.T) {
	if got := Normalize("１１１"); got != "111" {
		t.Errorf("Expected full-width digits folded, got %q", got)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"  A  3 ", "微積分", "111　上", ""}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestSquash(t *testing.T) {
	if got := Squash("學 分 (GPA)"); got != "學分(GPA)" {
		t.Errorf("Squash = %q", got)
	}
}
