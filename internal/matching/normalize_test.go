package matching

import "testing"

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "empty input",
			input:  "",
			expect: "",
		},
		{
			name:   "lowercases",
			input:  "Product Manager",
			expect: "product manager",
		},
		{
			name:   "punctuation becomes a single space",
			input:  "CI/CD, terraform!",
			expect: "ci cd terraform",
		},
		{
			name:   "whitespace runs collapse",
			input:  "  usage-based \t billing \n platform  ",
			expect: "usage based billing platform",
		},
		{
			name:   "only punctuation",
			input:  "!!! ...",
			expect: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.expect {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"Senior Product Manager - Platform Infrastructure",
		"quote-to-cash & usage-based billing!!",
		"   spaced    out   ",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Fatalf("Normalize not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}
