package sanitizer

import "testing"

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "trim spaces",
			input: "  Ganesh Puja  ",
			want:  "Ganesh Puja",
		},
		{
			name:  "multiple spaces between words",
			input: "Ganesh    Puja",
			want:  "Ganesh Puja",
		},
		{
			name:  "tabs and newlines",
			input: "Ganesh\t\nPuja",
			want:  "Ganesh Puja",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only whitespace",
			input: "   \t\n  ",
			want:  "",
		},
		{
			name:  "devanagari characters",
			input: " गणेश  पूजा ",
			want:  "गणेश पूजा",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TrimAndNormalize(tt.input)
			if got != tt.want {
				t.Errorf("TrimAndNormalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestKeyAndCode(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) string
		in   string
		want string
	}{
		{name: "key lowercases", fn: Key, in: " Stripe ", want: "stripe"},
		{name: "key collapses", fn: Key, in: "Razor   Pay", want: "razor pay"},
		{name: "code uppercases", fn: Code, in: " upi ", want: "UPI"},
		{name: "code keeps inner text", fn: Code, in: "cod", want: "COD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fn(tt.in)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if again := tt.fn(got); again != got {
				t.Errorf("not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestSameKeyAndBlank(t *testing.T) {
	if !SameKey("RAZORPAY", " razorpay") {
		t.Errorf("SameKey should ignore case and padding")
	}
	if SameKey("stripe", "razorpay") {
		t.Errorf("SameKey should distinguish providers")
	}
	if !Blank(" \t ") || Blank(" pi_123 ") {
		t.Errorf("Blank misclassified input")
	}
}
