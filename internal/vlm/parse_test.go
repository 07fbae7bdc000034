package vlm

import "testing"

func TestDecodeExtraction_CleanJSON(t *testing.T) {
	got := decodeExtraction(`{"korean":"<p>이차방정식을 풀어라</p>","english":"<p>Solve the quadratic</p>"}`)
	if got.Korean != "<p>이차방정식을 풀어라</p>" {
		t.Fatalf("korean = %q", got.Korean)
	}
	if got.English != "<p>Solve the quadratic</p>" {
		t.Fatalf("english = %q", got.English)
	}
}

func TestDecodeExtraction_CodeFences(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"json fence", "```json\n{\"korean\":\"문제\",\"english\":\"problem\"}\n```"},
		{"html fence", "```html\n{\"korean\":\"문제\",\"english\":\"problem\"}\n```"},
		{"bare fence", "```\n{\"korean\":\"문제\",\"english\":\"problem\"}\n```"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeExtraction(tt.input)
			if got.Korean != "문제" || got.English != "problem" {
				t.Fatalf("got %+v", got)
			}
		})
	}
}

func TestDecodeExtraction_AmpersandUnescape(t *testing.T) {
	got := decodeExtraction(`{"korean":"x &amp;gt; 3","english":""}`)
	if got.Korean != "x &gt; 3" {
		t.Fatalf("korean = %q", got.Korean)
	}
}

func TestDecodeExtraction_RawFallback(t *testing.T) {
	// Non-JSON output becomes the Korean text wholesale.
	got := decodeExtraction("다음 식을 계산하시오: $2x + 3 = 7$")
	if got.Korean != "다음 식을 계산하시오: $2x + 3 = 7$" {
		t.Fatalf("korean = %q", got.Korean)
	}
	if got.English != "" {
		t.Fatalf("english = %q, want empty", got.English)
	}
}

func TestDecodeExtraction_EmptyKoreanFallsBack(t *testing.T) {
	// Valid JSON with a blank korean field is treated as malformed output
	// and falls back to raw text.
	input := `{"korean":"","english":"only english"}`
	got := decodeExtraction(input)
	if got.Korean != input {
		t.Fatalf("korean = %q, want the raw input", got.Korean)
	}
}

func TestDecodeExtraction_EmptyEnglishIsValid(t *testing.T) {
	got := decodeExtraction(`{"korean":"한국어만","english":""}`)
	if got.Korean != "한국어만" || got.English != "" {
		t.Fatalf("got %+v", got)
	}
}

func TestDecodeExtraction_WhitespaceTrimmed(t *testing.T) {
	got := decodeExtraction("  {\"korean\":\"  문제  \",\"english\":\" answer \"}  ")
	if got.Korean != "문제" || got.English != "answer" {
		t.Fatalf("got %+v", got)
	}
}
