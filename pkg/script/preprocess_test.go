package script

import "testing"

func TestPreprocessRewrites(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"keyword option",
			`(cube [1 2 3] :center true)`,
			`(cube [1 2 3] "__kw_center" true)`,
		},
		{
			"kebab call with keyword",
			`(rotate-extrude (circle 5) :angle 180)`,
			`(rotate_extrude (circle 5) "__kw_angle" 180)`,
		},
		{
			"hyphen kept inside keyword name",
			`(f :head-dia 5)`,
			`(f "__kw_head-dia" 5)`,
		},
		{
			"subtraction untouched",
			`(- 10 5)`,
			`(- 10 5)`,
		},
		{
			"negative literal untouched",
			`(translate [-5 0 0] part)`,
			`(translate [-5 0 0] part)`,
		},
		{
			"comment",
			"; a washer\n(sphere 1)",
			"// a washer\n(sphere 1)",
		},
		{
			"double semicolon comment",
			";; a washer",
			"// a washer",
		},
		{
			"assignment arrow untouched",
			`od := 12`,
			`od := 12`,
		},
		{
			"string literal untouched",
			`(text "semi; colon :center dash-case")`,
			`(text "semi; colon :center dash-case")`,
		},
		{
			"raw string untouched",
			"(text `keep :this as-is`)",
			"(text `keep :this as-is`)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := preprocess(tt.in)
			if got != tt.want {
				t.Errorf("preprocess(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
