package scad

import "strings"

// namedColors holds the web color names the renderer accepts, keyed by
// lowercase name. Lookup is case-insensitive; the emitted script keeps the
// caller's spelling.
var namedColors = map[string]struct{}{
	"aliceblue":            {},
	"antiquewhite":         {},
	"aqua":                 {},
	"aquamarine":           {},
	"azure":                {},
	"beige":                {},
	"bisque":               {},
	"black":                {},
	"blanchedalmond":       {},
	"blue":                 {},
	"blueviolet":           {},
	"brown":                {},
	"burlywood":            {},
	"cadetblue":            {},
	"chartreuse":           {},
	"chocolate":            {},
	"coral":                {},
	"cornflowerblue":       {},
	"cornsilk":             {},
	"crimson":              {},
	"cyan":                 {},
	"darkblue":             {},
	"darkcyan":             {},
	"darkgoldenrod":        {},
	"darkgray":             {},
	"darkgreen":            {},
	"darkgrey":             {},
	"darkkhaki":            {},
	"darkmagenta":          {},
	"darkolivegreen":       {},
	"darkorange":           {},
	"darkorchid":           {},
	"darkred":              {},
	"darksalmon":           {},
	"darkseagreen":         {},
	"darkslateblue":        {},
	"darkslategray":        {},
	"darkslategrey":        {},
	"darkturquoise":        {},
	"darkviolet":           {},
	"deeppink":             {},
	"deepskyblue":          {},
	"dimgray":              {},
	"dimgrey":              {},
	"dodgerblue":           {},
	"firebrick":            {},
	"floralwhite":          {},
	"forestgreen":          {},
	"fuchsia":              {},
	"gainsboro":            {},
	"ghostwhite":           {},
	"gold":                 {},
	"goldenrod":            {},
	"gray":                 {},
	"green":                {},
	"greenyellow":          {},
	"grey":                 {},
	"honeydew":             {},
	"hotpink":              {},
	"indianred":            {},
	"indigo":               {},
	"ivory":                {},
	"khaki":                {},
	"lavender":             {},
	"lavenderblush":        {},
	"lawngreen":            {},
	"lemonchiffon":         {},
	"lightblue":            {},
	"lightcoral":           {},
	"lightcyan":            {},
	"lightgoldenrodyellow": {},
	"lightgray":            {},
	"lightgreen":           {},
	"lightgrey":            {},
	"lightpink":            {},
	"lightsalmon":          {},
	"lightseagreen":        {},
	"lightskyblue":         {},
	"lightslategray":       {},
	"lightslategrey":       {},
	"lightsteelblue":       {},
	"lightyellow":          {},
	"lime":                 {},
	"limegreen":            {},
	"linen":                {},
	"magenta":              {},
	"maroon":               {},
	"mediumaquamarine":     {},
	"mediumblue":           {},
	"mediumorchid":         {},
	"mediumpurple":         {},
	"mediumseagreen":       {},
	"mediumslateblue":      {},
	"mediumspringgreen":    {},
	"mediumturquoise":      {},
	"mediumvioletred":      {},
	"midnightblue":         {},
	"mintcream":            {},
	"mistyrose":            {},
	"moccasin":             {},
	"navajowhite":          {},
	"navy":                 {},
	"oldlace":              {},
	"olive":                {},
	"olivedrab":            {},
	"orange":               {},
	"orangered":            {},
	"orchid":               {},
	"palegoldenrod":        {},
	"palegreen":            {},
	"paleturquoise":        {},
	"palevioletred":        {},
	"papayawhip":           {},
	"peachpuff":            {},
	"peru":                 {},
	"pink":                 {},
	"plum":                 {},
	"powderblue":           {},
	"purple":               {},
	"red":                  {},
	"rosybrown":            {},
	"royalblue":            {},
	"saddlebrown":          {},
	"salmon":               {},
	"sandybrown":           {},
	"seagreen":             {},
	"seashell":             {},
	"sienna":               {},
	"silver":               {},
	"skyblue":              {},
	"slateblue":            {},
	"slategray":            {},
	"slategrey":            {},
	"snow":                 {},
	"springgreen":          {},
	"steelblue":            {},
	"tan":                  {},
	"teal":                 {},
	"thistle":              {},
	"tomato":               {},
	"turquoise":            {},
	"violet":               {},
	"wheat":                {},
	"white":                {},
	"whitesmoke":           {},
	"yellow":               {},
	"yellowgreen":          {},
}

func knownColor(name string) bool {
	_, ok := namedColors[strings.ToLower(name)]
	return ok
}

// validHexColor accepts #rgb, #rgba, #rrggbb and #rrggbbaa.
func validHexColor(s string) bool {
	if len(s) == 0 || s[0] != '#' {
		return false
	}
	digits := s[1:]
	switch len(digits) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, c := range digits {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
