package script

// preprocess rewrites scene-script source into the form zygomys parses:
//
//   - ; line comments become // comments
//   - :keyword tokens become "__kw_keyword" string literals, so builtins
//     can spot options without registering global symbols
//   - kebab-case identifiers such as rotate-extrude become
//     rotate_extrude, since the interpreter reads - as subtraction
//
// String literals (double-quoted and backtick) pass through untouched, as
// do := assignments and minus signs that do not join two identifier
// characters.
func preprocess(source string) string {
	src := []byte(source)
	out := make([]byte, 0, len(src)+len(src)/4)
	for i := 0; i < len(src); {
		switch c := src[i]; {
		case c == '"':
			out, i = copyQuoted(out, src, i)
		case c == '`':
			out, i = copyRaw(out, src, i)
		case c == ';':
			out, i = convertComment(out, src, i)
		case c == ':' && i+1 < len(src) && src[i+1] == '=':
			out = append(out, ':', '=')
			i += 2
		case c == ':' && i+1 < len(src) && isLetter(src[i+1]):
			out, i = convertKeyword(out, src, i)
		case c == '-' && i > 0 && i+1 < len(src) && isIdentChar(src[i-1]) && isLetter(src[i+1]):
			out = append(out, '_')
			i++
		default:
			out = append(out, c)
			i++
		}
	}
	return string(out)
}

// copyQuoted copies a double-quoted literal, honoring backslash escapes.
func copyQuoted(out, src []byte, i int) ([]byte, int) {
	out = append(out, src[i])
	i++
	for i < len(src) && src[i] != '"' {
		if src[i] == '\\' && i+1 < len(src) {
			out = append(out, src[i], src[i+1])
			i += 2
			continue
		}
		out = append(out, src[i])
		i++
	}
	if i < len(src) {
		out = append(out, src[i])
		i++
	}
	return out, i
}

// copyRaw copies a backtick literal, which has no escapes.
func copyRaw(out, src []byte, i int) ([]byte, int) {
	out = append(out, src[i])
	i++
	for i < len(src) && src[i] != '`' {
		out = append(out, src[i])
		i++
	}
	if i < len(src) {
		out = append(out, src[i])
		i++
	}
	return out, i
}

// convertComment turns one ; or ;; comment into a // comment.
func convertComment(out, src []byte, i int) ([]byte, int) {
	out = append(out, '/', '/')
	for i < len(src) && src[i] == ';' {
		i++
	}
	for i < len(src) && src[i] != '\n' {
		out = append(out, src[i])
		i++
	}
	return out, i
}

// convertKeyword rewrites :name into the marker string "__kw_name".
func convertKeyword(out, src []byte, i int) ([]byte, int) {
	j := i + 1
	for j < len(src) && isKeywordChar(src[j]) {
		j++
	}
	out = append(out, '"')
	out = append(out, kwPrefix...)
	out = append(out, src[i+1:j]...)
	out = append(out, '"')
	return out, j
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func isKeywordChar(c byte) bool {
	return isIdentChar(c) || c == '-'
}
