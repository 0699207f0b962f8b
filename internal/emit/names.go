package emit

import "strings"

// CamelCase converts a snake_case identifier to camelCase. Names without
// underscores pass through verbatim, so a column already in camelCase
// round-trips unchanged. The conversion is one-way and not configurable.
func CamelCase(name string) string {
	if !strings.Contains(name, "_") {
		return name
	}
	segs := split(name)
	for i := 1; i < len(segs); i++ {
		segs[i] = title(segs[i])
	}
	return strings.Join(segs, "")
}

// PascalCase converts a snake_case identifier to PascalCase.
func PascalCase(name string) string {
	segs := split(name)
	for i := range segs {
		segs[i] = title(segs[i])
	}
	return strings.Join(segs, "")
}

func split(name string) []string {
	var segs []string
	for _, s := range strings.Split(name, "_") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	if len(segs) == 0 {
		return []string{name}
	}
	return segs
}

func title(s string) string {
	return strings.ToUpper(s[:1]) + s[1:]
}
