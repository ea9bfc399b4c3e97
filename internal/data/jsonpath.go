package data

import "strings"

// convertJSONPath converts JSONPath syntax to gjson path format.
// $.foo.bar -> foo.bar
// $.items[0].readings -> items.0.readings
// $ -> "" (document root)
func convertJSONPath(path string) string {
	path = strings.TrimSpace(path)
	if strings.HasPrefix(path, "$.") {
		path = path[2:]
	} else if strings.HasPrefix(path, "$") {
		path = path[1:]
	}

	var result strings.Builder
	i := 0
	for i < len(path) {
		if path[i] == '[' {
			j := i + 1
			for j < len(path) && path[j] != ']' {
				j++
			}
			if j < len(path) {
				if result.Len() > 0 {
					result.WriteByte('.')
				}
				result.WriteString(path[i+1 : j])
				i = j + 1
				continue
			}
		}
		result.WriteByte(path[i])
		i++
	}

	return result.String()
}
