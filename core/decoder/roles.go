package decoder

import (
	"fmt"

	"marvel-metadata/core/jsonvalue"
)

// roleCodes maps the integer role codes seen in payloads to role names.
var roleCodes = map[int64]string{
	1: "penciler",
	2: "cover artist",
	3: "writer",
	4: "letterer",
	5: "colorist",
	6: "editor",
	7: "inker",
	8: "penciler (cover)",
}

// RoleName returns a readable creator role. String roles pass through; integer codes
// are looked up and unknown codes render as "unknown (N)".
func RoleName(role jsonvalue.Value) string {
	if s, ok := role.AsString(); ok {
		return s
	}
	if code, ok := role.AsInt(); ok {
		if name, ok := roleCodes[code]; ok {
			return name
		}
		return fmt.Sprintf("unknown (%d)", code)
	}
	return ""
}
