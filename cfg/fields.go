package cfg

import "github.com/plato-mission/cmplib/sample"

func paramKeyImagette() sample.FieldKey { return sample.KeyImagette }

// recordFieldKeys returns the distinct FieldKeys dt's record fields draw
// parameters from, in first-seen order (e.g. ncob_x and ncob_y both draw
// from sample.KeyNcob and appear once).
func recordFieldKeys(dt sample.DataType) []sample.FieldKey {
	seen := make(map[sample.FieldKey]bool)
	var keys []sample.FieldKey

	for _, f := range sample.RecordFields(dt) {
		if !seen[f.Key] {
			seen[f.Key] = true
			keys = append(keys, f.Key)
		}
	}

	return keys
}
