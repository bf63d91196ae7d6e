package main

import "matchc/pkg/evalend"

// convertJSONValue translates a value produced by encoding/json's decode
// into any (nil, bool, float64, string, []any, map[string]any) into the
// evalend package's runtime-value convention. JSON has no undefined, so a
// JSON null is read as the lattice's null literal rather than Go's nil;
// JSON also has no bigint, so numbers always surface as evalend's number
// convention (float64), never *big.Int.
func convertJSONValue(v any) any {
	switch x := v.(type) {
	case nil:
		return evalend.Null
	case map[string]any:
		out := make(evalend.Object, len(x))
		for k, e := range x {
			out[k] = convertJSONValue(e)
		}
		return out
	case []any:
		out := make(evalend.Array, len(x))
		for i, e := range x {
			out[i] = convertJSONValue(e)
		}
		return out
	default:
		return x
	}
}
