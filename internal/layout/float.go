package layout

import "math"

// Undefined marks a length that is not known yet (auto, or a percentage of
// an indefinite size). Arithmetic helpers in this package propagate it.
var Undefined = float32(math.NaN())

// IsDefined reports whether v holds a real length.
func IsDefined(v float32) bool {
	return v == v
}

// orElse returns v, or fallback when v is undefined.
func orElse(v, fallback float32) float32 {
	if IsDefined(v) {
		return v
	}
	return fallback
}

// orZero returns v, or 0 when v is undefined.
func orZero(v float32) float32 {
	return orElse(v, 0)
}

// maybeMin returns min(v, limit). An undefined limit is ignored;
// an undefined v stays undefined.
func maybeMin(v, limit float32) float32 {
	if IsDefined(v) && IsDefined(limit) && limit < v {
		return limit
	}
	return v
}

// maybeMax returns max(v, limit). An undefined limit is ignored;
// an undefined v stays undefined.
func maybeMax(v, limit float32) float32 {
	if IsDefined(v) && IsDefined(limit) && limit > v {
		return limit
	}
	return v
}

// maybeAdd returns v+d, treating an undefined d as 0.
func maybeAdd(v, d float32) float32 {
	if !IsDefined(d) {
		return v
	}
	return v + d
}

// maybeSub returns v-d, treating an undefined d as 0.
func maybeSub(v, d float32) float32 {
	if !IsDefined(d) {
		return v
	}
	return v - d
}

// clamp restricts v to the range [minVal, maxVal].
// If minVal > maxVal, minVal wins (matches CSS behavior).
// Undefined bounds are ignored and an undefined v stays undefined.
func clamp(v, minVal, maxVal float32) float32 {
	return maybeMax(maybeMin(v, maxVal), minVal)
}
