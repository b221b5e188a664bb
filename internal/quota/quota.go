package quota

// CanAdmit reports whether an incoming upload of the given size fits
// within the user's remaining capacity. An upload that exactly fills
// the remaining capacity is admitted.
func CanAdmit(usedBytes, limitBytes, incomingBytes int64) bool {
	return usedBytes+incomingBytes <= limitBytes
}

// Remaining returns the free capacity in bytes, floored at zero. A
// plan downgrade can leave a user over quota; in that case nothing
// remains but usage is left as-is.
func Remaining(usedBytes, limitBytes int64) int64 {
	if usedBytes >= limitBytes {
		return 0
	}
	return limitBytes - usedBytes
}

// Percent returns the share of the limit currently in use, in the
// range 0-100 for in-quota users. Over-quota users report above 100.
func Percent(usedBytes, limitBytes int64) float64 {
	if limitBytes <= 0 {
		return 0
	}
	return float64(usedBytes) / float64(limitBytes) * 100
}
