package evaluation

// Accuracy returns the share of correct classifications, 0 for an empty set.
func Accuracy(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total)
}
