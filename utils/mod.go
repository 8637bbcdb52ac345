package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Deal splits items round-robin into n hands of at most perHand items each.
func Deal[T any](items []T, n, perHand int) [][]T {
	hands := make([][]T, n)
	for i, item := range items {
		hand := i % n
		if len(hands[hand]) >= perHand {
			break
		}
		hands[hand] = append(hands[hand], item)
	}
	return hands
}
