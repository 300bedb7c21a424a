package puzzle

import "github.com/tilepuzzle/fifteen/board"

// Solvable reports whether b can reach the solved board through valid
// slides. A board is solvable exactly when the parity of its tile
// permutation (with the empty cell relabeled 16, last in tile order) and
// the parity of the empty cell's taxicab distance from the bottom-right
// corner sum to even — an invariant of every slide.
func Solvable(b board.Board) bool {
	emptyIndex := b.EmptyIndex()

	arr := make([]int, board.NumCells)
	for i, t := range b {
		if t == board.EmptyTile {
			arr[i] = board.NumCells
		} else {
			arr[i] = int(t)
		}
	}

	swaps := 0
	quicksortSwapCount(arr, 0, len(arr)-1, &swaps)

	row, col := emptyIndex/board.Side, emptyIndex%board.Side
	taxicab := (board.Side - 1 - col) + (board.Side - 1 - row)

	return (swaps+taxicab)%2 == 0
}

// quicksortSwapCount sorts arr[low:high+1] in place, incrementing
// *swapCount once for every pair actually exchanged. The parity of that
// count equals the parity of the array's permutation regardless of
// which comparison-swap sort computes it.
func quicksortSwapCount(arr []int, low, high int, swapCount *int) {
	if low >= high {
		return
	}
	pivot := arr[high]
	pivotIndex := low
	for i := low; i < high; i++ {
		if arr[i] <= pivot {
			swapAt(arr, i, pivotIndex, swapCount)
			pivotIndex++
		}
	}
	swapAt(arr, pivotIndex, high, swapCount)

	quicksortSwapCount(arr, low, pivotIndex-1, swapCount)
	quicksortSwapCount(arr, pivotIndex+1, high, swapCount)
}

func swapAt(arr []int, i, j int, swapCount *int) {
	if arr[i] == arr[j] {
		return
	}
	*swapCount++
	arr[i], arr[j] = arr[j], arr[i]
}
