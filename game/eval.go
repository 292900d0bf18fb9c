package game

// EvaluateMaterial scores b from perspective's point of view. A den taken by
// either side scores ±WinScore; otherwise the score is the rank sum of
// perspective's pieces minus the rank sum of its opponent's.
func EvaluateMaterial(b *Board, perspective Side) int {
	opponent := perspective.Opponent()
	if b.DenTaken(perspective) {
		return -WinScore
	}
	if b.DenTaken(opponent) {
		return WinScore
	}
	return b.Material(perspective) - b.Material(opponent)
}

// IsDecisive reports whether score is a win or loss sentinel.
func IsDecisive(score int) bool {
	return score >= WinScore || score <= -WinScore
}
