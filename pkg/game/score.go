package game

// ScoreDigits splits a score into its hundreds, tens and ones digit.
func ScoreDigits(score int) (hundreds, tens, ones int) {
	if score < 0 {
		score = 0
	}
	return score / 100 % 10, score % 100 / 10, score % 10
}

func (s *Session) addPoint() {
	if s.score < s.tuning.MaxScore {
		s.score++
	}
	s.updateScoreDisplay()
}

func (s *Session) updateScoreDisplay() {
	s.presenter.SetScoreDigits(ScoreDigits(s.score))
}
