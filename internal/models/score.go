package models

// NoScore is reported for best and worst when the history is empty
const NoScore = -1

// statsWindow is how many trailing scores feed the average
const statsWindow = 5

// ScoreHistory is every solved round's score in the order played
type ScoreHistory []int

// ScoreStats summarises a ScoreHistory
type ScoreStats struct {
	// Best is the lowest score, or NoScore
	Best int `json:"best"`

	// Worst is the highest score, or NoScore
	Worst int `json:"worst"`

	// AvgLast5 is the mean of the trailing five scores, 0 when empty
	AvgLast5 float64 `json:"avgLast5"`

	// Count is the number of recorded scores
	Count int `json:"count"`
}

// Stats computes best, worst and the trailing average
func (h ScoreHistory) Stats() ScoreStats {
	if len(h) == 0 {
		return ScoreStats{Best: NoScore, Worst: NoScore}
	}

	stats := ScoreStats{Best: h[0], Worst: h[0], Count: len(h)}
	for _, s := range h[1:] {
		if s < stats.Best {
			stats.Best = s
		}
		if s > stats.Worst {
			stats.Worst = s
		}
	}

	tail := h
	if len(tail) > statsWindow {
		tail = tail[len(tail)-statsWindow:]
	}
	sum := 0
	for _, s := range tail {
		sum += s
	}
	stats.AvgLast5 = float64(sum) / float64(len(tail))

	return stats
}

// Last returns the most recent score and whether one exists
func (h ScoreHistory) Last() (int, bool) {
	if len(h) == 0 {
		return 0, false
	}
	return h[len(h)-1], true
}

// ScoreCard is what the player sees when a round ends
type ScoreCard struct {
	// Solved is false for an expired or gated round without a recorded score
	Solved bool `json:"solved"`

	// Score is the seconds taken to solve
	Score int `json:"score"`

	// Stats covers the history including this round's score
	Stats ScoreStats `json:"stats"`

	// Share is a plain text caption the player can copy
	Share string `json:"share"`
}
