package models

// MaxSubScore is the ceiling of each self-score dimension.
const MaxSubScore = 25

type ScoreData struct {
	Score1    int    `json:"score1"`
	Score2    int    `json:"score2"`
	Score3    int    `json:"score3"`
	Score4    int    `json:"score4"`
	Timestamp string `json:"timestamp"`
}

type ScoreArea struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Max   int    `json:"max"`
}

type ScoreResult struct {
	TotalScore       int         `json:"totalScore"`
	Status           string      `json:"status"`
	StatusColor      string      `json:"statusColor"`
	EncouragementMsg string      `json:"encouragementMsg"`
	Action           string      `json:"action"`
	Score1           int         `json:"score1"`
	Score2           int         `json:"score2"`
	Score3           int         `json:"score3"`
	Score4           int         `json:"score4"`
	WeakAreas        []ScoreArea `json:"weakAreas"`
}

type SaveScoresRequest struct {
	Score1 int `json:"score1"`
	Score2 int `json:"score2"`
	Score3 int `json:"score3"`
	Score4 int `json:"score4"`
}
