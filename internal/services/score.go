package services

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/chenhoward456-hash/coach-system/internal/models"
)

// ReportTimeLayout formats the time line at the foot of copied reports.
const ReportTimeLayout = "2006/1/2 15:04:05"

type scoreBand struct {
	min     int
	status  string
	color   string
	message string
	action  string
}

// highest threshold first
var scoreBands = []scoreBand{
	{90, "🏆 超強狀態", "text-green-600", "你的各方面都很均衡，太厲害了！", "保持節奏，也可以把經驗分享給其他夥伴"},
	{80, "💪 狀態很好", "text-blue-600", "整體做得很好！", "看看哪一項分數最低，試著這週多花一點心思在上面"},
	{70, "📈 穩步成長中", "text-yellow-600", "你在正確的路上！", "挑最弱的 1-2 項，每週進步一點點就好"},
	{60, "🌱 還有成長空間", "text-orange-600", "每個人都有低潮期，重要的是意識到了！", "先從最容易改善的 1 項開始，不用一次全改"},
	{math.MinInt, "💭 需要重新調整", "text-gray-600", "分數低不代表你不好，只是現在的方向可能需要調整", "想想最近是不是太忙或太累了？先照顧好自己的狀態"},
}

var scoreAreaNames = [4]string{"📹 內容產出", "💬 會員互動", "📚 持續學習", "🤝 團隊協作"}

// ClampSubScore bounds one self-score dimension to 0..25.
func ClampSubScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > models.MaxSubScore {
		return models.MaxSubScore
	}
	return v
}

// ClampScores returns the request as stored score data.
func ClampScores(req models.SaveScoresRequest, at time.Time) models.ScoreData {
	return models.ScoreData{
		Score1:    ClampSubScore(req.Score1),
		Score2:    ClampSubScore(req.Score2),
		Score3:    ClampSubScore(req.Score3),
		Score4:    ClampSubScore(req.Score4),
		Timestamp: at.UTC().Format(time.RFC3339),
	}
}

// EvaluateSelfScore totals the four clamped sub-scores and picks the status
// band. Areas below 80% of the maximum are reported weakest first.
func EvaluateSelfScore(data models.ScoreData) models.ScoreResult {
	values := [4]int{
		ClampSubScore(data.Score1),
		ClampSubScore(data.Score2),
		ClampSubScore(data.Score3),
		ClampSubScore(data.Score4),
	}
	total := values[0] + values[1] + values[2] + values[3]

	band := scoreBands[len(scoreBands)-1]
	for _, b := range scoreBands {
		if total >= b.min {
			band = b
			break
		}
	}

	weak := []models.ScoreArea{}
	for i, v := range values {
		if v*5 < models.MaxSubScore*4 {
			weak = append(weak, models.ScoreArea{Name: scoreAreaNames[i], Value: v, Max: models.MaxSubScore})
		}
	}
	sort.SliceStable(weak, func(i, j int) bool { return weak[i].Value < weak[j].Value })

	return models.ScoreResult{
		TotalScore:       total,
		Status:           band.status,
		StatusColor:      band.color,
		EncouragementMsg: band.message,
		Action:           band.action,
		Score1:           values[0],
		Score2:           values[1],
		Score3:           values[2],
		Score4:           values[3],
		WeakAreas:        weak,
	}
}

// FormatScoreReport renders a result as the plain-text health check report.
func FormatScoreReport(r models.ScoreResult, at time.Time) string {
	var b strings.Builder
	b.WriteString("📊 教練自我健檢報告\n")
	b.WriteString("==================\n")
	fmt.Fprintf(&b, "總分：%d/100\n", r.TotalScore)
	fmt.Fprintf(&b, "狀態：%s\n\n", r.Status)
	b.WriteString("📋 各項得分：\n")
	for i, v := range [4]int{r.Score1, r.Score2, r.Score3, r.Score4} {
		fmt.Fprintf(&b, "%s：%d/%d\n", scoreAreaNames[i], v, models.MaxSubScore)
	}
	fmt.Fprintf(&b, "\n💡 %s\n", r.EncouragementMsg)
	fmt.Fprintf(&b, "下一步：%s\n\n", r.Action)
	if len(r.WeakAreas) > 0 {
		b.WriteString("📌 可以多花心思的地方：\n")
		for _, a := range r.WeakAreas {
			fmt.Fprintf(&b, "• %s：%d/%d 分\n", a.Name, a.Value, a.Max)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "記錄時間：%s", at.Format(ReportTimeLayout))
	return b.String()
}

// WeightedCoachScore is the admin roster score:
// renewal 30%, referral 25%, content 15%, soft skills 10%, hard skills 20%.
func WeightedCoachScore(s models.CoachScores) int {
	return int(math.Round(
		float64(s.Renewal)*0.30 +
			float64(s.Referral)*0.25 +
			float64(s.Content)*0.15 +
			float64(s.Soft)*0.10 +
			float64(s.Hard)*0.20,
	))
}
