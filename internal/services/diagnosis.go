package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/chenhoward456-hash/coach-system/internal/models"
)

// Leading activities a coach can report.
var DiagnosisActivities = []string{"video", "followup", "study", "teamwork"}

type advice struct {
	typ         string
	title       string
	description string
	solution    string
	steps       []string
}

var diagnosisTable = map[string]advice{
	models.IssueLost: {
		typ:         "迷惘 1",
		title:       "「我不知道自己要往哪裡走」",
		description: "你目前處於方向迷失的狀態。你每天在做事，但不知道為什麼做，也不知道這些事會帶你去哪裡。",
		solution: `先問自己3個問題：
1. 我為什麼當教練？（不要說「喜歡運動」，要更深入）
2. 我想成為什麼樣的教練？（技術流？溝通流？網紅流？）
3. 3年後，我想過什麼樣的生活？（具體一點）`,
		steps: []string{
			"今晚拿出紙筆，認真回答上面3個問題（30分鐘）",
			"這週找 Howard 聊聊你的答案",
			"根據答案，設定你的6個月目標",
			"點擊「成長心法」章節，看完整的迷惘1解方",
		},
	},
	models.IssueInadequate: {
		typ:         "迷惘 2",
		title:       "「我覺得自己不夠好」",
		description: "你正在經歷冒牌者症候群。你看到別人都很厲害，覺得自己什麼都不是，所以不敢開始、一直拖延。",
		solution: `真相炸彈：你永遠不會「準備好」。

Howard 第一支影片也拍得很爛。差別在於他拍了，然後越來越好。

Done is better than perfect.`,
		steps: []string{
			"今天就拍一支影片，不管好不好（10分鐘）",
			"找一個「比你資深3個月」的前輩，問他怎麼開始的",
			"每週只改善1件事，不要一次改10件",
			"點擊「成長心法」章節，看完整的迷惘2解方",
		},
	},
	models.IssueConfused: {
		typ:         "迷惘 3",
		title:       "「我不知道為什麼要做這些事」",
		description: "你在做事，但不理解意義。拍影片覺得沒用、課後關心覺得很假、記錄進步覺得麻煩。因為你不知道「為什麼」。",
		solution: `這些事的意義：
• 拍影片 = 建立專業形象 = 學生信任你 = 續約率提高
• 課後關心 = 學生感受到被在乎 = 黏著度提高 = 轉介紹增加
• 記錄進步 = 學生看到成果 = 成就感提升 = 續約意願提高

看到了嗎？每件事都直接影響你的收入。`,
		steps: []string{
			"選一件你覺得「沒用」的事，連續做7天",
			"7天後，觀察學生的反應有什麼不同",
			"你會發現：原來真的有用",
			"點擊「成長心法」章節，看完整的迷惘3解方",
		},
	},
	models.IssueNoResults: {
		typ:         "迷惘 4",
		title:       "「我做了很多，但沒看到結果」",
		description: "你很努力，但學生數沒增加、續約率沒提高、收入沒成長。你開始懷疑：是不是我不適合當教練？",
		solution: `問題可能不是「做不夠」，而是「做錯方向」。

檢查這3件事：
1. 你的影片有人看嗎？（如果沒人看，代表內容不對）
2. 你的學生有進步嗎？（如果沒進步，代表訓練不對）
3. 你有主動開發嗎？（如果只等公司給，當然不會成長）`,
		steps: []string{
			"這週找 Howard 做一次「數據健檢」",
			"找出你最弱的一環，集中火力改善",
			"設定一個「30天小目標」，專注達成",
			"點擊「成長心法」章節，看完整的迷惘4解方",
		},
	},
	models.IssueNoMotivation: {
		typ:         "迷惘 5",
		title:       "「我沒有動力了」",
		description: "你累了。一開始很有熱情，但現在每天都在重複一樣的事，感覺不到成長，也看不到未來。",
		solution: `這是正常的。每個人都會經歷這個階段。

但你要知道：動力不是「等」來的，是「做」出來的。

小勝利 → 成就感 → 動力 → 更大的勝利`,
		steps: []string{
			"設定一個「這週一定能達成」的小目標",
			"達成後，給自己一個獎勵",
			"找回「小勝利」的感覺",
			"點擊「成長心法」章節，看完整的迷惘5解方",
		},
	},
}

var adviceOK = advice{
	typ:         "狀態良好",
	title:       "你的狀態不錯！",
	description: "看起來你沒有明顯的問題，只是想測試一下系統。很好！保持這個狀態。",
	solution:    "繼續保持現在的習慣，定期檢視自己的進度。",
	steps: []string{
		"每週檢視一次「每週清單」",
		"每月做一次「自我評分」",
		"持續學習，不要停下來",
	},
}

// MinLeadingActivities is how many activities a coach needs before the
// report stops flagging the gap.
const MinLeadingActivities = 2

// Diagnose looks up the canned advice for the main issue. Any issue outside
// the table gets the "doing fine" result.
func Diagnose(req models.DiagnoseRequest) (models.DiagnosisResult, error) {
	if strings.TrimSpace(req.MainIssue) == "" {
		return models.DiagnosisResult{}, fmt.Errorf("%w: mainIssue is required", ErrInvalidArgument)
	}

	a, ok := diagnosisTable[req.MainIssue]
	if !ok {
		a = adviceOK
	}

	count := len(req.Activities)
	level := models.LevelIntermediate
	switch {
	case count < MinLeadingActivities,
		req.MainIssue == models.IssueLost,
		req.MainIssue == models.IssueInadequate,
		req.MainIssue == models.IssueNoMotivation:
		level = models.LevelBeginner
	}

	return models.DiagnosisResult{
		Type:            a.typ,
		Title:           a.title,
		Description:     a.description,
		Solution:        a.solution,
		ActionSteps:     append([]string(nil), a.steps...),
		ActivitiesCount: count,
		CoachLevel:      level,
	}, nil
}

// DiagnosisRecord is what gets persisted for a diagnosis run.
func DiagnosisRecord(req models.DiagnoseRequest, result models.DiagnosisResult, at time.Time) models.DiagnosisData {
	activities := req.Activities
	if activities == nil {
		activities = []string{}
	}
	return models.DiagnosisData{
		MainIssue:      req.MainIssue,
		Activities:     activities,
		TimeCommitment: req.TimeCommitment,
		Result:         result.Type,
		Timestamp:      at.UTC().Format(time.RFC3339),
	}
}

func FormatDiagnosisReport(r models.DiagnosisResult, at time.Time) string {
	var b strings.Builder
	b.WriteString("🔍 教練狀態診斷報告\n")
	b.WriteString("==================\n")
	fmt.Fprintf(&b, "診斷類型：%s\n%s\n\n", r.Type, r.Title)
	fmt.Fprintf(&b, "📋 診斷結果：\n%s\n\n", r.Description)
	fmt.Fprintf(&b, "💊 解方：\n%s\n\n", r.Solution)
	b.WriteString("📝 立刻行動：\n")
	for i, step := range r.ActionSteps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	b.WriteString("\n")
	if r.ActivitiesCount < MinLeadingActivities {
		b.WriteString("⚠️ 額外發現：\n")
		fmt.Fprintf(&b, "你目前只在做 %d 項活動。4大領先指標都要做，才能提高續約率！\n", r.ActivitiesCount)
		b.WriteString("建議：去「每週清單」看看還有哪些事情要做。\n\n")
	}
	fmt.Fprintf(&b, "生成時間：%s", at.Format(ReportTimeLayout))
	return b.String()
}
