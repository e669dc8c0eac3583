// Package content serves the portal's read-only tables: message templates,
// video scripts, reading lists, mindset essays, 30-day plans and the task
// catalogues used by the checklist widgets.
package content

import (
	"bytes"
	"embed"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
	"gopkg.in/yaml.v3"

	"github.com/chenhoward456-hash/coach-system/internal/models"
)

//go:embed data/*.yaml
var dataFS embed.FS

type MessageTemplate struct {
	ID       string `json:"id" yaml:"id"`
	Category string `json:"category" yaml:"category"`
	Title    string `json:"title" yaml:"title"`
	Scenario string `json:"scenario" yaml:"scenario"`
	Content  string `json:"content" yaml:"content"`
	Tips     string `json:"tips" yaml:"tips"`
}

type VideoTopic struct {
	ID       string   `json:"id" yaml:"id"`
	Title    string   `json:"title" yaml:"title"`
	Category string   `json:"category" yaml:"category"`
	Level    string   `json:"level" yaml:"level"`
	Duration string   `json:"duration" yaml:"duration"`
	Hook     string   `json:"hook" yaml:"hook"`
	Script   []string `json:"script" yaml:"script"`
}

type Book struct {
	Title        string `json:"title" yaml:"title"`
	Badge        string `json:"badge" yaml:"badge"`
	Why          string `json:"why" yaml:"why"`
	KeyPoints    string `json:"keyPoints" yaml:"keyPoints"`
	HowToRead    string `json:"howToRead" yaml:"howToRead"`
	TimeEstimate string `json:"timeEstimate" yaml:"timeEstimate"`
	Link         string `json:"link,omitempty" yaml:"link"`
}

// ReadingList is the learning path for one coach level: core books first,
// optional extra books, then channels.
type ReadingList struct {
	Level     string   `json:"level" yaml:"level"`
	Icon      string   `json:"icon" yaml:"icon"`
	Title     string   `json:"title" yaml:"title"`
	Period    string   `json:"period" yaml:"period"`
	Focus     string   `json:"focus" yaml:"focus"`
	Note      string   `json:"note" yaml:"note"`
	Books     []Book   `json:"books" yaml:"books"`
	MoreBooks []Book   `json:"moreBooks" yaml:"moreBooks"`
	Channels  []Book   `json:"channels" yaml:"channels"`
	TipsTitle string   `json:"tipsTitle" yaml:"tipsTitle"`
	Tips      []string `json:"tips" yaml:"tips"`
}

type Essay struct {
	ID    string `json:"id" yaml:"id"`
	Icon  string `json:"icon" yaml:"icon"`
	Title string `json:"title" yaml:"title"`
	Body  string `json:"body" yaml:"body"` // markdown
}

type FrameworkExample struct {
	Situation string `json:"situation" yaml:"situation"`
	Wrong     string `json:"wrong" yaml:"wrong"`
	Right     string `json:"right" yaml:"right"`
	Principle string `json:"principle,omitempty" yaml:"principle"`
}

type FrameworkSection struct {
	Title    string             `json:"title" yaml:"title"`
	Intro    string             `json:"intro,omitempty" yaml:"intro"`
	Points   []string           `json:"points,omitempty" yaml:"points"`
	Examples []FrameworkExample `json:"examples,omitempty" yaml:"examples"`
	Tip      string             `json:"tip,omitempty" yaml:"tip"`
}

// Framework is one practical playbook (prospecting, renewal, objections,
// pricing, personal style).
type Framework struct {
	ID        string             `json:"id" yaml:"id"`
	Label     string             `json:"label" yaml:"label"`
	Icon      string             `json:"icon" yaml:"icon"`
	Title     string             `json:"title" yaml:"title"`
	Principle string             `json:"principle" yaml:"principle"`
	Sections  []FrameworkSection `json:"sections" yaml:"sections"`
	Mistakes  []string           `json:"mistakes,omitempty" yaml:"mistakes"`
}

type FrameworkKeyword struct {
	Keyword   string `json:"keyword" yaml:"keyword"`
	Framework string `json:"framework" yaml:"framework"`
}

type frameworkFile struct {
	Keywords   []FrameworkKeyword `yaml:"keywords"`
	Frameworks []Framework        `yaml:"frameworks"`
}

type PolygonDimension struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// PolygonStage is a sample score profile over the growth dimensions.
type PolygonStage struct {
	Level   string `json:"level" yaml:"level"`
	Title   string `json:"title" yaml:"title"`
	Scores  []int  `json:"scores" yaml:"scores"`
	Summary string `json:"summary" yaml:"summary"`
	Total   int    `json:"total" yaml:"-"`
	Spread  int    `json:"spread" yaml:"-"` // highest minus lowest score
	Weakest string `json:"weakest" yaml:"-"`
}

type Polygon struct {
	Title       string             `json:"title" yaml:"title"`
	Tagline     string             `json:"tagline" yaml:"tagline"`
	Dimensions  []PolygonDimension `json:"dimensions" yaml:"dimensions"`
	Stages      []PolygonStage     `json:"stages" yaml:"stages"`
	Explanation string             `json:"explanation" yaml:"explanation"` // markdown
	Conclusion  string             `json:"conclusion" yaml:"conclusion"`
}

type messageFile struct {
	Categories []string          `yaml:"categories"`
	Templates  []MessageTemplate `yaml:"templates"`
}

type videoFile struct {
	Categories []string     `yaml:"categories"`
	Levels     []string     `yaml:"levels"`
	Topics     []VideoTopic `yaml:"topics"`
}

type taskFile struct {
	Checklist []models.ChecklistTask `yaml:"checklist"`
	DailyPool []models.DailyTask     `yaml:"dailyPool"`
	Weekly    []models.TaskCategory  `yaml:"weekly"`
}

// Library is the decoded content set.
type Library struct {
	Messages     messageFile
	Videos       videoFile
	ReadingLists []ReadingList
	Essays       []Essay
	Plans        map[models.PlanLevel]models.ThirtyDayPlan
	Tasks        taskFile
	FrameworkSet frameworkFile
	Polygon      Polygon
}

var (
	loadOnce sync.Once
	lib      *Library
	loadErr  error
)

// Load decodes the embedded tables once. Later calls return the same result.
func Load() (*Library, error) {
	loadOnce.Do(func() {
		lib, loadErr = decode()
	})
	return lib, loadErr
}

// MustLoad is Load for callers that cannot run without content.
func MustLoad() *Library {
	l, err := Load()
	if err != nil {
		panic(err)
	}
	return l
}

func decode() (*Library, error) {
	l := &Library{Plans: map[models.PlanLevel]models.ThirtyDayPlan{}}

	var plans []models.ThirtyDayPlan
	files := []struct {
		name string
		out  interface{}
	}{
		{"messages.yaml", &l.Messages},
		{"videos.yaml", &l.Videos},
		{"resources.yaml", &l.ReadingLists},
		{"mindset.yaml", &l.Essays},
		{"plans.yaml", &plans},
		{"tasks.yaml", &l.Tasks},
		{"frameworks.yaml", &l.FrameworkSet},
		{"polygon.yaml", &l.Polygon},
	}
	for _, f := range files {
		raw, err := dataFS.ReadFile("data/" + f.name)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(raw, f.out); err != nil {
			return nil, fmt.Errorf("content: decode %s: %w", f.name, err)
		}
	}
	for _, p := range plans {
		l.Plans[p.Level] = p
	}
	if err := l.Polygon.score(); err != nil {
		return nil, err
	}
	return l, nil
}

// score fills each stage's total, spread and weakest dimension.
func (p *Polygon) score() error {
	for i := range p.Stages {
		st := &p.Stages[i]
		if len(st.Scores) != len(p.Dimensions) {
			return fmt.Errorf("content: polygon stage %s has %d scores for %d dimensions",
				st.Level, len(st.Scores), len(p.Dimensions))
		}
		lo, hi := 0, 0
		st.Total = 0
		for j, v := range st.Scores {
			st.Total += v
			if v < st.Scores[lo] {
				lo = j
			}
			if v > st.Scores[hi] {
				hi = j
			}
		}
		st.Spread = st.Scores[hi] - st.Scores[lo]
		st.Weakest = p.Dimensions[lo].Name
	}
	return nil
}

// MessageCategories lists template categories with how many templates each has.
func (l *Library) MessageCategories() []CategoryCount {
	out := make([]CategoryCount, 0, len(l.Messages.Categories))
	for _, cat := range l.Messages.Categories {
		out = append(out, CategoryCount{Name: cat, Count: len(l.MessagesByCategory(cat))})
	}
	return out
}

type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// MessagesByCategory returns every template when category is empty.
func (l *Library) MessagesByCategory(category string) []MessageTemplate {
	out := []MessageTemplate{}
	for _, m := range l.Messages.Templates {
		if category == "" || m.Category == category {
			out = append(out, m)
		}
	}
	return out
}

func (l *Library) Message(id string) (MessageTemplate, bool) {
	for _, m := range l.Messages.Templates {
		if m.ID == id {
			return m, true
		}
	}
	return MessageTemplate{}, false
}

var placeholder = regexp.MustCompile(`\{[^}]+\}`)

// Variables lists the distinct {placeholders} of a template body in order.
func Variables(text string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, m := range placeholder.FindAllString(text, -1) {
		name := strings.Trim(m, "{}")
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}

// Fill substitutes known variables and leaves the rest as {placeholders}.
func Fill(text string, vars map[string]string) string {
	return placeholder.ReplaceAllStringFunc(text, func(m string) string {
		if v, ok := vars[strings.Trim(m, "{}")]; ok && v != "" {
			return v
		}
		return m
	})
}

// VideoTopics filters by category and level; empty filters match all.
func (l *Library) VideoTopics(category, level string) []VideoTopic {
	out := []VideoTopic{}
	for _, v := range l.Videos.Topics {
		if category != "" && v.Category != category {
			continue
		}
		if level != "" && v.Level != level {
			continue
		}
		out = append(out, v)
	}
	return out
}

func (l *Library) VideoTopic(id string) (VideoTopic, bool) {
	for _, v := range l.Videos.Topics {
		if v.ID == id {
			return v, true
		}
	}
	return VideoTopic{}, false
}

// Books returns the reading lists, optionally only the one for level.
func (l *Library) Books(level string) []ReadingList {
	if level == "" {
		return l.ReadingLists
	}
	for _, rl := range l.ReadingLists {
		if rl.Level == level {
			return []ReadingList{rl}
		}
	}
	return []ReadingList{}
}

func (l *Library) Essay(id string) (Essay, bool) {
	for _, e := range l.Essays {
		if e.ID == id {
			return e, true
		}
	}
	return Essay{}, false
}

// mdRenderer escapes raw HTML in essay bodies.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

func RenderMarkdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Plan returns a copy of the plan for level so callers can mark tasks.
func (l *Library) Plan(level models.PlanLevel) (models.ThirtyDayPlan, bool) {
	p, ok := l.Plans[level]
	if !ok {
		return models.ThirtyDayPlan{}, false
	}
	weeks := make([]models.WeekPlan, len(p.Weeks))
	for i, w := range p.Weeks {
		w.Tasks = append([]models.WeekTask(nil), w.Tasks...)
		weeks[i] = w
	}
	p.Weeks = weeks
	return p, true
}

func (l *Library) Frameworks() []Framework {
	return l.FrameworkSet.Frameworks
}

func (l *Library) Framework(id string) (Framework, bool) {
	for _, f := range l.FrameworkSet.Frameworks {
		if f.ID == id {
			return f, true
		}
	}
	return Framework{}, false
}

// FrameworkKeywords lists the quick-search keywords in match order.
func (l *Library) FrameworkKeywords() []FrameworkKeyword {
	return l.FrameworkSet.Keywords
}

// SearchFramework returns the framework of the first keyword contained in
// query, checked in file order.
func (l *Library) SearchFramework(query string) (Framework, bool) {
	for _, k := range l.FrameworkSet.Keywords {
		if strings.Contains(query, k.Keyword) {
			return l.Framework(k.Framework)
		}
	}
	return Framework{}, false
}

func (l *Library) ChecklistTasks() []models.ChecklistTask {
	return l.Tasks.Checklist
}

func (l *Library) DailyTaskPool() []models.DailyTask {
	return l.Tasks.DailyPool
}

func (l *Library) WeeklyCategories() []models.TaskCategory {
	return l.Tasks.Weekly
}

// WeeklyTaskIDs lists every weekly task id, sorted.
func (l *Library) WeeklyTaskIDs() []string {
	var ids []string
	for _, c := range l.Tasks.Weekly {
		for _, t := range c.Tasks {
			ids = append(ids, t.ID)
		}
	}
	sort.Strings(ids)
	return ids
}
