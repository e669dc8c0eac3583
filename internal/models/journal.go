package models

type JournalActions struct {
	Video       bool `json:"video"`
	Followup    int  `json:"followup"`
	Learning    bool `json:"learning"`
	Development bool `json:"development"`
}

type JournalEntry struct {
	Date    string         `json:"date"`
	Actions JournalActions `json:"actions"`
	Note    string         `json:"note,omitempty"`
}

// HasAction reports whether the day counts toward the journal streak.
func (e JournalEntry) HasAction() bool {
	a := e.Actions
	return a.Video || a.Followup > 0 || a.Learning || a.Development
}

type JournalWeekStats struct {
	Videos    int `json:"videos"`
	Followups int `json:"followups"`
	Learnings int `json:"learnings"`
}

type UpdateJournalActionsRequest struct {
	Video       *bool `json:"video"`
	Followup    *int  `json:"followup"`
	Learning    *bool `json:"learning"`
	Development *bool `json:"development"`
}

type UpdateJournalNoteRequest struct {
	Note string `json:"note"`
}
