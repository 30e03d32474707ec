package domain

import "fmt"

type Category string

const (
	CategoryWork          Category = "work"
	CategoryStudy         Category = "study"
	CategoryEntertainment Category = "entertainment"
	CategorySocialFriends Category = "socialFriends"
	CategorySocialPartner Category = "socialPartner"
)

// AllCategories is the fixed set of life categories, in display order.
// Analysis output always contains an entry for every one of them.
var AllCategories = []Category{
	CategoryWork,
	CategoryStudy,
	CategoryEntertainment,
	CategorySocialFriends,
	CategorySocialPartner,
}

func (c Category) Valid() bool {
	switch c {
	case CategoryWork, CategoryStudy, CategoryEntertainment,
		CategorySocialFriends, CategorySocialPartner:
		return true
	}
	return false
}

// ParseCategory validates a raw string coming from a boundary (CLI flag,
// stored row) into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("invalid category %q", s)
	}
	return c, nil
}

type Timeframe string

const (
	TimeframeToday     Timeframe = "today"
	TimeframeThisWeek  Timeframe = "thisWeek"
	TimeframeThisMonth Timeframe = "thisMonth"
)

func (t Timeframe) Valid() bool {
	switch t {
	case TimeframeToday, TimeframeThisWeek, TimeframeThisMonth:
		return true
	}
	return false
}

func ParseTimeframe(s string) (Timeframe, error) {
	t := Timeframe(s)
	if !t.Valid() {
		return "", fmt.Errorf("invalid timeframe %q", s)
	}
	return t, nil
}

type Difficulty string

const (
	DifficultyRegular     Difficulty = "regular"
	DifficultyChallenging Difficulty = "challenging"
	DifficultyDifficult   Difficulty = "difficult"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyRegular, DifficultyChallenging, DifficultyDifficult:
		return true
	}
	return false
}

func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if !d.Valid() {
		return "", fmt.Errorf("invalid difficulty %q", s)
	}
	return d, nil
}

type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in-progress"
	StatusCompleted  TaskStatus = "completed"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

func ParseTaskStatus(s string) (TaskStatus, error) {
	st := TaskStatus(s)
	if !st.Valid() {
		return "", fmt.Errorf("invalid status %q", s)
	}
	return st, nil
}

// EmotionPhase identifies where in a task's lifecycle an emotion sample
// was recorded.
type EmotionPhase string

const (
	PhaseBefore EmotionPhase = "before"
	PhaseDuring EmotionPhase = "during"
	PhaseAfter  EmotionPhase = "after"
)

func (p EmotionPhase) Valid() bool {
	switch p {
	case PhaseBefore, PhaseDuring, PhaseAfter:
		return true
	}
	return false
}

func ParseEmotionPhase(s string) (EmotionPhase, error) {
	p := EmotionPhase(s)
	if !p.Valid() {
		return "", fmt.Errorf("invalid emotion phase %q", s)
	}
	return p, nil
}

// Window is a bounded recent time range used to scope analytics.
// Fixed-length approximations, not calendar-aligned boundaries.
type Window string

const (
	WindowAll   Window = ""
	WindowDay   Window = "day"
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
)

func (w Window) Valid() bool {
	switch w {
	case WindowAll, WindowDay, WindowWeek, WindowMonth:
		return true
	}
	return false
}

// Seconds returns the window length in seconds, or 0 for the unrestricted
// window.
func (w Window) Seconds() int64 {
	switch w {
	case WindowDay:
		return 86400
	case WindowWeek:
		return 604800
	case WindowMonth:
		return 2592000
	}
	return 0
}

func ParseWindow(s string) (Window, error) {
	w := Window(s)
	if s == "all" {
		w = WindowAll
	}
	if !w.Valid() {
		return "", fmt.Errorf("invalid window %q", s)
	}
	return w, nil
}
