package models

import "fmt"

// Status drives which board view a record appears under.
type Status string

const (
	StatusToDo       Status = "To Do"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

// Statuses lists every valid status in display order.
var Statuses = []Status{StatusToDo, StatusInProgress, StatusCompleted}

// ValidStatus reports whether s is one of the known statuses.
func ValidStatus(s Status) bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

const (
	CategoryVacation  = "Vacation"
	CategoryGaming    = "Gaming"
	CategoryDateNight = "Date Night"
	CategoryChallenge = "Challenge"
	CategoryMovies    = "Movies"
	CategoryProjects  = "Projects"
)

// Categories lists every category in display order.
var Categories = []string{
	CategoryVacation,
	CategoryGaming,
	CategoryDateNight,
	CategoryChallenge,
	CategoryMovies,
	CategoryProjects,
}

// Record is one catalogued activity. The JSON tags are the canonical column
// names of the shared document; ID is assigned locally when a document is
// normalized and is never written back.
type Record struct {
	ID       string `json:"-"`
	Category string `json:"Category"`
	Activity string `json:"Activity"`
	Type     string `json:"Type"`
	Vibe     string `json:"Vibe"`
	Status   Status `json:"Status"`
	Link     string `json:"Link"`
}

// Equal compares every shared column. ID is local bookkeeping and is ignored.
func (r Record) Equal(other Record) bool {
	return r.Category == other.Category &&
		r.Activity == other.Activity &&
		r.Type == other.Type &&
		r.Vibe == other.Vibe &&
		r.Status == other.Status &&
		r.Link == other.Link
}

// CategoryOptions describes the two category-dependent attribute selectors.
// Labels and option lists are distinct typed fields so a label can never be
// assigned an options slice by accident.
type CategoryOptions struct {
	TypeLabel   string
	TypeOptions []string
	VibeLabel   string
	VibeOptions []string
}

var categoryOptions = map[string]CategoryOptions{
	CategoryVacation: {
		TypeLabel:   "Season",
		TypeOptions: []string{"Summer", "Winter", "Spring", "Fall"},
		VibeLabel:   "Vibe",
		VibeOptions: []string{"Relaxing", "Adventure", "City Break", "Nature"},
	},
	CategoryGaming: {
		TypeLabel:   "Genre",
		TypeOptions: []string{"RPG", "Strategy", "Shooter", "Puzzle", "Party"},
		VibeLabel:   "Mode",
		VibeOptions: []string{"Co-op", "Versus", "Solo Watch"},
	},
	CategoryDateNight: {
		TypeLabel:   "Setting",
		TypeOptions: []string{"Home", "Out", "Fancy"},
		VibeLabel:   "Budget",
		VibeOptions: []string{"Free", "Cheap", "Splurge"},
	},
	CategoryChallenge: {
		TypeLabel:   "Duration",
		TypeOptions: []string{"One Day", "One Week", "One Month"},
		VibeLabel:   "Difficulty",
		VibeOptions: []string{"Easy", "Medium", "Hard"},
	},
	CategoryMovies: {
		TypeLabel:   "Genre",
		TypeOptions: []string{"Comedy", "Horror", "Drama", "Action", "Documentary"},
		VibeLabel:   "Length",
		VibeOptions: []string{"Standard", "Epic", "Series Binge"},
	},
	CategoryProjects: {
		TypeLabel:   "Area",
		TypeOptions: []string{"Home", "Creative", "Tech", "Outdoor"},
		VibeLabel:   "Effort",
		VibeOptions: []string{"Weekend", "Ongoing"},
	},
}

// OptionsFor returns the attribute selectors for a category. The category is
// validated here rather than trusted, so a typo surfaces as an error instead
// of an empty selector pair.
func OptionsFor(category string) (CategoryOptions, error) {
	opts, ok := categoryOptions[category]
	if !ok {
		return CategoryOptions{}, fmt.Errorf("unknown category: %s", category)
	}
	return opts, nil
}
