package domain

import "fmt"

// Breed is one entry of the popular breeds panel.
type Breed struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Question models an MCQ question with exactly one correct option.
type Question struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
	Answer  string   `json:"answer"`
}

// QuestionOptions is the number of options every question carries.
const QuestionOptions = 4

// Catalog is the static content a view renders: images, info panels and the quiz bank.
type Catalog struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Images          []string   `json:"images"`
	Characteristics []string   `json:"characteristics"`
	Breeds          []Breed    `json:"breeds"`
	Questions       []Question `json:"questions"`
}

// Validate checks the invariants the controllers rely on.
func (c Catalog) Validate() error {
	if len(c.Images) == 0 {
		return fmt.Errorf("%w: catalog %q has no images", ErrInvalidCatalog, c.ID)
	}
	for i, q := range c.Questions {
		if len(q.Options) != QuestionOptions {
			return fmt.Errorf("%w: question %d has %d options", ErrInvalidCatalog, i, len(q.Options))
		}
		seen := make(map[string]struct{}, len(q.Options))
		for _, opt := range q.Options {
			if _, dup := seen[opt]; dup {
				return fmt.Errorf("%w: question %d repeats option %q", ErrInvalidCatalog, i, opt)
			}
			seen[opt] = struct{}{}
		}
		if _, ok := seen[q.Answer]; !ok {
			return fmt.Errorf("%w: question %d answer %q is not an option", ErrInvalidCatalog, i, q.Answer)
		}
	}
	return nil
}

// PublicQuestion is a question as shown before it is answered.
type PublicQuestion struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}

// PublicCatalog is the catalog without quiz answers.
type PublicCatalog struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Images          []string `json:"images"`
	Characteristics []string `json:"characteristics"`
	Breeds          []Breed  `json:"breeds"`
	QuestionCount   int      `json:"questionCount"`
}

// Public strips answers so the catalog can be served to clients.
func (c Catalog) Public() PublicCatalog {
	return PublicCatalog{
		ID:              c.ID,
		Title:           c.Title,
		Images:          c.Images,
		Characteristics: c.Characteristics,
		Breeds:          c.Breeds,
		QuestionCount:   len(c.Questions),
	}
}

// CarouselState is the visible slide.
type CarouselState struct {
	Index int    `json:"index"`
	Count int    `json:"count"`
	Image string `json:"image"`
}

// QuizState is the quiz panel as a client renders it.
type QuizState struct {
	Started       bool            `json:"started"`
	Finished      bool            `json:"finished"`
	QuestionIndex int             `json:"questionIndex"`
	Total         int             `json:"total"`
	Score         int             `json:"score"`
	Question      *PublicQuestion `json:"question,omitempty"`
	Selected      string          `json:"selected,omitempty"`
	// CorrectOption is only revealed once an answer is selected.
	CorrectOption string `json:"correctOption,omitempty"`
}

// FactState is the fact widget.
type FactState struct {
	Text    string `json:"text"`
	Loading bool   `json:"loading"`
}

// ViewState is a full snapshot of one view instance.
type ViewState struct {
	ViewID   string        `json:"viewId"`
	Carousel CarouselState `json:"carousel"`
	Quiz     QuizState     `json:"quiz"`
	Likes    int           `json:"likes"`
	Fact     FactState     `json:"fact"`
}

// UpdateKind tags what a ViewUpdate carries.
type UpdateKind string

const (
	UpdateState  UpdateKind = "state"
	UpdateNotice UpdateKind = "notice"
)

// ViewUpdate is pushed to the view layer after every state change.
type ViewUpdate struct {
	Kind   UpdateKind
	State  ViewState
	Notice string
}

// CommandKind names a user action.
type CommandKind string

const (
	CommandNext        CommandKind = "next"
	CommandPrevious    CommandKind = "previous"
	CommandStartQuiz   CommandKind = "startQuiz"
	CommandRestartQuiz CommandKind = "restartQuiz"
	CommandAnswer      CommandKind = "answer"
	CommandLike        CommandKind = "like"
	CommandNewFact     CommandKind = "newFact"
)

// Command is a user action dispatched to a view.
type Command struct {
	Kind   CommandKind
	Option string // answer only
}

// Valid reports whether the command kind is known.
func (c Command) Valid() bool {
	switch c.Kind {
	case CommandNext, CommandPrevious, CommandStartQuiz, CommandRestartQuiz,
		CommandAnswer, CommandLike, CommandNewFact:
		return true
	}
	return false
}
