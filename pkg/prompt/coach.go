package prompt

import (
	_ "embed"
	"errors"
	"strings"
)

// DefaultSuggestionCount is how many strategies the coach asks for.
const DefaultSuggestionCount = 3

// Block names a coach template may define. A template without a user block
// is rendered whole as the user turn.
const (
	SystemBlock = "system"
	UserBlock   = "user"
)

//go:embed coach.tmpl
var defaultCoachTemplate string

// CoachData is the input of the coach template.
type CoachData struct {
	Situation string
	Count     int
}

// Messages is a rendered coach prompt.
type Messages struct {
	System string
	User   string
}

// Text joins both parts, for digests and single-turn transports.
func (m Messages) Text() string {
	if m.System == "" {
		return m.User
	}
	return m.System + "\n\n" + m.User
}

// CoachTemplate renders the instruction sent to the text generator.
type CoachTemplate struct {
	tpl *Template
}

// NewCoachTemplate loads the template at path, or the built-in one when path is empty.
func NewCoachTemplate(path string) (*CoachTemplate, error) {
	var (
		tpl *Template
		err error
	)
	if strings.TrimSpace(path) == "" {
		tpl, err = Parse("coach.tmpl", defaultCoachTemplate, nil)
	} else {
		tpl, err = NewTemplate(path, nil)
	}
	if err != nil {
		return nil, err
	}
	return &CoachTemplate{tpl: tpl}, nil
}

// Render fills the template for situation. Count defaults to DefaultSuggestionCount.
func (c *CoachTemplate) Render(data CoachData) (Messages, error) {
	if strings.TrimSpace(data.Situation) == "" {
		return Messages{}, errors.New("prompt: situation is empty")
	}
	if data.Count <= 0 {
		data.Count = DefaultSuggestionCount
	}
	data.Situation = strings.TrimSpace(data.Situation)

	if !c.tpl.Defines(UserBlock) {
		user, err := c.tpl.Render(data)
		return Messages{User: user}, err
	}

	var (
		msgs Messages
		err  error
	)
	if c.tpl.Defines(SystemBlock) {
		if msgs.System, err = c.tpl.RenderTemplate(SystemBlock, data); err != nil {
			return Messages{}, err
		}
	}
	if msgs.User, err = c.tpl.RenderTemplate(UserBlock, data); err != nil {
		return Messages{}, err
	}
	return msgs, nil
}

// Digest identifies the template source.
func (c *CoachTemplate) Digest() string {
	return c.tpl.Digest()
}

// Source reports where the template was loaded from.
func (c *CoachTemplate) Source() string {
	return c.tpl.Source()
}
