package halloffame

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// AllSports is the filter value that selects every athlete.
const AllSports = "모두 보기"

//go:embed athletes.yaml
var athletesYAML []byte

// Athlete is one hall-of-fame row.
type Athlete struct {
	Name  string `yaml:"name" json:"name"`
	Sport string `yaml:"sport" json:"sport"`
	Quote string `yaml:"quote" json:"quote"`
}

// Table is an immutable set of athletes in declaration order.
type Table struct {
	athletes []Athlete
	sports   []string
}

// Default decodes the embedded athlete table.
func Default() (*Table, error) {
	return Decode(athletesYAML)
}

// MustDefault is like Default but panics on error.
func MustDefault() *Table {
	t, err := Default()
	if err != nil {
		panic(err)
	}
	return t
}

// Decode builds a table from YAML with a top-level "athletes" list.
func Decode(data []byte) (*Table, error) {
	var raw struct {
		Athletes []Athlete `yaml:"athletes"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal hall of fame: %w", err)
	}
	seen := make(map[string]struct{})
	var sports []string
	for i, a := range raw.Athletes {
		if strings.TrimSpace(a.Name) == "" || strings.TrimSpace(a.Sport) == "" {
			return nil, fmt.Errorf("hall of fame: athlete %d requires name and sport", i)
		}
		if _, ok := seen[a.Sport]; !ok {
			seen[a.Sport] = struct{}{}
			sports = append(sports, a.Sport)
		}
	}
	// Byte order of UTF-8 matches code point order.
	sort.Strings(sports)
	return &Table{athletes: raw.Athletes, sports: sports}, nil
}

// All returns every athlete.
func (t *Table) All() []Athlete {
	out := make([]Athlete, len(t.athletes))
	copy(out, t.athletes)
	return out
}

// Sports returns the distinct sports, sorted.
func (t *Table) Sports() []string {
	out := make([]string, len(t.sports))
	copy(out, t.sports)
	return out
}

// Filter returns athletes of sport. An empty sport or AllSports selects all;
// an unknown sport selects none.
func (t *Table) Filter(sport string) []Athlete {
	sport = strings.TrimSpace(sport)
	if sport == "" || sport == AllSports {
		return t.All()
	}
	out := make([]Athlete, 0)
	for _, a := range t.athletes {
		if a.Sport == sport {
			out = append(out, a)
		}
	}
	return out
}
