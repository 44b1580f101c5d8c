package human

import "fmt"

// Freshness is the decay stage of organic remains.
type Freshness uint8

const (
	Fresh Freshness = iota
	Rotten
	Skeletal
)

var freshnessNames = [...]string{"fresh", "rotten", "skeletal"}

func (f Freshness) String() string {
	if int(f) >= len(freshnessNames) {
		return "unknown"
	}
	return freshnessNames[f]
}

// MarshalText encodes the stage by name.
func (f Freshness) MarshalText() ([]byte, error) {
	if int(f) >= len(freshnessNames) {
		return nil, fmt.Errorf("human: invalid freshness %d", f)
	}
	return []byte(freshnessNames[f]), nil
}

// UnmarshalText decodes a stage name.
func (f *Freshness) UnmarshalText(text []byte) error {
	for i, name := range freshnessNames {
		if name == string(text) {
			*f = Freshness(i)
			return nil
		}
	}
	return fmt.Errorf("human: unknown freshness %q", string(text))
}

// BodyPart is one named part of a body. Mass is in grams.
type BodyPart struct {
	Name      string    `json:"name"`
	Mass      int       `json:"mass"`
	Freshness Freshness `json:"freshness"`
}

// Body is an ordered list of body parts.
type Body struct {
	Parts []BodyPart `json:"parts"`
}

// adult part masses in grams
var humanParts = []BodyPart{
	{Name: "head", Mass: 4500},
	{Name: "torso", Mass: 30000},
	{Name: "left arm", Mass: 4000},
	{Name: "right arm", Mass: 4000},
	{Name: "left leg", Mass: 11000},
	{Name: "right leg", Mass: 11000},
}

// NewHumanBody builds a complete body for the character. Children get
// proportionally lighter parts.
func NewHumanBody(c Character, freshness Freshness) Body {
	parts := make([]BodyPart, len(humanParts))
	for i, p := range humanParts {
		mass := p.Mass
		if c.IsChild() {
			mass = mass * (c.Age + 2) / (AdultAge + 2)
		}
		parts[i] = BodyPart{Name: p.Name, Mass: mass, Freshness: freshness}
	}
	return Body{Parts: parts}
}

// Mass sums the mass of all parts.
func (b Body) Mass() int {
	total := 0
	for _, p := range b.Parts {
		total += p.Mass
	}
	return total
}

// Part returns the part with the given name.
func (b Body) Part(name string) (BodyPart, bool) {
	for _, p := range b.Parts {
		if p.Name == name {
			return p, true
		}
	}
	return BodyPart{}, false
}

// Freshness reports the state of the torso, falling back to Rotten for
// bodies without one.
func (b Body) Freshness() Freshness {
	if p, ok := b.Part("torso"); ok {
		return p.Freshness
	}
	return Rotten
}

// Decay returns a copy of the body with every part set to the given stage.
func (b Body) Decay(f Freshness) Body {
	parts := make([]BodyPart, len(b.Parts))
	for i, p := range b.Parts {
		p.Freshness = f
		parts[i] = p
	}
	return Body{Parts: parts}
}
