// Package human holds the identity and body data of people in the world:
// the living player, the buried dead and the zombies raised from them.
package human

import (
	"fmt"
	"math/rand"
)

// Gender is a free-form gender label. Male and Female are the generated values.
type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
)

// Pronouns returns subject, object and possessive pronouns.
func (g Gender) Pronouns() (string, string, string) {
	switch g {
	case Male:
		return "He", "him", "his"
	case Female:
		return "She", "her", "her"
	default:
		return "They", "them", "their"
	}
}

// MainHand is the dominant hand of a character.
type MainHand string

const (
	RightHand  MainHand = "right"
	LeftHand   MainHand = "left"
	Ambidexter MainHand = "ambidexter"
)

// SkinTone indexes the skin palette.
type SkinTone uint8

const SkinToneCount = 16

var skinToneNames = [SkinToneCount]string{
	"Pale Ivory", "Warm Ivory", "Sand", "Rose Beige",
	"Sienna", "Limestone", "Beige", "Amber",
	"Honey", "Band", "Almond", "Umber",
	"Bronze", "Golden", "Espresso", "Chocolate",
}

func (s SkinTone) String() string {
	if int(s) >= SkinToneCount {
		return "Unknown"
	}
	return skinToneNames[s]
}

// Next returns the following tone, wrapping around.
func (s SkinTone) Next() SkinTone {
	return SkinTone((int(s) + 1) % SkinToneCount)
}

// Prev returns the previous tone, wrapping around.
func (s SkinTone) Prev() SkinTone {
	return SkinTone((int(s) + SkinToneCount - 1) % SkinToneCount)
}

// AdultAge is the age from which a character counts as grown up.
const AdultAge = 16

// Character is the identity of a person.
type Character struct {
	Name     string   `json:"name"`
	Gender   Gender   `json:"gender"`
	Age      int      `json:"age"`
	MainHand MainHand `json:"main_hand"`
	SkinTone SkinTone `json:"skin_tone"`
}

// IsChild reports whether the character is younger than AdultAge.
func (c Character) IsChild() bool {
	return c.Age < AdultAge
}

func (c Character) String() string {
	return fmt.Sprintf("%s (%s, %d)", c.Name, c.Gender, c.Age)
}

var (
	femaleNames = []string{"Agnes", "Beatrix", "Clara", "Dorothy", "Edith", "Florence", "Greta", "Hilda", "Ida", "Martha"}
	maleNames   = []string{"Abel", "Bartholomew", "Cyril", "Edmund", "Gideon", "Horace", "Jasper", "Mortimer", "Silas", "Tobias"}
	surnames    = []string{"Ashdown", "Blackwood", "Crane", "Digby", "Graves", "Hollow", "Marsh", "Thorne", "Whitlock", "Yew"}
)

// RandomCharacter draws a character from rng. maxAge bounds the age from above.
func RandomCharacter(rng *rand.Rand, maxAge int) Character {
	if maxAge < 1 {
		maxAge = 1
	}
	gender := Male
	if rng.Float64() < 0.51 {
		gender = Female
	}
	names := maleNames
	if gender == Female {
		names = femaleNames
	}
	hand := RightHand
	switch r := rng.Intn(20); {
	case r == 0:
		hand = Ambidexter
	case r < 4:
		hand = LeftHand
	}
	return Character{
		Name:     names[rng.Intn(len(names))] + " " + surnames[rng.Intn(len(surnames))],
		Gender:   gender,
		Age:      1 + rng.Intn(maxAge),
		MainHand: hand,
		SkinTone: SkinTone(rng.Intn(SkinToneCount)),
	}
}
