package engine

import "fmt"

// Ajah identifies the 8 factions a player can be bound to.
type Ajah int

const (
	AjahBlue   Ajah = 1
	AjahYellow Ajah = 2
	AjahWhite  Ajah = 3
	AjahBrown  Ajah = 4
	AjahGray   Ajah = 5
	AjahGreen  Ajah = 6
	AjahRed    Ajah = 7
	AjahBlack  Ajah = 8
)

var ajahNames = map[Ajah]string{
	AjahBlue:   "Blue",
	AjahYellow: "Yellow",
	AjahWhite:  "White",
	AjahBrown:  "Brown",
	AjahGray:   "Gray",
	AjahGreen:  "Green",
	AjahRed:    "Red",
	AjahBlack:  "Black",
}

func (a Ajah) String() string {
	if s, ok := ajahNames[a]; ok {
		return s
	}
	return "Unknown"
}

// Valid reports whether a is one of the 8 Ajahs.
func (a Ajah) Valid() bool {
	_, ok := ajahNames[a]
	return ok
}

// ParseAjah resolves a name as produced by String.
func ParseAjah(s string) (Ajah, error) {
	for a, name := range ajahNames {
		if name == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown ajah %q", s)
}

func (a Ajah) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Ajah) UnmarshalText(b []byte) error {
	v, err := ParseAjah(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// AllAjahs returns the 8 Ajahs in seat-selection order.
func AllAjahs() []Ajah {
	return []Ajah{
		AjahBlue, AjahYellow, AjahWhite, AjahBrown,
		AjahGray, AjahGreen, AjahRed, AjahBlack,
	}
}
