package skat

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Fixture is one row of a solver test fixture: a deal plus the score it is
// expected to produce.
type Fixture struct {
	Name     string
	Hands    [3]CardSet
	Skat     CardSet
	Soloist  Player
	Variant  Variant
	Leader   Player
	Expected int
}

// ReadFixtures parses a CSV fixture file from r. Each record has the form:
//
//	name,p1,p2,p3,skat,soloist,variant,leader,expected
//
// where p1/p2/p3/skat are space-separated two-character card codes (the
// same notation [Card.String] produces, e.g. "JC TH"; an empty field is an
// empty set), soloist/leader are "P1"/"P2"/"P3", variant is one of
// "Grand"/"Clubs"/"Spades"/"Hearts"/"Diamonds", and expected is the
// fixture's guaranteed score. Blank lines and lines starting with '#' are
// skipped.
func ReadFixtures(r io.Reader) ([]Fixture, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = 9
	cr.TrimLeadingSpace = true

	var out []Fixture
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("skat: reading fixture: %w", err)
		}
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		f, err := parseFixture(rec)
		if err != nil {
			return nil, fmt.Errorf("skat: fixture %q: %w", rec[0], err)
		}
		out = append(out, f)
	}
	return out, nil
}

func parseFixture(rec []string) (Fixture, error) {
	var f Fixture
	f.Name = rec[0]

	var err error
	for i, dst := range []*CardSet{&f.Hands[0], &f.Hands[1], &f.Hands[2], &f.Skat} {
		if *dst, err = parseCardSet(rec[1+i]); err != nil {
			return f, err
		}
	}
	if f.Soloist, err = parsePlayer(rec[5]); err != nil {
		return f, err
	}
	if f.Variant, err = parseVariant(rec[6]); err != nil {
		return f, err
	}
	if f.Leader, err = parsePlayer(rec[7]); err != nil {
		return f, err
	}
	if f.Expected, err = strconv.Atoi(strings.TrimSpace(rec[8])); err != nil {
		return f, fmt.Errorf("expected score: %w", err)
	}
	return f, nil
}

func parseCardSet(field string) (CardSet, error) {
	var cs CardSet
	for _, tok := range strings.Fields(field) {
		c, err := parseCard(tok)
		if err != nil {
			return 0, err
		}
		cs = cs.Add(c)
	}
	return cs, nil
}

func parseCard(tok string) (Card, error) {
	if len(tok) != 2 {
		return 0, fmt.Errorf("invalid card %q", tok)
	}
	var suit Suit
	switch tok[1] {
	case 'C':
		suit = Clubs
	case 'S':
		suit = Spades
	case 'H':
		suit = Hearts
	case 'D':
		suit = Diamonds
	default:
		return 0, fmt.Errorf("invalid card %q", tok)
	}
	var rank Rank
	switch tok[0] {
	case '7':
		rank = Seven
	case '8':
		rank = Eight
	case '9':
		rank = Nine
	case 'Q':
		rank = Queen
	case 'K':
		rank = King
	case 'T':
		rank = Ten
	case 'A':
		rank = Ace
	case 'J':
		rank = Jack
	default:
		return 0, fmt.Errorf("invalid card %q", tok)
	}
	return NewCard(suit, rank), nil
}

func parsePlayer(field string) (Player, error) {
	switch strings.TrimSpace(field) {
	case "P1":
		return P1, nil
	case "P2":
		return P2, nil
	case "P3":
		return P3, nil
	}
	return 0, fmt.Errorf("invalid player %q", field)
}

func parseVariant(field string) (Variant, error) {
	switch strings.TrimSpace(field) {
	case "Grand":
		return Grand, nil
	case "Clubs":
		return ClubsTrump, nil
	case "Spades":
		return SpadesTrump, nil
	case "Hearts":
		return HeartsTrump, nil
	case "Diamonds":
		return DiamondsTrump, nil
	}
	return 0, fmt.Errorf("invalid variant %q", field)
}
