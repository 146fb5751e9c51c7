package skat

import "testing"

func TestNewCardPoints(t *testing.T) {
	tests := []struct {
		suit Suit
		rank Rank
		want int
	}{
		{Clubs, Jack, 2},
		{Spades, Jack, 2},
		{Diamonds, Seven, 0},
		{Hearts, Eight, 0},
		{Clubs, Nine, 0},
		{Hearts, Queen, 3},
		{Spades, King, 4},
		{Diamonds, Ten, 10},
		{Clubs, Ace, 11},
	}
	for i, test := range tests {
		c := NewCard(test.suit, test.rank)
		if got := c.Points(); got != test.want {
			t.Errorf("test %d %s%s: points = %d, want %d", i, test.rank, test.suit, got, test.want)
		}
	}
}

func TestDeckPointsSumTo120(t *testing.T) {
	if got := Deck.Points(); got != 120 {
		t.Fatalf("deck points = %d, want 120", got)
	}
	if got := Deck.Len(); got != 32 {
		t.Fatalf("deck len = %d, want 32", got)
	}
}

func TestNamedConstantsMatchNewCard(t *testing.T) {
	tests := []struct {
		suit Suit
		rank Rank
		card Card
	}{
		{Clubs, Jack, ClubsJack},
		{Spades, Jack, SpadesJack},
		{Hearts, Jack, HeartsJack},
		{Diamonds, Jack, DiamondsJack},
		{Clubs, Ace, ClubsAce},
		{Diamonds, Seven, DiamondsSeven},
		{Spades, Ten, SpadesTen},
		{Hearts, Queen, HeartsQueen},
	}
	for i, test := range tests {
		if got := NewCard(test.suit, test.rank); got != test.card {
			t.Errorf("test %d: NewCard(%s, %s) = %#x, want %#x", i, test.suit, test.rank, uint32(got), uint32(test.card))
		}
	}
}

func TestCardSetRoundTrip(t *testing.T) {
	cards := []Card{ClubsJack, HeartsAce, DiamondsSeven}
	cs := NewCardSet(cards...)
	if got := cs.Len(); got != len(cards) {
		t.Fatalf("len = %d, want %d", got, len(cards))
	}
	for _, c := range cards {
		if !cs.Contains(c) {
			t.Errorf("set does not contain %s", c)
		}
	}
	cs = cs.Remove(HeartsAce)
	if cs.Contains(HeartsAce) {
		t.Errorf("set still contains %s after Remove", HeartsAce)
	}
	if got, want := cs.Len(), len(cards)-1; got != want {
		t.Fatalf("len after remove = %d, want %d", got, want)
	}
}

func TestCardSetLowestAndCards(t *testing.T) {
	cs := NewCardSet(ClubsJack, DiamondsSeven, HeartsTen)
	if got := cs.Lowest(); got != DiamondsSeven {
		t.Errorf("lowest = %s, want %s", got, DiamondsSeven)
	}
	cards := cs.Cards()
	if len(cards) != 3 {
		t.Fatalf("len(Cards()) = %d, want 3", len(cards))
	}
	var rebuilt CardSet
	for _, c := range cards {
		rebuilt = rebuilt.Add(c)
	}
	if rebuilt != cs {
		t.Errorf("rebuilt set %#x != original %#x", uint32(rebuilt), uint32(cs))
	}
}

func TestCardString(t *testing.T) {
	tests := []struct {
		card Card
		want string
	}{
		{ClubsJack, "JC"},
		{HeartsTen, "TH"},
		{DiamondsSeven, "7D"},
		{SpadesAce, "AS"},
		{0, "--"},
	}
	for i, test := range tests {
		if got := test.card.String(); got != test.want {
			t.Errorf("test %d: String() = %q, want %q", i, got, test.want)
		}
	}
}

func TestIsJack(t *testing.T) {
	for _, s := range []Suit{Clubs, Spades, Hearts, Diamonds} {
		if !NewCard(s, Jack).IsJack() {
			t.Errorf("%s jack: IsJack() = false", s)
		}
	}
	if ClubsAce.IsJack() {
		t.Errorf("ClubsAce.IsJack() = true")
	}
}
