package match

import (
	"testing"

	"github.com/google/uuid"
)

func TestCanonicalPair(t *testing.T) {
	a := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	b := uuid.MustParse("00000000-0000-0000-0000-000000000002")

	x1, y1 := CanonicalPair(a, b)
	x2, y2 := CanonicalPair(b, a)
	if x1 != x2 || y1 != y2 {
		t.Fatalf("pair order must not matter: (%s,%s) vs (%s,%s)", x1, y1, x2, y2)
	}
	if x1 != a || y1 != b {
		t.Fatalf("expected byte-wise ascending order, got (%s,%s)", x1, y1)
	}

	x3, y3 := CanonicalPair(a, a)
	if x3 != a || y3 != a {
		t.Fatalf("identical ids must pass through, got (%s,%s)", x3, y3)
	}
}

func TestMatch_InvolvesAndCounterpart(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	ua, ub := CanonicalPair(a, b)
	m := Match{ID: uuid.New(), UserAID: ua, UserBID: ub}

	if !m.Involves(a) || !m.Involves(b) {
		t.Fatalf("both participants must be involved")
	}
	if m.Involves(uuid.New()) {
		t.Fatalf("stranger must not be involved")
	}
	if m.Counterpart(a) != b {
		t.Fatalf("counterpart of a must be b")
	}
	if m.Counterpart(b) != a {
		t.Fatalf("counterpart of b must be a")
	}
}
