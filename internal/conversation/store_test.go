package conversation_test

import (
	"fmt"
	"testing"

	"globetrek/internal/conversation"
	"globetrek/internal/model"
)

func TestAppendExchangePairs(t *testing.T) {
	store, err := conversation.NewStore(4, 10)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	store.AppendExchange("s1", conversation.KindPlan, "Plan a trip to Paris", "# Paris Trip")

	turns := store.Turns("s1", conversation.KindPlan)
	if len(turns) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(turns))
	}
	if turns[0].Role != model.RoleUser || turns[1].Role != model.RoleAssistant {
		t.Errorf("turns not in (user, assistant) order: %+v", turns)
	}

	exchanges := store.Exchanges("s1", conversation.KindPlan)
	if len(exchanges) != 1 {
		t.Fatalf("expected 1 exchange, got %d", len(exchanges))
	}
	if exchanges[0].Answer.Text != "# Paris Trip" {
		t.Errorf("unexpected answer %q", exchanges[0].Answer.Text)
	}
}

func TestKindsAreSeparate(t *testing.T) {
	store, _ := conversation.NewStore(4, 10)

	store.AppendExchange("s1", conversation.KindPlan, "plan", "itinerary")
	store.AppendExchange("s1", conversation.KindChat, "hello", "hi")

	if got := len(store.Exchanges("s1", conversation.KindPlan)); got != 1 {
		t.Errorf("expected 1 plan exchange, got %d", got)
	}
	if got := len(store.Exchanges("s1", conversation.KindChat)); got != 1 {
		t.Errorf("expected 1 chat exchange, got %d", got)
	}
}

func TestExchangeBoundEvictsOldestPair(t *testing.T) {
	store, _ := conversation.NewStore(4, 3)

	for i := 0; i < 5; i++ {
		store.AppendExchange("s1", conversation.KindChat, fmt.Sprintf("q%d", i), fmt.Sprintf("a%d", i))
	}

	exchanges := store.Exchanges("s1", conversation.KindChat)
	if len(exchanges) != 3 {
		t.Fatalf("expected history capped at 3 exchanges, got %d", len(exchanges))
	}
	if exchanges[0].Query.Text != "q2" {
		t.Errorf("expected oldest surviving exchange q2, got %q", exchanges[0].Query.Text)
	}
	if exchanges[2].Answer.Text != "a4" {
		t.Errorf("expected newest exchange a4, got %q", exchanges[2].Answer.Text)
	}
}

func TestSessionBoundEvictsLRU(t *testing.T) {
	store, _ := conversation.NewStore(2, 10)

	store.AppendExchange("s1", conversation.KindChat, "q", "a")
	store.AppendExchange("s2", conversation.KindChat, "q", "a")
	store.AppendExchange("s3", conversation.KindChat, "q", "a")

	if got := store.Turns("s1", conversation.KindChat); got != nil {
		t.Errorf("expected oldest session evicted, got %d turns", len(got))
	}
	if got := len(store.Turns("s3", conversation.KindChat)); got != 2 {
		t.Errorf("expected newest session retained, got %d turns", got)
	}
}

func TestLatestAnswer(t *testing.T) {
	store, _ := conversation.NewStore(4, 10)

	if _, ok := store.LatestAnswer("s1", conversation.KindPlan); ok {
		t.Error("expected no answer for empty history")
	}

	store.AppendExchange("s1", conversation.KindPlan, "q1", "a1")
	store.AppendExchange("s1", conversation.KindPlan, "q2", "a2")

	answer, ok := store.LatestAnswer("s1", conversation.KindPlan)
	if !ok || answer != "a2" {
		t.Errorf("expected latest answer a2, got %q (ok=%v)", answer, ok)
	}
}

func TestEmptySessionHistory(t *testing.T) {
	store, _ := conversation.NewStore(4, 10)

	if turns := store.Turns("missing", conversation.KindPlan); turns != nil {
		t.Errorf("expected nil turns, got %+v", turns)
	}
	if exchanges := store.Exchanges("missing", conversation.KindPlan); exchanges != nil {
		t.Errorf("expected nil exchanges, got %+v", exchanges)
	}
}
