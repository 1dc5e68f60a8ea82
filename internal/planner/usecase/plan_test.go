package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"globetrek/internal/conversation"
	"globetrek/internal/images"
	"globetrek/internal/model"
	"globetrek/internal/planner"
	"globetrek/internal/planner/usecase"
	"globetrek/internal/render"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockAgent struct {
	reply   string
	err     error
	prompts []string
}

func (m *mockAgent) GenerateText(ctx context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	return m.reply, m.err
}

func newUseCase(t *testing.T, planAgent, chatAgent planner.TextGenerator) (planner.UseCase, *conversation.Store) {
	t.Helper()

	store, err := conversation.NewStore(8, 20)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	l := &mockLogger{}
	extractor := images.New(l, nil)
	renderer := render.New(l, nil, render.Config{})

	return usecase.New(l, planAgent, chatAgent, extractor, renderer, store), store
}

func planInput() planner.PlanTripInput {
	return planner.PlanTripInput{
		OriginAirport: "DEL",
		Destination:   "Paris",
		StartDate:     time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC),
		Travelers:     2,
		Budget:        model.BudgetTierMid,
		Interests:     []string{"museums", "food"},
		Accommodation: "Hotels",
		Notes:         "vegetarian meals",
	}
}

func TestPlanTripPrompt(t *testing.T) {
	agent := &mockAgent{reply: "# Paris Trip"}
	uc, _ := newUseCase(t, agent, nil)

	out, err := uc.PlanTrip(context.Background(), model.Scope{SessionID: "s1"}, planInput())
	if err != nil {
		t.Fatalf("PlanTrip: %v", err)
	}

	want := "Plan a trip to Paris for 2 travelers departing from DEL " +
		"from Jun 01, 2026 to Jun 05, 2026 with a ₹50,000-1,50,000 budget in INR. " +
		"We're interested in: museums, food. We prefer staying in Hotels. " +
		"Additional notes: vegetarian meals. " +
		"Please include flight options, accommodations, daily activities, and all costs in INR."
	if out.Prompt != want {
		t.Errorf("prompt mismatch\n got %q\nwant %q", out.Prompt, want)
	}
	if out.Itinerary != "# Paris Trip" {
		t.Errorf("unexpected itinerary %q", out.Itinerary)
	}
}

func TestPlanTripPromptOmitsOptionalFields(t *testing.T) {
	agent := &mockAgent{reply: "ok"}
	uc, _ := newUseCase(t, agent, nil)

	in := planInput()
	in.OriginAirport = ""
	in.Interests = nil
	in.Accommodation = "Any"
	in.Notes = ""

	out, err := uc.PlanTrip(context.Background(), model.Scope{SessionID: "s1"}, in)
	if err != nil {
		t.Fatalf("PlanTrip: %v", err)
	}

	for _, unwanted := range []string{"departing from", "interested in", "prefer staying", "Additional notes"} {
		if strings.Contains(out.Prompt, unwanted) {
			t.Errorf("prompt should omit %q: %q", unwanted, out.Prompt)
		}
	}
}

func TestPlanTripValidation(t *testing.T) {
	uc, _ := newUseCase(t, &mockAgent{reply: "ok"}, nil)
	sc := model.Scope{SessionID: "s1"}

	in := planInput()
	in.Destination = "  "
	if _, err := uc.PlanTrip(context.Background(), sc, in); !errors.Is(err, planner.ErrMissingDestination) {
		t.Errorf("expected ErrMissingDestination, got %v", err)
	}

	in = planInput()
	in.EndDate = time.Time{}
	if _, err := uc.PlanTrip(context.Background(), sc, in); !errors.Is(err, planner.ErrMissingDates) {
		t.Errorf("expected ErrMissingDates, got %v", err)
	}
}

func TestPlanTripUnavailableWithoutAgent(t *testing.T) {
	uc, _ := newUseCase(t, nil, nil)

	if _, err := uc.PlanTrip(context.Background(), model.Scope{SessionID: "s1"}, planInput()); !errors.Is(err, planner.ErrPlannerUnavailable) {
		t.Errorf("expected ErrPlannerUnavailable, got %v", err)
	}
}

func TestPlanTripStripsImagesAndRecordsHistory(t *testing.T) {
	agent := &mockAgent{reply: "# Paris\n\n![Eiffel Tower](https://img.example/e.jpg)\n\nDay 1."}
	uc, _ := newUseCase(t, agent, nil)
	sc := model.Scope{SessionID: "s1"}

	out, err := uc.PlanTrip(context.Background(), sc, planInput())
	if err != nil {
		t.Fatalf("PlanTrip: %v", err)
	}

	if strings.Contains(out.Itinerary, "![") {
		t.Errorf("expected image refs stripped, got %q", out.Itinerary)
	}
	if len(out.Images) != 1 || out.Images[0].Caption != "Eiffel Tower" {
		t.Errorf("unexpected images %+v", out.Images)
	}

	plans := uc.Plans(context.Background(), sc)
	if len(plans) != 1 {
		t.Fatalf("expected 1 recorded plan, got %d", len(plans))
	}
	if plans[0].Answer.Text != out.Itinerary {
		t.Errorf("history stored %q, want %q", plans[0].Answer.Text, out.Itinerary)
	}
}

func TestPlanTripAgentError(t *testing.T) {
	uc, _ := newUseCase(t, &mockAgent{err: errors.New("groq down")}, nil)

	_, err := uc.PlanTrip(context.Background(), model.Scope{SessionID: "s1"}, planInput())
	if err == nil || !strings.Contains(err.Error(), "groq down") {
		t.Errorf("expected wrapped agent error, got %v", err)
	}
	if got := uc.Plans(context.Background(), model.Scope{SessionID: "s1"}); len(got) != 0 {
		t.Errorf("expected no history on failure, got %d", len(got))
	}
}

func TestChat(t *testing.T) {
	uc, _ := newUseCase(t, nil, &mockAgent{reply: "Bonjour!"})
	sc := model.Scope{SessionID: "s1"}

	out, err := uc.Chat(context.Background(), sc, planner.ChatInput{Message: "Say hi in French"})
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if out.Reply != "Bonjour!" {
		t.Errorf("unexpected reply %q", out.Reply)
	}

	if got := len(uc.ChatHistory(context.Background(), sc)); got != 1 {
		t.Errorf("expected 1 chat exchange, got %d", got)
	}
	if got := len(uc.Plans(context.Background(), sc)); got != 0 {
		t.Errorf("chat must not touch plan history, got %d", got)
	}
}

func TestChatValidation(t *testing.T) {
	uc, _ := newUseCase(t, nil, &mockAgent{reply: "hi"})

	if _, err := uc.Chat(context.Background(), model.Scope{SessionID: "s1"}, planner.ChatInput{Message: " "}); !errors.Is(err, planner.ErrEmptyMessage) {
		t.Errorf("expected ErrEmptyMessage, got %v", err)
	}

	ucNoChat, _ := newUseCase(t, nil, nil)
	if _, err := ucNoChat.Chat(context.Background(), model.Scope{SessionID: "s1"}, planner.ChatInput{Message: "hello"}); !errors.Is(err, planner.ErrChatUnavailable) {
		t.Errorf("expected ErrChatUnavailable, got %v", err)
	}
}

func TestExportPDF(t *testing.T) {
	uc, _ := newUseCase(t, nil, nil)

	out, err := uc.ExportPDF(context.Background(), model.Scope{SessionID: "s1"}, planner.ExportInput{
		Markdown:    "# Paris Trip\n## Day 1\n- Visit the Louvre",
		Destination: "New Delhi",
		TravelDates: "Jun 01, 2026 to Jun 05, 2026",
	})
	if err != nil {
		t.Fatalf("ExportPDF: %v", err)
	}

	if !bytes.HasPrefix(out.Data, []byte("%PDF")) {
		t.Error("expected PDF output")
	}
	wantName := "New_Delhi_itinerary_" + time.Now().Format("2006-01-02") + ".pdf"
	if out.Filename != wantName {
		t.Errorf("expected filename %q, got %q", wantName, out.Filename)
	}
}

func TestExportPDFFallsBackToLatestPlan(t *testing.T) {
	uc, store := newUseCase(t, nil, nil)
	sc := model.Scope{SessionID: "s1"}

	if _, err := uc.ExportPDF(context.Background(), sc, planner.ExportInput{}); !errors.Is(err, planner.ErrNoPlanToExport) {
		t.Fatalf("expected ErrNoPlanToExport, got %v", err)
	}

	store.AppendExchange(sc.SessionID, conversation.KindPlan, "plan paris", "# Paris Trip\n## Day 1\n- Louvre")

	out, err := uc.ExportPDF(context.Background(), sc, planner.ExportInput{Destination: "Paris"})
	if err != nil {
		t.Fatalf("ExportPDF: %v", err)
	}
	if !bytes.HasPrefix(out.Data, []byte("%PDF")) {
		t.Error("expected PDF output from stored itinerary")
	}
}
