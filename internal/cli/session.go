package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dyike/FinAdvisorGo/config"
	"github.com/dyike/FinAdvisorGo/internal/advisor"
	"github.com/dyike/FinAdvisorGo/internal/display"
	"github.com/dyike/FinAdvisorGo/internal/storage"
)

const (
	chartWidth  = 60
	chartHeight = 12
)

// Session runs the interactive chat loop. Chat history lives here and in
// the store, never in the dispatcher.
type Session struct {
	cfg        *config.Config
	dispatcher *advisor.Dispatcher
	store      *storage.Store
	sessionID  string
	reader     *bufio.Reader
}

func NewSession(cfg *config.Config, dispatcher *advisor.Dispatcher, store *storage.Store) *Session {
	return &Session{
		cfg:        cfg,
		dispatcher: dispatcher,
		store:      store,
		sessionID:  time.Now().Format("20060102-150405"),
		reader:     bufio.NewReader(os.Stdin),
	}
}

// replayLimit caps how many turns of the previous session are replayed
// when a new chat starts.
const replayLimit = 10

// Run begins the interactive session.
func (s *Session) Run(ctx context.Context) error {
	fmt.Println(display.Banner())
	fmt.Println("Commands: history shows this session, exit quits.")
	fmt.Println()

	s.replayRecent(ctx, os.Stdout)

	for {
		fmt.Printf("%s> ", display.UserLabel())

		input, err := s.reader.ReadString('\n')
		if err != nil {
			// EOF ends the session cleanly.
			fmt.Println()
			return nil
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		switch strings.ToLower(input) {
		case "exit", "quit", "q":
			fmt.Println("Goodbye! 👋")
			return nil
		case "history":
			s.showHistory(ctx)
			continue
		}

		s.handleQuestion(ctx, input)
	}
}

func (s *Session) handleQuestion(ctx context.Context, question string) {
	s.record(ctx, storage.RoleUser, question)

	fmt.Println(display.Status("Generating response..."))
	res := s.dispatcher.Ask(ctx, question)

	// The chart precedes the streamed text, matching the reference layout.
	if chart := display.RenderTrendChart(res.Trend, res.Quote, chartWidth, chartHeight); chart != "" {
		fmt.Println(chart)
	}

	fmt.Printf("%s: ", display.AssistantLabel())
	display.StreamMessage(os.Stdout, res.Text, display.DefaultWordDelay)
	fmt.Println()

	s.record(ctx, storage.RoleAssistant, res.Text)
}

// replayRecent prints the tail of the previous session so the user can pick
// up where they left off. Replay is best effort: any store problem is
// logged and the chat starts empty.
func (s *Session) replayRecent(ctx context.Context, w io.Writer) {
	if s.store == nil {
		return
	}

	sessions, err := s.store.Sessions(ctx, 1)
	if err != nil {
		log.Printf("cli: list sessions: %v", err)
		return
	}
	if len(sessions) == 0 || sessions[0] == s.sessionID {
		return
	}

	turns, err := s.store.RecentTurns(ctx, sessions[0], replayLimit)
	if err != nil {
		log.Printf("cli: replay session %s: %v", sessions[0], err)
		return
	}
	if len(turns) == 0 {
		return
	}

	fmt.Fprintln(w, display.Status("Picking up from your last session:"))
	for _, turn := range turns {
		label := display.UserLabel()
		if turn.Role == storage.RoleAssistant {
			label = display.AssistantLabel()
		}
		fmt.Fprintf(w, "%s: %s\n", label, turn.Content)
	}
	fmt.Fprintln(w)
}

func (s *Session) showHistory(ctx context.Context) {
	if s.store == nil {
		fmt.Println("Chat history is disabled for this session.")
		return
	}

	turns, err := s.store.RecentTurns(ctx, s.sessionID, 50)
	if err != nil {
		log.Printf("cli: load history: %v", err)
		return
	}
	if len(turns) == 0 {
		fmt.Println("Nothing asked yet.")
		return
	}

	for _, turn := range turns {
		label := display.UserLabel()
		if turn.Role == storage.RoleAssistant {
			label = display.AssistantLabel()
		}
		fmt.Printf("%s: %s\n", label, turn.Content)
	}
}

func (s *Session) record(ctx context.Context, role, content string) {
	if s.store == nil {
		return
	}
	if err := s.store.AppendTurn(ctx, s.sessionID, role, content); err != nil {
		log.Printf("cli: persist turn: %v", err)
	}
}
