package session_test

import (
	"sync"
	"testing"
	"time"

	"github.com/binguliki/IntelliLearn/internal/model"
	"github.com/binguliki/IntelliLearn/internal/session"
)

const prompt = "You are a helpful tutor."

func TestSnapshot_SeedsSystemMessage(t *testing.T) {
	s := session.New(prompt, 0, 0)

	snap := s.Snapshot("user-1")
	if len(snap) != 1 {
		t.Fatalf("expected 1 seeded message, got %d", len(snap))
	}
	if snap[0].Role != model.RoleSystem {
		t.Errorf("first message role = %s, want system", snap[0].Role)
	}
	if snap[0].Text() != prompt {
		t.Errorf("system prompt mismatch: %q", snap[0].Text())
	}
}

func TestSnapshot_IsIndependentCopy(t *testing.T) {
	s := session.New(prompt, 0, 0)

	snap := s.Snapshot("user-1")
	snap[0] = model.UserMessage("mutated")

	again := s.Snapshot("user-1")
	if again[0].Role != model.RoleSystem {
		t.Error("mutating a snapshot leaked into the store")
	}
}

func TestCommit_AppendsPair(t *testing.T) {
	s := session.New(prompt, 0, 0)
	s.Snapshot("user-1")

	s.Commit("user-1", model.UserMessage("what is DNA?"), model.AssistantMessage("DNA is..."))

	snap := s.Snapshot("user-1")
	if len(snap) != 3 {
		t.Fatalf("expected 3 messages after commit, got %d", len(snap))
	}
	if snap[1].Role != model.RoleUser || snap[2].Role != model.RoleAssistant {
		t.Error("commit did not append user+assistant in order")
	}
}

func TestCommit_SurvivesMidTurnEviction(t *testing.T) {
	// TTL counts from creation, not last access, so a session can expire
	// while its turn is still in flight. The commit must land in a fresh
	// seeded session instead of failing the turn.
	s := session.New(prompt, 50*time.Millisecond, 10)

	unlock := s.Lock("user-1")
	defer unlock()
	s.Snapshot("user-1")

	time.Sleep(120 * time.Millisecond)
	s.Commit("user-1", model.UserMessage("slow question"), model.AssistantMessage("late answer"))

	snap := s.Snapshot("user-1")
	if len(snap) != 3 {
		t.Fatalf("expected system+pair after eviction, got %d messages", len(snap))
	}
	if snap[0].Role != model.RoleSystem {
		t.Error("reseeded session lost the system-prompt invariant")
	}
	if snap[1].Text() != "slow question" || snap[2].Text() != "late answer" {
		t.Error("committed pair missing after mid-turn eviction")
	}
}

func TestCommit_CreatesOnMiss(t *testing.T) {
	s := session.New(prompt, 0, 0)

	s.Commit("fresh", model.UserMessage("hi"), model.AssistantMessage("hello"))

	snap := s.Snapshot("fresh")
	if len(snap) != 3 || snap[0].Role != model.RoleSystem {
		t.Errorf("commit on a new key must seed the session first, got %d messages", len(snap))
	}
}

func TestReset_RestoresInvariant(t *testing.T) {
	s := session.New(prompt, 0, 0)
	s.Snapshot("user-1")
	s.Commit("user-1", model.UserMessage("q"), model.AssistantMessage("a"))

	s.Reset("user-1")

	snap := s.Snapshot("user-1")
	if len(snap) != 1 || snap[0].Role != model.RoleSystem {
		t.Errorf("reset did not restore the system-prompt-only state: %d messages", len(snap))
	}
}

func TestReplay_RebuildsHistory(t *testing.T) {
	s := session.New(prompt, 0, 0)

	s.Replay("user-1", []model.Message{
		model.UserMessage("old question"),
		model.AssistantMessage("old answer"),
	})

	snap := s.Snapshot("user-1")
	if len(snap) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(snap))
	}
	if snap[0].Role != model.RoleSystem {
		t.Error("replay lost the system seed")
	}
	if snap[1].Text() != "old question" || snap[2].Text() != "old answer" {
		t.Error("replay did not preserve turn order")
	}
}

func TestLock_SerializesTurns(t *testing.T) {
	s := session.New(prompt, 0, 0)
	s.Snapshot("user-1")

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		inTurn  int
		maxSeen int
	)

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := s.Lock("user-1")
			defer unlock()

			mu.Lock()
			inTurn++
			if inTurn > maxSeen {
				maxSeen = inTurn
			}
			mu.Unlock()

			time.Sleep(2 * time.Millisecond)
			s.Commit("user-1", model.UserMessage("q"), model.AssistantMessage("a"))

			mu.Lock()
			inTurn--
			mu.Unlock()
		}()
	}
	wg.Wait()

	if maxSeen != 1 {
		t.Errorf("turn lock admitted %d concurrent turns", maxSeen)
	}

	snap := s.Snapshot("user-1")
	// 1 system + 8 committed pairs
	if len(snap) != 1+8*2 {
		t.Errorf("expected %d messages, got %d", 1+8*2, len(snap))
	}
	if (len(snap)-1)%2 != 0 {
		t.Error("odd number of turn messages; commits are not paired")
	}
}
