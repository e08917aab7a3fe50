package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenPath(filepath.Join(t.TempDir(), "scriptforge.db"))
	if err != nil {
		t.Fatalf("OpenPath returned error: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStoreRunLifecycle(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.CreateRun(ctx, "run-1", "都市重逢", 2); err != nil {
		t.Fatalf("CreateRun returned error: %v", err)
	}
	if err := s.SaveEpisode(ctx, "run-1", 1, "重逢", "第1集\n..."); err != nil {
		t.Fatalf("SaveEpisode returned error: %v", err)
	}
	if err := s.SaveEpisode(ctx, "run-1", 2, "对峙", "第2集\n..."); err != nil {
		t.Fatalf("SaveEpisode returned error: %v", err)
	}
	if err := s.FinishRun(ctx, "run-1", StatusCompleted, false); err != nil {
		t.Fatalf("FinishRun returned error: %v", err)
	}

	run, err := s.GetRun(ctx, "run-1")
	if err != nil {
		t.Fatalf("GetRun returned error: %v", err)
	}
	if run.Status != StatusCompleted {
		t.Fatalf("expected completed status, got %q", run.Status)
	}
	if run.EpisodesPlanned != 2 || run.EpisodesDelivered != 2 {
		t.Fatalf("unexpected counters: %+v", run)
	}
	if run.RequiresHumanReview {
		t.Fatal("review flag should be unset")
	}
	if run.StartedAt.IsZero() || run.FinishedAt.IsZero() {
		t.Fatalf("timestamps not recorded: %+v", run)
	}

	episodes, err := s.EpisodesForRun(ctx, "run-1")
	if err != nil {
		t.Fatalf("EpisodesForRun returned error: %v", err)
	}
	if len(episodes) != 2 {
		t.Fatalf("expected 2 episodes, got %d", len(episodes))
	}
	if episodes[0].EpisodeNumber != 1 || episodes[1].EpisodeNumber != 2 {
		t.Fatalf("episodes out of order: %+v", episodes)
	}
	if episodes[0].Script == "" || episodes[0].DeliveredAt.IsZero() {
		t.Fatalf("episode record incomplete: %+v", episodes[0])
	}
}

func TestStoreEscalatedRun(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.CreateRun(ctx, "run-2", "", 3); err != nil {
		t.Fatalf("CreateRun returned error: %v", err)
	}
	if err := s.FinishRun(ctx, "run-2", StatusEscalated, true); err != nil {
		t.Fatalf("FinishRun returned error: %v", err)
	}
	run, err := s.GetRun(ctx, "run-2")
	if err != nil {
		t.Fatalf("GetRun returned error: %v", err)
	}
	if run.Status != StatusEscalated || !run.RequiresHumanReview {
		t.Fatalf("escalation not recorded: %+v", run)
	}
}

func TestStoreGetRunNotFound(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.GetRun(context.Background(), "missing"); !errors.Is(err, ErrRunNotFound) {
		t.Fatalf("expected ErrRunNotFound, got %v", err)
	}
}

func TestStoreListRunsOrder(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	for _, id := range []string{"a", "b", "c"} {
		if err := s.CreateRun(ctx, id, "", 1); err != nil {
			t.Fatalf("CreateRun returned error: %v", err)
		}
	}
	runs, err := s.ListRuns(ctx, 2)
	if err != nil {
		t.Fatalf("ListRuns returned error: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("limit not honoured, got %d runs", len(runs))
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scriptforge.db")
	first, err := OpenPath(path)
	if err != nil {
		t.Fatalf("OpenPath returned error: %v", err)
	}
	if err := first.CreateRun(context.Background(), "run-1", "t", 1); err != nil {
		t.Fatalf("CreateRun returned error: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	second, err := OpenPath(path)
	if err != nil {
		t.Fatalf("reopen returned error: %v", err)
	}
	defer second.Close()
	if _, err := second.GetRun(context.Background(), "run-1"); err != nil {
		t.Fatalf("run lost across reopen: %v", err)
	}
}
