package intentstats

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"compass/internal/ai"
)

func setupTestService(t *testing.T) (*Service, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewService(NewStore(rdb)), mr
}

func TestRecordCountsByLabel(t *testing.T) {
	svc, mr := setupTestService(t)
	ctx := context.Background()

	outcomes := []struct {
		c   ai.Classification
		err error
	}{
		{ai.Classification{Intent: ai.IntentPlacesSearch, Matched: true}, nil},
		{ai.Classification{Intent: ai.IntentPlacesSearch, Matched: true}, nil},
		{ai.Classification{Intent: ai.IntentGeneral, Matched: true}, nil},
		{ai.Classification{Intent: ai.IntentGeneral, Matched: false}, nil},
		{ai.Classification{}, errors.New("backend down")},
	}
	for _, o := range outcomes {
		if err := svc.Record(ctx, o.c, o.err); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	counts, err := svc.Counts(ctx)
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	want := map[string]int64{
		"places_search": 2,
		"general":       1,
		LabelUnmatched:  1,
		LabelFailed:     1,
	}
	for label, n := range want {
		if counts[label] != n {
			t.Errorf("%s: expected %d, got %d", label, n, counts[label])
		}
	}
	if got := mr.HGet(countsKey, "places_search"); got != "2" {
		t.Errorf("expected raw hash value 2, got %q", got)
	}
}

func TestNilServiceIsNoop(t *testing.T) {
	var svc *Service
	if err := svc.Record(context.Background(), ai.Classification{Intent: ai.IntentGeocode, Matched: true}, nil); err != nil {
		t.Fatalf("nil service record: %v", err)
	}
	if _, err := svc.Counts(context.Background()); !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
}

func TestRecordBackendDown(t *testing.T) {
	svc, mr := setupTestService(t)
	mr.Close()

	err := svc.Record(context.Background(), ai.Classification{Intent: ai.IntentDirections, Matched: true}, nil)
	if err == nil {
		t.Fatal("expected error with redis down")
	}
}
