package ldb

import (
	"errors"
	"testing"

	"github.com/evmkit/slotstore/common"
)

func TestStore_NeverWrittenSlotsReadAsZero(t *testing.T) {
	store, err := OpenStore(t.TempDir(), WordStoreKey)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	value, err := store.Load(common.SlotOf(12))
	if err != nil {
		t.Fatalf("failed to load slot: %v", err)
	}
	if value != (common.Word{}) {
		t.Errorf("never-written slot holds %v, want the zero word", value)
	}
}

func TestStore_StoredWordsCanBeLoaded(t *testing.T) {
	store, err := OpenStore(t.TempDir(), WordStoreKey)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	slot := common.SlotOf(7)
	want := common.WordOf(123)
	if err := store.Store(slot, want); err != nil {
		t.Fatalf("failed to store word: %v", err)
	}
	got, err := store.Load(slot)
	if err != nil {
		t.Fatalf("failed to load word: %v", err)
	}
	if got != want {
		t.Errorf("loaded %v, want %v", got, want)
	}
}

func TestStore_WordsSurviveReopening(t *testing.T) {
	dir := t.TempDir()
	slot := common.SlotOf(7)
	want := common.WordOf(42)

	store, err := OpenStore(dir, WordStoreKey)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	if err := store.Store(slot, want); err != nil {
		t.Fatalf("failed to store word: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("failed to close store: %v", err)
	}

	store, err = OpenStore(dir, WordStoreKey)
	if err != nil {
		t.Fatalf("failed to re-open store: %v", err)
	}
	defer store.Close()
	got, err := store.Load(slot)
	if err != nil {
		t.Fatalf("failed to load word: %v", err)
	}
	if got != want {
		t.Errorf("loaded %v after reopening, want %v", got, want)
	}
}

func TestStore_VisitEnumeratesSlotsInOrder(t *testing.T) {
	store, err := OpenStore(t.TempDir(), WordStoreKey)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	values := map[common.Slot]common.Word{}
	for _, i := range []uint64{5, 1, 3} {
		values[common.SlotOf(i)] = common.WordOf(i * 10)
		if err := store.Store(common.SlotOf(i), common.WordOf(i*10)); err != nil {
			t.Fatalf("failed to store word: %v", err)
		}
	}

	var slots []common.Slot
	err = store.Visit(func(slot common.Slot, value common.Word) bool {
		slots = append(slots, slot)
		if want := values[slot]; value != want {
			t.Errorf("slot %v holds %v, want %v", slot, value, want)
		}
		return true
	})
	if err != nil {
		t.Fatalf("failed to visit slots: %v", err)
	}
	want := []common.Slot{common.SlotOf(1), common.SlotOf(3), common.SlotOf(5)}
	if len(slots) != len(want) {
		t.Fatalf("visited %d slots, want %d", len(slots), len(want))
	}
	for i, slot := range slots {
		if slot != want[i] {
			t.Errorf("slot %d is %v, want %v", i, slot, want[i])
		}
	}
}

func TestStore_VisitCanStopEarly(t *testing.T) {
	store, err := OpenStore(t.TempDir(), WordStoreKey)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	for i := uint64(0); i < 5; i++ {
		if err := store.Store(common.SlotOf(i), common.WordOf(1)); err != nil {
			t.Fatalf("failed to store word: %v", err)
		}
	}
	count := 0
	err = store.Visit(func(common.Slot, common.Word) bool {
		count++
		return count < 2
	})
	if err != nil {
		t.Fatalf("failed to visit slots: %v", err)
	}
	if count != 2 {
		t.Errorf("visited %d slots, want 2", count)
	}
}

func TestStore_AccessAfterCloseFails(t *testing.T) {
	store, err := OpenStore(t.TempDir(), WordStoreKey)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("failed to close store: %v", err)
	}
	if _, err := store.Load(common.SlotOf(1)); !errors.Is(err, errClosed) {
		t.Errorf("load after close returned %v, want %v", err, errClosed)
	}
	if err := store.Store(common.SlotOf(1), common.WordOf(1)); !errors.Is(err, errClosed) {
		t.Errorf("store after close returned %v, want %v", err, errClosed)
	}
	if err := store.Visit(func(common.Slot, common.Word) bool { return true }); !errors.Is(err, errClosed) {
		t.Errorf("visit after close returned %v, want %v", err, errClosed)
	}
	if err := store.Close(); err != nil {
		t.Errorf("second close failed: %v", err)
	}
}

func TestToDBKey_PrependsTableSpace(t *testing.T) {
	slot := common.SlotOf(1)
	dbKey := ToDBKey(WordStoreKey, slot)
	if dbKey[0] != byte(WordStoreKey) {
		t.Errorf("database key does not start with the tablespace byte")
	}
	for i := 0; i < common.SlotSize; i++ {
		if dbKey[1+i] != slot[i] {
			t.Errorf("byte %d of the database key does not match the slot", 1+i)
		}
	}
}
