package storage

import (
	"fmt"
	"testing"

	"github.com/evmkit/slotstore/backend"
	"github.com/evmkit/slotstore/common"
	"github.com/golang/mock/gomock"
)

func TestCache_ReadsAreServedFromTheWriteBuffer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := backend.NewMockWordStore(ctrl)
	cache := New(store)

	slot := common.SlotOf(5)
	want := common.WordOf(12)
	cache.SetWord(slot, want)
	if got := cache.GetWord(slot); got != want {
		t.Errorf("read back %v, want %v", got, want)
	}
}

func TestCache_UnknownWordsAreLoadedOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	slot := common.SlotOf(5)
	want := common.WordOf(12)

	store := backend.NewMockWordStore(ctrl)
	store.EXPECT().Load(slot).Return(want, nil).Times(1)

	cache := New(store)
	for i := 0; i < 3; i++ {
		if got := cache.GetWord(slot); got != want {
			t.Errorf("read %v, want %v", got, want)
		}
	}
}

func TestCache_MissingWordsDefaultToZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	slot := common.SlotOf(5)
	store := backend.NewMockWordStore(ctrl)
	store.EXPECT().Load(slot).Return(common.Word{}, nil)

	cache := New(store)
	if got := cache.GetWord(slot); got != (common.Word{}) {
		t.Errorf("read %v, want the zero word", got)
	}
}

func TestCache_LoadFailuresAreFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	injectedErr := fmt.Errorf("injected error")
	store := backend.NewMockWordStore(ctrl)
	store.EXPECT().Load(gomock.Any()).Return(common.Word{}, injectedErr)

	cache := New(store)
	defer func() {
		if recover() == nil {
			t.Errorf("a failing load did not abort the invocation")
		}
	}()
	cache.GetWord(common.SlotOf(5))
}

func TestCache_FlushWritesModifiedWords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	slot := common.SlotOf(5)
	value := common.WordOf(12)

	store := backend.NewMockWordStore(ctrl)
	store.EXPECT().Store(slot, value).Return(nil)

	cache := New(store)
	cache.SetWord(slot, value)
	if err := cache.Flush(); err != nil {
		t.Fatalf("flush failed: %v", err)
	}
}

func TestCache_FlushingTwicePerformsNoAdditionalStores(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	slot := common.SlotOf(5)
	value := common.WordOf(12)

	store := backend.NewMockWordStore(ctrl)
	store.EXPECT().Store(slot, value).Return(nil).Times(1)

	cache := New(store)
	cache.SetWord(slot, value)
	if err := cache.Flush(); err != nil {
		t.Fatalf("flush failed: %v", err)
	}
	if err := cache.Flush(); err != nil {
		t.Fatalf("second flush failed: %v", err)
	}
}

func TestCache_FlushSkipsWordsThatWereOnlyRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	slot := common.SlotOf(5)
	store := backend.NewMockWordStore(ctrl)
	store.EXPECT().Load(slot).Return(common.WordOf(12), nil)

	cache := New(store)
	cache.GetWord(slot)
	if err := cache.Flush(); err != nil {
		t.Fatalf("flush failed: %v", err)
	}
}

func TestCache_SetWordIsDirtyEvenIfTheValueDidNotChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	slot := common.SlotOf(5)
	value := common.WordOf(12)

	store := backend.NewMockWordStore(ctrl)
	store.EXPECT().Store(slot, value).Return(nil)

	cache := New(store)
	cache.SetWord(slot, value)
	if err := cache.Flush(); err != nil {
		t.Fatalf("flush failed: %v", err)
	}

	// Writing the same value again must not consult the known state that
	// the flush established; the word is dirty again.
	store.EXPECT().Store(slot, value).Return(nil)
	cache.SetWord(slot, value)
	if err := cache.Flush(); err != nil {
		t.Fatalf("flush failed: %v", err)
	}
}

func TestCache_FlushWritesSlotsInAscendingOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := backend.NewMockWordStore(ctrl)
	gomock.InOrder(
		store.EXPECT().Store(common.SlotOf(1), common.WordOf(1)).Return(nil),
		store.EXPECT().Store(common.SlotOf(2), common.WordOf(2)).Return(nil),
		store.EXPECT().Store(common.SlotOf(3), common.WordOf(3)).Return(nil),
	)

	cache := New(store)
	cache.SetWord(common.SlotOf(2), common.WordOf(2))
	cache.SetWord(common.SlotOf(3), common.WordOf(3))
	cache.SetWord(common.SlotOf(1), common.WordOf(1))
	if err := cache.Flush(); err != nil {
		t.Fatalf("flush failed: %v", err)
	}
}

func TestCache_FlushForwardsStoreFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	injectedErr := fmt.Errorf("injected error")
	store := backend.NewMockWordStore(ctrl)
	store.EXPECT().Store(gomock.Any(), gomock.Any()).Return(injectedErr)

	cache := New(store)
	cache.SetWord(common.SlotOf(5), common.WordOf(12))
	if err := cache.Flush(); err == nil {
		t.Errorf("flush did not report the store failure")
	}
}

func TestCache_ClearEvictsCachedWords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	slot := common.SlotOf(5)
	value := common.WordOf(12)

	store := backend.NewMockWordStore(ctrl)
	store.EXPECT().Store(slot, value).Return(nil)
	// After the clear, the word needs to be fetched again.
	store.EXPECT().Load(slot).Return(value, nil)

	cache := New(store)
	cache.SetWord(slot, value)
	if err := cache.Clear(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if got := cache.GetWord(slot); got != value {
		t.Errorf("read %v after clear, want %v", got, value)
	}
}

func TestCache_ClearWordZeroesTheSlot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	slot := common.SlotOf(5)
	store := backend.NewMockWordStore(ctrl)
	store.EXPECT().Store(slot, common.Word{}).Return(nil)

	cache := New(store)
	cache.SetWord(slot, common.WordOf(12))
	cache.ClearWord(slot)
	if got := cache.GetWord(slot); got != (common.Word{}) {
		t.Errorf("cleared word reads as %v, want the zero word", got)
	}
	if err := cache.Flush(); err != nil {
		t.Fatalf("flush failed: %v", err)
	}
}

func TestCache_SetBytesPreservesTheRestOfTheWord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	slot := common.SlotOf(5)
	var initial common.Word
	for i := range initial {
		initial[i] = byte(i)
	}
	store := backend.NewMockWordStore(ctrl)
	store.EXPECT().Load(slot).Return(initial, nil)

	cache := New(store)
	cache.SetBytes(slot, 10, []byte{0xaa, 0xbb})

	want := initial
	want[10] = 0xaa
	want[11] = 0xbb
	if got := cache.GetWord(slot); got != want {
		t.Errorf("word after partial write is %v, want %v", got, want)
	}
}

func TestCache_WholeWordWritesSkipTheLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	slot := common.SlotOf(5)
	data := make([]byte, common.WordSize)
	for i := range data {
		data[i] = byte(i + 1)
	}

	// No Load expectation: a full-word write must not read the old value.
	store := backend.NewMockWordStore(ctrl)
	cache := New(store)
	cache.SetBytes(slot, 0, data)

	var want common.Word
	copy(want[:], data)
	if got := cache.GetWord(slot); got != want {
		t.Errorf("word after full write is %v, want %v", got, want)
	}
}

func TestCache_GetBytesReturnsTheRequestedRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	slot := common.SlotOf(5)
	var word common.Word
	for i := range word {
		word[i] = byte(i)
	}
	store := backend.NewMockWordStore(ctrl)
	store.EXPECT().Load(slot).Return(word, nil)

	cache := New(store)
	got := cache.GetBytes(slot, 4, 3)
	want := []byte{4, 5, 6}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("byte %d is 0x%02x, want 0x%02x", i, got[i], want[i])
		}
	}
}

func TestCache_SetAndGetByte(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	slot := common.SlotOf(5)
	store := backend.NewMockWordStore(ctrl)
	store.EXPECT().Load(slot).Return(common.Word{}, nil)

	cache := New(store)
	cache.SetByte(slot, 31, 0x7f)
	if got := cache.GetByte(slot, 31); got != 0x7f {
		t.Errorf("read back byte 0x%02x, want 0x7f", got)
	}
}

func TestCache_OutOfRangeAccessesPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := backend.NewMockWordStore(ctrl)
	cache := New(store)

	tests := map[string]func(){
		"negative offset": func() { cache.GetBytes(common.SlotOf(0), -1, 2) },
		"negative length": func() { cache.GetBytes(common.SlotOf(0), 0, -1) },
		"past the word":   func() { cache.SetBytes(common.SlotOf(0), 30, []byte{1, 2, 3}) },
		"byte past word":  func() { cache.GetByte(common.SlotOf(0), 32) },
	}
	for name, access := range tests {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("out-of-range access did not panic")
				}
			}()
			access()
		})
	}
}
