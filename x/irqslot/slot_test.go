package irqslot

import (
	"sync"
	"testing"
	"time"
)

func TestTakeClears(t *testing.T) {
	s := New()
	if _, ok := s.Take(); ok {
		t.Fatal("empty slot reported a payload")
	}
	p := Payload{0x05, 0x00, 0x80, 0x78, 0x0f, 0xff}
	s.Put(&p)
	if !s.Pending() {
		t.Fatal("Pending() = false after Put")
	}
	got, ok := s.Take()
	if !ok || got != p {
		t.Fatalf("Take() = %v,%v want %v,true", got, ok, p)
	}
	if _, ok := s.Take(); ok {
		t.Fatal("payload resurfaced after Take")
	}
}

func TestZeroPayloadIsStillValid(t *testing.T) {
	s := New()
	var p Payload
	s.Put(&p)
	if _, ok := s.Take(); !ok {
		t.Fatal("zero payload must be delivered as a flag")
	}
}

func TestOverrunReplacesAndCounts(t *testing.T) {
	s := New()
	a := Payload{1}
	b := Payload{2}
	s.Put(&a)
	s.Put(&b)
	if s.Overruns() != 1 {
		t.Fatalf("Overruns() = %d, want 1", s.Overruns())
	}
	got, _ := s.Take()
	if got != b {
		t.Fatalf("latest payload lost: got %v", got)
	}
	s.Put(&a)
	s.Clear()
	if s.Pending() {
		t.Fatal("Clear did not drop payload")
	}
}

func TestNotifyNeverBlocks(t *testing.T) {
	s := New()
	s.Notify()
	s.Notify()
	select {
	case <-s.Ready():
	case <-time.After(50 * time.Millisecond):
		t.Fatal("Ready did not fire")
	}
	select {
	case <-s.Ready():
		t.Fatal("notifications should coalesce")
	default:
	}
}

func TestConcurrentWriterNeverTears(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 2000; i++ {
			b := byte(i)
			p := Payload{b, b, b, b, b, b}
			s.Put(&p)
		}
	}()
	for i := 0; i < 2000; i++ {
		if p, ok := s.Take(); ok {
			for _, v := range p[1:] {
				if v != p[0] {
					t.Fatalf("torn payload %v", p)
				}
			}
		}
	}
	wg.Wait()
}
