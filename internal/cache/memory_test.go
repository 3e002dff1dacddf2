package cache

import (
	"testing"
	"time"
)

func TestMemory_SetGet(t *testing.T) {
	c := NewMemory(time.Minute, time.Minute)

	key := Key("Me gustaría más plantas en la oficina")
	c.Set(key, "I would like more plants in the office", time.Minute)

	got, found := c.Get(key)
	if !found {
		t.Fatal("Expected cache hit")
	}
	if got != "I would like more plants in the office" {
		t.Errorf("Unexpected cached value: %q", got)
	}
}

func TestMemory_Miss(t *testing.T) {
	c := NewMemory(time.Minute, time.Minute)

	if _, found := c.Get(Key("never stored")); found {
		t.Error("Expected cache miss")
	}
}

func TestMemory_Clear(t *testing.T) {
	c := NewMemory(time.Minute, time.Minute)

	key := Key("some text")
	c.Set(key, "value", time.Minute)
	c.Clear()

	if _, found := c.Get(key); found {
		t.Error("Expected miss after Clear")
	}
}

func TestKey_DistinctTexts(t *testing.T) {
	if Key("one text") == Key("another text") {
		t.Error("Expected distinct keys for distinct texts")
	}
	if Key("same") != Key("same") {
		t.Error("Expected stable keys for the same text")
	}
}
