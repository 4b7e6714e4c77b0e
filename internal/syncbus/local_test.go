package syncbus

import (
	"testing"
)

func TestHub_PublishReachesSiblingsOnly(t *testing.T) {
	hub := NewHub()
	tabA := hub.Endpoint()
	tabB := hub.Endpoint()
	tabC := hub.Endpoint()

	var gotA, gotB, gotC int
	if _, err := tabA.Subscribe(func() { gotA++ }); err != nil {
		t.Fatalf("Expected Subscribe to succeed, but got '%v'", err)
	}
	if _, err := tabB.Subscribe(func() { gotB++ }); err != nil {
		t.Fatalf("Expected Subscribe to succeed, but got '%v'", err)
	}
	if _, err := tabC.Subscribe(func() { gotC++ }); err != nil {
		t.Fatalf("Expected Subscribe to succeed, but got '%v'", err)
	}

	if err := tabA.Publish(); err != nil {
		t.Fatalf("Expected Publish to succeed, but got '%v'", err)
	}

	// The publisher never hears its own signal
	if gotA != 0 {
		t.Errorf("Expected the publishing endpoint to receive nothing, but got %d", gotA)
	}
	if gotB != 1 || gotC != 1 {
		t.Errorf("Expected both siblings to receive 1 signal, but got %d and %d", gotB, gotC)
	}
}

func TestHub_Unsubscribe(t *testing.T) {
	hub := NewHub()
	tabA := hub.Endpoint()
	tabB := hub.Endpoint()

	var got int
	sub, err := tabB.Subscribe(func() { got++ })
	if err != nil {
		t.Fatalf("Expected Subscribe to succeed, but got '%v'", err)
	}

	if err := tabA.Publish(); err != nil {
		t.Fatalf("Expected Publish to succeed, but got '%v'", err)
	}
	if err := sub.Unsubscribe(); err != nil {
		t.Fatalf("Expected Unsubscribe to succeed, but got '%v'", err)
	}
	if err := tabA.Publish(); err != nil {
		t.Fatalf("Expected Publish to succeed, but got '%v'", err)
	}

	if got != 1 {
		t.Errorf("Expected 1 signal before unsubscribing, but got %d", got)
	}
}

func TestLocalBus_CloseDetachesSubscribers(t *testing.T) {
	hub := NewHub()
	tabA := hub.Endpoint()
	tabB := hub.Endpoint()

	var got int
	if _, err := tabB.Subscribe(func() { got++ }); err != nil {
		t.Fatalf("Expected Subscribe to succeed, but got '%v'", err)
	}
	if err := tabB.Close(); err != nil {
		t.Fatalf("Expected Close to succeed, but got '%v'", err)
	}

	if err := tabA.Publish(); err != nil {
		t.Fatalf("Expected Publish to succeed, but got '%v'", err)
	}
	if got != 0 {
		t.Errorf("Expected no signal after close, but got %d", got)
	}
}

func TestNewLocalBus_PrivateHub(t *testing.T) {
	solo := NewLocalBus()

	var got int
	if _, err := solo.Subscribe(func() { got++ }); err != nil {
		t.Fatalf("Expected Subscribe to succeed, but got '%v'", err)
	}
	if err := solo.Publish(); err != nil {
		t.Fatalf("Expected Publish to succeed, but got '%v'", err)
	}

	if got != 0 {
		t.Errorf("Expected a solo endpoint to hear nothing, but got %d", got)
	}
}
