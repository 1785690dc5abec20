package kafka

import (
	"context"
	"testing"
	"time"
)

func TestMessageBuilder_Defaults(t *testing.T) {
	msg := NewMessage().
		WithKey("G001").
		WithValue(map[string]string{"message": "confirmed"}).
		WithEventType("booking.notification").
		WithSource("reservations").
		Build()

	if msg.Key != "G001" {
		t.Errorf("expected key G001, got %s", msg.Key)
	}
	if msg.Headers[HeaderEventID] == "" {
		t.Error("expected generated event id")
	}
	if msg.Headers[HeaderEventType] != "booking.notification" {
		t.Errorf("unexpected event type: %s", msg.Headers[HeaderEventType])
	}
	if msg.Headers[HeaderSource] != "reservations" {
		t.Errorf("unexpected source: %s", msg.Headers[HeaderSource])
	}
	if _, err := time.Parse(time.RFC3339, msg.Headers[HeaderTimestamp]); err != nil {
		t.Errorf("timestamp header is not RFC3339: %v", err)
	}

	var payload map[string]string
	if err := msg.DecodeValue(&payload); err != nil {
		t.Fatalf("DecodeValue failed: %v", err)
	}
	if payload["message"] != "confirmed" {
		t.Errorf("unexpected payload: %v", payload)
	}
}

func TestNewProducer_Validation(t *testing.T) {
	if _, err := NewProducer(nil, "topic"); err == nil {
		t.Error("expected error for missing brokers")
	}
	if _, err := NewProducer([]string{"localhost:9092"}, ""); err == nil {
		t.Error("expected error for empty topic")
	}
	p, err := NewProducer([]string{"localhost:9092"}, "booking-notifications")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Topic() != "booking-notifications" {
		t.Errorf("unexpected topic: %s", p.Topic())
	}
	if err := p.Close(); err != nil {
		t.Errorf("close failed: %v", err)
	}
	if err := p.Publish(context.Background(), Message{}); err == nil {
		t.Error("publish after close should fail")
	}
}
