package entities

import (
	"testing"
	"time"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"(11) 99999-8888", "11999998888"},
		{"+55 11 99999-8888", "5511999998888"},
		{"  11999998888  ", "11999998888"},
		{"abc", ""},
	}
	for _, tc := range cases {
		if got := NormalizePhone(tc.in); got != tc.want {
			t.Fatalf("NormalizePhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPhoneMatches(t *testing.T) {
	if !PhoneMatches("5511999998888", "11999998888") {
		t.Fatalf("expected match without country code")
	}
	if !PhoneMatches("11999998888", "5511999998888") {
		t.Fatalf("expected match with country code on the query side")
	}
	if PhoneMatches("", "11999998888") || PhoneMatches("11999998888", "") {
		t.Fatalf("empty sides must never match")
	}
	if PhoneMatches("11999998888", "11988887777") {
		t.Fatalf("unrelated numbers must not match")
	}
}

func TestEstablishmentSubscriptionActiveAt(t *testing.T) {
	now := time.Now().UTC()

	var e Establishment
	if e.SubscriptionActiveAt(now) {
		t.Fatalf("zero validity must be inactive")
	}

	e.SubscriptionValidUntil = now.Add(time.Hour)
	if !e.SubscriptionActiveAt(now) {
		t.Fatalf("future validity must be active")
	}
	if !e.SubscriptionActiveAt(e.SubscriptionValidUntil) {
		t.Fatalf("boundary instant must still be active")
	}
	if e.SubscriptionActiveAt(e.SubscriptionValidUntil.Add(time.Second)) {
		t.Fatalf("past validity must be inactive")
	}
}

func TestSubscriptionPaymentValidUntil(t *testing.T) {
	paid := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	p := SubscriptionPayment{PaymentDate: paid}
	if got := p.ValidUntil(); !got.Equal(paid.AddDate(0, 0, 31)) {
		t.Fatalf("unexpected validity: %s", got)
	}
}

func TestNewDeliveryPayload(t *testing.T) {
	p := NewDeliveryPayload("11999998888", "Parabéns Maria! Você ganhou")
	if p.RecipientPhone != "11999998888" {
		t.Fatalf("unexpected recipient: %q", p.RecipientPhone)
	}
	if p.WhatsAppLink != "https://wa.me/11999998888?text=Parab%C3%A9ns+Maria%21+Voc%C3%AA+ganhou" {
		t.Fatalf("unexpected link: %q", p.WhatsAppLink)
	}
}
