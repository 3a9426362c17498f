package handler

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name   string
		xff    string
		realIP string
		remote string
		want   string
	}{
		{"forwarded chain", "203.0.113.5, 10.0.0.2", "", "10.0.0.1:5000", "203.0.113.5"},
		{"single forwarded", "198.51.100.1", "", "10.0.0.1:5000", "198.51.100.1"},
		{"real ip", "", "198.51.100.2", "10.0.0.1:5000", "198.51.100.2"},
		{"remote with port", "", "", "192.0.2.10:43120", "192.0.2.10"},
		{"ipv6 remote", "", "", "[2001:db8::1]:443", "2001:db8::1"},
		{"remote without port", "", "", "192.0.2.11", "192.0.2.11"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/survey/submit", nil)
			r.RemoteAddr = tt.remote
			if tt.xff != "" {
				r.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.realIP != "" {
				r.Header.Set("X-Real-IP", tt.realIP)
			}
			if got := clientIP(r); got != tt.want {
				t.Fatalf("clientIP = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeAnswers(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{`{"a":1}`, true},
		{`  {}`, true},
		{`{"nested":{"x":[1,2]}}`, true},
		{``, false},
		{`null`, false},
		{`[]`, false},
		{`"text"`, false},
		{`true`, false},
	}
	for _, tt := range tests {
		_, ok := decodeAnswers(json.RawMessage(tt.raw))
		if ok != tt.want {
			t.Errorf("decodeAnswers(%q) ok = %v, want %v", tt.raw, ok, tt.want)
		}
	}
}
