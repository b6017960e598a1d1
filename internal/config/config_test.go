package config

import (
	"testing"
	"time"
)

func TestGetFallback(t *testing.T) {
	t.Setenv("SERVICE_AREA_TEST_KEY", "")
	if got := Get("SERVICE_AREA_TEST_KEY", "fallback"); got != "fallback" {
		t.Fatalf("Get = %q, want fallback", got)
	}

	t.Setenv("SERVICE_AREA_TEST_KEY", "  value ")
	if got := Get("SERVICE_AREA_TEST_KEY", "fallback"); got != "value" {
		t.Fatalf("Get = %q, want value", got)
	}
}

func TestGetFloat(t *testing.T) {
	t.Setenv("SERVICE_AREA_RADIUS", "")
	f, err := GetFloat("SERVICE_AREA_RADIUS", 25)
	if err != nil || f != 25 {
		t.Fatalf("GetFloat = (%v, %v), want (25, nil)", f, err)
	}

	t.Setenv("SERVICE_AREA_RADIUS", "42.5")
	f, err = GetFloat("SERVICE_AREA_RADIUS", 25)
	if err != nil || f != 42.5 {
		t.Fatalf("GetFloat = (%v, %v), want (42.5, nil)", f, err)
	}

	t.Setenv("SERVICE_AREA_RADIUS", "far")
	if _, err := GetFloat("SERVICE_AREA_RADIUS", 25); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestGetDuration(t *testing.T) {
	t.Setenv("SERVICE_AREA_TTL", "90m")
	d, err := GetDuration("SERVICE_AREA_TTL", time.Hour)
	if err != nil || d != 90*time.Minute {
		t.Fatalf("GetDuration = (%v, %v), want (90m, nil)", d, err)
	}

	t.Setenv("SERVICE_AREA_TTL", "soon")
	if _, err := GetDuration("SERVICE_AREA_TTL", time.Hour); err == nil {
		t.Fatal("expected parse error")
	}
}
