package mongo

import (
	"testing"
	"time"
)

func TestConfigTimeoutDefaulting(t *testing.T) {
	if got := (Config{}).timeout(); got != connectTimeout {
		t.Fatalf("zero timeout: expected default %v, got %v", connectTimeout, got)
	}
	if got := (Config{Timeout: -time.Second}).timeout(); got != connectTimeout {
		t.Fatalf("negative timeout: expected default %v, got %v", connectTimeout, got)
	}
	if got := (Config{Timeout: 2 * time.Second}).timeout(); got != 2*time.Second {
		t.Fatalf("explicit timeout not honored: got %v", got)
	}
}
