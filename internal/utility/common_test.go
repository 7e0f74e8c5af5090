package utility

import (
	"testing"
	"time"
)

func TestUnixMilli(t *testing.T) {
	at := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)
	if got := UnixMilli(at); got != at.UnixMilli() {
		t.Errorf("UnixMilli sai, got: %d, muốn: %d", got, at.UnixMilli())
	}
}

func TestCurrentTimeInMilli(t *testing.T) {
	before := time.Now().UnixMilli()
	got := CurrentTimeInMilli()
	after := time.Now().UnixMilli()
	if got < before || got > after {
		t.Errorf("CurrentTimeInMilli ngoài khoảng [%d, %d], got: %d", before, after, got)
	}
}
