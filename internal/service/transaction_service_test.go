package service

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestNewTransactionCodeFormat(t *testing.T) {
	codePattern := regexp.MustCompile(`^TRX-\d+-\d+$`)

	before := time.Now().UnixMilli()
	code := newTransactionCode()
	after := time.Now().UnixMilli()

	if !codePattern.MatchString(code) {
		t.Fatalf("code %q does not match TRX-<millis>-<rand>", code)
	}

	parts := strings.Split(code, "-")
	millis, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		t.Fatalf("timestamp segment %q is not an integer: %v", parts[1], err)
	}
	if millis < before || millis > after {
		t.Errorf("timestamp segment %d outside [%d, %d]", millis, before, after)
	}

	suffix, err := strconv.Atoi(parts[2])
	if err != nil {
		t.Fatalf("random segment %q is not an integer: %v", parts[2], err)
	}
	if suffix < 0 || suffix >= 10000 {
		t.Errorf("random segment %d outside [0, 10000)", suffix)
	}
}
