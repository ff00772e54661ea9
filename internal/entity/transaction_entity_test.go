package entity

import "testing"

func TestCanBeRefunded(t *testing.T) {
	tests := []struct {
		status TransactionStatus
		want   bool
	}{
		{TransactionStatusCompleted, true},
		{TransactionStatusPending, false},
		{TransactionStatusFailed, false},
		{TransactionStatusRefunded, false},
		{TransactionStatusDisputed, false},
	}
	for _, tt := range tests {
		trx := Transaction{Status: tt.status}
		if got := trx.CanBeRefunded(); got != tt.want {
			t.Errorf("CanBeRefunded(%s) = %v, want %v", tt.status, got, tt.want)
		}
	}
}
