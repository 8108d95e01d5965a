package provider

import (
	"net/http"
	"testing"
)

func TestVerdictFromStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		want   Verdict
	}{
		{http.StatusOK, Confirmed},
		{http.StatusNoContent, Confirmed},
		{http.StatusNotFound, NotConfirmed},
		{http.StatusUnauthorized, NotConfirmed},
		{http.StatusTooManyRequests, NotConfirmed},
		{http.StatusInternalServerError, Unreachable},
		{http.StatusBadGateway, Unreachable},
	}
	for _, tt := range tests {
		if got := VerdictFromStatus(tt.status); got != tt.want {
			t.Errorf("VerdictFromStatus(%d) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestVerdict_String(t *testing.T) {
	t.Parallel()

	if Confirmed.String() != "confirmed" {
		t.Errorf("Confirmed.String() = %q", Confirmed.String())
	}
	if NotConfirmed.String() != "not_confirmed" {
		t.Errorf("NotConfirmed.String() = %q", NotConfirmed.String())
	}
	if Unreachable.String() != "unreachable" {
		t.Errorf("Unreachable.String() = %q", Unreachable.String())
	}
}
