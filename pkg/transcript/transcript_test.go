package transcript

import (
	"testing"

	"github.com/promptline/promptline/pkg/provider"
)

func TestRecordAndExchanges(t *testing.T) {
	log := New()

	log.Record("first prompt", "first answer", provider.Usage{InputTokens: 10, OutputTokens: 5})
	log.Record("second prompt", "second answer", provider.Usage{InputTokens: 3, OutputTokens: 7})

	if log.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", log.Len())
	}

	exchanges := log.Exchanges()
	if exchanges[0].Prompt != "first prompt" || exchanges[0].Answer != "first answer" {
		t.Errorf("exchanges[0] = %+v, want first prompt/answer", exchanges[0])
	}
	if exchanges[1].Prompt != "second prompt" {
		t.Errorf("exchanges[1].Prompt = %q, want %q", exchanges[1].Prompt, "second prompt")
	}
	if exchanges[0].Timestamp.IsZero() {
		t.Error("exchanges[0].Timestamp is zero, want a recorded time")
	}

	u := log.TotalUsage()
	if u.InputTokens != 13 || u.OutputTokens != 12 {
		t.Errorf("TotalUsage() = %+v, want 13 in / 12 out", u)
	}
}

func TestExchangesReturnsCopy(t *testing.T) {
	log := New()
	log.Record("p", "a", provider.Usage{})

	exchanges := log.Exchanges()
	exchanges[0].Prompt = "mutated"

	if got := log.Exchanges()[0].Prompt; got != "p" {
		t.Errorf("internal exchange mutated to %q, want %q", got, "p")
	}
}

func TestEmptyLog(t *testing.T) {
	log := New()
	if log.Len() != 0 {
		t.Errorf("Len() = %d, want 0", log.Len())
	}
	if u := log.TotalUsage(); u.InputTokens != 0 || u.OutputTokens != 0 {
		t.Errorf("TotalUsage() = %+v, want zero", u)
	}
	if log.Started().IsZero() {
		t.Error("Started() is zero, want session start time")
	}
}
