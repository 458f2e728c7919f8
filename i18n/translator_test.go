package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("invalid_type", nil); msg == "invalid_type" || msg == "" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("required", nil); msg == "required field missing" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// unknown codes fall back to the code itself
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("expected fallback to code, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_CustomAndReset(t *testing.T) {
	SetTranslator(staticTranslator("!"))
	if msg := T("value_error", nil); msg != "!" {
		t.Fatalf("custom translator ignored, got %q", msg)
	}
	SetTranslator(nil)
	if msg := T("value_error", nil); msg != "inconsistent value" {
		t.Fatalf("reset failed, got %q", msg)
	}
}

type staticTranslator string

func (s staticTranslator) Message(code string, data map[string]string) string { return string(s) }
