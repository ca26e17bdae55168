package content

import "testing"

func TestExtractJSONFencedBlock(t *testing.T) {
	raw := "Here is the lesson:\n```json\n{\"title\": \"ok\"}\n```\nEnjoy!"
	got, err := ExtractJSON(raw)
	if err != nil {
		t.Fatalf("ExtractJSON() error = %v", err)
	}
	if got != `{"title": "ok"}` {
		t.Errorf("ExtractJSON() = %q", got)
	}
}

func TestExtractJSONFencedWithoutLanguage(t *testing.T) {
	raw := "```\n{\"a\": 1}\n```"
	got, err := ExtractJSON(raw)
	if err != nil {
		t.Fatalf("ExtractJSON() error = %v", err)
	}
	if got != `{"a": 1}` {
		t.Errorf("ExtractJSON() = %q", got)
	}
}

func TestExtractJSONBareObject(t *testing.T) {
	raw := "Sure! {\"a\": {\"b\": 2}} hope this helps"
	got, err := ExtractJSON(raw)
	if err != nil {
		t.Fatalf("ExtractJSON() error = %v", err)
	}
	if got != `{"a": {"b": 2}}` {
		t.Errorf("ExtractJSON() = %q", got)
	}
}

func TestExtractJSONPlainObject(t *testing.T) {
	got, err := ExtractJSON(`{"x": 1}`)
	if err != nil {
		t.Fatalf("ExtractJSON() error = %v", err)
	}
	if got != `{"x": 1}` {
		t.Errorf("ExtractJSON() = %q", got)
	}
}

func TestExtractJSONEmpty(t *testing.T) {
	if _, err := ExtractJSON("   "); err == nil {
		t.Error("ExtractJSON(blank) should fail")
	}
}

func TestExtractJSONNoObject(t *testing.T) {
	if _, err := ExtractJSON("sorry, I cannot do that"); err == nil {
		t.Error("ExtractJSON(prose) should fail")
	}
}
