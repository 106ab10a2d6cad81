package domain

import (
	"encoding/json"
	"testing"
)

func TestItemRoundTrip(t *testing.T) {
	items := []Item{
		{ID: "MyId", Description: "desc4", Price: 123.99},
		{Description: "no id yet", Price: 9.01},
		{ID: "neg", Description: "", Price: -1.5},
		{},
	}

	for _, want := range items {
		raw, err := json.Marshal(want)
		if err != nil {
			t.Fatalf("marshal %+v: %v", want, err)
		}
		var got Item
		if err := json.Unmarshal(raw, &got); err != nil {
			t.Fatalf("unmarshal %s: %v", raw, err)
		}
		if got != want {
			t.Fatalf("round trip mismatch: want %+v, got %+v", want, got)
		}
	}
}

func TestNewItemEncodesNullID(t *testing.T) {
	raw, err := json.Marshal(NewItem("descToSet", 9.01))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"id":null,"description":"descToSet","price":9.01}`
	if string(raw) != want {
		t.Fatalf("body = %s, want %s", raw, want)
	}
}

func TestItemDecodeMissingID(t *testing.T) {
	var got Item
	if err := json.Unmarshal([]byte(`{"description":"x","price":1}`), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got != (Item{Description: "x", Price: 1}) {
		t.Fatalf("unexpected item: %+v", got)
	}
}
