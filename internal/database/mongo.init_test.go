package database

import "testing"

func TestParseIndexTag(t *testing.T) {
	entries := parseIndexTag("unique")
	if len(entries) != 1 {
		t.Fatalf("tag đơn phải cho 1 entry, got: %d", len(entries))
	}
	if _, ok := entries[0]["unique"]; !ok {
		t.Errorf("entry phải chứa key unique, got: %v", entries[0])
	}

	entries = parseIndexTag("single,order:-1;unique")
	if len(entries) != 2 {
		t.Fatalf("tag ghép phải cho 2 entry, got: %d", len(entries))
	}
	if entries[0]["order"] != "-1" {
		t.Errorf("order phải là -1, got: %v", entries[0]["order"])
	}
}

func TestParseOrder(t *testing.T) {
	if got := parseOrder("single,order:-1"); got != -1 {
		t.Errorf("order:-1 phải trả về -1, got: %d", got)
	}
	if got := parseOrder("single"); got != 1 {
		t.Errorf("mặc định phải là 1, got: %d", got)
	}
}
