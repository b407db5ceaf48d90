package game

import "testing"

func TestLookupKey(t *testing.T) {
	cases := map[string]Command{
		" ":     {Kind: CmdToggleRun},
		"space": {Kind: CmdToggleRun},
		"R":     {Kind: CmdRandomize},
		"[":     {Kind: CmdAdjustCellSize, Value: -1},
	}
	for name, want := range cases {
		got, ok := LookupKey(name)
		if !ok || got != want {
			t.Fatalf("LookupKey(%q) = %v %v, want %v", name, got, ok, want)
		}
	}
	if _, ok := LookupKey("z"); ok {
		t.Fatal("unbound key should not resolve")
	}
}
