package address

import (
	"fmt"
	"strings"
	"testing"
)

func TestNamespacePrefix(t *testing.T) {
	// hex(sha512("simplewallet"))[:6]
	const want = "7e2664"
	if got := NamespacePrefix(); got != want {
		t.Fatalf("expected prefix %s, got %s", want, got)
	}
}

func TestDeriveIsDeterministic(t *testing.T) {
	key := "02b7c4b0a8cf4e5dd2e11c8a1c2b3f4a5d6e7f8091a2b3c4d5e6f708192a3b4c5d"
	first := Derive(key)
	second := Derive(key)
	if first != second {
		t.Fatalf("expected stable address, got %s and %s", first, second)
	}
	if len(first) != Length {
		t.Fatalf("expected length %d, got %d", Length, len(first))
	}
	if !strings.HasPrefix(first, NamespacePrefix()) {
		t.Fatalf("address %s missing namespace prefix", first)
	}
	if !Valid(first) {
		t.Fatalf("derived address %s reported invalid", first)
	}
}

func TestDeriveDistinctKeys(t *testing.T) {
	seen := make(map[string]string)
	for i := 0; i < 500; i++ {
		key := fmt.Sprintf("key-%d", i)
		addr := Derive(key)
		if prev, exists := seen[addr]; exists {
			t.Fatalf("collision between %s and %s", prev, key)
		}
		seen[addr] = key
	}
}

func TestValid(t *testing.T) {
	good := Derive("alice")
	cases := []struct {
		addr string
		want bool
	}{
		{good, true},
		{good[:Length-1], false},
		{good + "0", false},
		{strings.ToUpper(good), false},
		{"000000" + good[PrefixLength:], false},
		{good[:Length-1] + "g", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := Valid(tc.addr); got != tc.want {
			t.Fatalf("Valid(%q) = %v, want %v", tc.addr, got, tc.want)
		}
	}
}
