package payload

import (
	"testing"

	"github.com/congo-pay/simplewallet/internal/txerror"
)

func TestParseValid(t *testing.T) {
	cases := []struct {
		raw    string
		action string
		amount uint32
	}{
		{"deposit,50", ActionDeposit, 50},
		{"withdraw,0", ActionWithdraw, 0},
		{"deposit,4294967295", ActionDeposit, 4294967295},
		{"transfer,10", "transfer", 10},
		{",7", "", 7},
	}
	for _, tc := range cases {
		req, err := Parse([]byte(tc.raw))
		if err != nil {
			t.Fatalf("parse %q: %v", tc.raw, err)
		}
		if req.Action != tc.action || req.Amount != tc.amount {
			t.Fatalf("parse %q: got %+v", tc.raw, req)
		}
	}
}

func TestParseTokenCount(t *testing.T) {
	cases := map[string]string{
		"deposit,50,extra": "invalid no. of arguments: expected 2, got: 3",
		"deposit":          "invalid no. of arguments: expected 2, got: 1",
		"":                 "invalid no. of arguments: expected 2, got: 1",
		"deposit,50,":      "invalid no. of arguments: expected 2, got: 3",
	}
	for raw, msg := range cases {
		_, err := Parse([]byte(raw))
		if txerror.KindOf(err) != txerror.KindMalformedPayload {
			t.Fatalf("parse %q: expected malformed payload, got %v", raw, err)
		}
		if err.Error() != msg {
			t.Fatalf("parse %q: expected message %q, got %q", raw, msg, err.Error())
		}
	}
}

func TestParseInvalidAmount(t *testing.T) {
	for _, raw := range []string{
		"withdraw,abc",
		"deposit,",
		"deposit,-5",
		"deposit,+5",
		"deposit, 5",
		"deposit,5 ",
		"deposit,4294967296",
		"deposit,1.5",
		"deposit,0x10",
	} {
		_, err := Parse([]byte(raw))
		if txerror.KindOf(err) != txerror.KindInvalidAmount {
			t.Fatalf("parse %q: expected invalid amount, got %v", raw, err)
		}
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	raw := Encode(ActionWithdraw, 150)
	if string(raw) != "withdraw,150" {
		t.Fatalf("unexpected encoding %q", raw)
	}
	req, err := Parse(raw)
	if err != nil {
		t.Fatalf("parse encoded payload: %v", err)
	}
	if req.Action != ActionWithdraw || req.Amount != 150 {
		t.Fatalf("unexpected request %+v", req)
	}
}
