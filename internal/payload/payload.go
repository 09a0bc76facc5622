// Package payload decodes the simplewallet transaction payload, a UTF-8
// string of the form "<action>,<amount>".
package payload

import (
	"strconv"
	"strings"

	"github.com/congo-pay/simplewallet/internal/txerror"
)

const (
	ActionDeposit  = "deposit"
	ActionWithdraw = "withdraw"

	delimiter = ","
)

// Request is a decoded payload. Action is not checked against the known
// actions here; the applicator rejects unknown ones.
type Request struct {
	Action string
	Amount uint32
}

// Parse decodes raw into a Request. The payload must hold exactly two
// comma separated tokens and the amount must be a base-10 integer that fits
// in 32 unsigned bits. No whitespace is trimmed.
func Parse(raw []byte) (Request, error) {
	tokens := strings.Split(string(raw), delimiter)
	if len(tokens) != 2 {
		return Request{}, txerror.New(txerror.KindMalformedPayload,
			"invalid no. of arguments: expected 2, got: %d", len(tokens))
	}

	amount, err := strconv.ParseUint(tokens[1], 10, 32)
	if err != nil {
		return Request{}, txerror.Wrap(txerror.KindInvalidAmount, err,
			"invalid amount %q: must be an unsigned 32-bit integer", tokens[1])
	}

	return Request{Action: tokens[0], Amount: uint32(amount)}, nil
}

// Encode renders a payload the way clients submit it.
func Encode(action string, amount uint32) []byte {
	return []byte(action + delimiter + strconv.FormatUint(uint64(amount), 10))
}
