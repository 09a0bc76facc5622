package wallet

import "context"

// Transaction is the part of a processed transaction the applicator reads.
type Transaction interface {
	SignerPublicKey() string
	Payload() []byte
}

// State is the slice of global state a single transaction may touch. The
// collaborator guarantees Get and Set are confined to our namespace and are
// not raced by conflicting transactions.
type State interface {
	Get(ctx context.Context, address string) (value string, found bool, err error)
	Set(ctx context.Context, address, value string) error
}

// Result describes a successfully applied transaction.
type Result struct {
	Address string
	Action  string
	Amount  uint32
	Balance uint32
}

// Txn is a plain Transaction value.
type Txn struct {
	Signer string
	Data   []byte
}

func (t Txn) SignerPublicKey() string { return t.Signer }

func (t Txn) Payload() []byte { return t.Data }
