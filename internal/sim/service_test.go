package sim

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/congo-pay/simplewallet/internal/address"
	"github.com/congo-pay/simplewallet/internal/handler"
	"github.com/congo-pay/simplewallet/internal/logging"
	"github.com/congo-pay/simplewallet/internal/statestore"
	"github.com/congo-pay/simplewallet/internal/txerror"
	"github.com/congo-pay/simplewallet/internal/wallet"
)

const ownerKey = "0211223344556677889900aabbccddeeff00112233445566778899aabbccddeeff"

func newService(store statestore.Store) *Service {
	return NewService(store, wallet.NewApplicator(logging.Discard()), handler.DefaultRegistration())
}

func TestSubmitAndBalance(t *testing.T) {
	svc := newService(statestore.NewMemory())
	ctx := context.Background()

	before, err := svc.Balance(ctx, ownerKey)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if before.Found || before.Amount != "0" {
		t.Fatalf("expected empty wallet, got %+v", before)
	}

	if _, err := svc.Submit(ctx, SubmitInput{SignerPublicKey: ownerKey, Payload: "deposit,200"}); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	res, err := svc.Submit(ctx, SubmitInput{SignerPublicKey: ownerKey, Payload: "withdraw,50"})
	if err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	if res.Balance != 150 {
		t.Fatalf("expected 150, got %d", res.Balance)
	}

	_, err = svc.Submit(ctx, SubmitInput{SignerPublicKey: ownerKey, Payload: "withdraw,500"})
	if txerror.KindOf(err) != txerror.KindInsufficientFunds {
		t.Fatalf("expected insufficient funds, got %v", err)
	}

	after, err := svc.Balance(ctx, ownerKey)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if !after.Found || after.Amount != "150" || after.Address != address.Derive(ownerKey) {
		t.Fatalf("unexpected balance %+v", after)
	}
}

func TestSubmitRequiresSigner(t *testing.T) {
	svc := newService(statestore.NewMemory())
	if _, err := svc.Submit(context.Background(), SubmitInput{Payload: "deposit,1"}); !errors.Is(err, ErrMissingSigner) {
		t.Fatalf("expected missing signer, got %v", err)
	}
}

func TestSubmitSerializesConcurrentDeposits(t *testing.T) {
	svc := newService(statestore.NewMemory())
	ctx := context.Background()

	const workers = 25
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Submit(ctx, SubmitInput{SignerPublicKey: ownerKey, Payload: "deposit,4"}); err != nil {
				t.Errorf("deposit: %v", err)
			}
		}()
	}
	wg.Wait()

	bal, err := svc.Balance(ctx, ownerKey)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if bal.Amount != "100" {
		t.Fatalf("expected 100 after concurrent deposits, got %s", bal.Amount)
	}
}

func TestState(t *testing.T) {
	store := statestore.NewMemory()
	svc := newService(store)
	ctx := context.Background()
	addr := address.Derive(ownerKey)

	if _, err := svc.State(ctx, addr); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := svc.State(ctx, "1cf126"+addr[address.PrefixLength:]); !errors.Is(err, ErrInvalidAddress) {
		t.Fatalf("expected invalid address, got %v", err)
	}

	statestore.Seed(store, addr, "42")
	data, err := svc.State(ctx, addr)
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if string(data) != "42" {
		t.Fatalf("expected 42, got %q", data)
	}
}
