// Package handler connects the wallet applicator to the Sawtooth transaction
// processor SDK.
package handler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hyperledger/sawtooth-sdk-go/processor"
	"github.com/hyperledger/sawtooth-sdk-go/protobuf/processor_pb2"

	"github.com/congo-pay/simplewallet/internal/txerror"
	"github.com/congo-pay/simplewallet/internal/wallet"
)

var _ processor.TransactionHandler = (*Handler)(nil)

// Handler is registered with the SDK's transaction processor. The SDK calls
// Apply once per transaction addressed to our family.
type Handler struct {
	Registration
	applicator *wallet.Applicator
	logger     *slog.Logger
}

// New builds a handler for reg that applies transactions with applicator.
func New(reg Registration, applicator *wallet.Applicator, logger *slog.Logger) *Handler {
	return &Handler{Registration: reg, applicator: applicator, logger: logger}
}

// Apply implements processor.TransactionHandler.
func (h *Handler) Apply(request *processor_pb2.TpProcessRequest, ctx *processor.Context) error {
	return h.apply(request, ctx)
}

// stateContext is the part of *processor.Context the handler uses.
type stateContext interface {
	GetState(addresses []string) (map[string][]byte, error)
	SetState(pairs map[string][]byte) ([]string, error)
}

func (h *Handler) apply(request *processor_pb2.TpProcessRequest, sc stateContext) error {
	txn := requestTxn{request: request}

	res, err := h.applicator.Apply(context.Background(), txn, sdkState{ctx: sc})
	if err != nil {
		return h.translate(txn, err)
	}

	h.logger.Info("transaction applied",
		slog.String("signature", request.GetSignature()),
		slog.String("action", res.Action),
		slog.String("address", res.Address),
		slog.Uint64("balance", uint64(res.Balance)),
	)
	return nil
}

// translate maps applicator errors onto the SDK's wire-level responses so the
// validator rejects invalid transactions and retries transport failures.
func (h *Handler) translate(txn requestTxn, err error) error {
	if txerror.IsInvalid(err) {
		h.logger.Info("transaction rejected",
			slog.String("signature", txn.request.GetSignature()),
			slog.String("kind", string(txerror.KindOf(err))),
			slog.Any("error", err),
		)
		return &processor.InvalidTransactionError{Msg: err.Error()}
	}
	h.logger.Error("transaction failed", slog.String("signature", txn.request.GetSignature()), slog.Any("error", err))
	return &processor.InternalError{Msg: err.Error()}
}

type requestTxn struct {
	request *processor_pb2.TpProcessRequest
}

func (t requestTxn) SignerPublicKey() string {
	return t.request.GetHeader().GetSignerPublicKey()
}

func (t requestTxn) Payload() []byte {
	return t.request.GetPayload()
}

// sdkState exposes a processor context as wallet.State. An address whose
// entry is missing or empty is reported as not found.
type sdkState struct {
	ctx stateContext
}

func (s sdkState) Get(_ context.Context, address string) (string, bool, error) {
	results, err := s.ctx.GetState([]string{address})
	if err != nil {
		return "", false, err
	}
	data, ok := results[address]
	if !ok || len(data) == 0 {
		return "", false, nil
	}
	return string(data), true, nil
}

func (s sdkState) Set(_ context.Context, address, value string) error {
	addresses, err := s.ctx.SetState(map[string][]byte{address: []byte(value)})
	if err != nil {
		return err
	}
	if len(addresses) == 0 {
		return fmt.Errorf("no addresses in set response for %s", address)
	}
	return nil
}
