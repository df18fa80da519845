package rpcclient

import (
	"encoding/json"

	"github.com/topl/brambl-go/pkg/bifrostrpc"
)

// Fee returns a pointer to v. Transfer and asset parameter structures keep
// the fee behind a pointer so that a zero fee can be told apart from an
// omitted one; only the latter fails validation.
func Fee(v int64) *int64 {
	return &v
}

// GetBalancesByKeyParams are the parameters of GetBalancesByKey.
type GetBalancesByKeyParams struct {
	PublicKeys []string `json:"publicKeys"`
}

func (p *GetBalancesByKeyParams) validate() error {
	switch {
	case p == nil:
		return bifrostrpc.ErrMissingParams
	case len(p.PublicKeys) == 0:
		return bifrostrpc.NewMissingParamError("publicKeys")
	}
	return nil
}

// GenerateKeyfileParams are the parameters of GenerateKeyfile.
type GenerateKeyfileParams struct {
	Password string `json:"password"`
}

func (p *GenerateKeyfileParams) validate() error {
	switch {
	case p == nil:
		return bifrostrpc.ErrMissingParams
	case p.Password == "":
		return bifrostrpc.NewMissingParamError("password")
	}
	return nil
}

// KeyfileParams identify one open or locked keyfile, they're shared by
// LockKeyfile and UnlockKeyfile.
type KeyfileParams struct {
	PublicKey string `json:"publicKey"`
	Password  string `json:"password"`
}

func (p *KeyfileParams) validate() error {
	switch {
	case p == nil:
		return bifrostrpc.ErrMissingParams
	case p.PublicKey == "":
		return bifrostrpc.NewMissingParamError("publicKey")
	case p.Password == "":
		return bifrostrpc.NewMissingParamError("password")
	}
	return nil
}

// SignTransactionParams are the parameters of SignTransaction. Tx carries
// the prototype transaction exactly as previously returned by the node.
type SignTransactionParams struct {
	PublicKey string          `json:"publicKey"`
	Tx        json.RawMessage `json:"tx"`
}

func (p *SignTransactionParams) validate() error {
	switch {
	case p == nil:
		return bifrostrpc.ErrMissingParams
	case p.PublicKey == "":
		return bifrostrpc.NewMissingParamError("publicKey")
	case len(p.Tx) == 0:
		return bifrostrpc.NewMissingParamError("tx")
	}
	return nil
}

// BroadcastTxParams are the parameters of BroadcastTx.
type BroadcastTxParams struct {
	Tx json.RawMessage `json:"tx"`
}

func (p *BroadcastTxParams) validate() error {
	switch {
	case p == nil:
		return bifrostrpc.ErrMissingParams
	case len(p.Tx) == 0:
		return bifrostrpc.NewMissingParamError("tx")
	}
	return nil
}

// TransferParams are the parameters of TransferPolys and TransferArbits.
type TransferParams struct {
	Recipient string `json:"recipient"`
	Amount    int64  `json:"amount"`
	Fee       *int64 `json:"fee"`
}

func (p *TransferParams) validate() error {
	switch {
	case p == nil:
		return bifrostrpc.ErrMissingParams
	case p.Recipient == "":
		return bifrostrpc.NewMissingParamError("recipient")
	case p.Amount == 0:
		return bifrostrpc.NewMissingParamError("amount")
	case p.Fee == nil:
		return bifrostrpc.NewMissingParamError("fee")
	}
	return nil
}

// GetBalancesByKey returns poly and arbit balances for the given public keys.
func (c *Client) GetBalancesByKey(p *GetBalancesByKeyParams, opts ...CallOption) (json.RawMessage, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return c.performRequest(bifrostrpc.WalletRoute, "balances", p, opts...)
}

// ListOpenKeyfiles returns the public keys of all keyfiles currently
// unlocked in the node's wallet.
func (c *Client) ListOpenKeyfiles(opts ...CallOption) (json.RawMessage, error) {
	return c.performRequest(bifrostrpc.WalletRoute, "listOpenKeyfiles", nil, opts...)
}

// GenerateKeyfile makes the node create a new keyfile encrypted with the
// given password.
func (c *Client) GenerateKeyfile(p *GenerateKeyfileParams, opts ...CallOption) (json.RawMessage, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return c.performRequest(bifrostrpc.WalletRoute, "generateKeyfile", p, opts...)
}

// LockKeyfile locks an open keyfile in the node's wallet.
func (c *Client) LockKeyfile(p *KeyfileParams, opts ...CallOption) (json.RawMessage, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return c.performRequest(bifrostrpc.WalletRoute, "lockKeyfile", p, opts...)
}

// UnlockKeyfile unlocks a keyfile in the node's wallet making its key
// available for signing.
func (c *Client) UnlockKeyfile(p *KeyfileParams, opts ...CallOption) (json.RawMessage, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return c.performRequest(bifrostrpc.WalletRoute, "unlockKeyfile", p, opts...)
}

// SignTransaction signs a prototype transaction with the key identified by
// publicKey, which must be unlocked.
func (c *Client) SignTransaction(p *SignTransactionParams, opts ...CallOption) (json.RawMessage, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return c.performRequest(bifrostrpc.WalletRoute, "signTx", p, opts...)
}

// BroadcastTx submits a signed transaction to the network.
func (c *Client) BroadcastTx(p *BroadcastTxParams, opts ...CallOption) (json.RawMessage, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return c.performRequest(bifrostrpc.WalletRoute, "broadcastTx", p, opts...)
}

// TransferPolys sends poly tokens to the recipient. A zero fee is valid, an
// omitted one is not, see Fee.
func (c *Client) TransferPolys(p *TransferParams, opts ...CallOption) (json.RawMessage, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return c.performRequest(bifrostrpc.WalletRoute, "transferPolys", p, opts...)
}

// TransferArbits sends arbit tokens to the recipient.
func (c *Client) TransferArbits(p *TransferParams, opts ...CallOption) (json.RawMessage, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return c.performRequest(bifrostrpc.WalletRoute, "transferArbits", p, opts...)
}
