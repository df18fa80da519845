package rpcclient

import (
	"encoding/json"

	"github.com/topl/brambl-go/pkg/bifrostrpc"
)

// GetTransactionParams identify one transaction, confirmed or pending.
type GetTransactionParams struct {
	TransactionID string `json:"transactionId"`
}

func (p *GetTransactionParams) validate() error {
	switch {
	case p == nil:
		return bifrostrpc.ErrMissingParams
	case p.TransactionID == "":
		return bifrostrpc.NewMissingParamError("transactionId")
	}
	return nil
}

// GetBlockByIDParams are the parameters of GetBlockByID.
type GetBlockByIDParams struct {
	BlockID string `json:"blockId"`
}

func (p *GetBlockByIDParams) validate() error {
	switch {
	case p == nil:
		return bifrostrpc.ErrMissingParams
	case p.BlockID == "":
		return bifrostrpc.NewMissingParamError("blockId")
	}
	return nil
}

// GetTransactionByID looks up a confirmed transaction by its identifier.
func (c *Client) GetTransactionByID(p *GetTransactionParams, opts ...CallOption) (json.RawMessage, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return c.performRequest(bifrostrpc.NodeViewRoute, "transactionById", p, opts...)
}

// GetTransactionFromMempool looks up a pending transaction by its identifier.
func (c *Client) GetTransactionFromMempool(p *GetTransactionParams, opts ...CallOption) (json.RawMessage, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return c.performRequest(bifrostrpc.NodeViewRoute, "transactionFromMempool", p, opts...)
}

// GetMempool returns the node's current set of pending transactions.
func (c *Client) GetMempool(opts ...CallOption) (json.RawMessage, error) {
	return c.performRequest(bifrostrpc.NodeViewRoute, "mempool", nil, opts...)
}

// GetBlockByID looks up a block by its identifier.
func (c *Client) GetBlockByID(p *GetBlockByIDParams, opts ...CallOption) (json.RawMessage, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return c.performRequest(bifrostrpc.NodeViewRoute, "blockById", p, opts...)
}
