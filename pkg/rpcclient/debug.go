package rpcclient

import (
	"encoding/json"

	"github.com/topl/brambl-go/pkg/bifrostrpc"
)

// CalcDelayParams are the parameters of CalcDelay.
type CalcDelayParams struct {
	BlockID   string `json:"blockId"`
	NumBlocks int64  `json:"numBlocks"`
}

func (p *CalcDelayParams) validate() error {
	switch {
	case p == nil:
		return bifrostrpc.ErrMissingParams
	case p.BlockID == "":
		return bifrostrpc.NewMissingParamError("blockId")
	case p.NumBlocks == 0:
		return bifrostrpc.NewMissingParamError("numBlocks")
	}
	return nil
}

// ChainInfo returns the best block and how the node currently sees the chain.
func (c *Client) ChainInfo(opts ...CallOption) (json.RawMessage, error) {
	return c.performRequest(bifrostrpc.DebugRoute, "info", nil, opts...)
}

// CalcDelay returns the average delay over numBlocks blocks ending at
// blockId.
func (c *Client) CalcDelay(p *CalcDelayParams, opts ...CallOption) (json.RawMessage, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return c.performRequest(bifrostrpc.DebugRoute, "delay", p, opts...)
}

// MyBlocks counts the blocks forged by keys held in the node's wallet.
func (c *Client) MyBlocks(opts ...CallOption) (json.RawMessage, error) {
	return c.performRequest(bifrostrpc.DebugRoute, "myBlocks", nil, opts...)
}

// BlockGenerators returns the distribution of block forgers over the chain.
func (c *Client) BlockGenerators(opts ...CallOption) (json.RawMessage, error) {
	return c.performRequest(bifrostrpc.DebugRoute, "generators", nil, opts...)
}

// PrintChain dumps the node's view of the full chain.
func (c *Client) PrintChain(opts ...CallOption) (json.RawMessage, error) {
	return c.performRequest(bifrostrpc.DebugRoute, "chain", nil, opts...)
}
