package rpcclient

import (
	"encoding/json"

	"github.com/topl/brambl-go/pkg/bifrostrpc"
)

// CreateAssetsParams are the parameters of CreateAssets and
// CreateAssetsPrototype.
type CreateAssetsParams struct {
	Issuer    string `json:"issuer"`
	AssetCode string `json:"assetCode"`
	Recipient string `json:"recipient"`
	Amount    int64  `json:"amount"`
	Fee       *int64 `json:"fee"`
}

func (p *CreateAssetsParams) validate() error {
	switch {
	case p == nil:
		return bifrostrpc.ErrMissingParams
	case p.Issuer == "":
		return bifrostrpc.NewMissingParamError("issuer")
	case p.AssetCode == "":
		return bifrostrpc.NewMissingParamError("assetCode")
	case p.Recipient == "":
		return bifrostrpc.NewMissingParamError("recipient")
	case p.Amount == 0:
		return bifrostrpc.NewMissingParamError("amount")
	case p.Fee == nil:
		return bifrostrpc.NewMissingParamError("fee")
	}
	return nil
}

// TransferAssetsParams are the parameters of TransferAssets.
type TransferAssetsParams struct {
	Issuer    string `json:"issuer"`
	AssetCode string `json:"assetCode"`
	Recipient string `json:"recipient"`
	Amount    int64  `json:"amount"`
	Fee       *int64 `json:"fee"`
}

func (p *TransferAssetsParams) validate() error {
	switch {
	case p == nil:
		return bifrostrpc.ErrMissingParams
	case p.Issuer == "":
		return bifrostrpc.NewMissingParamError("issuer")
	case p.AssetCode == "":
		return bifrostrpc.NewMissingParamError("assetCode")
	case p.Recipient == "":
		return bifrostrpc.NewMissingParamError("recipient")
	case p.Amount == 0:
		return bifrostrpc.NewMissingParamError("amount")
	case p.Fee == nil:
		return bifrostrpc.NewMissingParamError("fee")
	}
	return nil
}

// TransferAssetsPrototypeParams are the parameters of
// TransferAssetsPrototype. Prototype calls additionally name the sender
// whose boxes fund the transfer, since no wallet key is involved.
type TransferAssetsPrototypeParams struct {
	TransferAssetsParams
	Sender string `json:"sender"`
}

func (p *TransferAssetsPrototypeParams) validate() error {
	if p == nil {
		return bifrostrpc.ErrMissingParams
	}
	if err := p.TransferAssetsParams.validate(); err != nil {
		return err
	}
	if p.Sender == "" {
		return bifrostrpc.NewMissingParamError("sender")
	}
	return nil
}

// TransferTargetAssetsParams are the parameters of TransferTargetAssets.
// The asset is referenced by its box identifier instead of issuer and code.
type TransferTargetAssetsParams struct {
	Recipient string `json:"recipient"`
	AssetID   string `json:"assetId"`
	Amount    int64  `json:"amount"`
	Fee       *int64 `json:"fee"`
}

func (p *TransferTargetAssetsParams) validate() error {
	switch {
	case p == nil:
		return bifrostrpc.ErrMissingParams
	case p.Recipient == "":
		return bifrostrpc.NewMissingParamError("recipient")
	case p.AssetID == "":
		return bifrostrpc.NewMissingParamError("assetId")
	case p.Amount == 0:
		return bifrostrpc.NewMissingParamError("amount")
	case p.Fee == nil:
		return bifrostrpc.NewMissingParamError("fee")
	}
	return nil
}

// TransferTargetAssetsPrototypeParams are the parameters of
// TransferTargetAssetsPrototype.
type TransferTargetAssetsPrototypeParams struct {
	TransferTargetAssetsParams
	Sender string `json:"sender"`
}

func (p *TransferTargetAssetsPrototypeParams) validate() error {
	if p == nil {
		return bifrostrpc.ErrMissingParams
	}
	if err := p.TransferTargetAssetsParams.validate(); err != nil {
		return err
	}
	if p.Sender == "" {
		return bifrostrpc.NewMissingParamError("sender")
	}
	return nil
}

// CreateAssets mints new assets, signing the transaction with the issuer's
// key held by the node's wallet.
func (c *Client) CreateAssets(p *CreateAssetsParams, opts ...CallOption) (json.RawMessage, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return c.performRequest(bifrostrpc.AssetRoute, "createAssets", p, opts...)
}

// CreateAssetsPrototype returns an unsigned asset-minting transaction to be
// signed and broadcast separately.
func (c *Client) CreateAssetsPrototype(p *CreateAssetsParams, opts ...CallOption) (json.RawMessage, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return c.performRequest(bifrostrpc.AssetRoute, "createAssetsPrototype", p, opts...)
}

// TransferAssets moves assets identified by issuer and code to the recipient.
func (c *Client) TransferAssets(p *TransferAssetsParams, opts ...CallOption) (json.RawMessage, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return c.performRequest(bifrostrpc.AssetRoute, "transferAssets", p, opts...)
}

// TransferAssetsPrototype returns an unsigned asset transfer from the given
// sender.
func (c *Client) TransferAssetsPrototype(p *TransferAssetsPrototypeParams, opts ...CallOption) (json.RawMessage, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return c.performRequest(bifrostrpc.AssetRoute, "transferAssetsPrototype", p, opts...)
}

// TransferTargetAssets moves assets held in a specific box to the recipient.
func (c *Client) TransferTargetAssets(p *TransferTargetAssetsParams, opts ...CallOption) (json.RawMessage, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return c.performRequest(bifrostrpc.AssetRoute, "transferTargetAssets", p, opts...)
}

// TransferTargetAssetsPrototype returns an unsigned transfer of assets held
// in a specific box.
func (c *Client) TransferTargetAssetsPrototype(p *TransferTargetAssetsPrototypeParams, opts ...CallOption) (json.RawMessage, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return c.performRequest(bifrostrpc.AssetRoute, "transferTargetAssetsPrototype", p, opts...)
}
