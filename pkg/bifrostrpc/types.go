/*
Package bifrostrpc contains a set of types used for JSON-RPC communication
with Bifrost nodes. It defines the basic request/response envelope shapes as
well as the errors a call can produce.
*/
package bifrostrpc

import (
	"encoding/json"
)

const (
	// JSONRPCVersion is the only JSON-RPC protocol version supported.
	JSONRPCVersion = "2.0"

	// DefaultRequestID is the request identifier used when the caller
	// doesn't provide one.
	DefaultRequestID = "1"
)

// Routes accepted by a Bifrost node. A route is the URL path segment
// identifying an operation group, appended to the node's base endpoint.
const (
	WalletRoute   = "wallet/"
	AssetRoute    = "asset/"
	NodeViewRoute = "nodeView/"
	DebugRoute    = "debug/"
)

type (
	// Request represents a JSON-RPC request sent to a Bifrost node. Bifrost
	// expects params to be a single-element array wrapping one object with
	// the method's named parameters.
	Request struct {
		// JSONRPC is the protocol version, only valid when it contains
		// JSONRPCVersion.
		JSONRPC string `json:"jsonrpc"`
		// ID is an identifier associated with this request. Bifrost uses
		// string identifiers.
		ID string `json:"id"`
		// Method is the method being called.
		Method string `json:"method"`
		// Params wraps the method's parameter object. It always has exactly
		// one element, an empty object for parameterless methods.
		Params []any `json:"params"`
	}

	// Header is a generic JSON-RPC 2.0 response header (ID and JSON-RPC version).
	Header struct {
		ID      json.RawMessage `json:"id"`
		JSONRPC string          `json:"jsonrpc"`
	}

	// HeaderAndError adds an Error (that can be empty) to the Header, it's
	// used to construct type-specific responses.
	HeaderAndError struct {
		Header
		Error *Error `json:"error,omitempty"`
	}

	// Response represents a standard raw JSON-RPC 2.0
	// response: http://www.jsonrpc.org/specification#response_object.
	// Exactly one of Error and Result is populated.
	Response struct {
		HeaderAndError
		Result json.RawMessage `json:"result,omitempty"`
	}
)
