package rpcclient

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNodeViewRouting(t *testing.T) {
	c, cp := newStubClient(t)

	_, err := c.GetMempool()
	require.NoError(t, err)
	require.Equal(t, "nodeView/", cp.route)
	require.Equal(t, "mempool", cp.r.Method)

	_, err = c.GetTransactionByID(&GetTransactionParams{TransactionID: "tx1"})
	require.NoError(t, err)
	require.Equal(t, "transactionById", cp.r.Method)

	_, err = c.GetTransactionFromMempool(&GetTransactionParams{TransactionID: "tx1"})
	require.NoError(t, err)
	require.Equal(t, "transactionFromMempool", cp.r.Method)

	_, err = c.GetBlockByID(&GetBlockByIDParams{BlockID: "b1"})
	require.NoError(t, err)
	require.Equal(t, "blockById", cp.r.Method)
}

func TestNodeViewValidation(t *testing.T) {
	c, _ := newStubClient(t)

	_, err := c.GetTransactionByID(nil)
	requireMissingParam(t, err, "")

	_, err = c.GetTransactionByID(&GetTransactionParams{})
	requireMissingParam(t, err, "transactionId")

	_, err = c.GetTransactionFromMempool(&GetTransactionParams{})
	requireMissingParam(t, err, "transactionId")

	_, err = c.GetBlockByID(&GetBlockByIDParams{})
	requireMissingParam(t, err, "blockId")
}
