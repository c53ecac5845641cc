package arena

import (
	"bytes"
	"math"
	"regexp"
	"testing"

	"github.com/onflow/cadence"
	jsoncdc "github.com/onflow/cadence/encoding/json"
	"github.com/onflow/flow-go-sdk"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgumentCadence(t *testing.T) {
	address, err := AddressArg("0x123").Cadence()
	require.NoError(t, err)
	assert.Equal(t, cadence.NewAddress(flow.HexToAddress("0000000000000123")), address)

	amount, err := UFix64Arg("100.00000000").Cadence()
	require.NoError(t, err)
	assert.Equal(t, "100.00000000", amount.String())

	_, err = UFix64Arg("-1.00000000").Cadence()
	assert.Error(t, err)

	_, err = Argument{Value: "1", Type: "Int"}.Cadence()
	assert.Error(t, err)
}

func TestFlowTransaction(t *testing.T) {
	tx, err := newTestService(t).SendArena("0x123", 100)
	require.NoError(t, err)

	flowTx, err := tx.FlowTransaction()
	require.NoError(t, err)

	assert.Equal(t, []byte(tx.Code), flowTx.Script)
	assert.Equal(t, uint64(25), flowTx.GasLimit)
	require.Len(t, flowTx.Arguments, 2)

	recipient, err := jsoncdc.Decode(nil, flowTx.Arguments[0])
	require.NoError(t, err)
	assert.Equal(t, cadence.NewAddress(flow.HexToAddress("0x123")), recipient)

	amount, err := jsoncdc.Decode(nil, flowTx.Arguments[1])
	require.NoError(t, err)
	assert.Equal(t, "100.00000000", amount.String())
}

func TestFlowTransaction_InvalidArgument(t *testing.T) {
	tx := Transaction{Name: "Burn Arena", Args: []Argument{UFix64Arg("-1.00000000")}, GasLimit: 40}

	flowTx, err := tx.FlowTransaction()
	assert.Nil(t, flowTx)
	assert.Error(t, err)
}

func TestScriptEncode(t *testing.T) {
	script, err := newTestService(t).GetBalance("0xABCDEF")
	require.NoError(t, err)

	code, args, err := script.Encode()
	require.NoError(t, err)

	assert.Equal(t, []byte(script.Code), code)
	assert.Equal(t, []cadence.Value{cadence.NewAddress(flow.HexToAddress("ABCDEF"))}, args)
}

func TestDescriptorLogging(t *testing.T) {
	tx, err := newTestService(t).SendArena("0x123", 100)
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	logger.Info().Object("transaction", tx).Msg("built")

	assert.Contains(t, buf.String(), `"name":"Send Arena"`)
	assert.Contains(t, buf.String(), `"gasLimit":25`)
	assert.Contains(t, buf.String(), `"value":"100.00000000"`)
}

func TestHighlighted(t *testing.T) {
	tx, err := newTestService(t).SetupAccount("0x01")
	require.NoError(t, err)

	ansi := regexp.MustCompile(`\x1b\[[0-9;]*m`)
	assert.Equal(t, tx.Code, ansi.ReplaceAllString(tx.Highlighted("monokai"), ""))
}

func TestFlowTransaction_NegativeZeroAmount(t *testing.T) {
	tx, err := newTestService(t).SendArena("0x123", math.Copysign(0, -1))
	require.NoError(t, err)
	assert.Equal(t, UFix64Arg("0.00000000"), tx.Args[1])

	flowTx, err := tx.FlowTransaction()
	require.NoError(t, err)
	require.Len(t, flowTx.Arguments, 2)
}
