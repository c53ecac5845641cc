package arena

import (
	"fmt"

	"github.com/bjartek/arenatoken/pkg/chroma"
	"github.com/bjartek/underflow"
	"github.com/cockroachdb/errors"
	"github.com/onflow/cadence"
	"github.com/onflow/flow-go-sdk"
	"github.com/rs/zerolog"
)

// ArgumentType is the declared cadence type of an argument
type ArgumentType string

const (
	TypeAddress ArgumentType = "Address"
	TypeUFix64  ArgumentType = "UFix64"
)

// Argument is a value and the cadence type it is declared as
type Argument struct {
	Value string
	Type  ArgumentType
}

// AddressArg declares value as an Address argument
func AddressArg(value string) Argument {
	return Argument{Value: value, Type: TypeAddress}
}

// UFix64Arg declares value as a UFix64 argument
func UFix64Arg(value string) Argument {
	return Argument{Value: value, Type: TypeUFix64}
}

// Cadence converts the argument to the value the sdk encodes.
// Address values are not validated, short addresses are left padded.
func (a Argument) Cadence() (cadence.Value, error) {
	switch a.Type {
	case TypeAddress:
		return cadence.NewAddress(flow.HexToAddress(a.Value)), nil
	case TypeUFix64:
		v, err := cadence.NewUFix64(a.Value)
		if err != nil {
			return nil, errors.Wrapf(err, "converting %q to UFix64", a.Value)
		}
		return v, nil
	default:
		return nil, errors.Newf("unsupported argument type %q", a.Type)
	}
}

func (a Argument) String() string {
	return fmt.Sprintf("%s(%s)", a.Type, a.Value)
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler
func (a Argument) MarshalZerologObject(e *zerolog.Event) {
	e.Str("type", string(a.Type)).Str("value", a.Value)
	if v, err := a.Cadence(); err == nil {
		e.Interface("cadence", underflow.CadenceValueToInterface(v))
	}
}

type arguments []Argument

func (args arguments) MarshalZerologArray(a *zerolog.Array) {
	for _, arg := range args {
		a.Object(arg)
	}
}

func cadenceValues(args []Argument) ([]cadence.Value, error) {
	values := make([]cadence.Value, 0, len(args))
	for i, arg := range args {
		v, err := arg.Cadence()
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d", i)
		}
		values = append(values, v)
	}
	return values, nil
}

// Transaction is a resolved transaction ready to be signed and submitted
type Transaction struct {
	Name     string
	Code     string
	Args     []Argument
	GasLimit uint64
}

// FlowTransaction builds an unsigned sdk transaction carrying the code, gas limit and arguments.
// Payer, proposer and reference block are left for the submitter.
func (t Transaction) FlowTransaction() (*flow.Transaction, error) {
	values, err := cadenceValues(t.Args)
	if err != nil {
		return nil, errors.Wrapf(err, "building %s", t.Name)
	}

	tx := flow.NewTransaction().SetScript([]byte(t.Code))
	tx.GasLimit = t.GasLimit
	for _, v := range values {
		if err := tx.AddArgument(v); err != nil {
			return nil, errors.Wrapf(err, "encoding arguments of %s", t.Name)
		}
	}
	return tx, nil
}

// Highlighted returns the code with terminal syntax highlighting
func (t Transaction) Highlighted(style string) string {
	return chroma.Highlight(t.Code, chroma.WithStyle(style))
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler
func (t Transaction) MarshalZerologObject(e *zerolog.Event) {
	e.Str("name", t.Name).
		Uint64("gasLimit", t.GasLimit).
		Int("codeLength", len(t.Code)).
		Array("args", arguments(t.Args))
}

// Script is a resolved read only script. Scripts are not metered so there is no gas limit.
type Script struct {
	Name string
	Code string
	Args []Argument
}

// Encode returns the code and arguments in the form ExecuteScriptAtLatestBlock expects
func (s Script) Encode() ([]byte, []cadence.Value, error) {
	values, err := cadenceValues(s.Args)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "building %s", s.Name)
	}
	return []byte(s.Code), values, nil
}

// Highlighted returns the code with terminal syntax highlighting
func (s Script) Highlighted(style string) string {
	return chroma.Highlight(s.Code, chroma.WithStyle(style))
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler
func (s Script) MarshalZerologObject(e *zerolog.Event) {
	e.Str("name", s.Name).
		Int("codeLength", len(s.Code)).
		Array("args", arguments(s.Args))
}
