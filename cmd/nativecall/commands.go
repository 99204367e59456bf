package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	"github.com/templatechain/nativecall/core"
	"github.com/templatechain/nativecall/core/vm"
	"github.com/templatechain/nativecall/ledger"
)

var (
	fromFlag = &cli.StringFlag{
		Name:     "from",
		Usage:    "Caller address (0x…)",
		Required: true,
	}
	toFlag = &cli.StringFlag{
		Name:  "to",
		Usage: "Precompile address (0x…), defaults to the template precompile",
	}
	dataFlag = &cli.StringFlag{
		Name:  "data",
		Usage: "Hex-encoded call data",
	}
	somethingFlag = &cli.StringFlag{
		Name:  "something",
		Usage: "Encode a doSomething(uint32) call with this value instead of --data",
	}
	valueFlag = &cli.StringFlag{
		Name:  "value",
		Usage: "Hex-encoded apparent value (0x…)",
	}
)

var selectorCommand = &cli.Command{
	Name:      "selector",
	Usage:     "Compute function selectors",
	ArgsUsage: "[signature...]",
	Description: `Prints the 4-byte selector of every given signature, e.g. "doSomething(uint32)".
Without arguments the signatures served by the template precompile are listed.`,
	Action: func(ctx *cli.Context) error {
		sigs := ctx.Args().Slice()
		if len(sigs) == 0 {
			sigs = vm.TemplateMethods()
		}
		supported := make(map[string]bool)
		for _, sig := range vm.TemplateMethods() {
			supported[sig] = true
		}
		table := tablewriter.NewWriter(ctx.App.Writer)
		table.SetHeader([]string{"Signature", "Selector", "Supported"})
		for _, sig := range sigs {
			table.Append([]string{sig, vm.MethodID(sig).Hex(), strconv.FormatBool(supported[sig])})
		}
		table.Render()
		return nil
	},
}

var encodeCommand = &cli.Command{
	Name:      "encode",
	Usage:     "Encode call data for doSomething(uint32)",
	ArgsUsage: "<value>",
	Action: func(ctx *cli.Context) error {
		if ctx.Args().Len() != 1 {
			return errors.New("need exactly one value")
		}
		data, err := encodeDoSomething(ctx.Args().First())
		if err != nil {
			return err
		}
		fmt.Fprintln(ctx.App.Writer, hexutil.Encode(data))
		return nil
	},
}

var accountCommand = &cli.Command{
	Name:      "account",
	Usage:     "Show the ledger account of an address",
	ArgsUsage: "<0x address | 0x account id>",
	Description: `A 20-byte address is mapped to the ledger account it dispatches as.
A 32-byte value is taken as a raw account id.`,
	Action: func(ctx *cli.Context) error {
		cfg, err := appConfig(ctx)
		if err != nil {
			return err
		}
		if ctx.Args().Len() != 1 {
			return errors.New("need exactly one address")
		}
		raw, err := hexutil.Decode(ctx.Args().First())
		if err != nil {
			return fmt.Errorf("invalid hex input: %w", err)
		}
		var account ledger.AccountID
		switch len(raw) {
		case common.AddressLength:
			account = ledger.HashedAddressMapping{}.IntoAccountID(common.BytesToAddress(raw))
		case ledger.AccountIDLength:
			if account, err = vm.ParseAccountID(raw); err != nil {
				return err
			}
		default:
			return fmt.Errorf("input must be %d or %d bytes, have %d", common.AddressLength, ledger.AccountIDLength, len(raw))
		}
		fmt.Fprintf(ctx.App.Writer, "account: %s\nss58:    %s\n", account.Hex(), account.Encode(cfg.Ledger.SS58Prefix))
		return nil
	},
}

var precompilesCommand = &cli.Command{
	Name:  "precompiles",
	Usage: "List the native-call precompiles",
	Action: func(ctx *cli.Context) error {
		cfg, err := appConfig(ctx)
		if err != nil {
			return err
		}
		set := vm.NewPrecompileSet(ledger.HashedAddressMapping{}, ledger.NewRuntime(cfg.Ledger), cfg.Precompile)
		table := tablewriter.NewWriter(ctx.App.Writer)
		table.SetHeader([]string{"Address", "Account"})
		for _, addr := range set.Addresses() {
			account := ledger.HashedAddressMapping{}.IntoAccountID(addr)
			table.Append([]string{addr.Hex(), account.Encode(cfg.Ledger.SS58Prefix)})
		}
		table.Render()
		return nil
	},
}

var callCommand = &cli.Command{
	Name:  "call",
	Usage: "Execute a precompile call against a fresh in-memory ledger",
	Flags: []cli.Flag{fromFlag, toFlag, dataFlag, somethingFlag, valueFlag},
	Action: func(ctx *cli.Context) error {
		cfg, err := appConfig(ctx)
		if err != nil {
			return err
		}
		var data []byte
		switch {
		case ctx.IsSet(somethingFlag.Name) && ctx.IsSet(dataFlag.Name):
			return errors.New("--data and --something are mutually exclusive")
		case ctx.IsSet(somethingFlag.Name):
			data, err = encodeDoSomething(ctx.String(somethingFlag.Name))
		case !ctx.IsSet(dataFlag.Name):
			return errors.New("need --data or --something")
		default:
			data, err = hexutil.Decode(ctx.String(dataFlag.Name))
		}
		if err != nil {
			return err
		}

		exec := core.NewCallExecutor(ledger.NewRuntime(cfg.Ledger), cfg.Precompile)
		receipt, err := exec.ExecuteCall(&vm.CallMetadata{
			From:     ctx.String(fromFlag.Name),
			To:       ctx.String(toFlag.Name),
			Data:     data,
			ValueHex: ctx.String(valueFlag.Name),
		})
		if err != nil {
			return err
		}
		printReceipt(ctx, receipt)
		return nil
	},
}

func printReceipt(ctx *cli.Context, receipt *core.Receipt) {
	w := ctx.App.Writer
	if !receipt.Succeeded() {
		fmt.Fprintf(w, "status:  failed\nerror:   %s\n", receipt.Failure.Kind)
		if receipt.Failure.Message != "" {
			fmt.Fprintf(w, "message: %s\n", receipt.Failure.Message)
		}
		return
	}
	fmt.Fprintf(w, "status:  success\noutput:  %s\n", hexutil.Encode(receipt.Output))
	for _, ev := range receipt.Events {
		fmt.Fprintf(w, "event:   %s\n", ev)
	}
}

// encodeDoSomething packs a doSomething(uint32) call for value.
func encodeDoSomething(value string) ([]byte, error) {
	v, err := strconv.ParseUint(value, 0, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid uint32 %q: %w", value, err)
	}
	typ, err := abi.NewType("uint32", "", nil)
	if err != nil {
		return nil, err
	}
	packed, err := abi.Arguments{{Name: "something", Type: typ}}.Pack(uint32(v))
	if err != nil {
		return nil, err
	}
	return append(vm.MethodID(vm.DoSomethingSignature).Bytes(), packed...), nil
}
