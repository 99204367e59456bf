package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/templatechain/nativecall/core/vm"
	"github.com/templatechain/nativecall/ledger"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"nativecall", "--verbosity", "0"}, args...))
	return out.String(), err
}

func TestEncodeCommand(t *testing.T) {
	out, err := runApp(t, "encode", "42")
	require.NoError(t, err)

	want := append(vm.MethodID(vm.DoSomethingSignature).Bytes(), common.LeftPadBytes([]byte{0x2a}, vm.WordLength)...)
	assert.Equal(t, hexutil.Encode(want), strings.TrimSpace(out))

	_, err = runApp(t, "encode", "4294967296")
	assert.Error(t, err)
}

func TestSelectorCommand(t *testing.T) {
	out, err := runApp(t, "selector", "transfer(address,uint256)")
	require.NoError(t, err)
	assert.Contains(t, out, "0xa9059cbb")
	assert.Contains(t, out, "false")

	out, err = runApp(t, "selector")
	require.NoError(t, err)
	assert.Contains(t, out, vm.MethodID(vm.DoSomethingSignature).Hex())
	assert.Contains(t, out, "true")
}

func TestAccountCommand(t *testing.T) {
	out, err := runApp(t, "account", vm.TemplatePrecompileAddress.Hex())
	require.NoError(t, err)
	assert.Contains(t, out, vm.TemplateContractAccount)

	account := ledger.HashedAddressMapping{}.IntoAccountID(vm.TemplatePrecompileAddress)
	out, err = runApp(t, "account", account.Hex())
	require.NoError(t, err)
	assert.Contains(t, out, vm.TemplateContractAccount)

	_, err = runApp(t, "account", "0x1234")
	assert.Error(t, err)
}

func TestPrecompilesCommand(t *testing.T) {
	out, err := runApp(t, "precompiles")
	require.NoError(t, err)
	assert.Contains(t, out, vm.TemplatePrecompileAddress.Hex())
	assert.Contains(t, out, vm.TemplateContractAccount)
}

func TestCallCommand(t *testing.T) {
	from := "0x1000000000000000000000000000000000000001"
	out, err := runApp(t, "call", "--from", from, "--something", "42")
	require.NoError(t, err)
	assert.Contains(t, out, "status:  success")
	assert.Contains(t, out, "something=42")

	out, err = runApp(t, "call", "--from", from, "--data", "0xdeadbeef")
	require.NoError(t, err)
	assert.Contains(t, out, "status:  failed")
	assert.Contains(t, out, "InvalidRange")

	_, err = runApp(t, "call", "--from", from)
	assert.Error(t, err)
	_, err = runApp(t, "call", "--from", from, "--to", "0x0000000000000000000000000000000000000001", "--something", "1")
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.toml")
	require.NoError(t, os.WriteFile(good, []byte(`
[Precompile]
StrictPadding = true

[Ledger]
SS58Prefix = 0

[Log]
Verbosity = 4
`), 0o644))

	cfg := defaultConfig()
	require.NoError(t, loadConfig(good, &cfg))
	assert.True(t, cfg.Precompile.StrictPadding)
	assert.Equal(t, uint16(0), cfg.Ledger.SS58Prefix)
	assert.Equal(t, 4, cfg.Log.Verbosity)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[Precompile]\nLoose = true\n"), 0o644))
	cfg = defaultConfig()
	err := loadConfig(bad, &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Loose")
}

func TestDumpConfigRoundTrip(t *testing.T) {
	out, err := runApp(t, "--strict-padding", "--ss58-prefix", "2", "dumpconfig")
	require.NoError(t, err)

	file := filepath.Join(t.TempDir(), "dump.toml")
	require.NoError(t, os.WriteFile(file, []byte(out), 0o644))

	cfg := defaultConfig()
	require.NoError(t, loadConfig(file, &cfg))
	assert.True(t, cfg.Precompile.StrictPadding)
	assert.Equal(t, uint16(2), cfg.Ledger.SS58Prefix)
}

func TestStrictPaddingFlag(t *testing.T) {
	from := "0x1000000000000000000000000000000000000001"
	word := common.LeftPadBytes([]byte{0x01, 0x00, 0x00, 0x00, 0x2a}, vm.WordLength)
	data := hexutil.Encode(append(vm.MethodID(vm.DoSomethingSignature).Bytes(), word...))

	out, err := runApp(t, "call", "--from", from, "--data", data)
	require.NoError(t, err)
	assert.Contains(t, out, "status:  success")

	out, err = runApp(t, "--strict-padding", "call", "--from", from, "--data", data)
	require.NoError(t, err)
	assert.Contains(t, out, "InvalidRange")
}

func TestConfigFileSS58PrefixOutOfRange(t *testing.T) {
	file := filepath.Join(t.TempDir(), "prefix.toml")
	require.NoError(t, os.WriteFile(file, []byte("[Ledger]\nSS58Prefix = 20000\n"), 0o644))

	for _, cmd := range []string{"precompiles", "dumpconfig"} {
		_, err := runApp(t, "--config", file, cmd)
		require.Error(t, err, cmd)
		assert.ErrorIs(t, err, ledger.ErrSS58PrefixRange, cmd)
	}
	_, err := runApp(t, "--ss58-prefix", "20000", "precompiles")
	assert.ErrorIs(t, err, ledger.ErrSS58PrefixRange)
}

// TestConfigLoadedOnce checks that commands use the configuration assembled
// before they run instead of decoding the file again.
func TestConfigLoadedOnce(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(file, []byte("[Ledger]\nSS58Prefix = 2\n"), 0o644))

	var got nativecallConfig
	app := newApp()
	app.Writer = new(bytes.Buffer)
	app.Commands = append(app.Commands, &cli.Command{
		Name: "inspect",
		Action: func(ctx *cli.Context) error {
			// Any further read of the file would now fail.
			if err := os.Remove(file); err != nil {
				return err
			}
			cfg, err := appConfig(ctx)
			got = cfg
			return err
		},
	})
	require.NoError(t, app.Run([]string{"nativecall", "--verbosity", "0", "--config", file, "inspect"}))
	assert.Equal(t, uint16(2), got.Ledger.SS58Prefix)
}
