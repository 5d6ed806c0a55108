package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.json")
	require.NoError(t, os.WriteFile(input, []byte(`{
		"cart": {"cost": {"totalAmount": {"amount": "150.00"}}},
		"paymentMethods": [{"id": "gid://1", "name": "Cash on Delivery"}],
		"paymentCustomization": {"metafield": {"value": "{\"paymentMethodName\":\"Cash\",\"cartTotal\":100}"}}
	}`), 0o600))

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs([]string{"run", "payment-customization", "--input", input, "--log-level", "error"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.JSONEq(t, `{"operations":[{"hide":{"paymentMethodId":"gid://1"}}]}`, out.String())
}

func TestExecute_FailureLoggedOnce(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.json")
	require.NoError(t, os.WriteFile(input, []byte(`{
		"cart": {"cost": {"totalAmount": {"amount": "lots"}}},
		"paymentCustomization": {"metafield": {"value": "{\"paymentMethodName\":\"Cash\",\"cartTotal\":100}"}}
	}`), 0o600))

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"run", "payment-customization", "--input", input, "--log-level", "debug", "--log-format", "json"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.Error(t, Execute())
	assert.Empty(t, out.String())
	assert.Equal(t, 1, strings.Count(errOut.String(), `"level":"ERROR"`), errOut.String())
	assert.Contains(t, errOut.String(), `"msg":"invocation failed"`)
	assert.Contains(t, errOut.String(), "unparsable amount")
}
