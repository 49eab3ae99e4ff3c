package cli

import (
	"bytes"
	"testing"
)

// runCLI runs the root command with args against an isolated HOME.
func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

// isolateEnv points HOME at a temp dir and clears SHOP_* overrides.
func isolateEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	for _, k := range []string{"SHOP_HOST", "SHOP_TOKEN", "SHOP_OUTPUT", "JWT_SECRET"} {
		t.Setenv(k, "")
	}
	return dir
}
