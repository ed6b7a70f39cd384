package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "tokengen-test-signing-secret"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestIssueThenVerify(t *testing.T) {
	token, err := run(t, "issue", "--subject", "alice", "--secret", testSecret, "--ttl", "1h")
	require.NoError(t, err)
	assert.Equal(t, 3, len(strings.Split(token, ".")))

	out, err := run(t, "verify", token, "--secret", testSecret)
	require.NoError(t, err)
	assert.Contains(t, out, "subject=alice")
}

func TestIssue_SecretFromEnvironment(t *testing.T) {
	t.Setenv(secretEnv, testSecret)

	token, err := run(t, "issue", "--subject", "bob")
	require.NoError(t, err)

	out, err := run(t, "verify", token)
	require.NoError(t, err)
	assert.Contains(t, out, "subject=bob")
}

func TestIssue_Errors(t *testing.T) {
	t.Setenv(secretEnv, "")

	_, err := run(t, "issue", "--secret", testSecret)
	assert.Error(t, err, "subject is required")

	_, err = run(t, "issue", "--subject", "alice")
	assert.Error(t, err, "secret is required")
}

func TestVerify_WrongSecret(t *testing.T) {
	token, err := run(t, "issue", "--subject", "alice", "--secret", testSecret)
	require.NoError(t, err)

	_, err = run(t, "verify", token, "--secret", "a-different-signing-secret")
	assert.Error(t, err)
}
