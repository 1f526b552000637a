package cli

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandTree(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range []string{"news", "login", "register", "logout", "me", "chat", "contact", "invest", "admin", "version"} {
		assert.True(t, names[want], "missing command %q", want)
	}

	adminNames := make(map[string]bool)
	for _, cmd := range adminCmd.Commands() {
		adminNames[cmd.Name()] = true
	}
	for _, want := range []string{"login", "change-password", "logout", "stats", "users", "contacts", "inquiries", "articles", "chat"} {
		assert.True(t, adminNames[want], "missing admin command %q", want)
	}
}

func TestAdminArticlesSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range adminArticlesCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range []string{"list", "create", "update", "delete"} {
		assert.True(t, names[want], "missing articles command %q", want)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	got := truncate("abcdefghij", 6)
	require.Len(t, []rune(got), 6)
	assert.Equal(t, "abcde…", got)

	// Multibyte runes never get split.
	got = truncate(" länder überall", 8)
	require.True(t, utf8.ValidString(got))
	require.Len(t, []rune(got), 8)
	assert.Equal(t, "länder …", got)
}
