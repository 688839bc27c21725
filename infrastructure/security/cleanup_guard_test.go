package security

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanupGuard_AllowDelete(t *testing.T) {
	logger, _ := test.NewNullLogger()
	guard := NewCleanupGuard(logger)

	tests := map[string]bool{
		"ada.lovelace12@autotest.com": true,
		"ADA@AutoTest.com":            true,
		" kim@autotest.com ":          true,
		"cierra@example.com":          false,
		"alden@autotest.com.evil.io":  false,
		"autotest.com":                false,
		"@autotest.com":               false,
		"kim@":                        false,
		"":                            false,
	}

	for email, want := range tests {
		t.Run(email, func(t *testing.T) {
			assert.Equal(t, want, guard.AllowDelete(context.Background(), email))
		})
	}
}

func TestCleanupGuard_LogsRefusal(t *testing.T) {
	logger, hook := test.NewNullLogger()
	guard := NewCleanupGuard(logger)

	assert.False(t, guard.AllowDelete(context.Background(), "cierra@example.com"))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "cierra@example.com", entry.Data["email"])
}

func TestCleanupGuard_CustomDomains(t *testing.T) {
	guard := NewCleanupGuard(nil, "@qa.example", " ")

	assert.True(t, guard.AllowDelete(context.Background(), "x@qa.example"))
	assert.False(t, guard.AllowDelete(context.Background(), "x@autotest.com"))
}

func TestCleanupGuard_Owned(t *testing.T) {
	guard := NewCleanupGuard(nil)

	got := guard.Owned(context.Background(), []string{
		"cierra@example.com",
		"b.c01@autotest.com",
		"alden@example.com",
		"d.e02@autotest.com",
	})

	assert.Equal(t, []string{"b.c01@autotest.com", "d.e02@autotest.com"}, got)
}
