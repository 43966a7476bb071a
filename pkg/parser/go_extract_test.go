package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGoSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.go")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGoParser_ExtractsStructAndMethods(t *testing.T) {
	path := writeGoSource(t, `package sample

type Account struct {
	balance int
}

func (a *Account) Deposit(amount int) int {
	if amount < 0 {
		return a.balance
	}
	a.balance += amount
	return a.balance
}

func (a *Account) Balance() int {
	return a.balance
}
`)

	p := newGoParser()
	classes, err := p.ParseFile(path)
	require.NoError(t, err)
	require.Len(t, classes, 1)

	account := classes[0]
	assert.Equal(t, "Account", account.Name)
	assert.Equal(t, 2, account.MethodCount)

	var deposit, balance bool
	for _, m := range account.Methods {
		switch m.Name {
		case "Deposit":
			deposit = true
			assert.True(t, m.IsPublic)
			assert.Equal(t, 1, m.ParameterCount())
			assert.GreaterOrEqual(t, m.Complexity, 2) // base 1 + the if
		case "Balance":
			balance = true
			assert.Equal(t, 0, m.ParameterCount())
		}
	}
	assert.True(t, deposit)
	assert.True(t, balance)
}

func TestGoParser_UnexportedMethodIsNotPublic(t *testing.T) {
	path := writeGoSource(t, `package sample

type internal struct{}

func (i *internal) helper() {}
`)

	p := newGoParser()
	classes, err := p.ParseFile(path)
	require.NoError(t, err)
	require.Len(t, classes, 1)
	require.Len(t, classes[0].Methods, 1)
	assert.False(t, classes[0].Methods[0].IsPublic)
}

func TestGoParser_EmptyFileReturnsNoClasses(t *testing.T) {
	path := writeGoSource(t, "")
	p := newGoParser()
	classes, err := p.ParseFile(path)
	require.NoError(t, err)
	assert.Empty(t, classes)
}

func TestRegistry_LookupDispatchesByExtension(t *testing.T) {
	registry := DefaultRegistry()
	assert.NotNil(t, registry.Lookup("foo.go"))
	assert.NotNil(t, registry.Lookup("foo.py"))
	assert.NotNil(t, registry.Lookup("foo.tsx"))
	assert.Nil(t, registry.Lookup("foo.unknownlang"))
}

func TestRegistry_SupportedExtensionsIncludesGo(t *testing.T) {
	exts := DefaultRegistry().SupportedExtensions()
	assert.True(t, exts[".go"])
	assert.True(t, exts[".py"])
	assert.True(t, exts[".ts"])
	assert.True(t, exts[".tsx"])
}
