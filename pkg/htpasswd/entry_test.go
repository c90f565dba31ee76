package htpasswd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/echocat/slf4g/sdk/testlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_entry_read(t *testing.T) {
	testlog.Hook(t)

	cases := []struct {
		name     string
		given    string
		expected entry
	}{{
		name:     "credential",
		given:    "alice:secret",
		expected: entry{credential: &Credential{"alice", b("secret")}},
	}, {
		name:     "empty",
		given:    "",
		expected: entry{},
	}, {
		name:     "unparseable-kept-verbatim",
		given:    "this is no credential",
		expected: entry{rawLine: b("this is no credential")},
	}, {
		name:     "empty-name-kept-verbatim",
		given:    ":secret",
		expected: entry{rawLine: b(":secret")},
	}}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var actual entry
			actual.read(b(c.given))

			require.Equal(t, c.expected, actual)
		})
	}
}

func Test_entry_read_detachesFromSource(t *testing.T) {
	testlog.Hook(t)

	source := b("alice:secret")

	var instance entry
	instance.read(source)

	copy(source, "XXXXXXXXXXXX")

	assert.Equal(t, "alice", instance.credential.Name)
	assert.Equal(t, b("secret"), instance.credential.Hash)
}

func Test_entries_readFrom(t *testing.T) {
	testlog.Hook(t)

	instance := entries{}
	actualErr := instance.readFrom(strings.NewReader("alice:a\n\n#comment\nbob:b\n"))
	require.NoError(t, actualErr)

	require.Equal(t, entries{
		{credential: &Credential{"alice", b("a")}},
		{},
		{rawLine: b("#comment")},
		{credential: &Credential{"bob", b("b")}},
	}, instance)
}

func Test_entries_readFrom_windowsLineBreaks(t *testing.T) {
	testlog.Hook(t)

	instance := entries{}
	actualErr := instance.readFrom(strings.NewReader("alice:a\r\nbob:b\r\n"))
	require.NoError(t, actualErr)

	require.Equal(t, entries{
		{credential: &Credential{"alice", b("a")}},
		{credential: &Credential{"bob", b("b")}},
	}, instance)
}

func Test_entries_writeTo(t *testing.T) {
	testlog.Hook(t)

	instance := entries{
		{credential: &Credential{"alice", b("a")}},
		{},
		{rawLine: b("#comment")},
		{credential: &Credential{"bob", b("b")}},
	}

	var buf bytes.Buffer
	actualErr := instance.writeTo(&buf)
	require.NoError(t, actualErr)

	assert.Equal(t, "alice:a\n#comment\nbob:b\n", buf.String())
}

func Test_entries_replaceFirst(t *testing.T) {
	testlog.Hook(t)

	instance := entries{
		{credential: &Credential{"alice", b("a")}},
		{credential: &Credential{"bob", b("b")}},
		{credential: &Credential{"alice", b("a2")}},
	}

	{
		actual := instance.replaceFirst(&Credential{"alice", b("new")})
		assert.True(t, actual)
		assert.Equal(t, entries{
			{credential: &Credential{"alice", b("new")}},
			{credential: &Credential{"bob", b("b")}},
			{credential: &Credential{"alice", b("a2")}},
		}, instance)
	}

	{
		actual := instance.replaceFirst(&Credential{"carol", b("c")})
		assert.False(t, actual)
	}
}

func Test_entries_removeAll(t *testing.T) {
	testlog.Hook(t)

	instance := entries{
		{credential: &Credential{"alice", b("a")}},
		{rawLine: b("#comment")},
		{credential: &Credential{"bob", b("b")}},
		{credential: &Credential{"alice", b("a2")}},
	}

	{
		actual, actualFound := instance.removeAll("alice")
		assert.True(t, actualFound)
		assert.Equal(t, entries{
			{rawLine: b("#comment")},
			{credential: &Credential{"bob", b("b")}},
		}, actual)
	}

	{
		actual, actualFound := instance.removeAll("carol")
		assert.False(t, actualFound)
		assert.Equal(t, instance, actual)
	}
}
