package htpasswd

import (
	"os"
	"testing"

	"github.com/echocat/slf4g/sdk/testlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/engity-com/htpasswd/pkg/common"
	"github.com/engity-com/htpasswd/pkg/crypto"
	"github.com/engity-com/htpasswd/pkg/errors"
)

func mustHash(t *testing.T, alg crypto.Algorithm, password string) string {
	hash, err := alg.Digest(b(password), nil)
	require.NoError(t, err)
	return string(hash)
}

func TestFile_Upsert(t *testing.T) {
	testlog.Hook(t)

	file := newTestFile(t, "htpasswd", "bob:pw\n")
	defer file.dispose(t)

	instance := File(file)

	actual, actualErr := instance.Upsert("alice", b("x"), &UpsertOpts{
		Algorithm: common.P(crypto.AlgorithmPlain),
	})
	require.NoError(t, actualErr)
	assert.Equal(t, Credential{"alice", b("x")}, actual)

	assert.Equal(t, "bob:pw\nalice:x\n", file.content(t))
}

func TestFile_Upsert_replacesFirstMatchOnly(t *testing.T) {
	testlog.Hook(t)

	file := newTestFile(t, "htpasswd", "alice:old\nbob:b\nalice:dup\n")
	defer file.dispose(t)

	instance := File(file)

	actual, actualErr := instance.Upsert("alice", b("new"), &UpsertOpts{
		Algorithm: common.P(crypto.AlgorithmPlain),
	})
	require.NoError(t, actualErr)
	assert.Equal(t, Credential{"alice", b("new")}, actual)

	assert.Equal(t, "alice:new\nbob:b\nalice:dup\n", file.content(t))
}

func TestFile_Upsert_twiceKeepsOneLine(t *testing.T) {
	testlog.Hook(t)

	file := newTestFile(t, "htpasswd", "")
	defer file.dispose(t)

	instance := File(file)

	_, actualErr := instance.Upsert("alice", b("first"), &UpsertOpts{
		Algorithm: common.P(crypto.AlgorithmPlain),
	})
	require.NoError(t, actualErr)

	_, actualErr = instance.Upsert("alice", b("second"), &UpsertOpts{
		Algorithm: common.P(crypto.AlgorithmPlain),
	})
	require.NoError(t, actualErr)

	assert.Equal(t, "alice:second\n", file.content(t))
}

func TestFile_Upsert_thenRemoveRestoresContent(t *testing.T) {
	testlog.Hook(t)

	file := newTestFile(t, "htpasswd", "bob:b\n")
	defer file.dispose(t)

	instance := File(file)

	_, actualErr := instance.Upsert("alice", b("x"), &UpsertOpts{
		Algorithm: common.P(crypto.AlgorithmPlain),
	})
	require.NoError(t, actualErr)

	actual, actualErr := instance.Remove("alice")
	require.NoError(t, actualErr)
	assert.True(t, actual)

	assert.Equal(t, "bob:b\n", file.content(t))
}

func TestFile_Upsert_missingFile(t *testing.T) {
	testlog.Hook(t)

	dir := newTestDir(t, "some")
	defer dir.dispose(t)

	instance := File(dir.child("absent"))

	_, actualErr := instance.Upsert("alice", b("x"), nil)
	assert.ErrorContains(t, actualErr, "does not exist")
	assert.True(t, errors.NotFound.IsErr(actualErr))
}

func TestFile_Upsert_createIfAbsent(t *testing.T) {
	testlog.Hook(t)

	dir := newTestDir(t, "some")
	defer dir.dispose(t)

	instance := File(dir.child("htpasswd"))

	_, actualErr := instance.Upsert("alice", b("secret"), &UpsertOpts{
		CreateIfAbsent: common.P(true),
		Algorithm:      common.P(crypto.AlgorithmPlain),
	})
	require.NoError(t, actualErr)

	assert.Equal(t, "alice:secret\n", testFile(instance).content(t))

	fi, err := os.Stat(string(instance))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), fi.Mode().Perm())

	{
		actual, actualErr := instance.Verify("alice", b("secret"), nil)
		require.NoError(t, actualErr)
		assert.True(t, actual)
	}

	{
		actual, actualErr := instance.Verify("alice", b("wrong"), nil)
		require.NoError(t, actualErr)
		assert.False(t, actual)
	}
}

func TestFile_Upsert_dryRun(t *testing.T) {
	testlog.Hook(t)

	instance := File("")

	actual, actualErr := instance.Upsert("alice", b("password"), nil)
	require.NoError(t, actualErr)

	assert.Equal(t, Credential{"alice", b("X03MO1qnZdYdgyfeuILPmQ==")}, actual)
}

func TestFile_Upsert_keepsForeignLines(t *testing.T) {
	testlog.Hook(t)

	file := newTestFile(t, "htpasswd", "some broken line\n\nbob:b\n")
	defer file.dispose(t)

	instance := File(file)

	_, actualErr := instance.Upsert("alice", b("x"), &UpsertOpts{
		Algorithm: common.P(crypto.AlgorithmPlain),
	})
	require.NoError(t, actualErr)

	assert.Equal(t, "some broken line\nbob:b\nalice:x\n", file.content(t))
}

func TestFile_Upsert_bcrypt(t *testing.T) {
	testlog.Hook(t)

	file := newTestFile(t, "htpasswd", "")
	defer file.dispose(t)

	instance := File(file)

	actual, actualErr := instance.Upsert("alice", b("secret"), &UpsertOpts{
		Algorithm: common.P(crypto.AlgorithmBcrypt),
	})
	require.NoError(t, actualErr)
	assert.Equal(t, "alice", actual.Name)
	assert.Contains(t, file.content(t), "alice:$2a$05$")

	{
		actualOk, actualErr := instance.Verify("alice", b("secret"), nil)
		require.NoError(t, actualErr)
		assert.True(t, actualOk)
	}

	{
		actualOk, actualErr := instance.Verify("alice", b("wrong"), nil)
		require.NoError(t, actualErr)
		assert.False(t, actualOk)
	}
}

func TestFile_Upsert_generatedPassword(t *testing.T) {
	testlog.Hook(t)

	file := newTestFile(t, "htpasswd", "")
	defer file.dispose(t)

	instance := File(file)

	password, err := crypto.GeneratePassword(nil, 0)
	require.NoError(t, err)

	_, actualErr := instance.Upsert("alice", password, nil)
	require.NoError(t, actualErr)

	actual, actualErr := instance.Verify("alice", password, nil)
	require.NoError(t, actualErr)
	assert.True(t, actual)
}

func TestFile_Upsert_rejectsSaltForBcrypt(t *testing.T) {
	testlog.Hook(t)

	instance := File("")

	_, actualErr := instance.Upsert("alice", b("secret"), &UpsertOpts{
		Algorithm: common.P(crypto.AlgorithmBcrypt),
		Salt:      b("0123456789abcdef"),
	})
	assert.Error(t, actualErr)
	assert.True(t, errors.Unsupported.IsErr(actualErr))
}

func TestFile_Upsert_illegalUserName(t *testing.T) {
	testlog.Hook(t)

	file := newTestFile(t, "htpasswd", "bob:b\n")
	defer file.dispose(t)

	instance := File(file)

	_, actualErr := instance.Upsert("ali:ce", b("x"), nil)
	assert.ErrorIs(t, actualErr, ErrIllegalUserName)

	assert.Equal(t, "bob:b\n", file.content(t))
}

func TestFile_Remove(t *testing.T) {
	testlog.Hook(t)

	file := newTestFile(t, "htpasswd", "alice:a\nbob:b\nalice:a2\n")
	defer file.dispose(t)

	instance := File(file)

	actual, actualErr := instance.Remove("alice")
	require.NoError(t, actualErr)
	assert.True(t, actual)

	assert.Equal(t, "bob:b\n", file.content(t))
}

func TestFile_Remove_notContained(t *testing.T) {
	testlog.Hook(t)

	file := newTestFile(t, "htpasswd", "some broken line\nbob:b\n")
	defer file.dispose(t)

	instance := File(file)

	actual, actualErr := instance.Remove("alice")
	require.NoError(t, actualErr)
	assert.False(t, actual)

	assert.Equal(t, "some broken line\nbob:b\n", file.content(t))
}

func TestFile_Remove_missingFile(t *testing.T) {
	testlog.Hook(t)

	dir := newTestDir(t, "some")
	defer dir.dispose(t)

	instance := File(dir.child("absent"))

	_, actualErr := instance.Remove("alice")
	assert.ErrorContains(t, actualErr, "does not exist")
	assert.True(t, errors.NotFound.IsErr(actualErr))
}

func TestFile_Remove_illegalUserName(t *testing.T) {
	testlog.Hook(t)

	instance := File("anything")

	_, actualErr := instance.Remove("")
	assert.ErrorIs(t, actualErr, ErrIllegalUserName)
}

func TestFile_Verify(t *testing.T) {
	testlog.Hook(t)

	file := newTestFile(t, "htpasswd", "alice:X03MO1qnZdYdgyfeuILPmQ==\n")
	defer file.dispose(t)

	instance := File(file)

	{
		actual, actualErr := instance.Verify("alice", b("password"), nil)
		require.NoError(t, actualErr)
		assert.True(t, actual)
	}

	{
		actual, actualErr := instance.Verify("alice", b("wrong"), nil)
		require.NoError(t, actualErr)
		assert.False(t, actual)
	}

	{
		actual, actualErr := instance.Verify("bob", b("password"), nil)
		require.NoError(t, actualErr)
		assert.False(t, actual)
	}
}

func TestFile_Verify_probesEveryLineOfSameUser(t *testing.T) {
	testlog.Hook(t)

	file := newTestFile(t, "htpasswd", ""+
		"alice:"+mustHash(t, crypto.AlgorithmMd5, "first")+"\n"+
		"alice:"+mustHash(t, crypto.AlgorithmSha1, "second")+"\n")
	defer file.dispose(t)

	instance := File(file)

	{
		actual, actualErr := instance.Verify("alice", b("first"), nil)
		require.NoError(t, actualErr)
		assert.True(t, actual)
	}

	{
		actual, actualErr := instance.Verify("alice", b("second"), nil)
		require.NoError(t, actualErr)
		assert.True(t, actual)
	}

	{
		actual, actualErr := instance.Verify("alice", b("third"), nil)
		require.NoError(t, actualErr)
		assert.False(t, actual)
	}
}

func TestFile_Verify_enforcedAlgorithm(t *testing.T) {
	testlog.Hook(t)

	file := newTestFile(t, "htpasswd", "alice:password\n")
	defer file.dispose(t)

	instance := File(file)

	{
		actual, actualErr := instance.Verify("alice", b("password"), &VerifyOpts{
			Algorithm: common.P(crypto.AlgorithmMd5),
		})
		require.NoError(t, actualErr)
		assert.False(t, actual)
	}

	{
		actual, actualErr := instance.Verify("alice", b("password"), nil)
		require.NoError(t, actualErr)
		assert.True(t, actual)
	}

	{
		actual, actualErr := instance.Verify("alice", b("password"), &VerifyOpts{
			Algorithm: common.P(crypto.AlgorithmPlain),
		})
		require.NoError(t, actualErr)
		assert.True(t, actual)
	}
}

func TestFile_Verify_skipsForeignLines(t *testing.T) {
	testlog.Hook(t)

	file := newTestFile(t, "htpasswd", "some broken line\nalice:secret\n")
	defer file.dispose(t)

	instance := File(file)

	actual, actualErr := instance.Verify("alice", b("secret"), &VerifyOpts{
		Algorithm: common.P(crypto.AlgorithmPlain),
	})
	require.NoError(t, actualErr)
	assert.True(t, actual)
}

func TestFile_Verify_caseSensitive(t *testing.T) {
	testlog.Hook(t)

	file := newTestFile(t, "htpasswd", "Alice:secret\n")
	defer file.dispose(t)

	instance := File(file)

	{
		actual, actualErr := instance.Verify("alice", b("secret"), &VerifyOpts{
			Algorithm: common.P(crypto.AlgorithmPlain),
		})
		require.NoError(t, actualErr)
		assert.False(t, actual)
	}

	{
		actual, actualErr := instance.Remove("alice")
		require.NoError(t, actualErr)
		assert.False(t, actual)
	}
}

func TestFile_Verify_splitsAtFirstColon(t *testing.T) {
	testlog.Hook(t)

	file := newTestFile(t, "htpasswd", "alice:pass:word\n")
	defer file.dispose(t)

	instance := File(file)

	actual, actualErr := instance.Verify("alice", b("pass:word"), &VerifyOpts{
		Algorithm: common.P(crypto.AlgorithmPlain),
	})
	require.NoError(t, actualErr)
	assert.True(t, actual)
}

func TestFile_Verify_createIfAbsent(t *testing.T) {
	testlog.Hook(t)

	dir := newTestDir(t, "some")
	defer dir.dispose(t)

	instance := File(dir.child("htpasswd"))

	actual, actualErr := instance.Verify("alice", b("x"), &VerifyOpts{
		CreateIfAbsent: common.P(true),
	})
	require.NoError(t, actualErr)
	assert.False(t, actual)

	require.FileExists(t, string(instance))
	assert.Equal(t, "", testFile(instance).content(t))

	fi, err := os.Stat(string(instance))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), fi.Mode().Perm())
}

func TestFile_Verify_missingFile(t *testing.T) {
	testlog.Hook(t)

	dir := newTestDir(t, "some")
	defer dir.dispose(t)

	instance := File(dir.child("absent"))

	_, actualErr := instance.Verify("alice", b("x"), nil)
	assert.ErrorContains(t, actualErr, "does not exist")
	assert.True(t, errors.NotFound.IsErr(actualErr))
}

func TestFile_Verify_illegalUserName(t *testing.T) {
	testlog.Hook(t)

	instance := File("anything")

	_, actualErr := instance.Verify("ali\nce", b("x"), nil)
	assert.ErrorIs(t, actualErr, ErrIllegalUserName)
}

func TestFile_conversion(t *testing.T) {
	testlog.Hook(t)

	var instance File
	assert.True(t, instance.IsZero())

	require.NoError(t, instance.Set("/etc/htpasswd"))
	assert.False(t, instance.IsZero())
	assert.Equal(t, "/etc/htpasswd", instance.String())

	{
		actual, actualErr := instance.MarshalText()
		assert.NoError(t, actualErr)
		assert.Equal(t, b("/etc/htpasswd"), actual)
	}

	assert.True(t, instance.IsEqualTo(File("/etc/htpasswd")))
	assert.True(t, instance.IsEqualTo(common.P(File("/etc/htpasswd"))))
	assert.False(t, instance.IsEqualTo(File("/etc/other")))
	assert.False(t, instance.IsEqualTo("/etc/htpasswd"))
	assert.False(t, instance.IsEqualTo(nil))
}
