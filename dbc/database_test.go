package dbc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatabaseIsEmpty(t *testing.T) {
	db := New()
	defer db.Close()

	assert.Equal(t, "", db.Version())
	assert.Equal(t, 0, db.NodeCount())
	assert.Equal(t, 0, db.ValueTableCount())
	assert.Equal(t, 0, db.MessageCount())
}

func TestVersionGetSet(t *testing.T) {
	db := New()
	defer db.Close()

	db.SetVersion("v0.1.0")
	assert.Equal(t, "v0.1.0", db.Version())
}

func TestVersionCopied(t *testing.T) {
	db := New()
	defer db.Close()

	src := []byte("v0.1.0")
	db.SetVersion(string(src))
	src[1] = '9'
	copy(src, "v0.2.0")

	assert.Equal(t, "v0.1.0", db.Version())

	s := "v0.1.0"
	db.SetVersion(s)
	s = "v0.2.0"
	assert.Equal(t, "v0.1.0", db.Version())
	assert.Equal(t, "v0.2.0", s)
}

func TestPushNodeKeepsOrderAndDuplicates(t *testing.T) {
	db := New()
	defer db.Close()

	db.PushNode(NewNode("ECU"))
	db.PushNode(NewNode("Gateway"))
	db.PushNode(NewNode("ECU"))

	require.Equal(t, 3, db.NodeCount())
	assert.Equal(t, "ECU", db.Node(0).Name())
	assert.Equal(t, "Gateway", db.Node(1).Name())
	assert.Equal(t, "ECU", db.Node(2).Name())

	n, ok := db.NodeByName("ECU")
	require.True(t, ok)
	assert.Same(t, db.Node(0), n)

	_, ok = db.NodeByName("Missing")
	assert.False(t, ok)
}

func TestAddValueTable(t *testing.T) {
	db := New()
	defer db.Close()

	vt, err := db.AddValueTable("Gear")
	require.NoError(t, err)
	assert.Equal(t, "Gear", vt.Name())

	got, ok := db.ValueTable("Gear")
	require.True(t, ok)
	assert.Same(t, vt, got)
	assert.Equal(t, 1, db.ValueTableCount())
	assert.Same(t, vt, db.ValueTableAt(0))

	_, ok = db.ValueTable("Missing")
	assert.False(t, ok)
}

func TestAddValueTableRejectsDuplicate(t *testing.T) {
	db := New()
	defer db.Close()

	first, err := db.AddValueTable("Gear")
	require.NoError(t, err)
	first.Insert(1, "First")

	again, err := db.AddValueTable("Gear")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValueTableExists))
	assert.Same(t, first, again)
	assert.Equal(t, 1, db.ValueTableCount())
}

func TestValueTablesKeepDeclarationOrder(t *testing.T) {
	db := New()
	defer db.Close()

	for _, name := range []string{"c", "a", "b"} {
		_, err := db.AddValueTable(name)
		require.NoError(t, err)
	}
	var names []string
	for i := 0; i < db.ValueTableCount(); i++ {
		names = append(names, db.ValueTableAt(i).Name())
	}
	assert.Equal(t, []string{"c", "a", "b"}, names)
}

func TestZeroDatabaseAcceptsValueTables(t *testing.T) {
	var db Database
	_, err := db.AddValueTable("t")
	require.NoError(t, err)
	assert.Equal(t, 1, db.ValueTableCount())
}

func TestMessageTransmitterIsAReference(t *testing.T) {
	db := New()
	defer db.Close()

	db.PushNode(NewNode("Engine"))
	m := NewMessage(100, "EngineData", 8, "Engine")
	db.AddMessage(m)

	n, ok := db.Transmitter(m)
	require.True(t, ok)
	assert.Same(t, db.Node(0), n)
	assert.Equal(t, 1, db.NodeCount(), "messages must not add nodes")

	got, ok := db.MessageByID(100)
	require.True(t, ok)
	assert.Same(t, m, got)

	_, ok = db.MessageByID(101)
	assert.False(t, ok)

	orphan := NewMessage(1, "Orphan", 1, NoTransmitter)
	_, ok = db.Transmitter(orphan)
	assert.False(t, ok)
}

func TestCloseReleasesEverything(t *testing.T) {
	db := New()
	db.SetVersion("1.0")
	db.PushNode(NewNode("ECU"))
	vt, err := db.AddValueTable("t")
	require.NoError(t, err)
	vt.Insert(0, "Zero")
	db.AddMessage(NewMessage(1, "M", 1, "ECU"))

	db.Close()

	assert.Equal(t, "", db.Version())
	assert.Equal(t, 0, db.NodeCount())
	assert.Equal(t, 0, db.ValueTableCount())
	assert.Equal(t, 0, db.MessageCount())
	assert.Equal(t, 0, vt.Size())
	_, ok := db.ValueTable("t")
	assert.False(t, ok)
}
