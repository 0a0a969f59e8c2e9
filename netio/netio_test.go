package netio_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nullnet/boolnet"
	"github.com/katalvlaran/nullnet/netio"
)

const chainDoc = `nodes:
  - name: GATA1
    inputs: [GATA2, PU1]
    on: ["10"]
  - name: GATA2
    inputs: [GATA2]
    on: ["1"]
  - name: PU1
    inputs: [GATA1]
    on: ["0"]
`

func TestDecode(t *testing.T) {
	net, err := netio.Decode(strings.NewReader(chainDoc))
	require.NoError(t, err)

	assert.Equal(t, 3, net.Size())
	assert.Equal(t, []string{"GATA1", "GATA2", "PU1"}, net.Names())

	row, err := net.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"GATA2", "PU1"}, row.Inputs)
	assert.Equal(t, []string{"10"}, row.On)

	// GATA1 is on exactly when GATA2 is on and PU1 is off.
	b, err := net.Bias(0)
	require.NoError(t, err)
	assert.Equal(t, 0.25, b)
}

func TestDecodeMalformedYAML(t *testing.T) {
	_, err := netio.Decode(strings.NewReader("nodes: ["))
	assert.ErrorIs(t, err, netio.ErrDecode)
}

func TestDecodeEmptyDocument(t *testing.T) {
	_, err := netio.Decode(strings.NewReader("nodes: []\n"))
	assert.ErrorIs(t, err, netio.ErrDocument)
}

func TestDecodeSemanticViolations(t *testing.T) {
	badWidth := `nodes:
  - name: A
    inputs: [A]
    on: ["11"]
`
	_, err := netio.Decode(strings.NewReader(badWidth))
	assert.ErrorIs(t, err, boolnet.ErrBadBitstring)

	unknownInput := `nodes:
  - name: A
    inputs: [B]
    on: ["1"]
`
	_, err = netio.Decode(strings.NewReader(unknownInput))
	assert.ErrorIs(t, err, boolnet.ErrUnknownInput)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	ref := boolnet.Myeloid()

	var buf bytes.Buffer
	require.NoError(t, netio.Encode(&buf, ref))

	back, err := netio.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, ref.Names(), back.Names())
	assert.Equal(t, ref.Rows(), back.Rows())
}

func TestEncodeNil(t *testing.T) {
	var buf bytes.Buffer
	err := netio.Encode(&buf, nil)
	assert.ErrorIs(t, err, netio.ErrDocument)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "myeloid.yaml")
	ref := boolnet.Myeloid()

	require.NoError(t, netio.Save(path, ref))
	back, err := netio.Load(path)
	require.NoError(t, err)
	assert.Equal(t, ref.Rows(), back.Rows())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := netio.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
