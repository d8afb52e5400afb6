package export

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taxops/perdcomp/internal/store"
)

func TestBackupRoundTrip(t *testing.T) {
	in := sampleOrders()

	var buf bytes.Buffer
	require.NoError(t, WriteBackup(&buf, in))

	// Snapshot is indented, human-inspectable JSON.
	require.True(t, strings.HasPrefix(buf.String(), "[\n  {"), "snapshot should be indented: %q", buf.String()[:20])

	out, err := ReadBackup(&buf)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestRestoreIntoEmptyStore(t *testing.T) {
	in := sampleOrders()
	var buf bytes.Buffer
	require.NoError(t, WriteBackup(&buf, in))

	s := store.Open(&store.Memory{}, nil)
	restored, err := ReadBackup(&buf)
	require.NoError(t, err)
	s.RestorePrepend(restored)

	require.Equal(t, in, s.Orders())
}

func TestReadBackupRejectsNonArray(t *testing.T) {
	for _, bad := range []string{`{"orders": []}`, `"just a string"`, `42`, `not json at all`} {
		_, err := ReadBackup(strings.NewReader(bad))
		if !errors.Is(err, ErrBadSnapshot) {
			t.Errorf("input %q: err = %v, want ErrBadSnapshot", bad, err)
		}
	}
}

func TestWriteBackupEmptyCollection(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBackup(&buf, nil))
	require.Equal(t, "[]", buf.String())
}

func TestReadBackupKeepsUnknownRecordsAsIs(t *testing.T) {
	// Restore does not deduplicate or validate fields.
	snapshot := `[{"id":"dup","perDcompNumber":"001","value":10},{"id":"dup","perDcompNumber":"001","value":10}]`
	out, err := ReadBackup(strings.NewReader(snapshot))
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, out[0].ID, out[1].ID)
}
