package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	mu       sync.Mutex
	subjects []string
	payloads [][]byte
	err      error
}

func (c *fakeConn) Publish(subject string, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.err != nil {
		return c.err
	}

	c.subjects = append(c.subjects, subject)
	c.payloads = append(c.payloads, data)

	return nil
}

func TestNATSPublisher_Handle(t *testing.T) {
	t.Parallel()

	conn := &fakeConn{}
	publisher := NewNATSPublisher(conn, "gemeente")

	n := klantcontactNotification()
	n.Kenmerken = map[string]string{"kanaal": "telefoon"}

	require.NoError(t, publisher.Handle(context.Background(), n))
	require.Len(t, conn.payloads, 1)
	assert.Equal(t, "gemeente.klantcontacten.klantcontact.create", conn.subjects[0])

	var published Notification
	require.NoError(t, json.Unmarshal(conn.payloads[0], &published))
	assert.Equal(t, *n, published)
}

func TestNATSPublisher_Subject(t *testing.T) {
	t.Parallel()

	publisher := NewNATSPublisher(&fakeConn{}, "")

	tests := []struct {
		name string
		n    Notification
		want string
	}{
		{
			name: "plain tokens",
			n:    Notification{Kanaal: "partijen", Resource: "partij", Actie: "update"},
			want: "openklant.partijen.partij.update",
		},
		{
			name: "wildcards and dots replaced",
			n:    Notification{Kanaal: "a.b", Resource: "*", Actie: "partial update>"},
			want: "openklant.a_b._.partial_update_",
		},
		{
			name: "empty tokens",
			n:    Notification{Kanaal: " ", Resource: "x"},
			want: "openklant._.x._",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, publisher.Subject(&tt.n))
		})
	}
}

func TestNATSPublisher_Errors(t *testing.T) {
	t.Parallel()

	errDown := errors.New("connection closed")
	publisher := NewNATSPublisher(&fakeConn{err: errDown}, "")

	err := publisher.Handle(context.Background(), klantcontactNotification())
	require.ErrorIs(t, err, errDown)
	assert.Contains(t, err.Error(), "openklant.klantcontacten.klantcontact.create")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = NewNATSPublisher(&fakeConn{}, "").Handle(ctx, klantcontactNotification())
	require.ErrorIs(t, err, context.Canceled)
}
