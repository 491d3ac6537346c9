// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package discover_test

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rob-gra/go-heatlink/discover"
)

func TestDiscoverReturnsTimeoutWhenNothingReplies(t *testing.T) {
	ctx := context.Background()
	_, err := discover.Discover(ctx, 54445, 200*time.Millisecond)
	assert.Error(t, err)
}

// TestDiscoverParsesReply simulates a controller's reply by unicasting the
// magic reply string straight at Discover's listening socket, sidestepping
// the need for an actual broadcast-capable second host.
func TestDiscoverParsesReply(t *testing.T) {
	const port = 54446
	ctx := context.Background()

	type outcome struct {
		res discover.Result
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := discover.Discover(ctx, port, 2*time.Second)
		done <- outcome{res, err}
	}()

	time.Sleep(50 * time.Millisecond)
	conn, err := net.Dial("udp4", fmt.Sprintf("127.0.0.1:%d", port))
	require.NoError(t, err)
	defer conn.Close()
	_, err = conn.Write([]byte("2500;111;4444;"))
	require.NoError(t, err)

	select {
	case o := <-done:
		require.NoError(t, o.err)
		assert.Equal(t, "127.0.0.1", o.res.Host)
		assert.Equal(t, 4444, o.res.Port)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for Discover to return")
	}
}

func TestDiscoverAllReturnsOnlySuccessfulPorts(t *testing.T) {
	ctx := context.Background()
	out := discover.DiscoverAll(ctx, 150*time.Millisecond)
	assert.Empty(t, out)
}
