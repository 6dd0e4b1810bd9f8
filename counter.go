// Licensed to Elasticsearch B.V. under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. Elasticsearch B.V. licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package pinref

import (
	"math"
	"sync/atomic"
)

// maxRefCount is the largest pre-increment count NewHandle and Clone
// accept. A count this size means handles are being leaked or
// forgotten; one more increment risks wrapping the counter, so the
// process is terminated instead.
const maxRefCount = math.MaxUint64 / 2

// Counter is the capability the counting protocol is generic over: an
// unsigned counter whose zero value is a count of zero. Each method
// names the weakest memory ordering the protocol relies on; an
// implementation may be stronger. The method set is unexported on
// purpose, cell and atomicCell are the only two instantiations.
type Counter[C any] interface {
	*C

	// load returns a relaxed snapshot of the count.
	load() uint64

	// loadAcquire returns the count, ordered after every release
	// decrement it observes.
	loadAcquire() uint64

	// incr adds 1 (relaxed) and returns the previous count.
	incr() uint64

	// decr subtracts 1 (release) and returns the previous count.
	decr() uint64
}

// cell counts without synchronization. Storages and handles built on
// it must stay confined to one goroutine.
type cell struct{ n uint64 }

func (c *cell) load() uint64        { return c.n }
func (c *cell) loadAcquire() uint64 { return c.n }

func (c *cell) incr() uint64 {
	old := c.n
	c.n++
	return old
}

func (c *cell) decr() uint64 {
	old := c.n
	c.n--
	return old
}

// atomicCell counts with hardware atomics for cross-goroutine use. Go
// atomics are sequentially consistent, which covers the relaxed,
// acquire and release minimums the protocol asks for.
type atomicCell struct{ n atomic.Uint64 }

func (c *atomicCell) load() uint64        { return c.n.Load() }
func (c *atomicCell) loadAcquire() uint64 { return c.n.Load() }

func (c *atomicCell) incr() uint64 {
	return c.n.Add(1) - 1
}

func (c *atomicCell) decr() uint64 {
	// adding all-ones subtracts 1
	return c.n.Add(^uint64(0)) + 1
}
