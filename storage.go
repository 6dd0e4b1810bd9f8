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

// inner is the record a storage owns and handles point into. It must
// not move once the storage is pinned.
type inner[T any, C any, PC Counter[C]] struct {
	count C
	value T
}

func (in *inner[T, C, PC]) refCount() uint64 { return PC(&in.count).load() }

func (in *inner[T, C, PC]) newHandle() GenericHandle[T, C, PC] {
	old := PC(&in.count).incr()
	if old > maxRefCount {
		abortf("pinref: reference count overflow, %d handles have not been released", old)
	}
	return GenericHandle[T, C, PC]{rec: in}
}

// GenericStorage is the sole owner of one value and the count of live
// handles referring to it. It is created by value in caller-provided
// storage and must be pinned with Pin before handles can be created;
// from then on it must not be copied or moved until Destroy.
//
// The two exposed instantiations are Storage (single goroutine) and
// AtomicStorage (shareable between goroutines).
type GenericStorage[T any, C any, PC Counter[C]] struct {
	noCopy noCopy

	rec inner[T, C, PC]

	// pinned is &rec once Pin has run. A mismatch later means the
	// storage was copied or moved while handles may still hold the old
	// address.
	pinned *inner[T, C, PC]

	destroyed bool
}

// NewStorage creates a storage owning value, with no references. The
// storage is returned by value so it lives wherever the caller places
// it; nothing is allocated on its behalf.
//
// Most callers want the New or NewAtomic instantiation, or the
// scope-bound With helpers.
func NewStorage[T any, C any, PC Counter[C]](value T) GenericStorage[T, C, PC] {
	return GenericStorage[T, C, PC]{rec: inner[T, C, PC]{value: value}}
}

// Pin fixes the storage at its current location. Handles can only be
// created from a pinned storage, and a pinned storage must stay where
// it is until Destroy: handles keep the record's address, not a copy.
// Pin is idempotent and returns the pinned storage.
func (s *GenericStorage[T, C, PC]) Pin() *GenericStorage[T, C, PC] {
	s.check()
	s.pinned = &s.rec
	return s
}

// NewHandle creates a handle referring to this storage and counts it.
// The storage must be pinned. If the count has grown past half the
// counter's range, handles are evidently being leaked and the process
// is terminated before the count can wrap.
func (s *GenericStorage[T, C, PC]) NewHandle() GenericHandle[T, C, PC] {
	s.check()
	if s.pinned == nil {
		panic("pinref: handle requested from unpinned storage")
	}
	return s.rec.newHandle()
}

// RefCount returns the number of handles currently referring to the
// storage. Beware of race conditions: concurrent operations may change
// the count between the time you observe it and the time you act on
// the observation.
func (s *GenericStorage[T, C, PC]) RefCount() uint64 {
	s.check()
	return s.rec.refCount()
}

// Value returns shared access to the contained value. Reading is valid
// at any time regardless of the count; writing through the returned
// pointer needs the same discipline as writing through a handle.
func (s *GenericStorage[T, C, PC]) Value() *T {
	s.check()
	return &s.rec.value
}

// GetMut returns exclusive access to the contained value if and only
// if no handle refers to the storage. The count is read with acquire
// semantics, so everything written through a handle before its Release
// is visible through the returned pointer. The pointer stays exclusive
// only until the next handle is created.
func (s *GenericStorage[T, C, PC]) GetMut() (*T, bool) {
	s.check()
	if PC(&s.rec.count).loadAcquire() != 0 {
		return nil, false
	}
	return &s.rec.value, true
}

// Destroy ends the storage's lifetime. A destroy while handles still
// refer to the record would leave them dangling, so it terminates the
// process before the record is marked dead; this is the backstop the
// whole protocol leans on. Destroying a storage with no references
// completes normally, and any later use of the storage panics.
func (s *GenericStorage[T, C, PC]) Destroy() {
	s.check()
	if n := PC(&s.rec.count).loadAcquire(); n != 0 {
		abortf("pinref: storage destroyed while %d handle(s) still refer to it", n)
	}
	s.destroyed = true
	s.pinned = nil
}

func (s *GenericStorage[T, C, PC]) check() {
	if s.destroyed {
		panic("pinref: use of destroyed storage")
	}
	if s.pinned != nil && s.pinned != &s.rec {
		panic("pinref: pinned storage was copied or moved")
	}
}
