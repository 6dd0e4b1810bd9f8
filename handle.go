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

// GenericHandle is a non-owning, counted reference into a pinned
// storage's record. It does not keep the storage alive; the count it
// contributes to is what forbids the storage from being destroyed or
// mutated while the handle exists.
//
// Handles are duplicated with Clone, never by assignment, and every
// handle must be released exactly once before its storage is
// destroyed.
type GenericHandle[T any, C any, PC Counter[C]] struct {
	noCopy noCopy

	rec *inner[T, C, PC]
}

// Clone creates another handle to the same storage, counting it like
// NewHandle does, overflow guard included.
func (h *GenericHandle[T, C, PC]) Clone() GenericHandle[T, C, PC] {
	return h.live().newHandle()
}

// Release drops this handle's reference with release ordering: all
// accesses made through the handle are visible to whoever next passes
// the exclusive-access or destroy check. The handle is dead afterwards
// and any further use, including a second Release, panics.
func (h *GenericHandle[T, C, PC]) Release() {
	rec := h.live()
	h.rec = nil
	if old := PC(&rec.count).decr(); old == 0 {
		// The count said no handle existed while this one did; some
		// reference has been duplicated or released outside the
		// protocol and the record can no longer be trusted.
		panic("pinref: handle released more often than created")
	}
}

// RefCount returns the number of handles currently referring to the
// same storage, this one included. Beware of race conditions:
// concurrent operations may change the count between the time you
// observe it and the time you act on the observation.
func (h *GenericHandle[T, C, PC]) RefCount() uint64 {
	return h.live().refCount()
}

// Value returns shared access to the referenced value. Reads may
// safely race with other handles; writing through the pointer is only
// legal if T synchronizes itself.
func (h *GenericHandle[T, C, PC]) Value() *T {
	return &h.live().value
}

func (h *GenericHandle[T, C, PC]) live() *inner[T, C, PC] {
	if h.rec == nil {
		panic("pinref: use of released handle")
	}
	return h.rec
}
