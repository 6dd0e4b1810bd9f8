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

// Package pinref provides a reference-counted pointer that shares one
// value between multiple owners without the library allocating: the
// value and its reference count live together in a storage the caller
// places, typically on a stack frame, and pins for as long as any
// handle to it exists.
//
// A storage is the sole owner of the value. Once pinned it produces
// handles, light-weight counted references to the value. The count is
// the proof of life: mutable access to the value, and the end of the
// storage's lifetime, are only granted while the count is zero. A
// storage destroyed while handles still refer to it terminates the
// process rather than leave those handles pointing at a dead record.
//
// The protocol exists twice, produced from one generic implementation:
// Storage and Handle are confined to a single goroutine and count
// without synchronization; AtomicStorage and AtomicHandle may be
// shared between goroutines, inheriting only the contained value's own
// thread-safety requirements.
//
// The usual shape is scope-bound:
//
//	err := pinref.With(cfg, func(s *pinref.Storage[Config]) error {
//	    h := s.NewHandle()
//	    defer h.Release()
//	    return consume(h.Value())
//	})
//
// Storages and handles must not be copied by assignment; handles are
// duplicated with Clone. go vet reports such copies, and operations on
// a storage that was copied after pinning panic.
package pinref
