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

// Storage counts references without synchronization. It and every
// Handle derived from it must stay confined to the goroutine that
// pinned it; nothing enforces this beyond the contract.
type Storage[T any] = GenericStorage[T, cell, *cell]

// Handle is a counted reference into a Storage. Single goroutine only.
type Handle[T any] = GenericHandle[T, cell, *cell]

// AtomicStorage counts references atomically. It and its handles may
// be shared between goroutines, provided the contained value tolerates
// being read from several goroutines at once.
type AtomicStorage[T any] = GenericStorage[T, atomicCell, *atomicCell]

// AtomicHandle is a counted reference into an AtomicStorage.
type AtomicHandle[T any] = GenericHandle[T, atomicCell, *atomicCell]

// New creates an unsynchronized, goroutine-confined storage for value.
func New[T any](value T) Storage[T] {
	return NewStorage[T, cell, *cell](value)
}

// NewAtomic creates a storage for value that may be shared between
// goroutines.
func NewAtomic[T any](value T) AtomicStorage[T] {
	return NewStorage[T, atomicCell, *atomicCell](value)
}
