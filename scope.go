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

import "github.com/urso/sderr"

// With places a storage for value on the current frame, pins it, and
// hands it to fn. The storage is destroyed when With returns, so every
// handle created inside fn must be released before fn returns; a
// handle escaping the scope trips the destroy check and terminates the
// process. An error returned by fn is wrapped and returned.
func With[T any](value T, fn func(*Storage[T]) error) error {
	s := New(value)
	s.Pin()
	defer s.Destroy()

	if err := fn(&s); err != nil {
		return sderr.Wrap(err, "pinned scope failed")
	}
	return nil
}

// WithAtomic is With for a storage that fn may share between
// goroutines. Goroutines holding handles must have released them
// before fn returns.
func WithAtomic[T any](value T, fn func(*AtomicStorage[T]) error) error {
	s := NewAtomic(value)
	s.Pin()
	defer s.Destroy()

	if err := fn(&s); err != nil {
		return sderr.Wrap(err, "pinned scope failed")
	}
	return nil
}
