// Copyright 2025 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package packers

import "io"

// base supplies the io.WriteCloser half of the Packer interface: every
// codec-specific packer wraps a codec writer over its own in-memory
// buffer and forwards Write/Close to it, then reads the buffer back in
// its own SaveTo.
type base struct {
	w io.WriteCloser
}

func newBasePacker(w io.WriteCloser) *base {
	return &base{w: w}
}

func (b *base) Write(p []byte) (int, error) {
	return b.w.Write(p)
}

func (b *base) Close() error {
	return b.w.Close()
}
