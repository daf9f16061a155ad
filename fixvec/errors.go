// Copyright 2025 go-fixvec Authors
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

package fixvec

import "github.com/ajroetker/go-fixvec/internal/shape"

// Contract violations panic with an error wrapping one of these values, so a
// recovered panic can be classified with errors.Is:
//
//	defer func() {
//	    if err, ok := recover().(error); ok && errors.Is(err, fixvec.ErrEmpty) {
//	        // ...
//	    }
//	}()
var (
	// ErrIndexOutOfRange is raised by At, Set and Ptr for an index outside
	// [0, N). Only checked builds raise it.
	ErrIndexOutOfRange = shape.ErrIndexOutOfRange

	// ErrEmpty is raised by Sum, Average, Max and Min when N is zero.
	ErrEmpty = shape.ErrEmpty

	// ErrShape is raised when the storage type is not [N]T with N <= MaxLen.
	// Only checked builds raise it.
	ErrShape = shape.ErrShape
)
