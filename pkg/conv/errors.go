// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package conv

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

var (
	// ErrBadArgument indicates a value which is not an integer of the host.
	ErrBadArgument = errors.New("bad internal call")
	// ErrOverflow indicates an integer whose magnitude does not fit in the
	// requested width.
	ErrOverflow = errors.New("long int too large to convert")
)

// Error is returned by a failed conversion, and identifies the operation which
// failed.  The underlying cause (i.e. ErrBadArgument or ErrOverflow) can be
// accessed via errors.Unwrap.
type Error struct {
	// Op is the name of the conversion, such as "ToUint64".
	Op string
	// Err is the underlying cause.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s(): %s", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func fail(op string, err error) *Error {
	log.Debugf("%s(): conversion failed (%s)", op, err)
	//
	return &Error{op, err}
}
