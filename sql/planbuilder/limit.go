// Copyright 2020-2021 Dolthub, Inc.
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

package planbuilder

import (
	"strconv"

	"github.com/dolthub/vitess/go/vt/sqlparser"

	"github.com/arrowbase/sqlplanner/sql"
)

// planLimit resolves a LIMIT clause's row count and offset, rejecting
// anything but an integer literal for either.
func planLimit(limit *sqlparser.Limit) (n int64, offset int64, err error) {
	if limit == nil {
		return -1, 0, nil
	}
	if limit.Rowcount != nil {
		n, err = limitLiteral(limit.Rowcount)
		if err != nil {
			return 0, 0, err
		}
	} else {
		n = -1
	}
	if limit.Offset != nil {
		offset, err = limitLiteral(limit.Offset)
		if err != nil {
			return 0, 0, err
		}
	}
	return n, offset, nil
}

func limitLiteral(e sqlparser.Expr) (int64, error) {
	lit, ok := e.(*sqlparser.SQLVal)
	if !ok || lit.Type != sqlparser.IntVal {
		return 0, sql.ErrUnexpectedLimit.New()
	}
	v, err := strconv.ParseInt(string(lit.Val), 10, 64)
	if err != nil {
		return 0, sql.ErrNotANumber.New(string(lit.Val))
	}
	return v, nil
}
