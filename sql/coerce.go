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

package sql

// CanCoerce reports whether a value of type `from` can be losslessly
// coerced into a value of type `to`. The relation is a partial order:
// reflexive and transitive, never narrowing, never lossy.
//
// Ported rule-for-rule from DataFusion's can_coerce_from.
func CanCoerce(from, to Type) bool {
	if from.Equal(to) {
		return true
	}

	switch to.ID {
	case Int8ID:
		return false // identity only, handled above
	case Int16ID:
		return from.ID == Int8ID || from.ID == UInt8ID
	case Int32ID:
		switch from.ID {
		case Int8ID, Int16ID, UInt8ID, UInt16ID:
			return true
		}
		return false
	case Int64ID:
		switch from.ID {
		case Int8ID, Int16ID, Int32ID, UInt8ID, UInt16ID, UInt32ID:
			return true
		}
		return false
	case UInt16ID:
		return from.ID == UInt8ID
	case UInt32ID:
		return from.ID == UInt8ID || from.ID == UInt16ID
	case UInt64ID:
		return from.ID == UInt8ID || from.ID == UInt16ID || from.ID == UInt32ID
	case Float32ID:
		return from.IsInteger()
	case Float64ID:
		return from.IsInteger() || from.ID == Float32ID
	case Utf8ID:
		return true
	case TimestampID:
		// Timestamp(_, None) -> Timestamp(Nanosecond, None); never changes tz.
		return from.ID == TimestampID && from.TZ == "" && to.TZ == "" && to.Unit == Nanosecond
	default:
		return false
	}
}

// CommonType returns the least upper bound of ts in the coercion lattice:
// fold left, preferring the accumulator if `b` coerces into it, else `b`
// if the accumulator coerces into `b`, else fail.
func CommonType(ts []Type) (Type, error) {
	if len(ts) == 0 {
		return Type{}, ErrCommonTypeUnresolved.New()
	}

	acc := ts[0]
	for _, b := range ts[1:] {
		switch {
		case CanCoerce(b, acc):
			// acc stays
		case CanCoerce(acc, b):
			acc = b
		default:
			return Type{}, ErrCommonType.New(acc, b)
		}
	}
	return acc, nil
}
