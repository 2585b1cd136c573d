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

import "fmt"

// TimeUnit is the resolution carried by a Timestamp or Time64 type.
type TimeUnit int

const (
	Second TimeUnit = iota
	Millisecond
	Microsecond
	Nanosecond
)

func (u TimeUnit) String() string {
	switch u {
	case Second:
		return "Second"
	case Millisecond:
		return "Millisecond"
	case Microsecond:
		return "Microsecond"
	case Nanosecond:
		return "Nanosecond"
	default:
		return "UnknownTimeUnit"
	}
}

// DateUnit is the resolution carried by a Date64 type.
type DateUnit int

const (
	Day DateUnit = iota
	DateMillisecond
)

func (u DateUnit) String() string {
	switch u {
	case Day:
		return "Day"
	case DateMillisecond:
		return "Millisecond"
	default:
		return "UnknownDateUnit"
	}
}

// TypeID is the closed enumeration of nominal scalar data types.
type TypeID int

const (
	Unknown TypeID = iota
	BooleanID
	Int8ID
	Int16ID
	Int32ID
	Int64ID
	UInt8ID
	UInt16ID
	UInt32ID
	UInt64ID
	Float32ID
	Float64ID
	Utf8ID
	TimestampID
	Date64ID
	Time64ID
)

// Type is a Scalar Type value. Timestamp/Date64/Time64 carry a unit and,
// for Timestamp, an optional IANA timezone name.
type Type struct {
	ID       TypeID
	Unit     TimeUnit // meaningful for TimestampID, Time64ID
	DateUnit DateUnit // meaningful for Date64ID
	TZ       string   // meaningful for TimestampID; "" means None
}

func scalar(id TypeID) Type { return Type{ID: id} }

var (
	Boolean = scalar(BooleanID)
	Int8    = scalar(Int8ID)
	Int16   = scalar(Int16ID)
	Int32   = scalar(Int32ID)
	Int64   = scalar(Int64ID)
	UInt8   = scalar(UInt8ID)
	UInt16  = scalar(UInt16ID)
	UInt32  = scalar(UInt32ID)
	UInt64  = scalar(UInt64ID)
	Float32 = scalar(Float32ID)
	Float64 = scalar(Float64ID)
	Utf8    = scalar(Utf8ID)
)

// NewTimestamp builds a Timestamp(unit, tz?) type. tz == "" means None.
func NewTimestamp(unit TimeUnit, tz string) Type {
	return Type{ID: TimestampID, Unit: unit, TZ: tz}
}

// NewDate64 builds a Date64(unit) type.
func NewDate64(unit DateUnit) Type {
	return Type{ID: Date64ID, DateUnit: unit}
}

// NewTime64 builds a Time64(unit) type.
func NewTime64(unit TimeUnit) Type {
	return Type{ID: Time64ID, Unit: unit}
}

// Equal reports whether two types are identical, including their
// unit/timezone parameters where applicable.
func (t Type) Equal(o Type) bool {
	return t == o
}

func (t Type) IsNumeric() bool {
	switch t.ID {
	case Int8ID, Int16ID, Int32ID, Int64ID, UInt8ID, UInt16ID, UInt32ID, UInt64ID, Float32ID, Float64ID:
		return true
	default:
		return false
	}
}

func (t Type) IsInteger() bool {
	switch t.ID {
	case Int8ID, Int16ID, Int32ID, Int64ID, UInt8ID, UInt16ID, UInt32ID, UInt64ID:
		return true
	default:
		return false
	}
}

func (t Type) IsSigned() bool {
	switch t.ID {
	case Int8ID, Int16ID, Int32ID, Int64ID:
		return true
	default:
		return false
	}
}

func (t Type) IsUnsigned() bool {
	switch t.ID {
	case UInt8ID, UInt16ID, UInt32ID, UInt64ID:
		return true
	default:
		return false
	}
}

// bitWidth is only meaningful for integer types; it returns 0 for every
// other type. CanCoerce does not call it: the cross-sign widenings are
// listed there case by case.
func (t Type) bitWidth() int {
	switch t.ID {
	case Int8ID, UInt8ID:
		return 8
	case Int16ID, UInt16ID:
		return 16
	case Int32ID, UInt32ID:
		return 32
	case Int64ID, UInt64ID:
		return 64
	default:
		return 0
	}
}

func (t Type) String() string {
	switch t.ID {
	case BooleanID:
		return "Boolean"
	case Int8ID:
		return "Int8"
	case Int16ID:
		return "Int16"
	case Int32ID:
		return "Int32"
	case Int64ID:
		return "Int64"
	case UInt8ID:
		return "UInt8"
	case UInt16ID:
		return "UInt16"
	case UInt32ID:
		return "UInt32"
	case UInt64ID:
		return "UInt64"
	case Float32ID:
		return "Float32"
	case Float64ID:
		return "Float64"
	case Utf8ID:
		return "Utf8"
	case TimestampID:
		tz := "None"
		if t.TZ != "" {
			tz = fmt.Sprintf("Some(%q)", t.TZ)
		}
		return fmt.Sprintf("Timestamp(%s, %s)", t.Unit, tz)
	case Date64ID:
		return fmt.Sprintf("Date64(%s)", t.DateUnit)
	case Time64ID:
		return fmt.Sprintf("Time64(%s)", t.Unit)
	default:
		return "Unknown"
	}
}
