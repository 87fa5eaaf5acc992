// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Truthy is a boolean decoded with loose JSON truthiness, so that web clients
// may send `1`, `"yes"` or `true` for the wipe status.
//
// false, 0, "", null and a missing field decode to false; every other value,
// including arrays and objects, decodes to true. It always encodes as a JSON
// boolean.
type Truthy bool

// UnmarshalJSON implements [json.Unmarshaler].
func (t *Truthy) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		*t = false
		return nil
	}

	switch b[0] {
	case 'n':
		*t = false
		return nil
	case 't', 'f':
		var v bool
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*t = Truthy(v)
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = s != ""
		return nil
	case '[', '{':
		*t = true
		return nil
	default:
		f, err := strconv.ParseFloat(string(b), 64)
		if err != nil {
			return err
		}
		*t = f != 0
		return nil
	}
}

// MarshalJSON implements [json.Marshaler].
func (t Truthy) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(t))
}

// Bool returns the value as a plain bool.
func (t Truthy) Bool() bool {
	return bool(t)
}
