// Copyright 2025 The Crest Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"reflect"

	"github.com/zeebo/xxh3"
)

// Hash returns a structural hash of n: the kind tag folded with the
// structural fields in declared order, recursing into children.
// Bookkeeping fields do not contribute, so Equal trees hash equal.
// Strings and sequences are length-prefixed so adjacent fields cannot
// collide by concatenation.
func Hash(n Node) uint64 {
	h := xxh3.New()
	hashNode(h, n)
	return h.Sum64()
}

func hashNode(h *xxh3.Hasher, n Node) {
	if n == nil {
		h.Write([]byte{0})
		return
	}
	hashString(h, n.Kind())
	info := infoOf(n)
	sv := reflect.ValueOf(n).Elem()
	for _, f := range info.fields {
		fv := sv.Field(f.index)
		switch f.kind {
		case fieldChild:
			c, _ := nodeAt(fv)
			hashNode(h, c)
		case fieldChildList:
			hashLen(h, fv.Len())
			for i := 0; i < fv.Len(); i++ {
				c, _ := nodeAt(fv.Index(i))
				hashNode(h, c)
			}
		case fieldScalar:
			hashScalar(h, fv.Interface())
		}
	}
}

func hashScalar(h *xxh3.Hasher, v interface{}) {
	switch x := v.(type) {
	case nil:
		h.Write([]byte{'z'})
	case *big.Int:
		if x == nil {
			h.Write([]byte{'z'})
			return
		}
		h.Write([]byte{'i'})
		hashString(h, x.Text(16))
	case *big.Rat:
		if x == nil {
			h.Write([]byte{'z'})
			return
		}
		h.Write([]byte{'r'})
		hashString(h, x.RatString())
	case []byte:
		h.Write([]byte{'b'})
		hashLen(h, len(x))
		h.Write(x)
	case string:
		h.Write([]byte{'s'})
		hashString(h, x)
	case bool:
		if x {
			h.Write([]byte{'t'})
		} else {
			h.Write([]byte{'f'})
		}
	case int:
		h.Write([]byte{'n'})
		hashLen(h, x)
	default:
		h.Write([]byte{'v'})
		hashString(h, fmt.Sprintf("%v", x))
	}
}

func hashString(h *xxh3.Hasher, s string) {
	hashLen(h, len(s))
	h.WriteString(s)
}

func hashLen(h *xxh3.Hasher, n int) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(n))
	h.Write(buf[:])
}
