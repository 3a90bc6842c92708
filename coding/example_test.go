// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding_test

import (
	"fmt"
	"log"

	"github.com/unixdj/qrencode/coding"
)

func ExampleEncode() {
	c, err := coding.Encode(1, coding.M,
		coding.Segment{Text: "ABC", Mode: coding.Alphanumeric},
		coding.Segment{Text: "123456", Mode: coding.Numeric})
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Println(c.Size, c.Version, c.Level, c.Mask.IsValid())
	// Output: 21 1 M true
}

func ExampleCapacity() {
	for _, mode := range []coding.Mode{
		coding.Numeric, coding.Alphanumeric, coding.Byte, coding.Kanji,
	} {
		fmt.Println(mode, coding.Capacity(40, coding.L, mode))
	}
	// Output:
	// numeric 7089
	// alphanumeric 4296
	// byte 2953
	// kanji 1817
}

func ExampleChooseVersion() {
	v, err := coding.ChooseVersion(11, coding.Alphanumeric, coding.H)
	fmt.Println(v, err)
	_, err = coding.ChooseVersion(0, coding.Byte, coding.L)
	fmt.Println(err)
	// Output:
	// 2 <nil>
	// qr: data does not fit in any version: 0 byte characters at level L
}
