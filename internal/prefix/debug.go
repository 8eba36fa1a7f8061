// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package prefix

import (
	"fmt"
	"strings"
)

func lenBase10(n int) int { return len(fmt.Sprintf("%d", n)) }
func padBase10(n interface{}, m int) string {
	s := fmt.Sprintf("%d", n)
	if pad := m - len(s); pad > 0 {
		s = strings.Repeat(" ", pad) + s
	}
	return s
}

// String renders the table one symbol per line, with the code padded to the
// longest code and a bar proportional to each symbol's count.
func (pc PrefixCodes) String() string {
	var maxSym, maxLen int
	var maxCnt uint64
	for _, c := range pc {
		if maxSym < int(c.Sym) {
			maxSym = int(c.Sym)
		}
		if maxLen < int(c.Len) {
			maxLen = int(c.Len)
		}
		if maxCnt < c.Cnt {
			maxCnt = c.Cnt
		}
	}
	maxSymStr := lenBase10(maxSym)
	maxCntStr := len(fmt.Sprintf("%d", maxCnt))

	var ss []string
	ss = append(ss, "{")
	for _, c := range pc {
		code := c.String()
		code = strings.Repeat(" ", maxLen-len(code)) + code
		var cntStr string
		if maxCnt > 0 {
			cnt := int(32*float64(c.Cnt)/float64(maxCnt) + 0.5)
			cntStr = fmt.Sprintf(",  %s |%s",
				padBase10(c.Cnt, maxCntStr),
				strings.Repeat("#", cnt),
			)
		}
		ss = append(ss, fmt.Sprintf("\t%s:  %s%s",
			padBase10(c.Sym, maxSymStr), code, cntStr,
		))
	}
	ss = append(ss, "}")
	return strings.Join(ss, "\n")
}

// String renders the tree in a nested form, where leaves print as their
// symbol and internal nodes as a parenthesized pair.
func (t *Tree) String() string {
	var sb strings.Builder
	var walk func(n int32)
	walk = func(n int32) {
		if n == none {
			sb.WriteString("-")
			return
		}
		if sym, ok := t.Leaf(n); ok {
			fmt.Fprintf(&sb, "%d", sym)
			return
		}
		sb.WriteString("(")
		walk(t.nodes[n].left)
		sb.WriteString(" ")
		walk(t.nodes[n].right)
		sb.WriteString(")")
	}
	walk(t.root)
	return sb.String()
}
