// Copyright 2023 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package housing

import (
	"fmt"
	"strings"

	"github.com/someonegg/prefmatch"
)

// Format renders projected results as the assignment table, one line
// per neighborhood: "<name>: <buyer>(<score>) <buyer>(<score>) ...".
func Format(results []prefmatch.GroupResult) string {
	var sb strings.Builder
	for i, gr := range results {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(gr.Group)
		sb.WriteByte(':')
		for _, entry := range gr.Buyers {
			fmt.Fprintf(&sb, " %s(%d)", entry.Buyer, entry.Score)
		}
	}
	return sb.String()
}
