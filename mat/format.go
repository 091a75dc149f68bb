// SPDX-License-Identifier: MIT

package mat

import (
	"strconv"
	"strings"
)

// format renders rows as "[a, b, c]" lines, each terminated by a newline.
func format(rows ...[]float64) string {
	var sb strings.Builder
	for _, row := range rows {
		sb.WriteByte('[')
		for j, v := range row {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
