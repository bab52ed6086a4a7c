package main

import (
	"fmt"
	"io"
	"strings"
)

const progressWidth = 40

// progressBar renders download progress as a single terminal line, e.g.
//
//	[===================>--------------------] 4096/8192 bytes
type progressBar struct {
	out io.Writer
}

func newProgressBar(out io.Writer) *progressBar {
	return &progressBar{out: out}
}

// Update redraws the bar. It is meant to be used as a download progress
// callback and prints the final newline once downloaded reaches total.
func (b *progressBar) Update(downloaded, total int64) {
	if total <= 0 {
		return
	}

	filled := int(downloaded * progressWidth / total)
	if filled > progressWidth {
		filled = progressWidth
	}

	var bar string
	switch {
	case filled <= 0:
		bar = strings.Repeat("-", progressWidth)
	case filled < progressWidth:
		bar = strings.Repeat("=", filled-1) + ">" + strings.Repeat("-", progressWidth-filled)
	default:
		bar = strings.Repeat("=", progressWidth)
	}

	fmt.Fprintf(b.out, "\r[%s] %d/%d bytes", bar, downloaded, total)

	if downloaded >= total {
		fmt.Fprintln(b.out)
	}
}
