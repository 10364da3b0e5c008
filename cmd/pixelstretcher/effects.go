package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/example/pixelstretcher/internal/effect"
)

var effectHelp = map[effect.Kind]string{
	effect.Smear:    "stretch the pixels under the brush along the drag, applied on release",
	effect.Blur:     "soften the pixels under the brush while dragging",
	effect.Pixelate: "average the pixels under the brush into blocks while dragging",
}

var levelHelp = map[effect.Level]string{
	effect.LevelLight:  "copy the sampled strip unchanged",
	effect.LevelMedium: "box-average the sampled strip",
	effect.LevelHeavy:  "gaussian-blur the sampled strip",
}

type effectsCmd struct {
	*root
}

func (e *effectsCmd) Run() error {
	w := tabwriter.NewWriter(e.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "EFFECT\tDESCRIPTION")
	for _, k := range effect.Kinds() {
		fmt.Fprintf(w, "%s\t%s\n", k, effectHelp[k])
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "LEVEL\tSMEAR QUALITY")
	for _, l := range effect.Levels() {
		marker := ""
		if l == effect.DefaultLevel {
			marker = " (default)"
		}
		fmt.Fprintf(w, "%d %s\t%s%s\n", int(l), l, levelHelp[l], marker)
	}
	return w.Flush()
}
