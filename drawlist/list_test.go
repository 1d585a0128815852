package drawlist

import (
	"testing"

	"github.com/gogpu/gg"
)

func TestListZeroValue(t *testing.T) {
	var l List
	if l.Len() != 0 || len(l.Commands()) != 0 {
		t.Fatalf("zero List has %d commands", l.Len())
	}
	l.Path([]gg.Point{gg.Pt(0, 0), gg.Pt(1, 0), gg.Pt(1, 1)}, true, gg.Black, NoStroke)
	if l.Len() != 1 {
		t.Errorf("Len() = %d after Path, want 1", l.Len())
	}
}

func TestListOrderAndCount(t *testing.T) {
	l := NewList(4)
	l.Path([]gg.Point{gg.Pt(0, 0), gg.Pt(10, 0)}, false, gg.Transparent, Stroke{Width: 1, Color: gg.Black})
	l.Circle(gg.Pt(5, 5), 3, gg.White, NoStroke)
	l.Text("50", gg.Pt(5, 5), 0.5, 0.5, 12, gg.Black)
	l.Add(TextBlockCommand{Lines: []string{"caption"}, Size: 10})
	l.Circle(gg.Pt(1, 1), 1, gg.White, NoStroke)

	want := []CommandType{CmdPath, CmdCircle, CmdText, CmdTextBlock, CmdCircle}
	cmds := l.Commands()
	if len(cmds) != len(want) {
		t.Fatalf("len(Commands()) = %d, want %d", len(cmds), len(want))
	}
	for i, w := range want {
		if cmds[i].Type() != w {
			t.Errorf("command %d = %v, want %v", i, cmds[i].Type(), w)
		}
	}

	if got := l.Count(CmdCircle); got != 2 {
		t.Errorf("Count(Circle) = %d, want 2", got)
	}
	if got := l.Count(CmdTextBlock); got != 1 {
		t.Errorf("Count(TextBlock) = %d, want 1", got)
	}

	tc := cmds[2].(TextCommand)
	if tc.Text != "50" || tc.AnchorX != 0.5 || tc.AnchorY != 0.5 || tc.Size != 12 {
		t.Errorf("Text command = %+v", tc)
	}
}

func TestListReset(t *testing.T) {
	l := NewList(2)
	l.Circle(gg.Pt(0, 0), 1, gg.Black, NoStroke)
	l.Circle(gg.Pt(0, 0), 2, gg.Black, NoStroke)
	c := cap(l.Commands())

	l.Reset()
	if l.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", l.Len())
	}
	if cap(l.Commands()) != c {
		t.Errorf("Reset changed capacity from %d to %d", c, cap(l.Commands()))
	}
}
