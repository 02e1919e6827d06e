package editor

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/padvi/internal/input/mode"
)

func TestInsertTyping(t *testing.T) {
	f := newFixture(t, "world\n", DefaultOptions())
	require.NoError(t, f.press(t, "ihello <Esc>"))

	assert.Equal(t, []string{"hello world\n"}, f.lines())
	_, col := f.pos()
	assert.Equal(t, 5, col, "escape steps back onto the last typed character")
	assert.True(t, f.ed.IsModified())
	assert.Contains(t, f.be.Status(), "[+]")
}

func TestInsertNonASCII(t *testing.T) {
	f := newFixture(t, "\n", DefaultOptions())
	require.NoError(t, f.press(t, "ié<Esc>"))
	assert.Equal(t, []string{"é\n"}, f.lines())
	assert.Equal(t, 3, f.ed.Document().Line(f.ed.Document().Head()).Len())
}

func TestInsertEntryPositions(t *testing.T) {
	tests := []struct {
		name    string
		content string
		keys    string
		want    string
		wantCol int
	}{
		{"i at cursor", "abc\n", "lli", "abc\n", 2},
		{"I first non-space", "   abc\n", "llllI", "   abc\n", 3},
		{"a after cursor", "abc\n", "la", "abc\n", 2},
		{"A line end", "abc\n", "A", "abc\n", 3},
		{"a on blank line", "\n", "a", "\n", 0},
		{"A on blank line", "\n", "A", "\n", 0},
		{"A on tail without newline", "abc", "A", "abc", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.content, DefaultOptions())
			require.NoError(t, f.press(t, tt.keys))
			assert.Equal(t, mode.ModeInsert, f.ed.Mode())
			assert.Equal(t, []string{tt.want}, f.lines())
			_, col := f.pos()
			assert.Equal(t, tt.wantCol, col)
		})
	}
}

func TestOpenLineBelowAutoIndent(t *testing.T) {
	f := newFixture(t, "  if x:\n", DefaultOptions())
	require.NoError(t, f.press(t, "o"))

	assert.Equal(t, []string{"  if x:\n", "      \n"}, f.lines())
	row, col := f.pos()
	assert.Equal(t, 1, row)
	assert.Equal(t, 6, col)
	assert.Equal(t, mode.ModeInsert, f.ed.Mode())

	require.NoError(t, f.press(t, "y"))
	assert.Equal(t, "      y\n", f.lines()[1])
}

func TestOpenLineAbove(t *testing.T) {
	f := newFixture(t, "func f() {\n}\n", DefaultOptions())
	require.NoError(t, f.press(t, "jOreturn<Esc>"))

	assert.Equal(t, []string{"func f() {\n", "    return\n", "}\n"}, f.lines())
	row, col := f.pos()
	assert.Equal(t, 1, row)
	assert.Equal(t, 9, col)
}

func TestOpenLineAboveHead(t *testing.T) {
	f := newFixture(t, "    body\n", DefaultOptions())
	require.NoError(t, f.press(t, "O"))
	assert.Equal(t, []string{"\n", "    body\n"}, f.lines(), "no previous line means no indent")
	row, col := f.pos()
	assert.Equal(t, 0, row)
	assert.Equal(t, 0, col)
}

func TestOpenLineWithoutAutoIndent(t *testing.T) {
	f := newFixture(t, "  if x:\n", plain())
	require.NoError(t, f.press(t, "o"))
	assert.Equal(t, []string{"  if x:\n", "\n"}, f.lines())
}

func TestOpenLineBelowTailWithoutNewline(t *testing.T) {
	f := newFixture(t, "abc", plain())
	require.NoError(t, f.press(t, "o"))
	assert.Equal(t, []string{"abc\n", "\n"}, f.lines())
}

func TestSplitAtEndWithoutIndent(t *testing.T) {
	f := newFixture(t, "abc\ndef\n", plain())
	require.NoError(t, f.press(t, "A<CR>"))

	assert.Equal(t, []string{"abc\n", "\n", "def\n"}, f.lines())
	row, col := f.pos()
	assert.Equal(t, 1, row)
	assert.Equal(t, 0, col)
}

func TestSplitMiddleWithAutoIndent(t *testing.T) {
	f := newFixture(t, "  call(a,  b)\n", DefaultOptions())
	require.NoError(t, f.press(t, "llllllli<CR>"))

	assert.Equal(t, []string{"  call(\n", "      a,  b)\n"}, f.lines())
	row, col := f.pos()
	assert.Equal(t, 1, row)
	assert.Equal(t, 6, col)
}

func TestSplitStripsLeadingSpacesOfTail(t *testing.T) {
	f := newFixture(t, "x =    y\n", DefaultOptions())
	require.NoError(t, f.press(t, "lli<CR>"))
	assert.Equal(t, []string{"x \n", "=    y\n"}, f.lines())

	f = newFixture(t, "ab   cd\n", DefaultOptions())
	require.NoError(t, f.press(t, "lli<CR>"))
	assert.Equal(t, []string{"ab\n", "cd\n"}, f.lines())
}

func TestSplitJoinInverse(t *testing.T) {
	for _, text := range []string{"abcdef\n", "  x  y\n", "a\n", "tail"} {
		n := len(strings.TrimSuffix(text, "\n"))
		for c := 0; c <= n; c++ {
			f := newFixture(t, text, plain())
			require.NoError(t, f.press(t, "i"))
			f.ed.Cursor().SetCol(c)

			require.NoError(t, f.press(t, "<CR>"))
			row, col := f.pos()
			require.Equal(t, 1, row)
			require.Equal(t, 0, col)

			require.NoError(t, f.press(t, "<BS>"))
			assert.Equal(t, []string{text}, f.lines(), "split/join %q at %d", text, c)
			row, col = f.pos()
			assert.Equal(t, 0, row)
			assert.Equal(t, c, col)
		}
	}
}

func TestBackspace(t *testing.T) {
	f := newFixture(t, "abc\n", DefaultOptions())
	require.NoError(t, f.press(t, "A<BS><BS>"))
	assert.Equal(t, []string{"a\n"}, f.lines())
	_, col := f.pos()
	assert.Equal(t, 1, col)
}

func TestBackspaceAtDocumentStartIsNoop(t *testing.T) {
	f := newFixture(t, "abc\ndef\n", DefaultOptions())
	require.NoError(t, f.press(t, "i<BS><Del>"))
	assert.Equal(t, []string{"abc\n", "def\n"}, f.lines())
	assert.False(t, f.ed.IsModified())
	row, col := f.pos()
	assert.Equal(t, 0, row)
	assert.Equal(t, 0, col)
}

func TestBackspaceJoinsTail(t *testing.T) {
	f := newFixture(t, "abc\ndef", DefaultOptions())
	require.NoError(t, f.press(t, "ji<BS>"))
	assert.Equal(t, []string{"abcdef"}, f.lines())
	doc := f.ed.Document()
	assert.Equal(t, doc.Head(), doc.Tail())
	_, col := f.pos()
	assert.Equal(t, 3, col)
}

func TestTab(t *testing.T) {
	f := newFixture(t, "x\n", DefaultOptions())
	require.NoError(t, f.press(t, "i<Tab>"))
	assert.Equal(t, []string{"    x\n"}, f.lines())
	_, col := f.pos()
	assert.Equal(t, 4, col)
}

func TestInsertArrowClamping(t *testing.T) {
	f := newFixture(t, "abc\nlonger line\n", DefaultOptions())
	require.NoError(t, f.press(t, "A<Right><Right>"))
	_, col := f.pos()
	assert.Equal(t, 3, col, "insert mode may rest before the newline, not past it")

	require.NoError(t, f.press(t, "<Down><Left><Up>"))
	row, col := f.pos()
	assert.Equal(t, 0, row)
	assert.Equal(t, 2, col)
}

func TestEscapeAtColumnZero(t *testing.T) {
	f := newFixture(t, "abc\n", DefaultOptions())
	require.NoError(t, f.press(t, "i<Esc>"))
	_, col := f.pos()
	assert.Equal(t, 0, col)
	assert.Equal(t, mode.ModeNormal, f.ed.Mode())
}

func TestDeleteUnderCursor(t *testing.T) {
	f := newFixture(t, "abc\n", DefaultOptions())
	require.NoError(t, f.press(t, "lx"))
	assert.Equal(t, []string{"ac\n"}, f.lines())

	require.NoError(t, f.press(t, "lx"))
	assert.Equal(t, []string{"a\n"}, f.lines())
	_, col := f.pos()
	assert.Equal(t, 0, col, "column clamped after deleting the last character")
}

func TestDeleteUnderOnBlankLineJoins(t *testing.T) {
	f := newFixture(t, "abc\n\n", DefaultOptions())
	require.NoError(t, f.press(t, "jx"))
	assert.Equal(t, []string{"abc\n"}, f.lines())
	row, col := f.pos()
	assert.Equal(t, 0, row)
	assert.Equal(t, 2, col, "normal mode clamps the join column")
}

func TestDeleteLine(t *testing.T) {
	f := newFixture(t, "one\ntwo\nthree\n", DefaultOptions())

	require.NoError(t, f.press(t, "jdd"))
	assert.Equal(t, []string{"one\n", "three\n"}, f.lines())
	row, _ := f.pos()
	assert.Equal(t, 0, row, "middle removal selects the previous line")
	yank, ok := f.ed.Yank()
	assert.True(t, ok)
	assert.Equal(t, "two\n", string(yank))

	require.NoError(t, f.press(t, "dd"))
	assert.Equal(t, []string{"three\n"}, f.lines())
	row, _ = f.pos()
	assert.Equal(t, 0, row, "head removal selects the next line")
}

func TestDeleteLastRemainingLine(t *testing.T) {
	f := newFixture(t, "only line\n", DefaultOptions())
	require.NoError(t, f.press(t, "lllldd"))

	assert.Equal(t, []string{"\n"}, f.lines())
	assert.Equal(t, 1, f.ed.LineCount())
	_, col := f.pos()
	assert.Equal(t, 0, col)
	yank, _ := f.ed.Yank()
	assert.Equal(t, "only line\n", string(yank))

	require.NoError(t, f.press(t, "dd"))
	assert.Equal(t, []string{"\n"}, f.lines())
}

func TestYankPaste(t *testing.T) {
	f := newFixture(t, "a\nb\n", DefaultOptions())

	require.NoError(t, f.press(t, "yyjp"))
	assert.Equal(t, []string{"a\n", "b\n", "a\n"}, f.lines())
	row, col := f.pos()
	assert.Equal(t, 2, row)
	assert.Equal(t, 0, col)

	require.NoError(t, f.press(t, "ggP"))
	assert.Equal(t, []string{"a\n", "a\n", "b\n", "a\n"}, f.lines())
	row, _ = f.pos()
	assert.Equal(t, 0, row)
}

func TestPasteWithEmptyRegister(t *testing.T) {
	f := newFixture(t, "a\n", DefaultOptions())
	require.NoError(t, f.press(t, "pP"))
	assert.Equal(t, []string{"a\n"}, f.lines())
	assert.False(t, f.ed.IsModified())
}

func TestPasteAfterTailWithoutNewline(t *testing.T) {
	f := newFixture(t, "x\ny", DefaultOptions())
	require.NoError(t, f.press(t, "jyyp"))
	assert.Equal(t, []string{"x\n", "y\n", "y"}, f.lines())
}

func TestDeleteThenPasteMovesLine(t *testing.T) {
	f := newFixture(t, "1\n2\n3\n", DefaultOptions())
	require.NoError(t, f.press(t, "ddp"))
	assert.Equal(t, []string{"2\n", "1\n", "3\n"}, f.lines())
}

func TestIndentOutdent(t *testing.T) {
	f := newFixture(t, "  x\n", DefaultOptions())

	require.NoError(t, f.press(t, ">>"))
	assert.Equal(t, []string{"    x\n"}, f.lines())
	_, col := f.pos()
	assert.Equal(t, 4, col)

	require.NoError(t, f.press(t, ">>"))
	assert.Equal(t, []string{"        x\n"}, f.lines())

	require.NoError(t, f.press(t, "<lt><lt>"))
	assert.Equal(t, []string{"    x\n"}, f.lines())
	_, col = f.pos()
	assert.Equal(t, 4, col)

	require.NoError(t, f.press(t, "<lt><lt><lt><lt>"))
	assert.Equal(t, []string{"x\n"}, f.lines())
}

func TestIndentRoundTripProperty(t *testing.T) {
	for _, n := range []int{0, 4, 8, 16} {
		text := strings.Repeat(" ", n) + "v\n"

		f := newFixture(t, text, DefaultOptions())
		require.NoError(t, f.press(t, "<lt><lt>>>"))
		if n > 0 {
			assert.Equal(t, []string{text}, f.lines(), "outdent then indent at %d", n)
		}

		f = newFixture(t, text, DefaultOptions())
		require.NoError(t, f.press(t, ">><lt><lt>"))
		assert.Equal(t, []string{text}, f.lines(), "indent then outdent at %d", n)
	}
}

func TestIndentOnBlankLineKeepsCursorValid(t *testing.T) {
	f := newFixture(t, "\n", DefaultOptions())
	require.NoError(t, f.press(t, ">>"))
	assert.Equal(t, []string{"    \n"}, f.lines())
	_, col := f.pos()
	assert.Equal(t, 3, col)
}

func TestPendingRegister(t *testing.T) {
	f := newFixture(t, "a\nb\nc\n", DefaultOptions())

	require.NoError(t, f.press(t, "d"))
	assert.Equal(t, 'd', f.ed.Modes().Normal().Pending())
	assert.True(t, strings.HasSuffix(f.be.Status(), "  d"))

	require.NoError(t, f.press(t, "j"))
	assert.Equal(t, rune(0), f.ed.Modes().Normal().Pending())
	row, _ := f.pos()
	assert.Equal(t, 0, row, "the non-matching key is consumed")
	assert.Equal(t, []string{"a\n", "b\n", "c\n"}, f.lines())

	require.NoError(t, f.press(t, "dy"))
	assert.Equal(t, []string{"a\n", "b\n", "c\n"}, f.lines())
	_, ok := f.ed.Yank()
	assert.False(t, ok)

	require.NoError(t, f.press(t, "Ggg"))
	row, _ = f.pos()
	assert.Equal(t, 0, row)
}

func TestPendingRegisterMismatchStartsOver(t *testing.T) {
	f := newFixture(t, "a\nb\nc\n", DefaultOptions())
	require.NoError(t, f.press(t, "j"))

	// g waits for g; the d that follows is swallowed and only the last
	// d fills the register again.
	require.NoError(t, f.press(t, "gdd"))
	assert.Equal(t, []string{"a\n", "b\n", "c\n"}, f.lines())
	assert.Equal(t, 'd', f.ed.Modes().Normal().Pending())
	row, _ := f.pos()
	assert.Equal(t, 1, row)

	require.NoError(t, f.press(t, "d"))
	assert.Equal(t, []string{"a\n", "c\n"}, f.lines())
	assert.Equal(t, rune(0), f.ed.Modes().Normal().Pending())
}

func TestMotionBounds(t *testing.T) {
	f := newFixture(t, "ab\ncdef\n", DefaultOptions())

	require.NoError(t, f.press(t, "k<Up>h<Left>"))
	row, col := f.pos()
	assert.Equal(t, 0, row)
	assert.Equal(t, 0, col)

	require.NoError(t, f.press(t, "jjj<Down>"))
	row, _ = f.pos()
	assert.Equal(t, 1, row, "move down at the last row is a no-op")

	require.NoError(t, f.press(t, "lllll<Right>"))
	_, col = f.pos()
	assert.Equal(t, 3, col)

	require.NoError(t, f.press(t, "k"))
	_, col = f.pos()
	assert.Equal(t, 1, col)

	require.NoError(t, f.press(t, "G"))
	row, col = f.pos()
	assert.Equal(t, 1, row)
	assert.Equal(t, 3, col)
}

func TestOutOfMemoryAbortsEdit(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxLineBytes = 8
	f := newFixture(t, "abcde\n", opts)

	require.NoError(t, f.press(t, "Ag"))
	assert.Equal(t, []string{"abcdeg\n"}, f.lines())

	require.NoError(t, f.press(t, "h"))
	assert.Equal(t, []string{"abcdeg\n"}, f.lines(), "edit beyond the ceiling is dropped")
	assert.Equal(t, "out of memory: edit aborted", f.be.Status())
	_, col := f.pos()
	assert.Equal(t, 6, col)

	require.NoError(t, f.press(t, "<BS>i"))
	assert.Equal(t, []string{"abcdei\n"}, f.lines(), "editing continues after the failure")
}

func TestOutOfMemoryAbortsTab(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxLineBytes = 8
	f := newFixture(t, "abcd\n", opts)

	require.NoError(t, f.press(t, "A<Tab>"))
	assert.Equal(t, []string{"abcd\n"}, f.lines(), "no part of the indent unit is inserted")
	assert.Equal(t, "out of memory: edit aborted", f.be.Status())
	_, col := f.pos()
	assert.Equal(t, 4, col)
	assert.False(t, f.ed.IsModified())
}

func TestOutOfMemoryAbortsMultiByteRune(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxLineBytes = 8
	f := newFixture(t, "abcde\n", opts)

	require.NoError(t, f.press(t, "Aé"))
	assert.Equal(t, []string{"abcde\n"}, f.lines())
	assert.True(t, utf8.Valid(f.ed.Document().Line(f.ed.Document().Head()).View()))
	assert.Equal(t, "out of memory: edit aborted", f.be.Status())
	_, col := f.pos()
	assert.Equal(t, 5, col)
}

func TestOutOfMemoryAbortsSplit(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxLineBytes = 16
	f := newFixture(t, "      (abcdef\n", opts)

	require.NoError(t, f.press(t, "llllllli<CR>"))
	assert.Equal(t, []string{"      (abcdef\n"}, f.lines(), "head is restored when the new line does not fit")
	assert.Equal(t, "out of memory: edit aborted", f.be.Status())
	row, col := f.pos()
	assert.Equal(t, 0, row)
	assert.Equal(t, 7, col)
}

func TestOutOfMemoryAbortsJoin(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxLineBytes = 8
	f := newFixture(t, "abcd\nefgh\n", opts)

	require.NoError(t, f.press(t, "ji<BS>"))
	assert.Equal(t, []string{"abcd\n", "efgh\n"}, f.lines())
	row, col := f.pos()
	assert.Equal(t, 1, row)
	assert.Equal(t, 0, col)
}

func TestMixedEditsKeepInvariants(t *testing.T) {
	f := newFixture(t, "alpha\n  beta:\ngamma\n", DefaultOptions())
	script := "jA<CR>x<CR>y<Esc>ggddGp" +
		"kO<Tab>z<Esc>>>>><lt><lt>x" +
		"ji<BS><BS><BS><CR><CR><Esc>yyPjdd" +
		":2<CR>oq<Esc>ddddddddddddp"
	require.NoError(t, f.press(t, script))
	assert.GreaterOrEqual(t, f.ed.LineCount(), 1)
}
