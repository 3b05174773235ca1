package osd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/termkey/termkey/internal/keymap"
)

func allOptions() Options {
	return Options{CombineButtons: true, CompressRepeats: true}
}

func modState(ids ...keymap.ModifierID) ModifierState {
	var st ModifierState
	for _, id := range ids {
		st[id] = true
	}
	return st
}

func key(code keymap.Code, name string) *Primary {
	return &Primary{Code: code, Name: name, Modifier: keymap.NumModifiers}
}

func modKey(code keymap.Code, id keymap.ModifierID) *Primary {
	return &Primary{Code: code, Name: id.String(), Modifier: id}
}

func TestComposePlainKey(t *testing.T) {
	c := NewLabelComposer(allOptions())
	got := c.Compose(key(30, "A"), ModifierState{}, "", time.Now())
	assert.Equal(t, "A", got)
}

func TestComposeModifierPrefixOrder(t *testing.T) {
	c := NewLabelComposer(allOptions())

	// Shift-L was pressed before Ctrl-L; the label order is fixed anyway.
	mods := modState(keymap.ModShiftL, keymap.ModCtrlL)
	got := c.Compose(key(30, "A"), mods, "", time.Now())
	assert.Equal(t, "CONTROL_L + SHIFT_L + A", got)
}

func TestComposeAllModifiersOrdered(t *testing.T) {
	c := NewLabelComposer(allOptions())

	var mods ModifierState
	for i := range mods {
		mods[i] = true
	}
	got := c.Compose(key(30, "A"), mods, "", time.Now())
	assert.Equal(t,
		"CONTROL_L + CONTROL_R + ALT_L + ALT_R + SHIFT_L + SHIFT_R + "+
			"META_L + META_R + ALTGR + SUPER_L + SUPER_R + A",
		got)
}

func TestComposeModifierNeverDescribesItself(t *testing.T) {
	c := NewLabelComposer(allOptions())

	// Only Left-Shift held, and Left-Shift is the primary key.
	got := c.Compose(modKey(42, keymap.ModShiftL), modState(keymap.ModShiftL), "", time.Now())
	assert.Equal(t, "SHIFT_L", got)

	// With Ctrl-L also held, the prefix still excludes the primary.
	got = c.Compose(modKey(42, keymap.ModShiftL), modState(keymap.ModShiftL, keymap.ModCtrlL), "", time.Now())
	assert.Equal(t, "CONTROL_L + SHIFT_L", got)
}

func TestComposeMouseAlone(t *testing.T) {
	c := NewLabelComposer(allOptions())
	got := c.Compose(nil, ModifierState{}, "LEFT CLICK", time.Now())
	assert.Equal(t, "LEFT CLICK", got)
}

func TestComposeMouseAndKey(t *testing.T) {
	c := NewLabelComposer(allOptions())
	got := c.Compose(key(30, "A"), modState(keymap.ModCtrlL), "LEFT CLICK", time.Now())
	assert.Equal(t, "LEFT CLICK + CONTROL_L + A", got)
}

func TestComposeSingleButtonMode(t *testing.T) {
	c := NewLabelComposer(Options{CombineButtons: false, CompressRepeats: true})
	got := c.Compose(nil, ModifierState{}, "LEFT CLICK + RIGHT CLICK", time.Now())
	assert.Equal(t, "LEFT CLICK", got)
}

func TestComposeRepeatCompression(t *testing.T) {
	c := NewLabelComposer(allOptions())
	t0 := time.Now()

	assert.Equal(t, "A", c.Compose(key(30, "A"), ModifierState{}, "", t0))
	assert.Equal(t, "A [x2]", c.Compose(key(30, "A"), ModifierState{}, "", t0.Add(33*time.Millisecond)))
	assert.Equal(t, "A [x3]", c.Compose(key(30, "A"), ModifierState{}, "", t0.Add(66*time.Millisecond)))

	// The window is measured from the previous render, so a steady repeat
	// keeps counting past the initial press.
	assert.Equal(t, "A [x4]", c.Compose(key(30, "A"), ModifierState{}, "", t0.Add(160*time.Millisecond)))
}

func TestComposeRepeatResetOnSlowGap(t *testing.T) {
	c := NewLabelComposer(allOptions())
	t0 := time.Now()

	assert.Equal(t, "A", c.Compose(key(30, "A"), ModifierState{}, "", t0))
	// A deliberate double-press is slower than auto-repeat.
	assert.Equal(t, "A", c.Compose(key(30, "A"), ModifierState{}, "", t0.Add(300*time.Millisecond)))
}

func TestComposeRepeatResetOnDifferentKey(t *testing.T) {
	c := NewLabelComposer(allOptions())
	t0 := time.Now()

	assert.Equal(t, "A", c.Compose(key(30, "A"), ModifierState{}, "", t0))
	assert.Equal(t, "A [x2]", c.Compose(key(30, "A"), ModifierState{}, "", t0.Add(30*time.Millisecond)))
	assert.Equal(t, "B", c.Compose(key(48, "B"), ModifierState{}, "", t0.Add(60*time.Millisecond)))
	assert.Equal(t, "A", c.Compose(key(30, "A"), ModifierState{}, "", t0.Add(90*time.Millisecond)))
}

func TestComposeRepeatExemptsPureModifiers(t *testing.T) {
	c := NewLabelComposer(allOptions())
	t0 := time.Now()

	for i := 0; i < 5; i++ {
		got := c.Compose(modKey(42, keymap.ModShiftL), modState(keymap.ModShiftL), "", t0.Add(time.Duration(i)*20*time.Millisecond))
		assert.Equal(t, "SHIFT_L", got)
	}
}

func TestComposeRepeatDisabled(t *testing.T) {
	c := NewLabelComposer(Options{CombineButtons: true, CompressRepeats: false})
	t0 := time.Now()

	assert.Equal(t, "A", c.Compose(key(30, "A"), ModifierState{}, "", t0))
	assert.Equal(t, "A", c.Compose(key(30, "A"), ModifierState{}, "", t0.Add(30*time.Millisecond)))
}
