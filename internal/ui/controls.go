package ui

import (
	"image"
	"math"
	"strconv"

	"torus-ca/internal/core"
)

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 36
	statusSpacing  = 16
	controlsTop    = panelPadding + headerBaseline + 14
)

type controlState struct {
	control core.ParameterControl
	value   string

	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

func newControls(ctrls []core.ParameterControl, width int) []controlState {
	out := make([]controlState, 0, len(ctrls))
	for i, ctrl := range ctrls {
		if ctrl.Type != core.ParamTypeFloat {
			continue
		}
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		out = append(out, controlState{control: ctrl, value: "--", top: top, minusRect: minus, plusRect: plus})
	}
	return out
}

// refresh copies the matching snapshot value into the control.
func (s *controlState) refresh(snap core.ParameterSnapshot) {
	param, ok := snap.Lookup(s.control.Key)
	if !ok {
		s.hasValue, s.value = false, "--"
		return
	}
	v, err := strconv.ParseFloat(param.Value, 64)
	if err != nil {
		s.hasValue, s.value = false, "--"
		return
	}
	s.floatValue = v
	s.value = formatFloat(s.control.Step, v)
	s.hasValue = true
}

func (s *controlState) step() float64 {
	if s.control.Step <= 0 {
		return 0.05
	}
	return s.control.Step
}

// target returns the value one step in direction, clamped to the bounds, and
// whether it differs from the current value.
func (s *controlState) target(direction int) (float64, bool) {
	if !s.hasValue || direction == 0 {
		return 0, false
	}
	v := core.Clamp(s.floatValue+float64(direction)*s.step(), s.control.Min, s.control.Max)
	return v, math.Abs(v-s.floatValue) >= 1e-9
}

// adjust moves the control one step and pushes the value to setter.
func (s *controlState) adjust(setter core.FloatParameterSetter, direction int) bool {
	if setter == nil {
		return false
	}
	v, ok := s.target(direction)
	if !ok || !setter.SetFloatParameter(s.control.Key, v) {
		return false
	}
	s.floatValue = v
	s.value = formatFloat(s.control.Step, v)
	return true
}

func formatFloat(step, value float64) string {
	precision := 1
	switch {
	case step <= 0:
		precision = 2
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}
