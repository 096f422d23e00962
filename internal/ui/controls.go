package ui

import (
	"image"
	"math"
	"strconv"

	"github.com/ThomasA12354656/heat/internal/core"
)

// controlState is the HUD-side cache of one adjustable parameter.
type controlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// controlPanel holds the parameter rows and the sim setters they drive.
// It has no rendering dependencies.
type controlPanel struct {
	width    int
	controls []controlState

	intSetter    core.IntParameterSetter
	floatSetter  core.FloatParameterSetter
	choiceSetter core.ChoiceParameterSetter
}

func newControlPanel(sim any, width int) *controlPanel {
	p := &controlPanel{width: width}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		p.controls = make([]controlState, len(controls))
		for i, ctrl := range controls {
			p.controls[i] = controlState{control: ctrl, value: "--"}
		}
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		p.intSetter = setter
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		p.floatSetter = setter
	}
	if setter, ok := sim.(core.ChoiceParameterSetter); ok {
		p.choiceSetter = setter
	}
	return p
}

// refresh copies current values out of snap.
func (p *controlPanel) refresh(snap core.ParameterSnapshot) {
	for i := range p.controls {
		state := &p.controls[i]
		param, ok := snap.Lookup(state.control.Key)
		state.hasValue = false
		state.value = "--"
		if !ok {
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				continue
			}
			state.intValue = parsed
			state.floatValue = float64(parsed)
			state.value = strconv.Itoa(parsed)
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				continue
			}
			state.floatValue = parsed
			state.value = formatFloat(state.control, parsed)
		case core.ParamTypeChoice:
			state.value = param.Value
		default:
			continue
		}
		state.hasValue = true
	}
}

// layout positions the rows starting at top.
func (p *controlPanel) layout(top int) {
	if p.width <= 0 {
		return
	}
	for i := range p.controls {
		rowTop := top + i*lineHeight
		buttonY := rowTop + (lineHeight-buttonSize)/2
		plusRect := image.Rect(p.width-panelPadding-buttonSize, buttonY, p.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		p.controls[i].top = rowTop
		p.controls[i].minusRect = minusRect
		p.controls[i].plusRect = plusRect
	}
}

// click applies a press at panel coordinates (x, y). It reports whether a
// parameter changed.
func (p *controlPanel) click(x, y int) bool {
	for i := range p.controls {
		state := &p.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(x, y, state.minusRect) {
			return p.adjust(state, -1)
		}
		if pointInRect(x, y, state.plusRect) {
			return p.adjust(state, 1)
		}
	}
	return false
}

func (p *controlPanel) adjust(state *controlState, direction int) bool {
	if !p.canAdjust(state, direction) {
		return false
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		target := p.intTarget(state, direction)
		if target == state.intValue || !p.intSetter.SetIntParameter(state.control.Key, target) {
			return false
		}
		state.intValue = target
		state.floatValue = float64(target)
		state.value = strconv.Itoa(target)
	case core.ParamTypeFloat:
		target := floatTarget(state, direction)
		if math.Abs(target-state.floatValue) < 1e-9 || !p.floatSetter.SetFloatParameter(state.control.Key, target) {
			return false
		}
		state.floatValue = target
		state.value = formatFloat(state.control, target)
	case core.ParamTypeChoice:
		next := core.CycleOption(state.control.Options, state.value, direction)
		if next == state.value || !p.choiceSetter.SetChoiceParameter(state.control.Key, next) {
			return false
		}
		state.value = next
	default:
		return false
	}
	return true
}

func (p *controlPanel) canAdjust(state *controlState, direction int) bool {
	if state == nil || direction == 0 || !state.hasValue {
		return false
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		if p.intSetter == nil {
			return false
		}
		return p.intTarget(state, direction) != state.intValue
	case core.ParamTypeFloat:
		if p.floatSetter == nil {
			return false
		}
		return math.Abs(floatTarget(state, direction)-state.floatValue) >= 1e-9
	case core.ParamTypeChoice:
		return p.choiceSetter != nil && len(state.control.Options) > 1
	default:
		return false
	}
}

func (p *controlPanel) intTarget(state *controlState, direction int) int {
	step := int(math.Round(state.control.Step))
	if step <= 0 {
		step = 1
	}
	target := state.intValue + direction*step
	if state.control.HasMin {
		target = max(target, int(math.Round(state.control.Min)))
	}
	if state.control.HasMax {
		target = min(target, int(math.Round(state.control.Max)))
	}
	return target
}

func floatTarget(state *controlState, direction int) float64 {
	step := state.control.Step
	if step <= 0 {
		step = 0.05
	}
	target := state.floatValue + float64(direction)*step
	if state.control.HasMin && target < state.control.Min {
		target = state.control.Min
	}
	if state.control.HasMax && target > state.control.Max {
		target = state.control.Max
	}
	return target
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
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
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

// Action is a run-control button on the HUD.
type Action int

const (
	ActionNone Action = iota
	ActionStart
	ActionPause
	ActionReset
	ActionHeat
)

var actionLabels = []struct {
	action Action
	label  string
}{
	{ActionStart, "Start"},
	{ActionPause, "Pause"},
	{ActionReset, "Reset"},
	{ActionHeat, "Heat"},
}

type actionButton struct {
	action Action
	label  string
	rect   image.Rectangle
}

// layoutActions spreads the run-control buttons over one row at top.
func layoutActions(width, top int) []actionButton {
	n := len(actionLabels)
	inner := width - 2*panelPadding - (n-1)*buttonGap
	if inner <= 0 {
		return nil
	}
	w := inner / n
	buttons := make([]actionButton, n)
	for i, a := range actionLabels {
		x := panelPadding + i*(w+buttonGap)
		buttons[i] = actionButton{action: a.action, label: a.label, rect: image.Rect(x, top, x+w, top+actionHeight)}
	}
	return buttons
}

func actionAt(buttons []actionButton, x, y int) Action {
	for _, b := range buttons {
		if pointInRect(x, y, b.rect) {
			return b.action
		}
	}
	return ActionNone
}

type heatingSwitch interface {
	SetHeating(on bool)
	Heating() bool
}

// Apply performs action on sim.
func Apply(sim core.Sim, action Action) error {
	switch action {
	case ActionStart:
		sim.Start()
	case ActionPause:
		sim.Pause()
	case ActionReset:
		_, err := sim.Reset()
		return err
	case ActionHeat:
		if hs, ok := sim.(heatingSwitch); ok {
			hs.SetHeating(!hs.Heating())
		}
	}
	return nil
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	actionHeight   = 24
	headerBaseline = 18
	labelBaseline  = 24
	statusLines    = 5
	statusSpacing  = 16
	actionsTop     = panelPadding + headerBaseline + 10 + statusLines*statusSpacing
	controlsTop    = actionsTop + actionHeight + 14
)
